package dnscheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/maksimkurb/torwall/src/internal/log"
)

const (
	// DefaultProbeName is resolved through the listener during the self-check.
	DefaultProbeName = "torproject.org"

	probeTimeout = 3 * time.Second
)

// Prober sends a single A query over UDP.
type Prober struct {
	client *dns.Client
}

// NewProber creates a UDP prober with the default timeout.
func NewProber() *Prober {
	return &Prober{
		client: &dns.Client{
			Net:     "udp",
			Timeout: probeTimeout,
		},
	}
}

// Probe queries server (host:port) for the A record of name and fails unless
// the answer has a NOERROR rcode.
func (p *Prober) Probe(ctx context.Context, server, name string) error {
	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(name), dns.TypeA)
	req.RecursionDesired = true

	log.Debugf("[%04x] Probing %s for %s A", req.Id, server, req.Question[0].Name)

	resp, rtt, err := p.client.ExchangeContext(ctx, req, server)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fmt.Errorf("no answer from %s within %v: %w", server, probeTimeout, err)
		}
		return fmt.Errorf("failed to query %s: %w", server, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return fmt.Errorf("%s answered %s for %s", server, dns.RcodeToString[resp.Rcode], name)
	}

	log.Debugf("[%04x] %s answered in %v with %d records", req.Id, server, rtt, len(resp.Answer))
	return nil
}
