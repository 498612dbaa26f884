package dnscheck

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"

	"github.com/maksimkurb/torwall/src/internal/log"
)

func init() {
	log.DisableLogs()
}

// startMockListener starts a DNS server answering every query with rcode
func startMockListener(t *testing.T, rcode int) string {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen packet: %v", err)
	}

	started := make(chan struct{})
	server := &dns.Server{
		PacketConn:        pc,
		NotifyStartedFunc: func() { close(started) },
		Handler: dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
			m := new(dns.Msg)
			m.SetRcode(r, rcode)
			if rcode == dns.RcodeSuccess {
				rr, _ := dns.NewRR(r.Question[0].Name + " 60 IN A 10.192.0.1")
				m.Answer = append(m.Answer, rr)
			}
			w.WriteMsg(m)
		}),
	}

	go func() {
		server.ActivateAndServe()
	}()
	t.Cleanup(func() {
		server.Shutdown()
	})

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("mock DNS listener did not start")
	}

	return pc.LocalAddr().String()
}

func TestProbe_Success(t *testing.T) {
	addr := startMockListener(t, dns.RcodeSuccess)

	if err := NewProber().Probe(context.Background(), addr, DefaultProbeName); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestProbe_ErrorRcode(t *testing.T) {
	addr := startMockListener(t, dns.RcodeServerFailure)

	err := NewProber().Probe(context.Background(), addr, DefaultProbeName)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "SERVFAIL") {
		t.Errorf("Expected SERVFAIL in error, got: %v", err)
	}
}

func TestProbe_NoListener(t *testing.T) {
	// Reserve a port and close it so nothing answers
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen packet: %v", err)
	}
	addr := pc.LocalAddr().String()
	pc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := NewProber().Probe(ctx, addr, DefaultProbeName); err == nil {
		t.Error("Expected error, got nil")
	}
}
