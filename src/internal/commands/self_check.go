package commands

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"time"

	"github.com/maksimkurb/torwall/src/internal/config"
	"github.com/maksimkurb/torwall/src/internal/dnscheck"
	"github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
	"github.com/maksimkurb/torwall/src/internal/networking"
)

const dnsProbeTimeout = 5 * time.Second

func CreateSelfCheckCommand() *SelfCheckCommand {
	return &SelfCheckCommand{}
}

// SelfCheckCommand verifies the current system state without changing it.
type SelfCheckCommand struct {
	ctx    *AppContext
	cfg    *config.Config
	client networking.FirewallClient
}

func (g *SelfCheckCommand) Name() string {
	return "self-check"
}

func (g *SelfCheckCommand) Init(ctx *AppContext) error {
	g.ctx = ctx

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	client, err := firewallClientOrFail(ctx)
	if err != nil {
		return err
	}
	g.client = client

	return nil
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")
	log.Infof("---------------- Configuration START -----------------")

	if cfg, err := g.cfg.SerializeConfig(); err != nil {
		log.Errorf("Failed to serialize config: %v", err)
		return errors.NewInternalError("failed to serialize config", err)
	} else {
		if _, err := g.ctx.Stdout.Write(cfg.Bytes()); err != nil {
			log.Errorf("Failed to output config: %v", err)
			return errors.NewInternalError("failed to output config", err)
		}
	}

	log.Infof("----------------- Configuration END ------------------")

	checks := []struct {
		name string
		run  func() bool
	}{
		{"iptables", g.checkRules},
		{"torrc", g.checkTorrc},
		{"addresses", g.checkAddresses},
		{"dns", g.checkDNS},
	}

	failed := 0
	for _, check := range checks {
		log.Infof("----------------- Check [%s] ------------------", check.name)
		if !check.run() {
			failed++
		}
	}

	if failed > 0 {
		log.Errorf("Self-check completed with failures")
		return errors.NewSelfCheckError(fmt.Sprintf("%d of %d checks failed", failed, len(checks)))
	}

	log.Infof("Self-check completed successfully")
	return nil
}

// checkRules verifies that the service uid resolves and every rule is present.
func (g *SelfCheckCommand) checkRules() bool {
	account := g.cfg.General.ServiceAccount
	uid, err := g.ctx.ServiceUID(account)
	if err != nil {
		log.Errorf("Service account %s: %v", account, err)
		return false
	}
	log.Infof("Service account %s has uid %s", account, uid)

	installer := networking.NewInstaller(g.client, ruleParams(g.cfg, uid))
	statuses, err := installer.CheckRules()
	if err != nil {
		log.Errorf("%v", err)
		return false
	}

	ok := true
	for idx, status := range statuses {
		if status.Exists {
			log.Infof("iptables rule #%d [%v] is present", idx+1, status.Rule)
		} else {
			log.Errorf("iptables rule #%d [%v] is NOT present", idx+1, status.Rule)
			ok = false
		}
	}
	return ok
}

func (g *SelfCheckCommand) checkTorrc() bool {
	path := g.cfg.GetTorrcPath()

	configured, err := newTorrcUpdater(g.ctx, g.cfg).CheckConfig()
	if err != nil {
		log.Errorf("%v", err)
		return false
	}
	if !configured {
		log.Errorf("%s does NOT contain DNSPort/TransPort directives", path)
		return false
	}

	log.Infof("%s contains transparent proxy directives", path)
	return true
}

// checkAddresses warns about local addresses and the virtual network that the
// excluded networks do not account for. Findings are warnings only.
func (g *SelfCheckCommand) checkAddresses() bool {
	excluded, err := g.cfg.GetExcludedPrefixes()
	if err != nil {
		log.Errorf("Invalid excluded networks: %v", err)
		return false
	}

	addrs, err := g.ctx.Deps.AddressLister().LocalAddresses()
	if err != nil {
		log.Errorf("Failed to list local addresses: %v", err)
		return false
	}

	uncovered := networking.UncoveredAddresses(addrs, excluded)
	for _, addr := range uncovered {
		log.Warnf("Local address %s is not in any excluded network, traffic to it is redirected to Tor", addr)
	}
	if len(uncovered) == 0 {
		log.Infof("All %d local IPv4 addresses are in excluded networks", len(addrs))
	}

	virtualNetwork, err := netip.ParsePrefix(g.cfg.Proxy.VirtualAddrNetwork)
	if err != nil {
		log.Errorf("Invalid virtual address network: %v", err)
		return false
	}
	for _, prefix := range networking.OverlappingNetworks(virtualNetwork, excluded) {
		log.Warnf("Virtual address network %s overlaps excluded network %s, automapped hosts in it bypass Tor", virtualNetwork, prefix)
	}

	return true
}

func (g *SelfCheckCommand) checkDNS() bool {
	server := net.JoinHostPort("127.0.0.1", strconv.Itoa(int(g.cfg.Proxy.DNSPort)))

	ctx, cancel := context.WithTimeout(context.Background(), dnsProbeTimeout)
	defer cancel()

	if err := g.ctx.Deps.DNSProber().Probe(ctx, server, dnscheck.DefaultProbeName); err != nil {
		log.Errorf("Tor DNS listener %s is not answering: %v", server, err)
		return false
	}

	log.Infof("Tor DNS listener %s is answering", server)
	return true
}
