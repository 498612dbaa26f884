package domain

import (
	"github.com/maksimkurb/torwall/src/internal/dnscheck"
	"github.com/maksimkurb/torwall/src/internal/networking"
	"github.com/maksimkurb/torwall/src/internal/system"
	"github.com/maksimkurb/torwall/src/internal/torrc"
)

// FirewallFactory creates the firewall client on first use.
type FirewallFactory func() (networking.FirewallClient, error)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// The firewall client is created lazily, so commands that never touch the
// firewall (or fail earlier) do not require the iptables binary.
//
// Usage:
//
//	deps := domain.NewDefaultDependencies()
//	client, err := deps.FirewallClient()
type AppDependencies struct {
	privilegeChecker PrivilegeChecker
	identityResolver IdentityResolver
	serviceManager   ServiceManager
	dnsProber        DNSProber
	torrcStore       torrc.Store
	addressLister    networking.AddressLister

	firewallFactory FirewallFactory
	firewallClient  networking.FirewallClient
}

// NewDefaultDependencies creates a dependency container with production implementations.
//
// For testing, use NewTestDependencies.
func NewDefaultDependencies() *AppDependencies {
	runner := system.NewExecRunner()

	return &AppDependencies{
		privilegeChecker: system.NewPrivilegeChecker(),
		identityResolver: system.NewIdentityResolver(runner),
		serviceManager:   system.NewServiceManager(runner),
		dnsProber:        dnscheck.NewProber(),
		torrcStore:       torrc.NewFileStore(),
		addressLister:    networking.NewNetlinkAddressLister(),
		firewallFactory: func() (networking.FirewallClient, error) {
			return networking.NewIPTablesClient()
		},
	}
}

// TestDependencies lists the implementations injected by NewTestDependencies.
type TestDependencies struct {
	PrivilegeChecker PrivilegeChecker
	IdentityResolver IdentityResolver
	ServiceManager   ServiceManager
	DNSProber        DNSProber
	TorrcStore       torrc.Store
	AddressLister    networking.AddressLister
	FirewallClient   networking.FirewallClient
}

// NewTestDependencies creates a dependency container with mock implementations.
func NewTestDependencies(deps TestDependencies) *AppDependencies {
	return &AppDependencies{
		privilegeChecker: deps.PrivilegeChecker,
		identityResolver: deps.IdentityResolver,
		serviceManager:   deps.ServiceManager,
		dnsProber:        deps.DNSProber,
		torrcStore:       deps.TorrcStore,
		addressLister:    deps.AddressLister,
		firewallClient:   deps.FirewallClient,
	}
}

// PrivilegeChecker returns the privilege checker.
func (d *AppDependencies) PrivilegeChecker() PrivilegeChecker {
	return d.privilegeChecker
}

// IdentityResolver returns the service account uid resolver.
func (d *AppDependencies) IdentityResolver() IdentityResolver {
	return d.identityResolver
}

// ServiceManager returns the service restarter.
func (d *AppDependencies) ServiceManager() ServiceManager {
	return d.serviceManager
}

// DNSProber returns the DNS listener prober.
func (d *AppDependencies) DNSProber() DNSProber {
	return d.dnsProber
}

// TorrcStore returns the filesystem store used for torrc.
func (d *AppDependencies) TorrcStore() torrc.Store {
	return d.torrcStore
}

// AddressLister returns the local address lister.
func (d *AppDependencies) AddressLister() networking.AddressLister {
	return d.addressLister
}

// FirewallClient returns the firewall client, creating it on first call.
func (d *AppDependencies) FirewallClient() (networking.FirewallClient, error) {
	if d.firewallClient != nil {
		return d.firewallClient, nil
	}

	client, err := d.firewallFactory()
	if err != nil {
		return nil, err
	}
	d.firewallClient = client
	return client, nil
}
