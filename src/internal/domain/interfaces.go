// Package domain defines core interfaces for dependency injection and abstraction.
//
// Commands consume every external collaborator through these interfaces (or the
// ones declared next to their implementations), so they can be tested without
// root privileges, iptables or a running Tor daemon.
package domain

import (
	"context"
)

// PrivilegeChecker reports whether the process may change firewall rules.
type PrivilegeChecker interface {
	IsPrivileged() bool
}

// IdentityResolver looks up the numeric uid of a system account.
type IdentityResolver interface {
	// ResolveUID returns the decimal uid of account. It never returns an
	// empty string without an error.
	ResolveUID(account string) (string, error)
}

// ServiceManager restarts system services.
type ServiceManager interface {
	Restart(name string) error
}

// DNSProber checks that a DNS server answers queries.
type DNSProber interface {
	// Probe queries server (host:port) for name and returns nil if it answered.
	Probe(ctx context.Context, server, name string) error
}
