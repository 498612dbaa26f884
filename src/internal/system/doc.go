// Package system wraps the host facilities torwall depends on besides the
// firewall: the effective uid check, running external commands, resolving
// the Tor service account uid and restarting the Tor service.
//
// Every facility is a small struct behind an interface so commands can be
// tested with the fakes from the mocks package instead of touching the host.
package system
