// Package commands implements the torwall command line.
//
// Execute checks privileges, parses the action flags and runs exactly one
// command. Each command implements the Runner interface:
//   - Init(): load and validate configuration, resolve the service uid
//   - Run(): perform the action
//   - Name(): return the command name for logging
//
// # Available Commands
//
//   - setup (-s, --setup): update torrc, restart Tor, install iptables rules
//   - flush (-f, --flush): flush the filter and nat tables
//   - self-check (--check): verify the current state without changing it
package commands
