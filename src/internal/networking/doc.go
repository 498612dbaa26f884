// Package networking manages the iptables rules that push the host's traffic
// through Tor.
//
// # Architecture
//
//   - FirewallClient: the firewall seen as two operations, flush a table and
//     append a rule (plus an existence check for self-check). IPTablesClient
//     implements it with go-iptables.
//   - Rule templates: the fixed, ordered rule set with {{uid}}, {{network}},
//     {{dns_port}} and {{trans_port}} placeholders, rendered by BuildRules.
//   - Installer: FlushRules and SetupRules, issuing one client call per step
//     and stopping at the first failure.
//   - AddressLister: local IPv4 addresses from netlink, used to warn about
//     addresses that are not covered by an excluded network.
//
// # Rule Order
//
// iptables evaluates OUTPUT rules first-match, so the exceptions (Tor's own
// uid, established connections, excluded networks) are appended before the
// DNS and TCP redirects, and the filter REJECT comes last.
//
// # Example Usage
//
//	client, err := networking.NewIPTablesClient()
//	if err != nil {
//	    return err
//	}
//	installer := networking.NewInstaller(client, networking.RuleParams{
//	    ServiceUID:       "102",
//	    TransPort:        9040,
//	    DNSPort:          5353,
//	    ExcludedNetworks: []string{"192.168.0.0/16", "127.0.0.0/8"},
//	})
//	if err := installer.SetupRules(); err != nil {
//	    return err // rules appended before the failure stay in place
//	}
package networking
