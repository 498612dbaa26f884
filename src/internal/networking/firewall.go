package networking

import (
	"fmt"

	"github.com/coreos/go-iptables/iptables"
)

// FirewallClient is the subset of firewall operations torwall needs.
type FirewallClient interface {
	// FlushTable removes every rule from every chain of the table.
	FlushTable(table string) error
	// AppendRule appends rulespec to the end of table/chain.
	AppendRule(table, chain string, rulespec ...string) error
	// RuleExists checks whether rulespec is present in table/chain.
	RuleExists(table, chain string, rulespec ...string) (bool, error)
}

// IPTablesClient implements FirewallClient on top of the IPv4 iptables binary.
type IPTablesClient struct {
	ipt *iptables.IPTables
}

// NewIPTablesClient creates a client for IPv4 iptables.
func NewIPTablesClient() (*IPTablesClient, error) {
	ipt, err := iptables.NewWithProtocol(iptables.ProtocolIPv4)
	if err != nil {
		return nil, fmt.Errorf("failed to create iptables (IPv4): %w", err)
	}
	return &IPTablesClient{ipt: ipt}, nil
}

// FlushTable flushes the filter table with "iptables -F". Other tables are
// flushed chain by chain, which is what "iptables -t <table> -F" does.
func (c *IPTablesClient) FlushTable(table string) error {
	if table == TableFilter {
		return c.ipt.ClearAll()
	}

	chains, err := c.ipt.ListChains(table)
	if err != nil {
		return fmt.Errorf("failed to list chains of table %s: %w", table, err)
	}
	for _, chain := range chains {
		if err := c.ipt.ClearChain(table, chain); err != nil {
			return fmt.Errorf("failed to flush chain %s/%s: %w", table, chain, err)
		}
	}
	return nil
}

func (c *IPTablesClient) AppendRule(table, chain string, rulespec ...string) error {
	return c.ipt.Append(table, chain, rulespec...)
}

func (c *IPTablesClient) RuleExists(table, chain string, rulespec ...string) (bool, error) {
	return c.ipt.Exists(table, chain, rulespec...)
}
