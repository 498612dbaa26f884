package mocks

import (
	"fmt"
	"net/netip"
	"strings"
)

const (
	OpFlush  = "flush"
	OpAppend = "append"
)

// FirewallCall records a single mutating call made to MockFirewallClient.
type FirewallCall struct {
	Op    string
	Table string
	Chain string
	Spec  []string
}

func (c FirewallCall) String() string {
	if c.Op == OpFlush {
		return fmt.Sprintf("flush %s", c.Table)
	}
	return fmt.Sprintf("append %s/%s %s", c.Table, c.Chain, strings.Join(c.Spec, " "))
}

// MockFirewallClient is a mock implementation of networking.FirewallClient.
//
// It records every flush and append in Calls and keeps a simulated rule table
// so RuleExists answers consistently with what was appended.
type MockFirewallClient struct {
	// FlushTableFunc is called by FlushTable if not nil
	FlushTableFunc func(table string) error

	// AppendRuleFunc is called by AppendRule if not nil
	AppendRuleFunc func(table, chain string, rulespec ...string) error

	// RuleExistsFunc is called by RuleExists if not nil
	RuleExistsFunc func(table, chain string, rulespec ...string) (bool, error)

	// Track calls for verification in tests
	Calls           []FirewallCall
	RuleExistsCalls int
	Rules           []FirewallCall // Simulated rule table
}

// NewMockFirewallClient creates a new mock firewall with an empty rule table.
func NewMockFirewallClient() *MockFirewallClient {
	return &MockFirewallClient{}
}

// FlushTable removes all simulated rules of table.
func (m *MockFirewallClient) FlushTable(table string) error {
	m.Calls = append(m.Calls, FirewallCall{Op: OpFlush, Table: table})
	if m.FlushTableFunc != nil {
		if err := m.FlushTableFunc(table); err != nil {
			return err
		}
	}

	kept := m.Rules[:0]
	for _, rule := range m.Rules {
		if rule.Table != table {
			kept = append(kept, rule)
		}
	}
	m.Rules = kept
	return nil
}

// AppendRule appends a rule to the simulated rule table.
func (m *MockFirewallClient) AppendRule(table, chain string, rulespec ...string) error {
	call := FirewallCall{Op: OpAppend, Table: table, Chain: chain, Spec: append([]string(nil), rulespec...)}
	m.Calls = append(m.Calls, call)
	if m.AppendRuleFunc != nil {
		if err := m.AppendRuleFunc(table, chain, rulespec...); err != nil {
			return err
		}
	}

	m.Rules = append(m.Rules, call)
	return nil
}

// RuleExists checks the simulated rule table.
func (m *MockFirewallClient) RuleExists(table, chain string, rulespec ...string) (bool, error) {
	m.RuleExistsCalls++
	if m.RuleExistsFunc != nil {
		return m.RuleExistsFunc(table, chain, rulespec...)
	}

	wanted := FirewallCall{Op: OpAppend, Table: table, Chain: chain, Spec: rulespec}.String()
	for _, rule := range m.Rules {
		if rule.String() == wanted {
			return true, nil
		}
	}
	return false, nil
}

// CallStrings returns the recorded calls formatted with FirewallCall.String.
func (m *MockFirewallClient) CallStrings() []string {
	result := make([]string, len(m.Calls))
	for i, call := range m.Calls {
		result[i] = call.String()
	}
	return result
}

// MockAddressLister is a mock implementation of networking.AddressLister.
type MockAddressLister struct {
	Addresses []netip.Addr
	Err       error
	Calls     int
}

// LocalAddresses returns the configured addresses.
func (m *MockAddressLister) LocalAddresses() ([]netip.Addr, error) {
	m.Calls++
	return m.Addresses, m.Err
}
