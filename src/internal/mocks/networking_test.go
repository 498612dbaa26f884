package mocks

import (
	"errors"
	"net/netip"
	"testing"
)

// TestMockFirewallClient_DefaultBehavior tests default mock behavior
func TestMockFirewallClient_DefaultBehavior(t *testing.T) {
	mock := NewMockFirewallClient()

	if err := mock.AppendRule("nat", "OUTPUT", "-j", "RETURN"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if err := mock.AppendRule("filter", "OUTPUT", "-j", "REJECT"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	exists, err := mock.RuleExists("nat", "OUTPUT", "-j", "RETURN")
	if err != nil || !exists {
		t.Errorf("Expected appended rule to exist, got exists=%v err=%v", exists, err)
	}

	if err := mock.FlushTable("nat"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	exists, _ = mock.RuleExists("nat", "OUTPUT", "-j", "RETURN")
	if exists {
		t.Error("Expected flushed rule to be gone")
	}
	exists, _ = mock.RuleExists("filter", "OUTPUT", "-j", "REJECT")
	if !exists {
		t.Error("Expected rule of other table to survive the flush")
	}

	if len(mock.Calls) != 3 {
		t.Errorf("Expected 3 calls, got %d", len(mock.Calls))
	}
	if mock.RuleExistsCalls != 3 {
		t.Errorf("Expected 3 RuleExists calls, got %d", mock.RuleExistsCalls)
	}
}

// TestMockFirewallClient_CustomBehavior tests custom function behavior
func TestMockFirewallClient_CustomBehavior(t *testing.T) {
	expectedErr := errors.New("test error")

	mock := &MockFirewallClient{
		AppendRuleFunc: func(table, chain string, rulespec ...string) error {
			return expectedErr
		},
	}

	if err := mock.AppendRule("nat", "OUTPUT", "-j", "RETURN"); err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("Expected failed call to be recorded, got %d calls", len(mock.Calls))
	}
	if len(mock.Rules) != 0 {
		t.Errorf("Expected failed rule not to be applied, got %d rules", len(mock.Rules))
	}
}

func TestFirewallCall_String(t *testing.T) {
	tests := []struct {
		call     FirewallCall
		expected string
	}{
		{FirewallCall{Op: OpFlush, Table: "nat"}, "flush nat"},
		{FirewallCall{Op: OpAppend, Table: "filter", Chain: "OUTPUT", Spec: []string{"-j", "REJECT"}}, "append filter/OUTPUT -j REJECT"},
	}

	for _, tt := range tests {
		if got := tt.call.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestMockAddressLister(t *testing.T) {
	mock := &MockAddressLister{Addresses: []netip.Addr{netip.MustParseAddr("127.0.0.1")}}

	addrs, err := mock.LocalAddresses()
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if len(addrs) != 1 || mock.Calls != 1 {
		t.Errorf("Expected 1 address and 1 call, got %d and %d", len(addrs), mock.Calls)
	}
}

func TestMockCommandRunner_RecordsCommands(t *testing.T) {
	mock := &MockCommandRunner{
		OutputFunc: func(name string, args ...string) (string, error) {
			return "102\n", nil
		},
	}

	out, err := mock.Output("id", "-ur", "debian-tor")
	if err != nil || out != "102\n" {
		t.Errorf("Unexpected result %q, %v", out, err)
	}
	if err := mock.Run("service", "tor", "restart"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	expected := []string{"id -ur debian-tor", "service tor restart"}
	if len(mock.Commands) != len(expected) {
		t.Fatalf("Expected %d commands, got %v", len(expected), mock.Commands)
	}
	for i := range expected {
		if mock.Commands[i] != expected[i] {
			t.Errorf("Expected %q, got %q", expected[i], mock.Commands[i])
		}
	}
}

func TestMockStore(t *testing.T) {
	store := NewMockStore(map[string]string{"/etc/tor/torrc": "SocksPort 9050\n"})

	if err := store.Rename("/etc/tor/torrc", "/etc/tor/torrc.bak"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if exists, _ := store.Exists("/etc/tor/torrc"); exists {
		t.Error("Expected live file to be gone after rename")
	}
	if store.Content("/etc/tor/torrc.bak") != "SocksPort 9050\n" {
		t.Errorf("Unexpected backup content %q", store.Content("/etc/tor/torrc.bak"))
	}

	if _, err := store.ReadFile("/nonexistent"); err == nil {
		t.Error("Expected error reading missing file")
	}
	if err := store.Rename("/nonexistent", "/x"); err == nil {
		t.Error("Expected error renaming missing file")
	}

	store.WriteErr = errors.New("read-only filesystem")
	if err := store.WriteFile("/etc/tor/torrc", nil); err == nil {
		t.Error("Expected injected write error")
	}
}
