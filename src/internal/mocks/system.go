package mocks

import (
	"context"
	"strings"
)

// MockCommandRunner is a mock implementation of system.CommandRunner.
type MockCommandRunner struct {
	// RunFunc is called by Run if not nil
	RunFunc func(name string, args ...string) error

	// OutputFunc is called by Output if not nil
	OutputFunc func(name string, args ...string) (string, error)

	// Commands holds every executed command line, in order
	Commands []string
}

// Run records the command and succeeds unless RunFunc says otherwise.
func (m *MockCommandRunner) Run(name string, args ...string) error {
	m.record(name, args)
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return nil
}

// Output records the command and returns empty output unless OutputFunc says otherwise.
func (m *MockCommandRunner) Output(name string, args ...string) (string, error) {
	m.record(name, args)
	if m.OutputFunc != nil {
		return m.OutputFunc(name, args...)
	}
	return "", nil
}

func (m *MockCommandRunner) record(name string, args []string) {
	m.Commands = append(m.Commands, strings.Join(append([]string{name}, args...), " "))
}

// MockPrivilegeChecker is a mock implementation of domain.PrivilegeChecker.
type MockPrivilegeChecker struct {
	Privileged bool
	Calls      int
}

func (m *MockPrivilegeChecker) IsPrivileged() bool {
	m.Calls++
	return m.Privileged
}

// MockIdentityResolver is a mock implementation of domain.IdentityResolver.
type MockIdentityResolver struct {
	UID string
	Err error

	// Accounts holds every resolved account name, in order
	Accounts []string
}

func (m *MockIdentityResolver) ResolveUID(account string) (string, error) {
	m.Accounts = append(m.Accounts, account)
	if m.Err != nil {
		return "", m.Err
	}
	return m.UID, nil
}

// MockServiceManager is a mock implementation of domain.ServiceManager.
type MockServiceManager struct {
	// RestartFunc is called by Restart if not nil
	RestartFunc func(name string) error

	// Restarted holds every restarted service name, in order
	Restarted []string
}

func (m *MockServiceManager) Restart(name string) error {
	m.Restarted = append(m.Restarted, name)
	if m.RestartFunc != nil {
		return m.RestartFunc(name)
	}
	return nil
}

// MockDNSProber is a mock implementation of domain.DNSProber.
type MockDNSProber struct {
	Err error

	// Servers holds every probed server address, in order
	Servers []string
}

func (m *MockDNSProber) Probe(ctx context.Context, server, name string) error {
	m.Servers = append(m.Servers, server)
	return m.Err
}
