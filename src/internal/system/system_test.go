package system

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	twerrors "github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
	"github.com/maksimkurb/torwall/src/internal/mocks"
)

func init() {
	log.DisableLogs()
}

func TestPrivilegeChecker(t *testing.T) {
	tests := []struct {
		name string
		euid int
		want bool
	}{
		{"root", 0, true},
		{"regular user", 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PrivilegeChecker{geteuid: func() int { return tt.euid }}
			if got := p.IsPrivileged(); got != tt.want {
				t.Errorf("IsPrivileged() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentityResolver_ResolveUID(t *testing.T) {
	runner := &mocks.MockCommandRunner{
		OutputFunc: func(name string, args ...string) (string, error) {
			return "102\n", nil
		},
	}

	uid, err := NewIdentityResolver(runner).ResolveUID("debian-tor")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if uid != "102" {
		t.Errorf("Expected uid 102, got %q", uid)
	}

	expected := []string{"id -ur debian-tor"}
	if !reflect.DeepEqual(runner.Commands, expected) {
		t.Errorf("Expected commands %v, got %v", expected, runner.Commands)
	}
}

func TestIdentityResolver_Failures(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
	}{
		{"command fails", "", errors.New("id: 'debian-tor': no such user")},
		{"empty output", "  \n", nil},
		{"non numeric output", "debian-tor\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.MockCommandRunner{
				OutputFunc: func(name string, args ...string) (string, error) {
					return tt.output, tt.err
				},
			}

			_, err := NewIdentityResolver(runner).ResolveUID("debian-tor")
			if err == nil {
				t.Fatal("Expected error")
			}
			if code := twerrors.CodeOf(err); code != twerrors.ErrCodeIdentity {
				t.Errorf("Expected %v, got %v", twerrors.ErrCodeIdentity, code)
			}
		})
	}
}

func TestServiceManager_Restart(t *testing.T) {
	runner := &mocks.MockCommandRunner{}

	if err := NewServiceManager(runner).Restart("tor"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"service tor restart"}
	if !reflect.DeepEqual(runner.Commands, expected) {
		t.Errorf("Expected commands %v, got %v", expected, runner.Commands)
	}
}

func TestServiceManager_RestartFailure(t *testing.T) {
	runner := &mocks.MockCommandRunner{
		RunFunc: func(name string, args ...string) error {
			return errors.New("exit status 1")
		},
	}

	err := NewServiceManager(runner).Restart("tor")
	if err == nil {
		t.Fatal("Expected error")
	}
	if code := twerrors.CodeOf(err); code != twerrors.ErrCodeCommand {
		t.Errorf("Expected %v, got %v", twerrors.ErrCodeCommand, code)
	}
}

func TestExecRunner(t *testing.T) {
	runner := NewExecRunner()

	out, err := runner.Output("sh", "-c", "echo torwall")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "torwall" {
		t.Errorf("Expected output torwall, got %q", out)
	}

	err = runner.Run("sh", "-c", "echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("Expected error for failing command")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("Expected stderr in error message, got %v", err)
	}
}
