package system

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/maksimkurb/torwall/src/internal/log"
)

// CommandRunner runs external programs.
type CommandRunner interface {
	// Run executes the command and returns an error if it exits non-zero.
	Run(name string, args ...string) error
	// Output executes the command and returns its stdout.
	Output(name string, args ...string) (string, error)
}

// ExecRunner is a CommandRunner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new os/exec based runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(name string, args ...string) error {
	_, err := r.Output(name, args...)
	return err
}

func (r *ExecRunner) Output(name string, args ...string) (string, error) {
	cmdline := formatCommand(name, args)
	log.Debugf("Running command: %s", cmdline)

	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.String(), fmt.Errorf("command %q failed: %w: %s", cmdline, err, msg)
		}
		return stdout.String(), fmt.Errorf("command %q failed: %w", cmdline, err)
	}

	log.Infof("Command succeeded: %s", cmdline)
	return stdout.String(), nil
}

func formatCommand(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
