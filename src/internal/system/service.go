package system

import (
	"fmt"

	"github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
)

// ServiceManager restarts system services with the "service" wrapper.
type ServiceManager struct {
	runner CommandRunner
}

// NewServiceManager creates a service manager that runs commands through runner.
func NewServiceManager(runner CommandRunner) *ServiceManager {
	return &ServiceManager{runner: runner}
}

// Restart runs "service <name> restart". There is no retry and no health check.
func (s *ServiceManager) Restart(name string) error {
	log.Infof("Restarting %s service...", name)
	if err := s.runner.Run("service", name, "restart"); err != nil {
		return errors.NewCommandError(fmt.Sprintf("failed to restart service %s", name), err)
	}
	log.Infof("Service %s restarted", name)
	return nil
}
