package networking

import (
	"fmt"

	"github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
)

// Installer applies and removes the Tor redirection rule set.
type Installer struct {
	client FirewallClient
	rules  []Rule
}

// RuleStatus is the result of checking a single rule.
type RuleStatus struct {
	Rule   Rule
	Exists bool
}

// NewInstaller creates an installer for the rule set built from params.
func NewInstaller(client FirewallClient, params RuleParams) *Installer {
	return &Installer{
		client: client,
		rules:  BuildRules(params),
	}
}

// FlushRules flushes the filter table, then the nat table.
func (i *Installer) FlushRules() error {
	log.Infof("Flushing iptables rules...")

	for _, table := range []string{TableFilter, TableNAT} {
		if err := i.client.FlushTable(table); err != nil {
			return errors.NewCommandError(fmt.Sprintf("failed to flush %s table", table), err)
		}
		log.Debugf("Flushed %s table", table)
	}

	log.Infof("iptables rules flushed")
	return nil
}

// SetupRules flushes all rules and appends the rule set in order.
//
// The first failing rule aborts the setup. Rules appended before it are not
// rolled back.
func (i *Installer) SetupRules() error {
	log.Infof("Setting up iptables rules...")

	if err := i.FlushRules(); err != nil {
		return err
	}

	for idx, rule := range i.rules {
		log.Debugf("Adding iptables rule #%d [%v]", idx+1, rule)
		if err := i.client.AppendRule(rule.Table, rule.Chain, rule.Spec...); err != nil {
			return errors.NewCommandError(
				fmt.Sprintf("failed to add iptables rule #%d [%v], %d of %d rules are applied, run with --flush to remove them",
					idx+1, rule, idx, len(i.rules)),
				err,
			)
		}
	}

	log.Infof("iptables rules set up (%d rules)", len(i.rules))
	return nil
}

// CheckRules reports which rules of the rule set are present.
func (i *Installer) CheckRules() ([]RuleStatus, error) {
	statuses := make([]RuleStatus, 0, len(i.rules))

	for _, rule := range i.rules {
		exists, err := i.client.RuleExists(rule.Table, rule.Chain, rule.Spec...)
		if err != nil {
			log.Errorf("Checking iptables rule presence [%v] is failed: %v", rule, err)
			return nil, errors.NewCommandError(fmt.Sprintf("failed to check iptables rule [%v]", rule), err)
		}
		log.Debugf("Checking iptables rule presence [%v]: exists=%v", rule, exists)
		statuses = append(statuses, RuleStatus{Rule: rule, Exists: exists})
	}

	return statuses, nil
}
