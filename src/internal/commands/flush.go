package commands

import (
	"github.com/maksimkurb/torwall/src/internal/log"
	"github.com/maksimkurb/torwall/src/internal/networking"
)

func CreateFlushCommand() *FlushCommand {
	return &FlushCommand{}
}

// FlushCommand removes every rule from the filter and nat tables.
//
// It needs neither the configuration nor the service uid, so it keeps working
// as an escape hatch when either is broken.
type FlushCommand struct {
	ctx       *AppContext
	installer *networking.Installer
}

func (g *FlushCommand) Name() string {
	return "flush"
}

func (g *FlushCommand) Init(ctx *AppContext) error {
	g.ctx = ctx

	client, err := firewallClientOrFail(ctx)
	if err != nil {
		return err
	}

	g.installer = networking.NewInstaller(client, networking.RuleParams{})
	return nil
}

func (g *FlushCommand) Run() error {
	if err := g.installer.FlushRules(); err != nil {
		return err
	}

	log.Infof("Traffic is no longer routed through Tor")
	return nil
}
