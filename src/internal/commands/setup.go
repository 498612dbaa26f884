package commands

import (
	"github.com/maksimkurb/torwall/src/internal/config"
	"github.com/maksimkurb/torwall/src/internal/log"
	"github.com/maksimkurb/torwall/src/internal/networking"
	"github.com/maksimkurb/torwall/src/internal/torrc"
)

func CreateSetupCommand() *SetupCommand {
	return &SetupCommand{}
}

// SetupCommand configures torrc, restarts Tor and installs the redirection rules.
type SetupCommand struct {
	ctx       *AppContext
	cfg       *config.Config
	installer *networking.Installer
	updater   *torrc.Updater
}

func (g *SetupCommand) Name() string {
	return "setup"
}

// Init loads the configuration and resolves the service uid. Nothing is
// changed on the system until Run.
func (g *SetupCommand) Init(ctx *AppContext) error {
	g.ctx = ctx

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	uid, err := ctx.ServiceUID(g.cfg.General.ServiceAccount)
	if err != nil {
		return err
	}

	client, err := firewallClientOrFail(ctx)
	if err != nil {
		return err
	}

	g.installer = networking.NewInstaller(client, ruleParams(g.cfg, uid))
	g.updater = newTorrcUpdater(ctx, g.cfg)

	return nil
}

func (g *SetupCommand) Run() error {
	log.Infof("Setting up transparent proxying through Tor...")

	if _, err := g.updater.UpdateConfig(); err != nil {
		return err
	}

	if err := g.ctx.Deps.ServiceManager().Restart(g.cfg.General.ServiceName); err != nil {
		return err
	}

	if err := g.installer.SetupRules(); err != nil {
		return err
	}

	log.Infof("All traffic is now routed through Tor")
	return nil
}
