package commands

import (
	"io"
	"os"

	"github.com/maksimkurb/torwall/src/internal/config"
	"github.com/maksimkurb/torwall/src/internal/domain"
	"github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
	"github.com/maksimkurb/torwall/src/internal/networking"
	"github.com/maksimkurb/torwall/src/internal/torrc"
)

type Runner interface {
	Init(ctx *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Version    string

	Deps   *domain.AppDependencies
	Stdout io.Writer
	Stderr io.Writer

	// Resolved once per process
	serviceUID string
}

// NewAppContext creates a context writing to the process stdout and stderr.
func NewAppContext(deps *domain.AppDependencies) *AppContext {
	return &AppContext{
		ConfigPath: config.DefaultConfigPath,
		Deps:       deps,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// ServiceUID resolves the uid of account on first call and returns the
// cached value afterwards.
func (c *AppContext) ServiceUID(account string) (string, error) {
	if c.serviceUID != "" {
		return c.serviceUID, nil
	}

	uid, err := c.Deps.IdentityResolver().ResolveUID(account)
	if err != nil {
		return "", err
	}
	if uid == "" {
		return "", errors.NewIdentityError("failed to get uid of "+account, nil)
	}

	log.Debugf("Service account %s has uid %s", account, uid)
	c.serviceUID = uid
	return uid, nil
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, errors.NewValidationError("configuration validation failed", err)
	}

	return cfg, nil
}

func firewallClientOrFail(ctx *AppContext) (networking.FirewallClient, error) {
	client, err := ctx.Deps.FirewallClient()
	if err != nil {
		return nil, errors.NewCommandError("failed to initialize iptables", err)
	}
	return client, nil
}

func ruleParams(cfg *config.Config, uid string) networking.RuleParams {
	return networking.RuleParams{
		ServiceUID:       uid,
		TransPort:        cfg.Proxy.TransPort,
		DNSPort:          cfg.Proxy.DNSPort,
		ExcludedNetworks: cfg.Firewall.ExcludedNetworks,
	}
}

func newTorrcUpdater(ctx *AppContext, cfg *config.Config) *torrc.Updater {
	return torrc.NewUpdater(
		ctx.Deps.TorrcStore(),
		cfg.GetTorrcPath(),
		cfg.GetTorrcBackupPath(),
		torrc.DirectiveParams{
			DNSPort:            cfg.Proxy.DNSPort,
			TransPort:          cfg.Proxy.TransPort,
			VirtualAddrNetwork: cfg.Proxy.VirtualAddrNetwork,
		},
	)
}
