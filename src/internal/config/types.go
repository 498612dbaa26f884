package config

import (
	"net/netip"
	"path/filepath"

	"github.com/maksimkurb/torwall/src/internal/utils"
)

type Config struct {
	// General holds the Tor service account and service name.
	General GeneralConfig `toml:"general" json:"general"`
	// Proxy holds the ports Tor listens on for redirected traffic.
	Proxy ProxyConfig `toml:"proxy" json:"proxy"`
	// Torrc points to the Tor daemon configuration file.
	Torrc TorrcConfig `toml:"torrc" json:"torrc"`
	// Firewall holds the networks that bypass the redirection.
	Firewall FirewallConfig `toml:"firewall" json:"firewall"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// ServiceAccount is the system account Tor runs as. Its uid is exempted from redirection.
	ServiceAccount string `toml:"service_account" json:"service_account" validate:"required,unix_account"`
	// ServiceName is the name passed to "service <name> restart".
	ServiceName string `toml:"service_name" json:"service_name" validate:"required,service_name"`
}

type ProxyConfig struct {
	// TransPort is the Tor TransPort, all outgoing TCP is redirected here (default: 9040).
	TransPort uint16 `toml:"trans_port" json:"trans_port" validate:"required,min=1"`
	// DNSPort is the Tor DNSPort, outgoing UDP/53 is redirected here (default: 5353).
	DNSPort uint16 `toml:"dns_port" json:"dns_port" validate:"required,min=1,nefield=TransPort"`
	// VirtualAddrNetwork is written to torrc as VirtualAddrNetworkIPv4 (default: 10.192.0.0/10).
	VirtualAddrNetwork string `toml:"virtual_addr_network" json:"virtual_addr_network" validate:"required,cidrv4"`
}

type TorrcConfig struct {
	// Path is the torrc location. Relative paths are resolved against the config directory.
	Path string `toml:"path" json:"path" validate:"required"`
	// BackupPath is where the original torrc is moved before rewriting (default: <path>.bak).
	BackupPath string `toml:"backup_path,omitempty" json:"backup_path,omitempty"`
}

type FirewallConfig struct {
	// ExcludedNetworks are destinations that are never redirected. Order is kept in the rule set.
	ExcludedNetworks []string `toml:"excluded_networks" json:"excluded_networks" validate:"dive,cidrv4"`
}

func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetTorrcPath() string {
	return utils.GetAbsolutePath(c.Torrc.Path, c.GetConfigDir())
}

func (c *Config) GetTorrcBackupPath() string {
	if c.Torrc.BackupPath == "" {
		return utils.BackupPath(c.GetTorrcPath())
	}
	return utils.GetAbsolutePath(c.Torrc.BackupPath, c.GetConfigDir())
}

func (c *Config) GetExcludedPrefixes() ([]netip.Prefix, error) {
	return utils.ParsePrefixes(c.Firewall.ExcludedNetworks)
}
