package config

const (
	DefaultConfigPath = "/etc/torwall/torwall.toml"

	DefaultServiceAccount     = "debian-tor"
	DefaultServiceName        = "tor"
	DefaultTransPort          = 9040
	DefaultDNSPort            = 5353
	DefaultVirtualAddrNetwork = "10.192.0.0/10"
	DefaultTorrcPath          = "/etc/tor/torrc"
)

// DefaultExcludedNetworks are the private and loopback ranges that bypass Tor.
var DefaultExcludedNetworks = []string{
	"192.168.0.0/16",
	"172.16.0.0/12",
	"10.0.0.0/8",
	"127.0.0.0/8",
}

// DefaultConfig returns the configuration used when no config file exists.
// Values read from a config file are decoded on top of it.
func DefaultConfig() *Config {
	networks := make([]string, len(DefaultExcludedNetworks))
	copy(networks, DefaultExcludedNetworks)

	return &Config{
		General: GeneralConfig{
			ServiceAccount: DefaultServiceAccount,
			ServiceName:    DefaultServiceName,
		},
		Proxy: ProxyConfig{
			TransPort:          DefaultTransPort,
			DNSPort:            DefaultDNSPort,
			VirtualAddrNetwork: DefaultVirtualAddrNetwork,
		},
		Torrc: TorrcConfig{
			Path: DefaultTorrcPath,
		},
		Firewall: FirewallConfig{
			ExcludedNetworks: networks,
		},
	}
}
