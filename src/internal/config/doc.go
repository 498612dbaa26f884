// Package config handles torwall's own configuration file.
//
// The file is optional TOML. When it is missing, DefaultConfig is used: the
// debian-tor account, TransPort 9040, DNSPort 5353, /etc/tor/torrc and the
// private/loopback excluded networks. Keys present in the file override the
// defaults one by one.
//
// # Example
//
//	[general]
//	service_account = "debian-tor"
//	service_name = "tor"
//
//	[proxy]
//	trans_port = 9040
//	dns_port = 5353
//	virtual_addr_network = "10.192.0.0/10"
//
//	[torrc]
//	path = "/etc/tor/torrc"
//
//	[firewall]
//	excluded_networks = ["192.168.0.0/16", "172.16.0.0/12", "10.0.0.0/8", "127.0.0.0/8"]
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/torwall/torwall.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    return err
//	}
package config
