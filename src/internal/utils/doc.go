// Package utils provides small helpers shared by torwall packages.
//
// # Components
//
//   - Path utilities: resolve relative paths against the config directory,
//     derive the rolling backup path of a file
//   - Network utilities: parse CIDR lists, check address membership
//
// # Example Usage
//
//	absPath := utils.GetAbsolutePath("torrc", "/etc/tor")
//	// Returns: /etc/tor/torrc
//
//	backup := utils.BackupPath("/etc/tor/torrc")
//	// Returns: /etc/tor/torrc.bak
package utils
