// Package log provides simple leveled logging for torwall.
//
// The package keeps a small global API (Debugf, Infof, Warnf and Errorf) on top of a zerolog console logger. Informational output goes to
// stdout, errors go to stderr.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures
//
// # Example Usage
//
//	log.Infof("Flushing iptables rules...")
//	log.Warnf("Local address %s is not excluded from redirection", addr)
//	log.Errorf("Command failed: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Rule spec: %v", spec)
//
// Commands redirect both streams to their own writers:
//
//	log.SetOutput(ctx.Stdout, ctx.Stderr)
//
// The package uses global state for simplicity and is meant to be
// configured once from main before any command runs.
package log
