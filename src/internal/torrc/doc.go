// Package torrc edits the Tor daemon configuration file.
//
// The live file is moved to a single rolling backup and rewritten from it,
// with the transparent proxy directives appended unless the backup already
// mentions DNSPort or TransPort.
package torrc
