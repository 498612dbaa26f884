// Package dnscheck verifies that the local Tor DNS listener answers queries.
package dnscheck
