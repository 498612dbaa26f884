package system

import (
	"golang.org/x/sys/unix"
)

// PrivilegeChecker reports whether the process runs with superuser rights.
type PrivilegeChecker struct {
	geteuid func() int
}

// NewPrivilegeChecker returns a checker based on the effective uid.
func NewPrivilegeChecker() *PrivilegeChecker {
	return &PrivilegeChecker{geteuid: unix.Geteuid}
}

// IsPrivileged returns true if the effective uid is 0.
func (p *PrivilegeChecker) IsPrivileged() bool {
	return p.geteuid() == 0
}
