package system

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maksimkurb/torwall/src/internal/errors"
)

// IdentityResolver looks up the numeric uid of a system account with "id -ur".
type IdentityResolver struct {
	runner CommandRunner
}

// NewIdentityResolver creates a resolver that runs lookups through runner.
func NewIdentityResolver(runner CommandRunner) *IdentityResolver {
	return &IdentityResolver{runner: runner}
}

// ResolveUID returns the trimmed decimal uid of account.
func (r *IdentityResolver) ResolveUID(account string) (string, error) {
	out, err := r.runner.Output("id", "-ur", account)
	if err != nil {
		return "", errors.NewIdentityError(fmt.Sprintf("failed to get uid of %s", account), err)
	}

	uid := strings.TrimSpace(out)
	if uid == "" {
		return "", errors.NewIdentityError(fmt.Sprintf("failed to get uid of %s", account), fmt.Errorf("empty output"))
	}
	if _, err := strconv.ParseUint(uid, 10, 32); err != nil {
		return "", errors.NewIdentityError(fmt.Sprintf("uid of %s is not numeric: %q", account, uid), err)
	}

	return uid, nil
}
