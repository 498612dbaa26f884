package torrc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
)

const (
	TORRC_TMPL_DNS_PORT        = "dns_port"
	TORRC_TMPL_TRANS_PORT      = "trans_port"
	TORRC_TMPL_VIRTUAL_NETWORK = "virtual_network"
)

const directivesTemplate = "\n# Custom settings added for transparent proxying\n" +
	"DNSPort {{dns_port}}\n" +
	"TransPort {{trans_port}}\n" +
	"AutomapHostsOnResolve 1\n" +
	"VirtualAddrNetworkIPv4 {{virtual_network}}\n"

// Presence of any of these substrings means the file was already configured.
// Only the directive names are matched, their values are not compared.
var configuredMarkers = []string{"DNSPort", "TransPort"}

// DirectiveParams holds the values rendered into the directive block.
type DirectiveParams struct {
	DNSPort            uint16
	TransPort          uint16
	VirtualAddrNetwork string
}

// RenderDirectives renders the block appended to torrc.
func RenderDirectives(params DirectiveParams) string {
	t := fasttemplate.New(directivesTemplate, "{{", "}}")
	return t.ExecuteString(map[string]interface{}{
		TORRC_TMPL_DNS_PORT:        strconv.FormatUint(uint64(params.DNSPort), 10),
		TORRC_TMPL_TRANS_PORT:      strconv.FormatUint(uint64(params.TransPort), 10),
		TORRC_TMPL_VIRTUAL_NETWORK: params.VirtualAddrNetwork,
	})
}

// IsConfigured reports whether content already carries the proxy directives.
func IsConfigured(content string) bool {
	for _, marker := range configuredMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// Updater rewrites torrc from its backup.
type Updater struct {
	store      Store
	path       string
	backupPath string
	params     DirectiveParams
}

// NewUpdater creates an updater for the torrc at path with its backup at backupPath.
func NewUpdater(store Store, path, backupPath string, params DirectiveParams) *Updater {
	return &Updater{
		store:      store,
		path:       path,
		backupPath: backupPath,
		params:     params,
	}
}

// UpdateConfig moves the live file to the backup path and writes a new live
// file from the backup content. It returns true if the directives were
// appended and false if the backup was already configured.
//
// A failure after the rename leaves no live file behind.
func (u *Updater) UpdateConfig() (bool, error) {
	log.Infof("Updating %s...", u.path)

	liveExists, err := u.store.Exists(u.path)
	if err != nil {
		return false, errors.NewFilesystemError(fmt.Sprintf("failed to stat %s", u.path), err)
	}
	if liveExists {
		if err := u.store.Rename(u.path, u.backupPath); err != nil {
			return false, errors.NewFilesystemError(fmt.Sprintf("failed to back up %s to %s", u.path, u.backupPath), err)
		}
		log.Debugf("Backed up %s to %s", u.path, u.backupPath)
	}

	base := ""
	backupExists, err := u.store.Exists(u.backupPath)
	if err != nil {
		return false, errors.NewFilesystemError(fmt.Sprintf("failed to stat %s", u.backupPath), err)
	}
	if backupExists {
		content, err := u.store.ReadFile(u.backupPath)
		if err != nil {
			return false, errors.NewFilesystemError(fmt.Sprintf("failed to read %s", u.backupPath), err)
		}
		base = string(content)
	} else {
		log.Debugf("No backup at %s, starting from an empty file", u.backupPath)
	}

	if IsConfigured(base) {
		if err := u.store.WriteFile(u.path, []byte(base)); err != nil {
			return false, errors.NewFilesystemError(fmt.Sprintf("failed to write %s", u.path), err)
		}
		log.Infof("%s is already configured, leaving directives as is", u.path)
		return false, nil
	}

	if err := u.store.WriteFile(u.path, []byte(base+RenderDirectives(u.params))); err != nil {
		return false, errors.NewFilesystemError(fmt.Sprintf("failed to write %s", u.path), err)
	}
	log.Infof("Transparent proxy directives added to %s", u.path)
	return true, nil
}

// CheckConfig reports whether the live file exists and carries the directives.
func (u *Updater) CheckConfig() (bool, error) {
	exists, err := u.store.Exists(u.path)
	if err != nil {
		return false, errors.NewFilesystemError(fmt.Sprintf("failed to stat %s", u.path), err)
	}
	if !exists {
		return false, nil
	}

	content, err := u.store.ReadFile(u.path)
	if err != nil {
		return false, errors.NewFilesystemError(fmt.Sprintf("failed to read %s", u.path), err)
	}
	return IsConfigured(string(content)), nil
}
