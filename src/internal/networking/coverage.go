package networking

import (
	"fmt"
	"net/netip"

	"github.com/vishvananda/netlink"

	"github.com/maksimkurb/torwall/src/internal/utils"
)

// AddressLister returns the host's local addresses.
type AddressLister interface {
	LocalAddresses() ([]netip.Addr, error)
}

// NetlinkAddressLister lists IPv4 addresses of all links via netlink.
type NetlinkAddressLister struct{}

// NewNetlinkAddressLister creates a netlink based address lister.
func NewNetlinkAddressLister() *NetlinkAddressLister {
	return &NetlinkAddressLister{}
}

func (l *NetlinkAddressLister) LocalAddresses() ([]netip.Addr, error) {
	// A nil link lists addresses of every link.
	addrs, err := netlink.AddrList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	result := make([]netip.Addr, 0, len(addrs))
	for _, addr := range addrs {
		ip, ok := netip.AddrFromSlice(addr.IP)
		if !ok {
			continue
		}
		result = append(result, ip.Unmap())
	}
	return result, nil
}

// UncoveredAddresses returns the IPv4 addresses not contained in any excluded
// network. Traffic to them would be redirected to Tor.
func UncoveredAddresses(addrs []netip.Addr, excluded []netip.Prefix) []netip.Addr {
	var uncovered []netip.Addr
	for _, addr := range addrs {
		addr = addr.Unmap()
		if !addr.Is4() {
			continue
		}
		if !utils.PrefixesContain(excluded, addr) {
			uncovered = append(uncovered, addr)
		}
	}
	return uncovered
}

// OverlappingNetworks returns the excluded networks that overlap network.
func OverlappingNetworks(network netip.Prefix, excluded []netip.Prefix) []netip.Prefix {
	var overlapping []netip.Prefix
	for _, prefix := range excluded {
		if prefix.Overlaps(network) {
			overlapping = append(overlapping, prefix)
		}
	}
	return overlapping
}
