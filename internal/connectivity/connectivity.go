// Package connectivity answers whether a network is currently usable.
package connectivity

import (
	"net"
	"time"

	log "github.com/sirupsen/logrus"
)

// Prober reports point-in-time network availability. Implementations must be
// synchronous and free of side effects.
type Prober interface {
	IsConnected() bool
}

// dialFunc matches net.DialTimeout.
type dialFunc func(network, address string, timeout time.Duration) (net.Conn, error)

// NetProber checks for a route to a probe address. Connecting a UDP socket
// only asks the kernel for a route, no packet leaves the host, so the check
// succeeds exactly when an interface with a usable route is up.
type NetProber struct {
	addrs   []string
	timeout time.Duration
	dial    dialFunc
}

// NewNetProber creates a prober for the given host:port addresses. Pass one
// address per IP family so IPv4-only and IPv6-only hosts both count as
// connected.
func NewNetProber(addrs ...string) *NetProber {
	return &NetProber{
		addrs:   addrs,
		timeout: time.Second,
		dial:    net.DialTimeout,
	}
}

// IsConnected returns true if a route to any probe address exists.
func (p *NetProber) IsConnected() bool {
	for _, addr := range p.addrs {
		conn, err := p.dial("udp", addr, p.timeout)
		if err != nil {
			log.WithError(err).WithField("addr", addr).Debug("connectivity probe failed")
			continue
		}
		_ = conn.Close()
		return true
	}
	return false
}

// Verify NetProber implements Prober at compile time.
var _ Prober = (*NetProber)(nil)
