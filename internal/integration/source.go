package integration

import (
	"fmt"
	"net"
	"strconv"

	"freebox-gate/internal/discovery"
)

// ConnectionSource is where the Freebox host and port came from. It is
// either Static or Discovered.
type ConnectionSource interface {
	HostPort() (string, int)
	String() string
	connectionSource()
}

// Static parameters come from the configuration file or environment.
type Static struct {
	Host string
	Port int
}

func (s Static) HostPort() (string, int) { return s.Host, s.Port }
func (s Static) String() string {
	return "static " + net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
func (Static) connectionSource() {}

// Discovered parameters come from an mDNS announcement.
type Discovered struct {
	Host     string
	Port     int
	Instance string
}

func (d Discovered) HostPort() (string, int) { return d.Host, d.Port }
func (d Discovered) String() string {
	return "discovered " + net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}
func (Discovered) connectionSource() {}

// FromDiscovery reads api_domain and https_port from the event properties.
func FromDiscovery(ev discovery.Event) (Discovered, error) {
	host := ev.Property("api_domain")
	if host == "" {
		return Discovered{}, fmt.Errorf("discovery event from %q has no api_domain", ev.Instance)
	}
	raw := ev.Property("https_port")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return Discovered{}, fmt.Errorf("discovery event from %q has invalid https_port %q", ev.Instance, raw)
	}
	return Discovered{Host: host, Port: port, Instance: ev.Instance}, nil
}
