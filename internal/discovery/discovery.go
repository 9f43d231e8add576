// Package discovery browses the local network for Freebox API endpoints
// announced over mDNS/DNS-SD.
package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"
)

// ServiceFreebox is the DNS-SD service type the Freebox announces its API on.
const ServiceFreebox = "_fbx-api._tcp"

// Event is a discovery broadcast for one announced service instance.
type Event struct {
	Service  string
	Instance string
	Host     string
	Port     int
	// Properties holds the TXT records (api_domain, https_port, api_version, ...).
	Properties map[string]string
}

// Property returns a TXT property, or "" when absent.
func (e Event) Property(key string) string {
	if e.Properties == nil {
		return ""
	}
	return e.Properties[key]
}

// ParseTXT turns "key=value" TXT records into a map. Records without "=" are
// boolean attributes and map to "".
func ParseTXT(records []string) map[string]string {
	props := make(map[string]string, len(records))
	for _, rec := range records {
		if rec == "" {
			continue
		}
		key, value, _ := strings.Cut(rec, "=")
		props[strings.ToLower(key)] = value
	}
	return props
}

// FromServiceEntry converts a zeroconf entry into an Event.
func FromServiceEntry(entry *zeroconf.ServiceEntry) Event {
	host := strings.TrimSuffix(entry.HostName, ".")
	if len(entry.AddrIPv4) > 0 {
		host = entry.AddrIPv4[0].String()
	}
	return Event{
		Service:    entry.Service,
		Instance:   entry.Instance,
		Host:       host,
		Port:       entry.Port,
		Properties: ParseTXT(entry.Text),
	}
}

// Browser delivers discovery events for one service type.
type Browser struct {
	Service string
	Domain  string
	logger  *zap.Logger
}

func NewBrowser(service string, logger *zap.Logger) *Browser {
	return &Browser{
		Service: service,
		Domain:  "local.",
		logger:  logger.With(zap.String("component", "discovery")),
	}
}

// Run browses until ctx is done, calling handler for every resolved entry.
func (b *Browser) Run(ctx context.Context, handler func(Event)) error {
	resolver, err := zeroconf.NewResolver()
	if err != nil {
		return fmt.Errorf("create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(ctx, b.Service, b.Domain, entries); err != nil {
		return fmt.Errorf("browse %s: %w", b.Service, err)
	}
	b.logger.Info("Browsing for services", zap.String("service", b.Service))

	for {
		select {
		case <-ctx.Done():
			return nil
		case entry, ok := <-entries:
			if !ok {
				return nil
			}
			ev := FromServiceEntry(entry)
			ev.Service = b.Service
			b.logger.Debug("Service discovered",
				zap.String("instance", ev.Instance),
				zap.String("host", ev.Host),
				zap.Int("port", ev.Port))
			handler(ev)
		}
	}
}
