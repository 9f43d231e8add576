// Package integration connects the hub to a Freebox: it resolves where the
// device is, opens the shared session and loads the dependent platforms.
package integration

import (
	"context"
	"os"
	"sync"
	"time"

	"freebox-gate/internal/config"
	"freebox-gate/internal/discovery"
	"freebox-gate/internal/freebox"
	"freebox-gate/internal/hub"
	"freebox-gate/internal/wifiswitch"

	"go.uber.org/zap"
)

const (
	AppID   = "freebox-gate"
	AppName = "Freebox Gate"

	PlatformSensor        = "sensor"
	PlatformDeviceTracker = "device_tracker"
	PlatformSwitch        = "switch"
)

const permissionHelp = "The Freebox WiFi switch will not be available until you grant the " +
	"\"settings\" permission to this application in Freebox OS " +
	"(Freebox settings > Access management > Applications)"

type Options struct {
	// Static is nil when the device must be discovered.
	Static           *config.Freebox
	TokenFile        string
	APIVersion       string
	CAFile           string
	AuthorizeTimeout time.Duration
	Version          string
	// NewClient builds the device client; freebox.New when nil.
	NewClient func(freebox.Options) (freebox.Client, error)
}

// Integration owns the single Freebox session of a running hub.
type Integration struct {
	hub    *hub.Hub
	opts   Options
	logger *zap.Logger
	source ConnectionSource

	mu      sync.Mutex
	session freebox.Client
}

// Setup decides the connection source once, listens for discovery
// broadcasts and, for a static source, connects right away.
func Setup(ctx context.Context, h *hub.Hub, opts Options) *Integration {
	if opts.NewClient == nil {
		opts.NewClient = freebox.New
	}
	i := &Integration{
		hub:    h,
		opts:   opts,
		logger: h.Logger().With(zap.String("component", "integration")),
	}
	if opts.Static != nil {
		i.source = Static{Host: opts.Static.Host, Port: opts.Static.Port}
	}

	h.ListenDiscovery(discovery.ServiceFreebox, i.handleDiscovery)

	if i.source != nil {
		i.EstablishSession(ctx, i.source)
	}
	return i
}

func (i *Integration) handleDiscovery(ctx context.Context, ev discovery.Event) {
	if i.source != nil {
		i.logger.Debug("Ignoring discovery, static configuration in use", zap.String("instance", ev.Instance))
		return
	}
	if i.Ready() {
		i.logger.Debug("Ignoring discovery, already connected", zap.String("instance", ev.Instance))
		return
	}
	src, err := FromDiscovery(ev)
	if err != nil {
		i.logger.Error("Ignoring malformed Freebox discovery", zap.Error(err))
		return
	}
	i.logger.Info("Discovered Freebox server", zap.String("host", src.Host), zap.Int("port", src.Port))
	i.EstablishSession(ctx, src)
}

// EstablishSession opens the shared session. Failures are logged and leave the
// integration not ready; it reports whether a session is available afterwards.
func (i *Integration) EstablishSession(ctx context.Context, src ConnectionSource) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.session != nil {
		return true
	}

	host, port := src.HostPort()
	logger := i.logger.With(zap.String("source", src.String()))

	client, err := i.opts.NewClient(freebox.Options{
		AppDesc:          AppDescriptor(i.opts.Version),
		TokenFile:        i.opts.TokenFile,
		APIVersion:       i.opts.APIVersion,
		CAFile:           i.opts.CAFile,
		AuthorizeTimeout: i.opts.AuthorizeTimeout,
		Logger:           i.hub.Logger(),
	})
	if err != nil {
		logger.Error("Failed to create Freebox client", zap.Error(err))
		return false
	}
	if err := client.Open(ctx, host, port); err != nil {
		logger.Error("Failed to connect to Freebox", zap.Error(err))
		return false
	}

	i.session = client
	i.hub.Data.Set(freebox.Domain, client)

	i.hub.LoadPlatform(ctx, PlatformSensor, hub.DiscoveryInfo{})
	i.hub.LoadPlatform(ctx, PlatformDeviceTracker, hub.DiscoveryInfo{})

	permsSettings := false
	perms, err := client.Permissions(ctx)
	if err != nil {
		logger.Warn("Could not read Freebox permissions", zap.Error(err))
	} else {
		permsSettings = perms.Has(freebox.PermissionSettings)
	}
	if !permsSettings {
		logger.Warn(permissionHelp)
	}
	i.hub.LoadPlatform(ctx, PlatformSwitch, hub.DiscoveryInfo{wifiswitch.InfoPermsSettings: permsSettings})

	i.hub.OnStop(func(ctx context.Context) error {
		i.hub.Data.Delete(freebox.Domain)
		return client.Close(ctx)
	})
	logger.Info("Freebox integration ready", zap.Bool("perms_settings", permsSettings))
	return true
}

// Ready reports whether a session has been established.
func (i *Integration) Ready() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.session != nil
}

// Source returns the static source, or nil in discovery mode.
func (i *Integration) Source() ConnectionSource {
	return i.source
}

// AppDescriptor identifies this program to the Freebox.
func AppDescriptor(version string) freebox.AppDescriptor {
	name, err := os.Hostname()
	if err != nil || name == "" {
		name = "unknown"
	}
	return freebox.AppDescriptor{
		AppID:      AppID,
		AppName:    AppName,
		AppVersion: version,
		DeviceName: name,
	}
}
