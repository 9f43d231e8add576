// Package wifiswitch exposes the Freebox Wi-Fi radio as a polled on/off
// entity.
package wifiswitch

import (
	"context"
	"fmt"
	"sync"

	"freebox-gate/internal/freebox"
	"freebox-gate/internal/hub"
)

const (
	// Name is the entity name shown to users.
	Name = "Freebox WiFi"

	// InfoPermsSettings is the platform payload key carrying the settings
	// permission observed at startup.
	InfoPermsSettings = "perms_settings"

	StateOn  = "on"
	StateOff = "off"
)

// Switch is the Wi-Fi toggle. Its state only changes on Update; commands are
// forwarded to the device and reconciled on the next poll.
type Switch struct {
	session freebox.Client

	mu            sync.RWMutex
	permsSettings bool
	on            bool
}

func New(session freebox.Client, permsSettings bool) *Switch {
	return &Switch{session: session, permsSettings: permsSettings}
}

func (s *Switch) Name() string     { return Name }
func (s *Switch) ShouldPoll() bool { return true }

// Available is false while the session lacks the settings permission.
func (s *Switch) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.permsSettings
}

func (s *Switch) IsOn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.on
}

func (s *Switch) State() string {
	if s.IsOn() {
		return StateOn
	}
	return StateOff
}

func (s *Switch) TurnOn(ctx context.Context) error {
	if err := s.session.SetWifiGlobalConfig(ctx, freebox.WifiConfig{Enabled: true}); err != nil {
		return fmt.Errorf("turn on wifi: %w", err)
	}
	return nil
}

func (s *Switch) TurnOff(ctx context.Context) error {
	if err := s.session.SetWifiGlobalConfig(ctx, freebox.WifiConfig{Enabled: false}); err != nil {
		return fmt.Errorf("turn off wifi: %w", err)
	}
	return nil
}

// Update refreshes the permission flag and the radio state with two
// independent calls.
func (s *Switch) Update(ctx context.Context) error {
	perms, err := s.session.Permissions(ctx)
	if err != nil {
		return fmt.Errorf("get permissions: %w", err)
	}
	s.mu.Lock()
	s.permsSettings = perms.Has(freebox.PermissionSettings)
	s.mu.Unlock()

	cfg, err := s.session.WifiGlobalConfig(ctx)
	if err != nil {
		return fmt.Errorf("get wifi config: %w", err)
	}
	s.mu.Lock()
	s.on = cfg.Enabled
	s.mu.Unlock()
	return nil
}

// SetupPlatform adds the switch for the session stored by the integration.
func SetupPlatform(ctx context.Context, h *hub.Hub, info hub.DiscoveryInfo) error {
	v, ok := h.Data.Get(freebox.Domain)
	if !ok {
		return fmt.Errorf("no %s session in shared state", freebox.Domain)
	}
	session, ok := v.(freebox.Client)
	if !ok {
		return fmt.Errorf("unexpected %T in %s slot", v, freebox.Domain)
	}
	h.AddEntities(New(session, info.Bool(InfoPermsSettings)))
	return nil
}
