// Package hub is the small host runtime the integration plugs into. It owns
// the shared state store, loads platforms on request, dispatches discovery
// events, runs stop hooks and polls entities at a fixed cadence.
package hub

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"freebox-gate/internal/discovery"
	"freebox-gate/internal/state"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPollInterval matches the cadence used for polled switches.
const DefaultPollInterval = 30 * time.Second

// DiscoveryInfo is the initialization payload handed to a platform.
type DiscoveryInfo map[string]any

// Bool returns the boolean stored under key, false when absent or not a bool.
func (d DiscoveryInfo) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// PlatformSetup creates a platform's entities and adds them to the hub.
type PlatformSetup func(ctx context.Context, h *Hub, info DiscoveryInfo) error

// DiscoveryHandler receives discovery events for a service type.
type DiscoveryHandler func(ctx context.Context, ev discovery.Event)

// Entity is anything the hub tracks and reports.
type Entity interface {
	Name() string
	State() string
	Available() bool
	ShouldPoll() bool
	Update(ctx context.Context) error
}

type Hub struct {
	Data   *state.Store
	logger *zap.Logger

	mu        sync.Mutex
	platforms map[string]PlatformSetup
	listeners map[string][]DiscoveryHandler
	stopHooks []func(ctx context.Context) error
	entities  []Entity
	stopped   bool

	tasks errgroup.Group
}

func New(logger *zap.Logger) *Hub {
	return &Hub{
		Data:      state.NewStore(),
		logger:    logger.With(zap.String("component", "hub")),
		platforms: make(map[string]PlatformSetup),
		listeners: make(map[string][]DiscoveryHandler),
	}
}

func (h *Hub) Logger() *zap.Logger {
	return h.logger
}

// RegisterPlatform makes a platform loadable under domain.
func (h *Hub) RegisterPlatform(domain string, setup PlatformSetup) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.platforms[domain] = setup
}

// CreateTask runs fn concurrently with the caller. Wait joins all tasks.
func (h *Hub) CreateTask(fn func() error) {
	h.tasks.Go(fn)
}

// Wait blocks until every task started so far has finished and returns the
// first task error.
func (h *Hub) Wait() error {
	return h.tasks.Wait()
}

// LoadPlatform schedules the setup of domain with info. Domains without a
// registered setup are skipped.
func (h *Hub) LoadPlatform(ctx context.Context, domain string, info DiscoveryInfo) {
	h.mu.Lock()
	setup, ok := h.platforms[domain]
	h.mu.Unlock()
	if !ok {
		h.logger.Debug("No platform registered, skipping", zap.String("platform", domain))
		return
	}
	h.CreateTask(func() error {
		if err := setup(ctx, h, info); err != nil {
			h.logger.Error("Error while setting up platform", zap.String("platform", domain), zap.Error(err))
			return fmt.Errorf("setup platform %s: %w", domain, err)
		}
		h.logger.Info("Platform loaded", zap.String("platform", domain))
		return nil
	})
}

// ListenDiscovery registers handler for events of the given service type.
func (h *Hub) ListenDiscovery(service string, handler DiscoveryHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners[service] = append(h.listeners[service], handler)
}

// Discover dispatches ev to the handlers registered for its service.
func (h *Hub) Discover(ctx context.Context, ev discovery.Event) {
	h.mu.Lock()
	handlers := append([]DiscoveryHandler(nil), h.listeners[ev.Service]...)
	h.mu.Unlock()
	for _, handler := range handlers {
		handler(ctx, ev)
	}
}

// OnStop registers a hook run once when the hub stops.
func (h *Hub) OnStop(hook func(ctx context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopHooks = append(h.stopHooks, hook)
}

// Stop waits for pending tasks and runs the stop hooks. Later calls are no-ops.
func (h *Hub) Stop(ctx context.Context) error {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return nil
	}
	h.stopped = true
	hooks := h.stopHooks
	h.stopHooks = nil
	h.mu.Unlock()

	_ = h.Wait()

	var errs []error
	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			h.logger.Warn("Stop hook failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddEntities starts tracking entities. Their initial state is recorded
// without polling.
func (h *Hub) AddEntities(entities ...Entity) {
	h.mu.Lock()
	h.entities = append(h.entities, entities...)
	h.mu.Unlock()
	for _, e := range entities {
		h.record(e, nil)
	}
}

func (h *Hub) Entities() []Entity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entity(nil), h.entities...)
}

// Entity looks an entity up by name.
func (h *Hub) Entity(name string) (Entity, bool) {
	for _, e := range h.Entities() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// UpdateEntities runs one poll cycle. Entity errors are logged and recorded,
// never returned.
func (h *Hub) UpdateEntities(ctx context.Context) {
	for _, e := range h.Entities() {
		if !e.ShouldPoll() {
			continue
		}
		err := e.Update(ctx)
		if err != nil {
			h.logger.Error("Update for entity fails", zap.String("entity", e.Name()), zap.Error(err))
		}
		h.record(e, err)
	}
}

// Poll runs UpdateEntities every interval until ctx is done.
func (h *Hub) Poll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		h.UpdateEntities(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Refresh polls a single entity immediately and records the result.
func (h *Hub) Refresh(ctx context.Context, e Entity) error {
	err := e.Update(ctx)
	h.record(e, err)
	return err
}

func (h *Hub) record(e Entity, err error) {
	es := state.EntityState{
		Name:        e.Name(),
		State:       e.State(),
		Available:   e.Available(),
		LastUpdated: time.Now(),
	}
	if err != nil {
		es.Error = err.Error()
	}
	h.Data.Update(es)
}
