// Package state owns the in-memory dataset and preferences and writes every
// change through to a key-value store.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ajitpratap0/riskready/internal/metrics"
	"github.com/ajitpratap0/riskready/internal/models"
	"github.com/ajitpratap0/riskready/internal/seed"
	"github.com/ajitpratap0/riskready/internal/store"
)

// ErrNotFound is returned by mutations that reference an unknown id.
var ErrNotFound = errors.New("not found")

// State is the single writer of every collection. Readers get deep copies.
type State struct {
	mu     sync.RWMutex
	kv     store.KV
	logger *slog.Logger
	data   models.Dataset
	prefs  models.Preferences
	now    func() time.Time
	newID  func() string
}

// Option configures a State.
type Option func(*State)

// WithClock overrides the clock used for LastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithIDGenerator overrides how ids are assigned to created entities.
func WithIDGenerator(gen func() string) Option {
	return func(s *State) { s.newID = gen }
}

// Load reads every collection and preference from kv. A missing or
// unreadable value falls back to the built-in default for that key alone.
// Load never fails; backend errors are logged and treated as absent.
func Load(ctx context.Context, kv store.KV, logger *slog.Logger, opts ...Option) *State {
	s := &State{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}

	s.data = models.Dataset{
		Scenarios:    loadJSON(ctx, s, KeyScenarios, seed.Scenarios),
		Remediations: loadJSON(ctx, s, KeyRemediations, seed.Remediations),
		Plans:        loadJSON(ctx, s, KeyPlans, seed.Plans),
		Steps:        loadJSON(ctx, s, KeySteps, seed.Steps),
		Inventory:    loadJSON(ctx, s, KeyInventory, seed.Inventory),
		Contacts:     loadJSON(ctx, s, KeyContacts, seed.Contacts),
		Categories:   loadJSON(ctx, s, KeyCategories, seed.Categories),
	}
	s.prefs = s.loadPreferences(ctx)

	logger.Debug("state loaded", "stats", s.data.Stats())
	return s
}

// read returns the raw value under key, or nil when it is absent.
func (s *State) read(ctx context.Context, key string) []byte {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("reading stored value failed, using default", "key", key, "error", err)
		}
		return nil
	}
	return raw
}

func (s *State) fallback(key, reason string, err error) {
	metrics.StateFallbacks.WithLabelValues(key).Inc()
	if err != nil {
		s.logger.Warn("stored value unusable, using default", "key", key, "reason", reason, "error", err)
		return
	}
	s.logger.Debug("no stored value, using default", "key", key)
}

func loadJSON[T any](ctx context.Context, s *State, key string, def func() []T) []T {
	raw := s.read(ctx, key)
	if raw == nil {
		s.fallback(key, "missing", nil)
		return def()
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.fallback(key, "unparseable", err)
		return def()
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// Snapshot returns a deep copy of the dataset.
func (s *State) Snapshot() models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Preferences returns a copy of the preferences.
func (s *State) Preferences() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.Clone()
}

// Now returns the state's clock reading.
func (s *State) Now() time.Time { return s.now() }

// save serializes v as JSON under key. Callers hold the write lock.
func (s *State) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// saveDataset writes every collection.
func (s *State) saveDataset(ctx context.Context, ds *models.Dataset) error {
	values := map[string]any{
		KeyScenarios:    ds.Scenarios,
		KeyRemediations: ds.Remediations,
		KeyPlans:        ds.Plans,
		KeySteps:        ds.Steps,
		KeyInventory:    ds.Inventory,
		KeyContacts:     ds.Contacts,
		KeyCategories:   ds.Categories,
	}
	for _, key := range CollectionKeys {
		if err := s.save(ctx, key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Replace swaps in ds wholesale and persists every collection. Preferences
// keep their values but drop category ids that no longer exist.
func (s *State) Replace(ctx context.Context, ds models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := ds.Clone()
	if err := s.saveDataset(ctx, &next); err != nil {
		return err
	}
	s.data = next
	metrics.Mutations.WithLabelValues("dataset", "replace").Inc()
	return s.pruneCategoryPrefs(ctx)
}

// Reset restores the default dataset and preferences and persists them.
func (s *State) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds := seed.Dataset()
	if err := s.saveDataset(ctx, &ds); err != nil {
		return err
	}
	s.data = ds
	prefs := models.DefaultPreferences(ds.CategoryIDs())
	if err := s.savePreferences(ctx, prefs); err != nil {
		return err
	}
	s.prefs = prefs
	metrics.Mutations.WithLabelValues("dataset", "reset").Inc()
	s.logger.Info("state reset to defaults")
	return nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
