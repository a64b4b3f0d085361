package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ajitpratap0/riskready/internal/metrics"
	"github.com/ajitpratap0/riskready/internal/models"
)

// ErrInvalidPreference is returned when a preference value is out of range.
var ErrInvalidPreference = errors.New("invalid preference")

// loadPreferences reads each preference key independently. Enumerated
// values outside their range fall back to the default for that key.
func (s *State) loadPreferences(ctx context.Context) models.Preferences {
	p := models.DefaultPreferences(s.data.CategoryIDs())

	if raw := s.read(ctx, KeyDarkMode); raw != nil {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			s.fallback(KeyDarkMode, "unparseable", err)
		} else {
			p.DarkMode = v
		}
	}
	if v, ok := s.readString(ctx, KeyCurrentPage); ok && v != "" {
		p.CurrentPage = v
	}
	if v, ok := s.readString(ctx, KeySortBy); ok {
		if k := models.SortKey(v); k.IsValid() {
			p.DashboardSortBy = k
		} else {
			s.fallback(KeySortBy, "out of range", fmt.Errorf("%w: sort key %q", ErrInvalidPreference, v))
		}
	}
	if v, ok := s.readString(ctx, KeySortOrder); ok {
		if o := models.SortOrder(v); o.IsValid() {
			p.DashboardSortOrder = o
		} else {
			s.fallback(KeySortOrder, "out of range", fmt.Errorf("%w: sort order %q", ErrInvalidPreference, v))
		}
	}
	if v, ok := s.readString(ctx, KeyViewMode); ok {
		if m := models.ViewMode(v); m.IsValid() {
			p.ViewMode = m
		} else {
			s.fallback(KeyViewMode, "out of range", fmt.Errorf("%w: view mode %q", ErrInvalidPreference, v))
		}
	}
	if ids, ok := s.readIDs(ctx, KeyExpandedCategories); ok {
		p.ExpandedCategories = ids
	}
	if ids, ok := s.readIDs(ctx, KeySelectedCategories); ok {
		p.SelectedCategories = ids
	}
	return p
}

// readString returns a plain string preference. Values are stored raw;
// a JSON-quoted string is also accepted.
func (s *State) readString(ctx context.Context, key string) (string, bool) {
	raw := s.read(ctx, key)
	if raw == nil {
		return "", false
	}
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		return quoted, true
	}
	return strings.TrimSpace(string(raw)), true
}

func (s *State) readIDs(ctx context.Context, key string) ([]string, bool) {
	raw := s.read(ctx, key)
	if raw == nil {
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.fallback(key, "unparseable", err)
		return nil, false
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, true
}

func (s *State) saveString(ctx context.Context, key, value string) error {
	if err := s.kv.Put(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// savePreferences writes every preference key. Callers hold the write lock.
func (s *State) savePreferences(ctx context.Context, p models.Preferences) error {
	if err := s.save(ctx, KeyDarkMode, p.DarkMode); err != nil {
		return err
	}
	if err := s.saveString(ctx, KeyCurrentPage, p.CurrentPage); err != nil {
		return err
	}
	if err := s.saveString(ctx, KeySortBy, string(p.DashboardSortBy)); err != nil {
		return err
	}
	if err := s.saveString(ctx, KeySortOrder, string(p.DashboardSortOrder)); err != nil {
		return err
	}
	if err := s.saveString(ctx, KeyViewMode, string(p.ViewMode)); err != nil {
		return err
	}
	if err := s.save(ctx, KeyExpandedCategories, nonNil(p.ExpandedCategories)); err != nil {
		return err
	}
	return s.save(ctx, KeySelectedCategories, nonNil(p.SelectedCategories))
}

// ValidatePreferences checks the enumerated fields.
func ValidatePreferences(p *models.Preferences) error {
	if !p.DashboardSortBy.IsValid() {
		return fmt.Errorf("%w: sort key %q", ErrInvalidPreference, p.DashboardSortBy)
	}
	if !p.DashboardSortOrder.IsValid() {
		return fmt.Errorf("%w: sort order %q", ErrInvalidPreference, p.DashboardSortOrder)
	}
	if !p.ViewMode.IsValid() {
		return fmt.Errorf("%w: view mode %q", ErrInvalidPreference, p.ViewMode)
	}
	return nil
}

// SetPreferences replaces every preference after validating it.
func (s *State) SetPreferences(ctx context.Context, p models.Preferences) (models.Preferences, error) {
	if err := ValidatePreferences(&p); err != nil {
		return models.Preferences{}, err
	}
	if p.CurrentPage == "" {
		p.CurrentPage = "/"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := p.Clone()
	if err := s.savePreferences(ctx, next); err != nil {
		return models.Preferences{}, err
	}
	s.prefs = next
	metrics.Mutations.WithLabelValues("preferences", "update").Inc()
	return next.Clone(), nil
}

// SetDarkMode flips the theme preference.
func (s *State) SetDarkMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, KeyDarkMode, on); err != nil {
		return err
	}
	s.prefs.DarkMode = on
	metrics.Mutations.WithLabelValues("preferences", "update").Inc()
	return nil
}

// SetCurrentPage records the last visited page.
func (s *State) SetCurrentPage(ctx context.Context, page string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveString(ctx, KeyCurrentPage, page); err != nil {
		return err
	}
	s.prefs.CurrentPage = page
	metrics.Mutations.WithLabelValues("preferences", "update").Inc()
	return nil
}

// SetSort changes the dashboard sort key and direction.
func (s *State) SetSort(ctx context.Context, key models.SortKey, order models.SortOrder) error {
	if !key.IsValid() {
		return fmt.Errorf("%w: sort key %q", ErrInvalidPreference, key)
	}
	if !order.IsValid() {
		return fmt.Errorf("%w: sort order %q", ErrInvalidPreference, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveString(ctx, KeySortBy, string(key)); err != nil {
		return err
	}
	if err := s.saveString(ctx, KeySortOrder, string(order)); err != nil {
		return err
	}
	s.prefs.DashboardSortBy = key
	s.prefs.DashboardSortOrder = order
	metrics.Mutations.WithLabelValues("preferences", "update").Inc()
	return nil
}

// SetViewMode switches between grouped and flat dashboards.
func (s *State) SetViewMode(ctx context.Context, mode models.ViewMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: view mode %q", ErrInvalidPreference, mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveString(ctx, KeyViewMode, string(mode)); err != nil {
		return err
	}
	s.prefs.ViewMode = mode
	metrics.Mutations.WithLabelValues("preferences", "update").Inc()
	return nil
}

// ToggleExpanded expands or collapses a category group and returns the
// new expanded state.
func (s *State) ToggleExpanded(ctx context.Context, categoryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := models.ToggleID(s.prefs.ExpandedCategories, categoryID)
	if err := s.save(ctx, KeyExpandedCategories, next); err != nil {
		return false, err
	}
	s.prefs.ExpandedCategories = next
	metrics.Mutations.WithLabelValues("preferences", "toggle").Inc()
	return slices.Contains(next, categoryID), nil
}

// ToggleSelected adds or removes a category from the dashboard filter and
// returns whether it is now selected.
func (s *State) ToggleSelected(ctx context.Context, categoryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := models.ToggleID(s.prefs.SelectedCategories, categoryID)
	if err := s.save(ctx, KeySelectedCategories, next); err != nil {
		return false, err
	}
	s.prefs.SelectedCategories = next
	metrics.Mutations.WithLabelValues("preferences", "toggle").Inc()
	return slices.Contains(next, categoryID), nil
}

// pruneCategoryPrefs drops category ids that no longer exist from the
// expanded and selected sets. Callers hold the write lock.
func (s *State) pruneCategoryPrefs(ctx context.Context) error {
	known := s.data.CategoryIDs()
	keep := func(ids []string) []string {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			if slices.Contains(known, id) {
				out = append(out, id)
			}
		}
		return out
	}
	expanded := keep(s.prefs.ExpandedCategories)
	selected := keep(s.prefs.SelectedCategories)
	if len(expanded) != len(s.prefs.ExpandedCategories) {
		if err := s.save(ctx, KeyExpandedCategories, expanded); err != nil {
			return err
		}
		s.prefs.ExpandedCategories = expanded
	}
	if len(selected) != len(s.prefs.SelectedCategories) {
		if err := s.save(ctx, KeySelectedCategories, selected); err != nil {
			return err
		}
		s.prefs.SelectedCategories = selected
	}
	return nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
