package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/ajitpratap0/riskready/internal/metrics"
	"github.com/ajitpratap0/riskready/internal/models"
)

// Direction moves a step earlier or later within its plan.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// IsValid returns true if the direction is up or down.
func (d Direction) IsValid() bool { return d == MoveUp || d == MoveDown }

// commit saves next under key and, on success, swaps it into *cur.
// Callers hold the write lock.
func commit[T any](ctx context.Context, s *State, key string, cur *[]T, next []T, collection, action string) error {
	if err := s.save(ctx, key, next); err != nil {
		return err
	}
	*cur = next
	metrics.Mutations.WithLabelValues(collection, action).Inc()
	s.logger.Debug("collection updated", "collection", collection, "action", action, "count", len(next))
	return nil
}

func indexByID[T any](items []T, id string, idOf func(*T) string) int {
	for i := range items {
		if idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}

func without[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func scenarioID(v *models.Scenario) string        { return v.ID }
func remediationID(v *models.Remediation) string  { return v.ID }
func planID(v *models.Plan) string                { return v.ID }
func stepID(v *models.Step) string                { return v.ID }
func itemID(v *models.InventoryItem) string       { return v.ID }
func contactID(v *models.EmergencyContact) string { return v.ID }
func categoryID(v *models.Category) string        { return v.ID }

// --- scenarios ---

// CreateScenario appends a scenario with a fresh id.
func (s *State) CreateScenario(ctx context.Context, sc models.Scenario) (models.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc = sc.Clone()
	sc.ID = s.newID()
	next := append(slices.Clone(s.data.Scenarios), sc)
	if err := commit(ctx, s, KeyScenarios, &s.data.Scenarios, next, "scenarios", "create"); err != nil {
		return models.Scenario{}, err
	}
	return sc.Clone(), nil
}

// UpdateScenario replaces the scenario with the same id. The plan mirror
// is kept.
func (s *State) UpdateScenario(ctx context.Context, sc models.Scenario) (models.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Scenarios, sc.ID, scenarioID)
	if i < 0 {
		return models.Scenario{}, notFound("scenario", sc.ID)
	}
	next := slices.Clone(s.data.Scenarios)
	sc = sc.Clone()
	sc.Plans = slices.Clone(next[i].Plans)
	next[i] = sc
	if err := commit(ctx, s, KeyScenarios, &s.data.Scenarios, next, "scenarios", "update"); err != nil {
		return models.Scenario{}, err
	}
	return sc.Clone(), nil
}

// DeleteScenario removes a scenario. Plans and remediations that point at
// it are left in place and resolve to the unknown-scenario placeholder.
func (s *State) DeleteScenario(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Scenarios, id, scenarioID)
	if i < 0 {
		return notFound("scenario", id)
	}
	return commit(ctx, s, KeyScenarios, &s.data.Scenarios, without(s.data.Scenarios, i), "scenarios", "delete")
}

// --- remediations ---

// CreateRemediation appends a remediation with a fresh id.
func (s *State) CreateRemediation(ctx context.Context, r models.Remediation) (models.Remediation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r = r.Clone()
	r.ID = s.newID()
	if r.Status == "" {
		r.Status = models.StatusNotStarted
	}
	next := append(slices.Clone(s.data.Remediations), r)
	if err := commit(ctx, s, KeyRemediations, &s.data.Remediations, next, "remediations", "create"); err != nil {
		return models.Remediation{}, err
	}
	return r.Clone(), nil
}

// UpdateRemediation replaces the remediation with the same id. An empty
// status keeps the stored one.
func (s *State) UpdateRemediation(ctx context.Context, r models.Remediation) (models.Remediation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Remediations, r.ID, remediationID)
	if i < 0 {
		return models.Remediation{}, notFound("remediation", r.ID)
	}
	next := slices.Clone(s.data.Remediations)
	r = r.Clone()
	if r.Status == "" {
		r.Status = next[i].Status
	}
	next[i] = r
	if err := commit(ctx, s, KeyRemediations, &s.data.Remediations, next, "remediations", "update"); err != nil {
		return models.Remediation{}, err
	}
	return r.Clone(), nil
}

// SetRemediationStatus changes only the status of a remediation.
func (s *State) SetRemediationStatus(ctx context.Context, id string, status models.Status) (models.Remediation, error) {
	if !status.IsValid() {
		return models.Remediation{}, fmt.Errorf("invalid status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Remediations, id, remediationID)
	if i < 0 {
		return models.Remediation{}, notFound("remediation", id)
	}
	next := slices.Clone(s.data.Remediations)
	r := next[i].Clone()
	r.Status = status
	next[i] = r
	if err := commit(ctx, s, KeyRemediations, &s.data.Remediations, next, "remediations", "status"); err != nil {
		return models.Remediation{}, err
	}
	return r.Clone(), nil
}

// DeleteRemediation removes a remediation. Steps keep their references.
func (s *State) DeleteRemediation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Remediations, id, remediationID)
	if i < 0 {
		return notFound("remediation", id)
	}
	return commit(ctx, s, KeyRemediations, &s.data.Remediations, without(s.data.Remediations, i), "remediations", "delete")
}

// --- plans ---

// CreatePlan appends a plan with a fresh id and no steps.
func (s *State) CreatePlan(ctx context.Context, p models.Plan) (models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p = p.Clone()
	p.ID = s.newID()
	p.Steps = []string{}
	next := append(slices.Clone(s.data.Plans), p)
	if err := commit(ctx, s, KeyPlans, &s.data.Plans, next, "plans", "create"); err != nil {
		return models.Plan{}, err
	}
	return p.Clone(), nil
}

// UpdatePlan replaces the plan's editable fields. The step mirror is kept.
func (s *State) UpdatePlan(ctx context.Context, p models.Plan) (models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Plans, p.ID, planID)
	if i < 0 {
		return models.Plan{}, notFound("plan", p.ID)
	}
	next := slices.Clone(s.data.Plans)
	p = p.Clone()
	p.Steps = slices.Clone(next[i].Steps)
	next[i] = p
	if err := commit(ctx, s, KeyPlans, &s.data.Plans, next, "plans", "update"); err != nil {
		return models.Plan{}, err
	}
	return p.Clone(), nil
}

// DeletePlan removes a plan and every step it owns.
func (s *State) DeletePlan(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Plans, id, planID)
	if i < 0 {
		return notFound("plan", id)
	}
	steps := make([]models.Step, 0, len(s.data.Steps))
	for _, st := range s.data.Steps {
		if st.PlanID != id {
			steps = append(steps, st)
		}
	}
	if len(steps) != len(s.data.Steps) {
		if err := commit(ctx, s, KeySteps, &s.data.Steps, steps, "steps", "delete"); err != nil {
			return err
		}
	}
	return commit(ctx, s, KeyPlans, &s.data.Plans, without(s.data.Plans, i), "plans", "delete")
}

// --- steps ---

// AddStep appends a step to a plan. The step is placed last in the plan's
// order and its id is added to the plan's step list.
func (s *State) AddStep(ctx context.Context, ownerID string, st models.Step) (models.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi := indexByID(s.data.Plans, ownerID, planID)
	if pi < 0 {
		return models.Step{}, notFound("plan", ownerID)
	}
	maxOrder := 0
	for _, existing := range s.data.Steps {
		if existing.PlanID == ownerID && existing.Order > maxOrder {
			maxOrder = existing.Order
		}
	}
	st = st.Clone()
	st.ID = s.newID()
	st.PlanID = ownerID
	st.Order = maxOrder + 1
	if st.Status == "" {
		st.Status = models.StatusNotStarted
	}
	if st.Remediations == nil {
		st.Remediations = []string{}
	}

	steps := append(slices.Clone(s.data.Steps), st)
	if err := commit(ctx, s, KeySteps, &s.data.Steps, steps, "steps", "create"); err != nil {
		return models.Step{}, err
	}
	plans := slices.Clone(s.data.Plans)
	p := plans[pi].Clone()
	p.Steps = append(p.Steps, st.ID)
	plans[pi] = p
	if err := commit(ctx, s, KeyPlans, &s.data.Plans, plans, "plans", "update"); err != nil {
		return models.Step{}, err
	}
	return st.Clone(), nil
}

// UpdateStep replaces a step's editable fields. Owner and order are kept.
func (s *State) UpdateStep(ctx context.Context, st models.Step) (models.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Steps, st.ID, stepID)
	if i < 0 {
		return models.Step{}, notFound("step", st.ID)
	}
	next := slices.Clone(s.data.Steps)
	st = st.Clone()
	st.PlanID = next[i].PlanID
	if st.Order <= 0 {
		st.Order = next[i].Order
	}
	if st.Status == "" {
		st.Status = next[i].Status
	}
	next[i] = st
	if err := commit(ctx, s, KeySteps, &s.data.Steps, next, "steps", "update"); err != nil {
		return models.Step{}, err
	}
	return st.Clone(), nil
}

// SetStepStatus changes only the status of a step.
func (s *State) SetStepStatus(ctx context.Context, id string, status models.Status) (models.Step, error) {
	if !status.IsValid() {
		return models.Step{}, fmt.Errorf("invalid status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Steps, id, stepID)
	if i < 0 {
		return models.Step{}, notFound("step", id)
	}
	next := slices.Clone(s.data.Steps)
	st := next[i].Clone()
	st.Status = status
	next[i] = st
	if err := commit(ctx, s, KeySteps, &s.data.Steps, next, "steps", "status"); err != nil {
		return models.Step{}, err
	}
	return st.Clone(), nil
}

// MoveStep swaps a step's order with its neighbour in the plan's sorted
// order. Moving the first step up or the last step down is a no-op.
func (s *State) MoveStep(ctx context.Context, id string, dir Direction) error {
	if !dir.IsValid() {
		return fmt.Errorf("invalid direction %q", dir)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Steps, id, stepID)
	if i < 0 {
		return notFound("step", id)
	}
	owner := s.data.Steps[i].PlanID

	var siblings []int
	for j := range s.data.Steps {
		if s.data.Steps[j].PlanID == owner {
			siblings = append(siblings, j)
		}
	}
	slices.SortStableFunc(siblings, func(a, b int) int {
		return s.data.Steps[a].Order - s.data.Steps[b].Order
	})
	pos := slices.Index(siblings, i)
	var other int
	switch {
	case dir == MoveUp && pos > 0:
		other = siblings[pos-1]
	case dir == MoveDown && pos < len(siblings)-1:
		other = siblings[pos+1]
	default:
		return nil
	}

	next := slices.Clone(s.data.Steps)
	next[i].Order, next[other].Order = next[other].Order, next[i].Order
	return commit(ctx, s, KeySteps, &s.data.Steps, next, "steps", "move")
}

// DeleteStep removes a step and drops it from its plan's step list.
func (s *State) DeleteStep(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Steps, id, stepID)
	if i < 0 {
		return notFound("step", id)
	}
	owner := s.data.Steps[i].PlanID
	if err := commit(ctx, s, KeySteps, &s.data.Steps, without(s.data.Steps, i), "steps", "delete"); err != nil {
		return err
	}
	pi := indexByID(s.data.Plans, owner, planID)
	if pi < 0 || !slices.Contains(s.data.Plans[pi].Steps, id) {
		return nil
	}
	plans := slices.Clone(s.data.Plans)
	p := plans[pi].Clone()
	p.Steps = slices.DeleteFunc(p.Steps, func(v string) bool { return v == id })
	plans[pi] = p
	return commit(ctx, s, KeyPlans, &s.data.Plans, plans, "plans", "update")
}

// --- inventory ---

// CreateInventoryItem appends an item with a fresh id.
func (s *State) CreateInventoryItem(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item = item.Clone()
	item.ID = s.newID()
	item.LastUpdated = s.now()
	next := append(slices.Clone(s.data.Inventory), item)
	if err := commit(ctx, s, KeyInventory, &s.data.Inventory, next, "inventory", "create"); err != nil {
		return models.InventoryItem{}, err
	}
	return item.Clone(), nil
}

// UpdateInventoryItem replaces an item and stamps LastUpdated.
func (s *State) UpdateInventoryItem(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Inventory, item.ID, itemID)
	if i < 0 {
		return models.InventoryItem{}, notFound("inventory item", item.ID)
	}
	item = item.Clone()
	item.LastUpdated = s.now()
	next := slices.Clone(s.data.Inventory)
	next[i] = item
	if err := commit(ctx, s, KeyInventory, &s.data.Inventory, next, "inventory", "update"); err != nil {
		return models.InventoryItem{}, err
	}
	return item.Clone(), nil
}

// DeleteInventoryItem removes an item. Remediations keep their references.
func (s *State) DeleteInventoryItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Inventory, id, itemID)
	if i < 0 {
		return notFound("inventory item", id)
	}
	return commit(ctx, s, KeyInventory, &s.data.Inventory, without(s.data.Inventory, i), "inventory", "delete")
}

// --- contacts ---

// CreateContact appends an active contact with a fresh id.
func (s *State) CreateContact(ctx context.Context, c models.EmergencyContact) (models.EmergencyContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	c.IsActive = true
	c.LastUpdated = s.now()
	next := append(slices.Clone(s.data.Contacts), c)
	if err := commit(ctx, s, KeyContacts, &s.data.Contacts, next, "contacts", "create"); err != nil {
		return models.EmergencyContact{}, err
	}
	return c, nil
}

// UpdateContact replaces a contact and stamps LastUpdated. With keepActive
// the stored IsActive is kept.
func (s *State) UpdateContact(ctx context.Context, c models.EmergencyContact, keepActive bool) (models.EmergencyContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Contacts, c.ID, contactID)
	if i < 0 {
		return models.EmergencyContact{}, notFound("contact", c.ID)
	}
	next := slices.Clone(s.data.Contacts)
	if keepActive {
		c.IsActive = next[i].IsActive
	}
	c.LastUpdated = s.now()
	next[i] = c
	if err := commit(ctx, s, KeyContacts, &s.data.Contacts, next, "contacts", "update"); err != nil {
		return models.EmergencyContact{}, err
	}
	return c, nil
}

// SetContactActive soft-deletes or restores a contact.
func (s *State) SetContactActive(ctx context.Context, id string, active bool) (models.EmergencyContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Contacts, id, contactID)
	if i < 0 {
		return models.EmergencyContact{}, notFound("contact", id)
	}
	next := slices.Clone(s.data.Contacts)
	next[i].IsActive = active
	next[i].LastUpdated = s.now()
	action := "deactivate"
	if active {
		action = "activate"
	}
	if err := commit(ctx, s, KeyContacts, &s.data.Contacts, next, "contacts", action); err != nil {
		return models.EmergencyContact{}, err
	}
	return next[i], nil
}

// DeleteContact removes a contact permanently.
func (s *State) DeleteContact(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Contacts, id, contactID)
	if i < 0 {
		return notFound("contact", id)
	}
	return commit(ctx, s, KeyContacts, &s.data.Contacts, without(s.data.Contacts, i), "contacts", "delete")
}

// --- categories ---

// CreateCategory appends a category with a fresh id. The new category
// starts expanded and selected on the dashboard.
func (s *State) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	next := append(slices.Clone(s.data.Categories), c)
	if err := commit(ctx, s, KeyCategories, &s.data.Categories, next, "categories", "create"); err != nil {
		return models.Category{}, err
	}
	expanded := append(slices.Clone(s.prefs.ExpandedCategories), c.ID)
	if err := s.save(ctx, KeyExpandedCategories, expanded); err != nil {
		return models.Category{}, err
	}
	s.prefs.ExpandedCategories = expanded
	selected := append(slices.Clone(s.prefs.SelectedCategories), c.ID)
	if err := s.save(ctx, KeySelectedCategories, selected); err != nil {
		return models.Category{}, err
	}
	s.prefs.SelectedCategories = selected
	return c, nil
}

// UpdateCategory replaces a category's name, description and colour.
func (s *State) UpdateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Categories, c.ID, categoryID)
	if i < 0 {
		return models.Category{}, notFound("category", c.ID)
	}
	next := slices.Clone(s.data.Categories)
	next[i] = c
	if err := commit(ctx, s, KeyCategories, &s.data.Categories, next, "categories", "update"); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

// DeleteCategory removes a category and drops it from the dashboard
// preferences. Scenarios keep the id and resolve it as unknown.
func (s *State) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.data.Categories, id, categoryID)
	if i < 0 {
		return notFound("category", id)
	}
	if err := commit(ctx, s, KeyCategories, &s.data.Categories, without(s.data.Categories, i), "categories", "delete"); err != nil {
		return err
	}
	return s.pruneCategoryPrefs(ctx)
}
