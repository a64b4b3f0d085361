package models

// Dataset is a snapshot of every collection the application tracks.
type Dataset struct {
	Scenarios    []Scenario         `json:"scenarios" yaml:"scenarios"`
	Remediations []Remediation      `json:"remediations" yaml:"remediations"`
	Plans        []Plan             `json:"plans" yaml:"plans"`
	Steps        []Step             `json:"steps" yaml:"steps"`
	Inventory    []InventoryItem    `json:"inventory" yaml:"inventory"`
	Contacts     []EmergencyContact `json:"contacts" yaml:"contacts"`
	Categories   []Category         `json:"categories" yaml:"categories"`
}

// DatasetStats counts the records in each collection.
type DatasetStats struct {
	Scenarios    int `json:"scenarios"`
	Remediations int `json:"remediations"`
	Plans        int `json:"plans"`
	Steps        int `json:"steps"`
	Inventory    int `json:"inventory"`
	Contacts     int `json:"contacts"`
	Categories   int `json:"categories"`
}

// Stats returns per-collection record counts.
func (ds Dataset) Stats() DatasetStats {
	return DatasetStats{
		Scenarios:    len(ds.Scenarios),
		Remediations: len(ds.Remediations),
		Plans:        len(ds.Plans),
		Steps:        len(ds.Steps),
		Inventory:    len(ds.Inventory),
		Contacts:     len(ds.Contacts),
		Categories:   len(ds.Categories),
	}
}

// ScenarioByID looks up a scenario.
func (ds Dataset) ScenarioByID(id string) (Scenario, bool) {
	for i := range ds.Scenarios {
		if ds.Scenarios[i].ID == id {
			return ds.Scenarios[i], true
		}
	}
	return Scenario{}, false
}

// RemediationByID looks up a remediation.
func (ds Dataset) RemediationByID(id string) (Remediation, bool) {
	for i := range ds.Remediations {
		if ds.Remediations[i].ID == id {
			return ds.Remediations[i], true
		}
	}
	return Remediation{}, false
}

// PlanByID looks up a plan.
func (ds Dataset) PlanByID(id string) (Plan, bool) {
	for i := range ds.Plans {
		if ds.Plans[i].ID == id {
			return ds.Plans[i], true
		}
	}
	return Plan{}, false
}

// StepByID looks up a step.
func (ds Dataset) StepByID(id string) (Step, bool) {
	for i := range ds.Steps {
		if ds.Steps[i].ID == id {
			return ds.Steps[i], true
		}
	}
	return Step{}, false
}

// InventoryByID looks up an inventory item.
func (ds Dataset) InventoryByID(id string) (InventoryItem, bool) {
	for i := range ds.Inventory {
		if ds.Inventory[i].ID == id {
			return ds.Inventory[i], true
		}
	}
	return InventoryItem{}, false
}

// ContactByID looks up an emergency contact.
func (ds Dataset) ContactByID(id string) (EmergencyContact, bool) {
	for i := range ds.Contacts {
		if ds.Contacts[i].ID == id {
			return ds.Contacts[i], true
		}
	}
	return EmergencyContact{}, false
}

// CategoryByID looks up a category.
func (ds Dataset) CategoryByID(id string) (Category, bool) {
	for i := range ds.Categories {
		if ds.Categories[i].ID == id {
			return ds.Categories[i], true
		}
	}
	return Category{}, false
}

// CategoryIDs returns every category id in collection order.
func (ds Dataset) CategoryIDs() []string {
	ids := make([]string, 0, len(ds.Categories))
	for i := range ds.Categories {
		ids = append(ids, ds.Categories[i].ID)
	}
	return ids
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (ds Dataset) Clone() Dataset {
	out := Dataset{
		Scenarios:    make([]Scenario, len(ds.Scenarios)),
		Remediations: make([]Remediation, len(ds.Remediations)),
		Plans:        make([]Plan, len(ds.Plans)),
		Steps:        make([]Step, len(ds.Steps)),
		Inventory:    make([]InventoryItem, len(ds.Inventory)),
		Contacts:     make([]EmergencyContact, len(ds.Contacts)),
		Categories:   make([]Category, len(ds.Categories)),
	}
	for i := range ds.Scenarios {
		out.Scenarios[i] = ds.Scenarios[i].Clone()
	}
	for i := range ds.Remediations {
		out.Remediations[i] = ds.Remediations[i].Clone()
	}
	for i := range ds.Plans {
		out.Plans[i] = ds.Plans[i].Clone()
	}
	for i := range ds.Steps {
		out.Steps[i] = ds.Steps[i].Clone()
	}
	for i := range ds.Inventory {
		out.Inventory[i] = ds.Inventory[i].Clone()
	}
	copy(out.Contacts, ds.Contacts)
	copy(out.Categories, ds.Categories)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
