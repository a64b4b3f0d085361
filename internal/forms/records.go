package forms

import (
	"github.com/ajitpratap0/riskready/internal/models"
)

func optionalDate(d *models.Date) *models.Date {
	if !models.IsSet(d) {
		return nil
	}
	c := *d
	return &c
}

func ids(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Scenario is the create/update payload for a scenario.
type Scenario struct {
	Name          string               `json:"name" validate:"required,max=200"`
	Description   string               `json:"description" validate:"max=2000"`
	Severity      models.Severity      `json:"severity" validate:"required,known"`
	Probability   models.Probability   `json:"probability" validate:"required,known"`
	Velocity      models.Velocity      `json:"velocity" validate:"required,known"`
	Detectability models.Detectability `json:"detectability" validate:"required,known"`
	SeasonalRisk  []models.Season      `json:"seasonalRisk" validate:"dive,known"`
	Categories    []string             `json:"categories"`
}

// Model converts the form into a scenario with the given id.
func (f *Scenario) Model(id string) models.Scenario {
	return models.Scenario{
		ID:            id,
		Name:          f.Name,
		Description:   f.Description,
		Severity:      f.Severity,
		Probability:   f.Probability,
		Velocity:      f.Velocity,
		Detectability: f.Detectability,
		SeasonalRisk:  append([]models.Season(nil), f.SeasonalRisk...),
		Categories:    ids(f.Categories),
	}
}

// Remediation is the create/update payload for a remediation.
type Remediation struct {
	Name                string        `json:"name" validate:"required,max=200"`
	Description         string        `json:"description" validate:"max=2000"`
	ApplicableScenarios []string      `json:"applicableScenarios"`
	Status              models.Status `json:"status" validate:"omitempty,known"`
	RequiredInventory   []string      `json:"requiredInventory"`
	EstimatedTime       string        `json:"estimatedTime" validate:"max=100"`
	DueDate             *models.Date  `json:"dueDate"`
}

// Model converts the form into a remediation with the given id. A missing
// status stays empty: creation starts it as not started and an update keeps
// the stored one.
func (f *Remediation) Model(id string) models.Remediation {
	return models.Remediation{
		ID:                  id,
		Name:                f.Name,
		Description:         f.Description,
		ApplicableScenarios: ids(f.ApplicableScenarios),
		Status:              f.Status,
		RequiredInventory:   ids(f.RequiredInventory),
		EstimatedTime:       f.EstimatedTime,
		DueDate:             optionalDate(f.DueDate),
	}
}

// Plan is the create/update payload for a response plan.
type Plan struct {
	Name             string       `json:"name" validate:"required,max=200"`
	Description      string       `json:"description" validate:"max=2000"`
	ScenarioID       string       `json:"scenarioId" validate:"required"`
	Order            Count        `json:"order" validate:"gte=0"`
	TriggerCondition string       `json:"triggerCondition" validate:"max=500"`
	DueDate          *models.Date `json:"dueDate"`
}

// Model converts the form into a plan with the given id.
func (f *Plan) Model(id string) models.Plan {
	order := int(f.Order)
	if order == 0 {
		order = 1
	}
	return models.Plan{
		ID:               id,
		Name:             f.Name,
		Description:      f.Description,
		ScenarioID:       f.ScenarioID,
		Order:            order,
		TriggerCondition: f.TriggerCondition,
		Steps:            []string{},
		DueDate:          optionalDate(f.DueDate),
	}
}

// Step is the create/update payload for a plan step. The owner is assigned
// by the state. Order is ignored on create, where the step goes last; on
// update zero keeps the stored order.
type Step struct {
	Name          string        `json:"name" validate:"required,max=200"`
	Description   string        `json:"description" validate:"max=2000"`
	Order         Count         `json:"order" validate:"gte=0"`
	Status        models.Status `json:"status" validate:"omitempty,known"`
	Remediations  []string      `json:"remediations"`
	EstimatedTime string        `json:"estimatedTime" validate:"max=100"`
	DueDate       *models.Date  `json:"dueDate"`
	Dependencies  []string      `json:"dependencies"`
}

// Model converts the form into a step with the given id. A missing status
// stays empty, as for remediations.
func (f *Step) Model(id string) models.Step {
	return models.Step{
		ID:            id,
		Name:          f.Name,
		Description:   f.Description,
		Order:         int(f.Order),
		Status:        f.Status,
		Remediations:  ids(f.Remediations),
		EstimatedTime: f.EstimatedTime,
		DueDate:       optionalDate(f.DueDate),
		Dependencies:  ids(f.Dependencies),
	}
}

// InventoryItem is the create/update payload for a supply. Quantity and
// minimum stock are whole numbers; unit cost is decimal.
type InventoryItem struct {
	Name           string       `json:"name" validate:"required,max=200"`
	Description    string       `json:"description" validate:"max=2000"`
	Quantity       Count        `json:"quantity" validate:"gte=0"`
	Category       string       `json:"category" validate:"max=100"`
	Location       string       `json:"location" validate:"max=200"`
	ExpirationDate *models.Date `json:"expirationDate"`
	Supplier       string       `json:"supplier" validate:"max=200"`
	UnitCost       Amount       `json:"unitCost" validate:"gte=0"`
	MinimumStock   Count        `json:"minimumStock" validate:"gte=0"`
}

// Model converts the form into an inventory item with the given id.
func (f *InventoryItem) Model(id string) models.InventoryItem {
	return models.InventoryItem{
		ID:             id,
		Name:           f.Name,
		Description:    f.Description,
		Quantity:       float64(f.Quantity),
		Category:       f.Category,
		Location:       f.Location,
		ExpirationDate: optionalDate(f.ExpirationDate),
		Supplier:       f.Supplier,
		UnitCost:       float64(f.UnitCost),
		MinimumStock:   float64(f.MinimumStock),
	}
}

// Contact is the create/update payload for an emergency contact.
type Contact struct {
	Name           string                 `json:"name" validate:"required,max=200"`
	Relationship   string                 `json:"relationship" validate:"max=200"`
	Category       models.ContactCategory `json:"category" validate:"required,known"`
	Priority       models.ContactPriority `json:"priority" validate:"required,known"`
	PhonePrimary   string                 `json:"phonePrimary" validate:"required,max=50"`
	PhoneSecondary string                 `json:"phoneSecondary" validate:"max=50"`
	Email          string                 `json:"email" validate:"omitempty,email"`
	Address        string                 `json:"address" validate:"max=500"`
	Notes          string                 `json:"notes" validate:"max=2000"`
	IsActive       *bool                  `json:"isActive"`
}

// Model converts the form into a contact with the given id. Contacts are
// active unless the form says otherwise.
func (f *Contact) Model(id string) models.EmergencyContact {
	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	return models.EmergencyContact{
		ID:             id,
		Name:           f.Name,
		Relationship:   f.Relationship,
		Category:       f.Category,
		Priority:       f.Priority,
		PhonePrimary:   f.PhonePrimary,
		PhoneSecondary: f.PhoneSecondary,
		Email:          f.Email,
		Address:        f.Address,
		Notes:          f.Notes,
		IsActive:       active,
	}
}

// Category is the create/update payload for a scenario category.
type Category struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

// Model converts the form into a category with the given id.
func (f *Category) Model(id string) models.Category {
	return models.Category{ID: id, Name: f.Name, Description: f.Description, Color: f.Color}
}

// StatusChange sets the status of a remediation or step.
type StatusChange struct {
	Status models.Status `json:"status" validate:"required,known"`
}

// Move shifts a step within its plan.
type Move struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// Preferences is the payload for replacing the dashboard preferences.
type Preferences struct {
	DarkMode           bool             `json:"darkMode"`
	CurrentPage        string           `json:"currentPage" validate:"max=200"`
	DashboardSortBy    models.SortKey   `json:"dashboardSortBy" validate:"required,known"`
	DashboardSortOrder models.SortOrder `json:"dashboardSortOrder" validate:"required,known"`
	ExpandedCategories []string         `json:"expandedCategories"`
	SelectedCategories []string         `json:"selectedCategories"`
	ViewMode           models.ViewMode  `json:"viewMode" validate:"required,known"`
}

// Model converts the form into preferences.
func (f *Preferences) Model() models.Preferences {
	return models.Preferences{
		DarkMode:           f.DarkMode,
		CurrentPage:        f.CurrentPage,
		DashboardSortBy:    f.DashboardSortBy,
		DashboardSortOrder: f.DashboardSortOrder,
		ExpandedCategories: ids(f.ExpandedCategories),
		SelectedCategories: ids(f.SelectedCategories),
		ViewMode:           f.ViewMode,
	}
}
