package models

import "time"

// ContactCategory groups emergency contacts.
type ContactCategory string

const (
	ContactFamily            ContactCategory = "family"
	ContactEmergencyServices ContactCategory = "emergency_services"
	ContactMedical           ContactCategory = "medical"
	ContactFinancial         ContactCategory = "financial"
	ContactLegal             ContactCategory = "legal"
	ContactInsurance         ContactCategory = "insurance"
	ContactUtilities         ContactCategory = "utilities"
	ContactOther             ContactCategory = "other"
)

// ValidContactCategories is the set of all valid contact categories.
var ValidContactCategories = []ContactCategory{
	ContactFamily,
	ContactEmergencyServices,
	ContactMedical,
	ContactFinancial,
	ContactLegal,
	ContactInsurance,
	ContactUtilities,
	ContactOther,
}

// IsValid returns true if the contact category is recognized.
func (c ContactCategory) IsValid() bool {
	for _, v := range ValidContactCategories {
		if c == v {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable category name.
func (c ContactCategory) DisplayName() string {
	switch c {
	case ContactFamily:
		return "Family"
	case ContactEmergencyServices:
		return "Emergency Services"
	case ContactMedical:
		return "Medical"
	case ContactFinancial:
		return "Financial"
	case ContactLegal:
		return "Legal"
	case ContactInsurance:
		return "Insurance"
	case ContactUtilities:
		return "Utilities"
	default:
		return "Other"
	}
}

// ContactPriority orders contacts within a category.
type ContactPriority string

const (
	PriorityPrimary   ContactPriority = "primary"
	PrioritySecondary ContactPriority = "secondary"
	PriorityTertiary  ContactPriority = "tertiary"
)

// ValidContactPriorities is the set of all valid contact priorities.
var ValidContactPriorities = []ContactPriority{PriorityPrimary, PrioritySecondary, PriorityTertiary}

// IsValid returns true if the contact priority is recognized.
func (p ContactPriority) IsValid() bool {
	for _, v := range ValidContactPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// EmergencyContact is a person or service to call during an emergency.
// Contacts are soft-deleted through IsActive.
type EmergencyContact struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Relationship   string          `json:"relationship" yaml:"relationship"` // e.g. "Spouse", "Fire Department"
	Category       ContactCategory `json:"category" yaml:"category"`
	Priority       ContactPriority `json:"priority" yaml:"priority"`
	PhonePrimary   string          `json:"phonePrimary" yaml:"phonePrimary"`
	PhoneSecondary string          `json:"phoneSecondary,omitempty" yaml:"phoneSecondary,omitempty"`
	Email          string          `json:"email,omitempty" yaml:"email,omitempty"`
	Address        string          `json:"address,omitempty" yaml:"address,omitempty"`
	Notes          string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	IsActive       bool            `json:"isActive" yaml:"isActive"`
	LastUpdated    time.Time       `json:"lastUpdated" yaml:"lastUpdated"`
}
