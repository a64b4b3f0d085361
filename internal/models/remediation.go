package models

// Status tracks progress on remediations and plan steps.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ValidStatuses is the set of all valid statuses.
var ValidStatuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// IsValid returns true if the status is recognized.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Remediation is a mitigating action or standing measure for one or more scenarios.
type Remediation struct {
	ID                  string   `json:"id" yaml:"id"`
	Name                string   `json:"name" yaml:"name"`
	Description         string   `json:"description" yaml:"description"`
	ApplicableScenarios []string `json:"applicableScenarios" yaml:"applicableScenarios"`
	Status              Status   `json:"status" yaml:"status"`
	RequiredInventory   []string `json:"requiredInventory,omitempty" yaml:"requiredInventory,omitempty"`
	EstimatedTime       string   `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"` // e.g. "2 hours"
	DueDate             *Date    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// AppliesTo reports whether the remediation mitigates the scenario.
func (r *Remediation) AppliesTo(scenarioID string) bool {
	return containsID(r.ApplicableScenarios, scenarioID)
}

// Clone returns a deep copy.
func (r Remediation) Clone() Remediation {
	r.ApplicableScenarios = cloneSlice(r.ApplicableScenarios)
	r.RequiredInventory = cloneSlice(r.RequiredInventory)
	r.DueDate = cloneDate(r.DueDate)
	return r
}
