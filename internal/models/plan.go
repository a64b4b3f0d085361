package models

// Plan is an ordered response to a triggered scenario.
type Plan struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	Description      string `json:"description" yaml:"description"`
	ScenarioID       string `json:"scenarioId" yaml:"scenarioId"`
	Order            int    `json:"order" yaml:"order"` // 1 = first; not guaranteed unique
	TriggerCondition string `json:"triggerCondition" yaml:"triggerCondition"`
	// Steps mirrors Step.PlanID; the step side owns the relationship.
	Steps   []string `json:"steps" yaml:"steps"`
	DueDate *Date    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// Step is a single actionable item within a plan.
type Step struct {
	ID            string   `json:"id" yaml:"id"`
	PlanID        string   `json:"planId" yaml:"planId"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Order         int      `json:"order" yaml:"order"`
	Status        Status   `json:"status" yaml:"status"`
	Remediations  []string `json:"remediations" yaml:"remediations"`
	EstimatedTime string   `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
	DueDate       *Date    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	// Dependencies are declared for display only and never enforced.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Clone returns a deep copy.
func (p Plan) Clone() Plan {
	p.Steps = cloneSlice(p.Steps)
	p.DueDate = cloneDate(p.DueDate)
	return p
}

// Clone returns a deep copy.
func (s Step) Clone() Step {
	s.Remediations = cloneSlice(s.Remediations)
	s.Dependencies = cloneSlice(s.Dependencies)
	s.DueDate = cloneDate(s.DueDate)
	return s
}
