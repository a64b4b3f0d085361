package models

// Severity rates how much harm a scenario causes when it happens.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ValidSeverities is the set of all valid severities.
var ValidSeverities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// IsValid returns true if the severity is recognized.
func (s Severity) IsValid() bool {
	for _, v := range ValidSeverities {
		if s == v {
			return true
		}
	}
	return false
}

// Probability rates how likely a scenario is.
type Probability string

const (
	ProbabilityLow    Probability = "low"
	ProbabilityMedium Probability = "medium"
	ProbabilityHigh   Probability = "high"
)

// ValidProbabilities is the set of all valid probabilities.
var ValidProbabilities = []Probability{ProbabilityLow, ProbabilityMedium, ProbabilityHigh}

// IsValid returns true if the probability is recognized.
func (p Probability) IsValid() bool {
	for _, v := range ValidProbabilities {
		if p == v {
			return true
		}
	}
	return false
}

// Velocity rates how fast a scenario unfolds once it starts.
type Velocity string

const (
	VelocitySlow      Velocity = "slow"
	VelocityModerate  Velocity = "moderate"
	VelocityFast      Velocity = "fast"
	VelocityImmediate Velocity = "immediate"
)

// ValidVelocities is the set of all valid velocities.
var ValidVelocities = []Velocity{VelocitySlow, VelocityModerate, VelocityFast, VelocityImmediate}

// IsValid returns true if the velocity is recognized.
func (v Velocity) IsValid() bool {
	for _, x := range ValidVelocities {
		if v == x {
			return true
		}
	}
	return false
}

// Detectability rates how hard it is to notice a scenario coming.
type Detectability string

const (
	DetectabilityEasy      Detectability = "easy"
	DetectabilityModerate  Detectability = "moderate"
	DetectabilityDifficult Detectability = "difficult"
)

// ValidDetectabilities is the set of all valid detectability ratings.
var ValidDetectabilities = []Detectability{DetectabilityEasy, DetectabilityModerate, DetectabilityDifficult}

// IsValid returns true if the detectability is recognized.
func (d Detectability) IsValid() bool {
	for _, v := range ValidDetectabilities {
		if d == v {
			return true
		}
	}
	return false
}

// Season is a period of the year when a scenario is more likely.
type Season string

const (
	SeasonWinter    Season = "winter"
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonFall      Season = "fall"
	SeasonYearRound Season = "year_round"
)

// ValidSeasons is the set of all valid seasons.
var ValidSeasons = []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall, SeasonYearRound}

// IsValid returns true if the season is recognized.
func (s Season) IsValid() bool {
	for _, v := range ValidSeasons {
		if s == v {
			return true
		}
	}
	return false
}

// Scenario is a risk event the household prepares for.
type Scenario struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Description   string        `json:"description" yaml:"description"`
	Severity      Severity      `json:"severity" yaml:"severity"`
	Probability   Probability   `json:"probability" yaml:"probability"`
	Velocity      Velocity      `json:"velocity" yaml:"velocity"`
	Detectability Detectability `json:"detectability" yaml:"detectability"`
	SeasonalRisk  []Season      `json:"seasonalRisk,omitempty" yaml:"seasonalRisk,omitempty"`
	Categories    []string      `json:"categories" yaml:"categories"`
	// Plans mirrors Plan.ScenarioID and may be stale; derive from plans instead.
	Plans []string `json:"plans,omitempty" yaml:"plans,omitempty"`
}

// HasSeason reports whether season is listed in the scenario's seasonal risk.
func (s *Scenario) HasSeason(season Season) bool {
	for _, v := range s.SeasonalRisk {
		if v == season {
			return true
		}
	}
	return false
}

// InCategory reports whether the scenario is tagged with the category id.
func (s *Scenario) InCategory(categoryID string) bool {
	return containsID(s.Categories, categoryID)
}

// Category groups scenarios for display.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color" yaml:"color"` // hex color for UI theming
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (s Scenario) Clone() Scenario {
	s.SeasonalRisk = cloneSlice(s.SeasonalRisk)
	s.Categories = cloneSlice(s.Categories)
	s.Plans = cloneSlice(s.Plans)
	return s
}
