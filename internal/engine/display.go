// Package engine derives preparedness, risk and inventory status from a
// dataset snapshot. Every function is pure: it reads its inputs, never
// mutates them, and recomputes from scratch on each call.
package engine

import "github.com/ajitpratap0/riskready/internal/models"

// Tag is a display severity hint attached to derived values.
type Tag string

const (
	TagSuccess   Tag = "success"
	TagWarning   Tag = "warning"
	TagError     Tag = "error"
	TagInfo      Tag = "info"
	TagPrimary   Tag = "primary"
	TagSecondary Tag = "secondary"
	TagDefault   Tag = "default"
)

// DefaultPaletteColor is returned for contact categories with no palette entry.
const DefaultPaletteColor = "grey"

var severityTags = map[models.Severity]Tag{
	models.SeverityLow:    TagSuccess,
	models.SeverityMedium: TagWarning,
	models.SeverityHigh:   TagError,
}

var probabilityTags = map[models.Probability]Tag{
	models.ProbabilityLow:    TagInfo,
	models.ProbabilityMedium: TagWarning,
	models.ProbabilityHigh:   TagError,
}

var statusTags = map[models.Status]Tag{
	models.StatusCompleted:  TagSuccess,
	models.StatusInProgress: TagWarning,
	models.StatusNotStarted: TagError,
}

var contactCategoryTags = map[models.ContactCategory]Tag{
	models.ContactEmergencyServices: TagError,
	models.ContactMedical:           TagSuccess,
	models.ContactFamily:            TagPrimary,
	models.ContactFinancial:         TagWarning,
	models.ContactInsurance:         TagInfo,
	models.ContactUtilities:         TagSecondary,
	models.ContactLegal:             TagDefault,
	models.ContactOther:             TagDefault,
}

var contactPriorityTags = map[models.ContactPriority]Tag{
	models.PriorityPrimary:   TagError,
	models.PrioritySecondary: TagWarning,
	models.PriorityTertiary:  TagInfo,
}

var contactCategoryColors = map[models.ContactCategory]string{
	models.ContactEmergencyServices: "red",
	models.ContactMedical:           "green",
	models.ContactFamily:            "blue",
	models.ContactFinancial:         "orange",
	models.ContactInsurance:         "lightblue",
	models.ContactUtilities:         "purple",
	models.ContactLegal:             "grey",
	models.ContactOther:             "grey",
}

// SeverityTag maps a severity to its display tag.
func SeverityTag(s models.Severity) Tag { return lookupTag(severityTags, s) }

// ProbabilityTag maps a probability to its display tag.
func ProbabilityTag(p models.Probability) Tag { return lookupTag(probabilityTags, p) }

// StatusTag maps a remediation or step status to its display tag.
func StatusTag(s models.Status) Tag { return lookupTag(statusTags, s) }

// ContactCategoryTag maps a contact category to its display tag.
func ContactCategoryTag(c models.ContactCategory) Tag { return lookupTag(contactCategoryTags, c) }

// ContactPriorityTag maps a contact priority to its display tag.
func ContactPriorityTag(p models.ContactPriority) Tag { return lookupTag(contactPriorityTags, p) }

// ContactCategoryColor maps a contact category to its palette color.
func ContactCategoryColor(c models.ContactCategory) string {
	if color, ok := contactCategoryColors[c]; ok {
		return color
	}
	return DefaultPaletteColor
}

func lookupTag[K comparable](table map[K]Tag, k K) Tag {
	if tag, ok := table[k]; ok {
		return tag
	}
	return TagDefault
}
