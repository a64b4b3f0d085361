package engine

import "github.com/ajitpratap0/riskready/internal/models"

// ContactCategoryOrder is the order contact groups are listed in.
var ContactCategoryOrder = []models.ContactCategory{
	models.ContactEmergencyServices,
	models.ContactMedical,
	models.ContactFamily,
	models.ContactFinancial,
	models.ContactInsurance,
	models.ContactUtilities,
	models.ContactLegal,
	models.ContactOther,
}

// ContactGroup is the active contacts of one category.
type ContactGroup struct {
	Category models.ContactCategory    `json:"category"`
	Name     string                    `json:"name"`
	Color    string                    `json:"color"`
	Contacts []models.EmergencyContact `json:"contacts"`
}

// ContactsByCategory groups active contacts in ContactCategoryOrder.
// Empty groups are omitted. Contacts with an unrecognized category are
// listed under Other.
func ContactsByCategory(contacts []models.EmergencyContact) []ContactGroup {
	buckets := make(map[models.ContactCategory][]models.EmergencyContact)
	for i := range contacts {
		c := contacts[i]
		if !c.IsActive {
			continue
		}
		cat := c.Category
		if !cat.IsValid() {
			cat = models.ContactOther
		}
		buckets[cat] = append(buckets[cat], c)
	}

	var groups []ContactGroup
	for _, cat := range ContactCategoryOrder {
		list := buckets[cat]
		if len(list) == 0 {
			continue
		}
		groups = append(groups, ContactGroup{
			Category: cat,
			Name:     cat.DisplayName(),
			Color:    ContactCategoryColor(cat),
			Contacts: list,
		})
	}
	return groups
}
