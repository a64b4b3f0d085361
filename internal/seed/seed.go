// Package seed holds the built-in dataset used on first start and whenever
// a stored collection is missing or unreadable.
package seed

import (
	"time"

	"github.com/ajitpratap0/riskready/internal/models"
)

var seededAt = time.Date(2024, time.September, 24, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *models.Date {
	return models.DatePtr(models.NewDate(y, m, d))
}

// Dataset returns a fresh copy of the default dataset. Callers may mutate it.
func Dataset() models.Dataset {
	return models.Dataset{
		Scenarios:    Scenarios(),
		Remediations: Remediations(),
		Plans:        Plans(),
		Steps:        Steps(),
		Inventory:    Inventory(),
		Contacts:     Contacts(),
		Categories:   Categories(),
	}
}

// Preferences returns the default preferences for the default categories.
func Preferences() models.Preferences {
	ds := Dataset()
	return models.DefaultPreferences(ds.CategoryIDs())
}

// Categories returns the default scenario categories.
func Categories() []models.Category {
	return []models.Category{
		{ID: "cat1", Name: "Natural Disasters", Description: "Weather-related and geological events", Color: "#4caf50"},
		{ID: "cat2", Name: "Infrastructure", Description: "Power, utilities, and essential services", Color: "#2196f3"},
		{ID: "cat3", Name: "Financial", Description: "Money, banking, and economic risks", Color: "#ff9800"},
		{ID: "cat4", Name: "Health & Safety", Description: "Personal health and safety concerns", Color: "#f44336"},
		{ID: "cat5", Name: "Digital Security", Description: "Cyber threats and data protection", Color: "#9c27b0"},
		{ID: "cat6", Name: "Personal Impact", Description: "Life changes and personal circumstances", Color: "#795548"},
	}
}

// Scenarios returns the default scenarios.
func Scenarios() []models.Scenario {
	return []models.Scenario{
		{
			ID:            "1",
			Name:          "Power Outage",
			Description:   "Extended loss of electrical power due to storm, grid failure, or other causes.",
			Severity:      models.SeverityMedium,
			Probability:   models.ProbabilityMedium,
			Velocity:      models.VelocityModerate,
			Detectability: models.DetectabilityEasy,
			SeasonalRisk:  []models.Season{models.SeasonSummer, models.SeasonWinter, models.SeasonFall},
			Categories:    []string{"cat1", "cat2"},
			Plans:         []string{"1", "2", "3", "4", "5"},
		},
		{
			ID:            "2",
			Name:          "Natural Disaster",
			Description:   "Events like hurricanes, earthquakes, floods, or wildfires affecting the area.",
			Severity:      models.SeverityHigh,
			Probability:   models.ProbabilityLow,
			Velocity:      models.VelocityFast,
			Detectability: models.DetectabilityModerate,
			SeasonalRisk:  []models.Season{models.SeasonSummer, models.SeasonFall, models.SeasonYearRound},
			Categories:    []string{"cat1"},
		},
		{
			ID:            "3",
			Name:          "Bank Shutdown",
			Description:   "Banks or financial institutions temporarily close, limiting access to funds.",
			Severity:      models.SeverityMedium,
			Probability:   models.ProbabilityLow,
			Velocity:      models.VelocityModerate,
			Detectability: models.DetectabilityEasy,
			SeasonalRisk:  []models.Season{models.SeasonYearRound},
			Categories:    []string{"cat3"},
			Plans:         []string{"6"},
		},
		{
			ID:            "4",
			Name:          "Job Loss",
			Description:   "Unexpected loss of employment, affecting income and financial stability.",
			Severity:      models.SeverityHigh,
			Probability:   models.ProbabilityMedium,
			Velocity:      models.VelocitySlow,
			Detectability: models.DetectabilityEasy,
			SeasonalRisk:  []models.Season{models.SeasonYearRound},
			Categories:    []string{"cat3", "cat6"},
		},
		{
			ID:            "5",
			Name:          "Cyber Attack",
			Description:   "Hacking or malware affecting personal or financial data.",
			Severity:      models.SeverityHigh,
			Probability:   models.ProbabilityLow,
			Velocity:      models.VelocityFast,
			Detectability: models.DetectabilityDifficult,
			SeasonalRisk:  []models.Season{models.SeasonYearRound},
			Categories:    []string{"cat5"},
			Plans:         []string{"8"},
		},
		{
			ID:            "6",
			Name:          "Pandemic",
			Description:   "Widespread disease outbreak requiring quarantine and social distancing.",
			Severity:      models.SeverityHigh,
			Probability:   models.ProbabilityLow,
			Velocity:      models.VelocityModerate,
			Detectability: models.DetectabilityModerate,
			SeasonalRisk:  []models.Season{models.SeasonFall, models.SeasonWinter, models.SeasonSpring},
			Categories:    []string{"cat4"},
		},
		{
			ID:            "7",
			Name:          "Data Backup Failure",
			Description:   "Loss of important digital data due to hardware failure or accidental deletion.",
			Severity:      models.SeverityMedium,
			Probability:   models.ProbabilityMedium,
			Velocity:      models.VelocityImmediate,
			Detectability: models.DetectabilityEasy,
			SeasonalRisk:  []models.Season{models.SeasonYearRound},
			Categories:    []string{"cat5"},
		},
	}
}

// Remediations returns the default remediations.
func Remediations() []models.Remediation {
	return []models.Remediation{
		{
			ID:                  "1",
			Name:                "Stock Emergency Supplies",
			Description:         "Maintain a supply of non-perishable food, water, and essential items for at least 2 weeks.",
			ApplicableScenarios: []string{"1", "2", "6"},
			Status:              models.StatusInProgress,
			RequiredInventory:   []string{"1", "2", "3", "4", "5"},
			EstimatedTime:       "4 hours",
			DueDate:             date(2025, time.June, 1),
		},
		{
			ID:                  "2",
			Name:                "Keep Cash on Hand",
			Description:         "Maintain a reasonable amount of physical cash for emergencies.",
			ApplicableScenarios: []string{"1", "3"},
			Status:              models.StatusCompleted,
			RequiredInventory:   []string{"6"},
		},
		{
			ID:                  "3",
			Name:                "Emergency Fund",
			Description:         "Build and maintain an emergency savings fund covering 3-6 months of expenses.",
			ApplicableScenarios: []string{"4"},
			Status:              models.StatusNotStarted,
			EstimatedTime:       "3 months",
			DueDate:             date(2025, time.December, 31),
		},
		{
			ID:                  "4",
			Name:                "Cybersecurity Measures",
			Description:         "Use strong passwords, enable 2FA, and keep software updated.",
			ApplicableScenarios: []string{"5"},
			Status:              models.StatusCompleted,
		},
		{
			ID:                  "5",
			Name:                "Regular Data Backups",
			Description:         "Perform regular backups of important data to external drives or cloud services.",
			ApplicableScenarios: []string{"7"},
			Status:              models.StatusInProgress,
		},
		{
			ID:                  "6",
			Name:                "Home Generator",
			Description:         "Install a backup generator for essential power needs.",
			ApplicableScenarios: []string{"1"},
			Status:              models.StatusNotStarted,
			RequiredInventory:   []string{"7"},
		},
	}
}

// Plans returns the default response plans. Plan 4 lists step s3 in its
// Steps mirror although s3 belongs to plan 2.
func Plans() []models.Plan {
	return []models.Plan{
		{ID: "1", Name: "Immediate Response - Power Outage", Description: "Actions to take as soon as power goes out.", ScenarioID: "1", Order: 1, TriggerCondition: "Power outage detected", Steps: []string{"s1", "s2"}},
		{ID: "2", Name: "Short-term Power Outage (Hours)", Description: "Plan for outages lasting several hours.", ScenarioID: "1", Order: 2, TriggerCondition: "Power out for more than 1 hour", Steps: []string{"s3", "s4"}},
		{ID: "3", Name: "Extended Power Outage (Days)", Description: "Plan for prolonged power outages requiring backup power.", ScenarioID: "1", Order: 3, TriggerCondition: "Power out for more than 24 hours", Steps: []string{"s5", "s6"}},
		{ID: "4", Name: "Generator Failure - What If", Description: "What to do if the backup generator fails or runs out of fuel.", ScenarioID: "1", Order: 4, TriggerCondition: "Generator fails or fuel runs out", Steps: []string{"s3"}},
		{ID: "5", Name: "Data Backup Failure - What If", Description: "What to do if local data storage fails during power outage.", ScenarioID: "1", Order: 5, TriggerCondition: "Local NAS or storage fails", Steps: []string{}},
		{ID: "6", Name: "Bank Shutdown Response", Description: "Immediate actions when banks close unexpectedly.", ScenarioID: "3", Order: 1, TriggerCondition: "Banks announce closure", Steps: []string{"s7"}},
		{ID: "7", Name: "Job Loss Immediate Response", Description: "First steps to take when employment is lost.", ScenarioID: "4", Order: 1, TriggerCondition: "Job loss confirmed", Steps: []string{"s8"}, DueDate: date(2025, time.January, 15)},
		{ID: "8", Name: "Cyber Attack Response", Description: "Immediate actions to take when cyber attack is detected.", ScenarioID: "5", Order: 1, TriggerCondition: "Cyber attack detected", Steps: []string{"s9"}},
	}
}

// Steps returns the default plan steps.
func Steps() []models.Step {
	return []models.Step{
		{ID: "s1", PlanID: "1", Name: "Assess the situation", Description: "Check power status, determine scope and likely duration", Order: 1, Status: models.StatusCompleted, Remediations: []string{}, EstimatedTime: "5 minutes"},
		{ID: "s2", PlanID: "1", Name: "Secure immediate cash access", Description: "Ensure access to physical cash for essential purchases", Order: 2, Status: models.StatusCompleted, Remediations: []string{"2"}, EstimatedTime: "10 minutes"},
		{ID: "s3", PlanID: "2", Name: "Activate emergency supplies", Description: "Locate and prepare emergency food, water, and supplies", Order: 1, Status: models.StatusInProgress, Remediations: []string{"1"}, EstimatedTime: "30 minutes"},
		{ID: "s4", PlanID: "2", Name: "Check generator readiness", Description: "Verify generator is ready and fuel is available", Order: 2, Status: models.StatusNotStarted, Remediations: []string{"6"}, EstimatedTime: "15 minutes"},
		{ID: "s5", PlanID: "3", Name: "Start generator", Description: "Set up and start backup generator for essential power", Order: 1, Status: models.StatusNotStarted, Remediations: []string{"6"}, EstimatedTime: "20 minutes"},
		{ID: "s6", PlanID: "3", Name: "Monitor fuel levels", Description: "Track generator fuel consumption and plan refueling", Order: 2, Status: models.StatusNotStarted, Remediations: []string{}, EstimatedTime: "Ongoing"},
		{ID: "s7", PlanID: "6", Name: "Verify cash reserves", Description: "Confirm sufficient physical cash is available", Order: 1, Status: models.StatusCompleted, Remediations: []string{"2"}, EstimatedTime: "5 minutes"},
		{ID: "s8", PlanID: "7", Name: "Access emergency fund", Description: "Review and prepare to access emergency savings", Order: 1, Status: models.StatusNotStarted, Remediations: []string{"3"}, EstimatedTime: "30 minutes", DueDate: date(2025, time.January, 15)},
		{ID: "s9", PlanID: "8", Name: "Execute security protocols", Description: "Follow established cybersecurity response procedures", Order: 1, Status: models.StatusCompleted, Remediations: []string{"4"}, EstimatedTime: "15 minutes"},
	}
}

// Inventory returns the default inventory.
func Inventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "1", Name: "Canned Food", Description: "Non-perishable canned goods like vegetables, soups, and meats.", Quantity: 50, Category: "Food", Location: "Pantry Shelf A", ExpirationDate: date(2026, time.December, 31), Supplier: "Local Grocery Store", UnitCost: 2.50, MinimumStock: 20, LastUpdated: seededAt},
		{ID: "2", Name: "Bottled Water", Description: "Clean drinking water in plastic bottles.", Quantity: 100, Category: "Water", Location: "Garage Storage", Supplier: "Bulk Water Supplier", UnitCost: 0.50, MinimumStock: 50, LastUpdated: seededAt},
		{ID: "3", Name: "First Aid Kit", Description: "Medical supplies including bandages, antiseptics, and medications.", Quantity: 1, Category: "Medical", Location: "Bathroom Cabinet", ExpirationDate: date(2025, time.June, 30), Supplier: "Medical Supply Co.", UnitCost: 25.00, MinimumStock: 1, LastUpdated: seededAt},
		{ID: "4", Name: "Flashlights", Description: "Battery-powered or rechargeable flashlights.", Quantity: 5, Category: "Tools", Location: "Emergency Kit", Supplier: "Hardware Store", UnitCost: 15.00, MinimumStock: 2, LastUpdated: seededAt},
		{ID: "5", Name: "Batteries", Description: "Various sizes of batteries for devices.", Quantity: 20, Category: "Tools", Location: "Utility Drawer", Supplier: "Electronics Store", UnitCost: 5.00, MinimumStock: 10, LastUpdated: seededAt},
		{ID: "6", Name: "Cash", Description: "Physical currency in small denominations.", Quantity: 500, Category: "Finance", Location: "Safe", Supplier: "Bank", UnitCost: 1.00, MinimumStock: 100, LastUpdated: seededAt},
		{ID: "7", Name: "Generator Fuel", Description: "Stabilized gasoline for emergency generator.", Quantity: 10, Category: "Fuel", Location: "Garage", ExpirationDate: date(2025, time.March, 31), Supplier: "Fuel Station", UnitCost: 4.00, MinimumStock: 5, LastUpdated: seededAt},
		{ID: "8", Name: "Blankets", Description: "Thermal blankets for emergency warmth.", Quantity: 12, Category: "Clothing", Location: "Closet", Supplier: "Department Store", UnitCost: 8.00, MinimumStock: 6, LastUpdated: seededAt},
	}
}

// Contacts returns the default emergency contacts.
func Contacts() []models.EmergencyContact {
	return []models.EmergencyContact{
		{ID: "ec1", Name: "Local Police Department", Relationship: "Emergency Services", Category: models.ContactEmergencyServices, Priority: models.PriorityPrimary, PhonePrimary: "911", PhoneSecondary: "(555) 123-4567", Address: "123 Main St, Anytown, USA", Notes: "Non-emergency line available 24/7", IsActive: true, LastUpdated: seededAt},
		{ID: "ec2", Name: "Fire Department", Relationship: "Emergency Services", Category: models.ContactEmergencyServices, Priority: models.PriorityPrimary, PhonePrimary: "911", PhoneSecondary: "(555) 987-6543", Address: "456 Fire Station Rd, Anytown, USA", Notes: "Handles fire emergencies and medical calls", IsActive: true, LastUpdated: seededAt},
		{ID: "ec3", Name: "Local Hospital - Emergency Room", Relationship: "Emergency Medical Services", Category: models.ContactMedical, Priority: models.PriorityPrimary, PhonePrimary: "(555) 555-1234", Address: "789 Hospital Way, Anytown, USA", Notes: "24/7 emergency room services", IsActive: true, LastUpdated: seededAt},
		{ID: "ec4", Name: "John Smith", Relationship: "Spouse", Category: models.ContactFamily, Priority: models.PriorityPrimary, PhonePrimary: "(555) 111-2222", PhoneSecondary: "(555) 111-3333", Email: "john.smith@email.com", Address: "123 Family St, Anytown, USA", Notes: "Emergency contact and next of kin", IsActive: true, LastUpdated: seededAt},
		{ID: "ec5", Name: "Jane Smith", Relationship: "Sister", Category: models.ContactFamily, Priority: models.PrioritySecondary, PhonePrimary: "(555) 444-5555", Email: "jane.smith@email.com", Address: "456 Sister Ave, Nearby City, USA", Notes: "Lives 30 minutes away, can provide emergency support", IsActive: true, LastUpdated: seededAt},
		{ID: "ec6", Name: "Dr. Sarah Johnson", Relationship: "Primary Care Physician", Category: models.ContactMedical, Priority: models.PriorityPrimary, PhonePrimary: "(555) 666-7777", Email: "dr.johnson@medicalcenter.com", Address: "321 Medical Center Dr, Anytown, USA", Notes: "Family doctor, available Mon-Fri 9am-5pm", IsActive: true, LastUpdated: seededAt},
		{ID: "ec7", Name: "Dr. Michael Chen", Relationship: "Dentist", Category: models.ContactMedical, Priority: models.PrioritySecondary, PhonePrimary: "(555) 888-9999", Email: "dr.chen@dentalcare.com", Address: "654 Dental Plaza, Anytown, USA", Notes: "Emergency dental care available", IsActive: true, LastUpdated: seededAt},
		{ID: "ec8", Name: "Anytown Bank", Relationship: "Primary Bank", Category: models.ContactFinancial, Priority: models.PriorityPrimary, PhonePrimary: "(555) 000-1111", PhoneSecondary: "(555) 000-2222", Email: "support@anytownbank.com", Address: "987 Bank Street, Anytown, USA", Notes: "24/7 customer service, emergency card replacement", IsActive: true, LastUpdated: seededAt},
		{ID: "ec9", Name: "SafeGuard Insurance", Relationship: "Home Insurance Provider", Category: models.ContactInsurance, Priority: models.PriorityPrimary, PhonePrimary: "(800) 123-4567", Email: "claims@safe-guard.com", Address: "159 Insurance Blvd, Insurance City, USA", Notes: "24/7 claims hotline for emergency situations", IsActive: true, LastUpdated: seededAt},
		{ID: "ec10", Name: "Power Utility Company", Relationship: "Electricity Provider", Category: models.ContactUtilities, Priority: models.PriorityPrimary, PhonePrimary: "(555) 333-4444", PhoneSecondary: "(555) 333-5555", Email: "emergency@powerutility.com", Address: "753 Utility Road, Power City, USA", Notes: "Emergency power outage reporting and restoration", IsActive: true, LastUpdated: seededAt},
	}
}
