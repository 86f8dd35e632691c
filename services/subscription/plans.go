package subscription

import "expertbridge/models"

// Plans is the featured-placement catalog. Plan identity, pricing and window
// length are compiled in; changing them is a deploy, not a migration.
var Plans = []models.Plan{
	{
		ID:           "monthly",
		Name:         "Monthly Featured",
		Price:        2500,
		Currency:     "KES",
		DurationDays: 30,
		Benefits: []string{
			"Top placement in search results",
			"Featured badge on your profile",
		},
	},
	{
		ID:           "quarterly",
		Name:         "Quarterly Featured",
		Price:        6000,
		Currency:     "KES",
		DurationDays: 90,
		Benefits: []string{
			"Top placement in search results",
			"Featured badge on your profile",
			"Priority support",
		},
	},
	{
		ID:           "yearly",
		Name:         "Yearly Featured",
		Price:        20000,
		Currency:     "KES",
		DurationDays: 365,
		Benefits: []string{
			"Top placement in search results",
			"Featured badge on your profile",
			"Priority support",
			"Profile analytics report",
		},
	},
}

// FindPlan looks a plan up by id.
func FindPlan(planID string) (models.Plan, bool) {
	for _, plan := range Plans {
		if plan.ID == planID {
			return plan, true
		}
	}
	return models.Plan{}, false
}
