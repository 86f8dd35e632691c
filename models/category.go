package models

// Categories is the fixed set of professions the directory lists.
var Categories = []string{
	"Psychologist", "Lawyer", "Financial Advisor", "Career Coach",
	"Business Consultant", "Physiotherapist", "Nutritionist",
	"Accountant", "Architect", "Marriage Counselor", "Tax Consultant",
	"Real Estate Agent", "IT Consultant", "Marketing Consultant",
	"HR Consultant", "Life Coach", "Immigration Consultant",
	"Event Planner", "Interior Designer", "Education Consultant",
}

// CategoryCount pairs a category with the number of visible professionals in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
