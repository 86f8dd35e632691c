package models

// Plan is a static featured-placement offering. The catalog is configuration,
// not data: it is compiled in and never stored.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	DurationDays int      `json:"durationDays"`
	Benefits     []string `json:"benefits"`
}
