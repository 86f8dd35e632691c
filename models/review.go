package models

import "time"

// Review moderation statuses.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
)

// Review is a client-submitted rating for a professional. Reviews are never
// edited after creation except for the pending -> approved transition, and
// are only removed when the referenced professional is deleted.
type Review struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	ClientName     string    `bson:"clientName" json:"clientName"`
	ClientEmail    string    `bson:"clientEmail" json:"clientEmail"`
	Rating         int       `bson:"rating" json:"rating"`
	Comment        string    `bson:"comment" json:"comment"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
