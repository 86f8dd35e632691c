package models

import "time"

// Subscription record statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Subscription is an append-only payment record for featured placement.
// Reference is the idempotency key correlating payment initiation with its
// later verification; once Status is completed the record is immutable and
// re-verification returns the stored window without re-applying it.
type Subscription struct {
	ID             string     `bson:"id" json:"id"`
	ProfessionalID string     `bson:"professionalId" json:"professionalId"`
	PlanID         string     `bson:"planId" json:"planId"`
	Reference      string     `bson:"reference" json:"reference"`
	Amount         float64    `bson:"amount" json:"amount"`
	Currency       string     `bson:"currency" json:"currency"`
	Status         string     `bson:"status" json:"status"`
	Simulated      bool       `bson:"simulated" json:"simulated"`
	StartDate      *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	CompletedAt    *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
