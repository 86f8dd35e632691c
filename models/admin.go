package models

import "time"

// Admin is a back-office account that moderates professionals and reviews.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Role         string    `bson:"role" json:"role"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
