package models

import (
	"time"
)

// Verification statuses. An admin is the only actor that moves a
// professional between them.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Subscription statuses on the professional aggregate.
const (
	SubscriptionInactive = "inactive"
	SubscriptionActive   = "active"
)

// Location is the professional's service area.
type Location struct {
	Country string `bson:"country" json:"country"`
	State   string `bson:"state" json:"state"`
	City    string `bson:"city" json:"city"`
}

// ServiceOptions describes how the professional delivers services.
type ServiceOptions struct {
	InPerson      bool   `bson:"inPerson" json:"inPerson"`
	Virtual       bool   `bson:"virtual" json:"virtual"`
	ServiceRadius string `bson:"serviceRadius" json:"serviceRadius"`
}

// ProfilePhoto references the stored profile image.
type ProfilePhoto struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId,omitempty" json:"publicId,omitempty"`
}

// Verification is the admin-controlled trust state gating directory visibility.
type Verification struct {
	Status          string     `bson:"status" json:"status"`
	RejectionReason string     `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	VerifiedAt      *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	VerifiedBy      string     `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
}

// Featured is the time-bounded elevated-placement window. The stored flag is
// never swept: effective featured status is IsFeatured && FeaturedUntil > now,
// evaluated at read time.
type Featured struct {
	IsFeatured    bool       `bson:"isFeatured" json:"isFeatured"`
	FeaturedUntil *time.Time `bson:"featuredUntil,omitempty" json:"featuredUntil,omitempty"`
	FeaturedTier  string     `bson:"featuredTier" json:"featuredTier"`
}

// ActiveAt reports whether the featured window covers the given instant.
func (f Featured) ActiveAt(now time.Time) bool {
	return f.IsFeatured && f.FeaturedUntil != nil && f.FeaturedUntil.After(now)
}

// SubscriptionInfo is the professional's current paid placement state.
type SubscriptionInfo struct {
	Plan       string     `bson:"plan,omitempty" json:"plan,omitempty"`
	Status     string     `bson:"status" json:"status"`
	StartDate  *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate    *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	PaymentRef string     `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
}

// Ratings carries the derived aggregate over approved reviews. Average is the
// arithmetic mean rounded to one decimal; both fields are rewritten together.
type Ratings struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// Analytics holds best-effort engagement counters.
type Analytics struct {
	ProfileViews  int64      `bson:"profileViews" json:"profileViews"`
	ContactClicks int64      `bson:"contactClicks" json:"contactClicks"`
	LastViewedAt  *time.Time `bson:"lastViewedAt,omitempty" json:"lastViewedAt,omitempty"`
}

// Professional is the aggregate root for a listed service provider. It
// exclusively owns its embedded sub-documents; reviews and subscription
// records reference it by id.
type Professional struct {
	ID           string `bson:"id" json:"id"`
	FullName     string `bson:"fullName" json:"fullName"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`

	Category    string `bson:"category" json:"category"`
	Subcategory string `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Bio         string `bson:"bio" json:"bio"`
	Experience  int    `bson:"experience" json:"experience"`

	Location       Location          `bson:"location" json:"location"`
	ServiceOptions ServiceOptions    `bson:"serviceOptions" json:"serviceOptions"`
	Languages      []string          `bson:"languages" json:"languages"`
	SocialLinks    map[string]string `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	ProfilePhoto   ProfilePhoto      `bson:"profilePhoto" json:"profilePhoto"`

	Verification Verification     `bson:"verification" json:"verification"`
	Featured     Featured         `bson:"featured" json:"featured"`
	Subscription SubscriptionInfo `bson:"subscription" json:"subscription"`
	Ratings      Ratings          `bson:"ratings" json:"ratings"`
	Analytics    Analytics        `bson:"analytics" json:"analytics"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
