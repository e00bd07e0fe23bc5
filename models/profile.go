package models

import (
	"time"
)

// Plan identifiers. The plan controls how many photos a listing may carry.
const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanVIP     = "vip"
)

// Verification holds the admin-controlled verification flags of a profile.
type Verification struct {
	EmailVerified    bool `bson:"emailVerified" json:"emailVerified"`
	PhoneVerified    bool `bson:"phoneVerified" json:"phoneVerified"`
	DocumentVerified bool `bson:"documentVerified" json:"documentVerified"`
}

// Count returns how many of the three verification flags are set.
func (v Verification) Count() int {
	n := 0
	if v.EmailVerified {
		n++
	}
	if v.PhoneVerified {
		n++
	}
	if v.DocumentVerified {
		n++
	}
	return n
}

// Profile represents a registered account that owns zero or more listings.
type Profile struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`

	FirstName   string     `bson:"firstName" json:"firstName,omitempty"`
	City        string     `bson:"city" json:"city,omitempty"`
	Gender      string     `bson:"gender" json:"gender,omitempty"`
	BirthDate   *time.Time `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	Plan        string     `bson:"plan" json:"plan"`
	Ethnicity   string     `bson:"ethnicity" json:"ethnicity,omitempty"`
	Nationality string     `bson:"nationality" json:"nationality,omitempty"`
	Bio         string     `bson:"bio" json:"bio,omitempty"`

	Verification Verification `bson:"verification" json:"verification"`

	// Cached ranking fields. Valid only as of the last batch recomputation;
	// they are not updated transactionally with rating writes.
	RankingScore    float64 `bson:"rankingScore" json:"rankingScore"`
	RankingPosition int     `bson:"rankingPosition" json:"rankingPosition"`

	TotalVisits   int `bson:"totalVisits" json:"totalVisits"`
	TotalContacts int `bson:"totalContacts" json:"totalContacts"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName prefers the human first name over the login handle.
func (p Profile) DisplayName() string {
	if p.FirstName != "" {
		return p.FirstName
	}
	return p.Username
}

// MaxPhotos returns the per-listing photo limit for the profile's plan.
func (p Profile) MaxPhotos() int {
	if p.Plan == PlanBasic || p.Plan == "" {
		return 1
	}
	return 10
}
