package models

import (
	"time"
)

// Rating is a single client-submitted review of one listing. A rating is
// immutable after submission except for the Verified flag, which an admin
// toggles. Only verified ratings feed aggregate computation.
type Rating struct {
	ID        string `bson:"id" json:"id"`
	ListingID string `bson:"listingId" json:"listingId"`

	ClientName  string `bson:"clientName" json:"clientName,omitempty"`
	ClientEmail string `bson:"clientEmail" json:"clientEmail"`

	// Overall star score, 1-5.
	Score int `bson:"score" json:"score"`

	// Optional per-category sub-scores, each 1-5 when present.
	Treatment   *int `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Punctuality *int `bson:"punctuality,omitempty" json:"punctuality,omitempty"`
	Hygiene     *int `bson:"hygiene,omitempty" json:"hygiene,omitempty"`
	Service     *int `bson:"service,omitempty" json:"service,omitempty"`

	Comment  string `bson:"comment" json:"comment,omitempty"`
	ClientIP string `bson:"clientIp" json:"-"`

	Verified    bool      `bson:"verified" json:"verified"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}
