package models

import (
	"strings"
	"time"
)

// Listing categories.
const (
	CategoryFemale = "escorts-femeninos"
	CategoryMale   = "escorts-masculinos"
	CategoryTrans  = "trans-travestis"
)

// CategoryLabel maps a category identifier to its display label.
func CategoryLabel(category string) string {
	switch category {
	case CategoryFemale:
		return "Escort Femenino"
	case CategoryMale:
		return "Escort Masculino"
	case CategoryTrans:
		return "Trans y Travestis"
	default:
		return category
	}
}

// Contact visibility modes for a listing.
const (
	ContactBoth  = "both"
	ContactPhone = "phone"
	ContactEmail = "email"
)

// PlaceholderPhotoURL is served when a listing has no photos yet.
const PlaceholderPhotoURL = "/static/img/no-image.jpg"

// Photo is a single image attached to a listing.
type Photo struct {
	ID         string    `bson:"id" json:"id"`
	URL        string    `bson:"url" json:"url"`
	PublicID   string    `bson:"publicId" json:"-"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// Listing is a published service offer tied to one owner profile.
type Listing struct {
	ID        string `bson:"id" json:"id"`
	ProfileID string `bson:"profileId" json:"profileId"`

	Title        string  `bson:"title" json:"title"`
	Description  string  `bson:"description" json:"description"`
	Category     string  `bson:"category" json:"category"`
	City         string  `bson:"city" json:"city"`
	Country      string  `bson:"country" json:"country"`
	Price        float64 `bson:"price" json:"price"`
	Gender       string  `bson:"gender" json:"gender"`
	Age          int     `bson:"age" json:"age"`
	Address      string  `bson:"address" json:"address,omitempty"`
	Neighborhood string  `bson:"neighborhood" json:"neighborhood,omitempty"`

	// Services is a comma-separated list as entered by the owner.
	Services string `bson:"services" json:"services,omitempty"`

	Phone       string `bson:"phone" json:"phone,omitempty"`
	WhatsApp    bool   `bson:"whatsapp" json:"whatsapp"`
	Email       string `bson:"email" json:"email,omitempty"`
	ContactMode string `bson:"contactMode" json:"contactMode"`

	AcceptsCash bool `bson:"acceptsCash" json:"acceptsCash"`
	AcceptsCard bool `bson:"acceptsCard" json:"acceptsCard"`

	Active   bool `bson:"active" json:"active"`
	Featured bool `bson:"featured" json:"featured"`
	VIP      bool `bson:"vip" json:"vip"`

	// Cached aggregate fields. They are denormalized from the verified
	// ratings of this listing and mutate only through the aggregate updater.
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
	ReviewCount   int     `bson:"reviewCount" json:"reviewCount"`

	Views         int `bson:"views" json:"views"`
	ContactClicks int `bson:"contactClicks" json:"contactClicks"`

	Photos []Photo `bson:"photos" json:"photos,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FirstPhotoURL returns the URL of the first photo, or the placeholder path.
func (l Listing) FirstPhotoURL() string {
	if len(l.Photos) > 0 {
		return l.Photos[0].URL
	}
	return PlaceholderPhotoURL
}

// ServicesList splits the comma-separated services field into trimmed entries.
func (l Listing) ServicesList() []string {
	if l.Services == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(l.Services, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// VisiblePhone returns the phone number only when the contact mode permits it.
func (l Listing) VisiblePhone() string {
	if l.ContactMode == ContactBoth || l.ContactMode == ContactPhone {
		return l.Phone
	}
	return ""
}

// VisibleEmail returns the contact email only when the contact mode permits it.
func (l Listing) VisibleEmail() string {
	if l.ContactMode == ContactBoth || l.ContactMode == ContactEmail {
		return l.Email
	}
	return ""
}
