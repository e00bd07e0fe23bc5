package ranking

import (
	"reflect"
	"testing"

	"iscort/models"
)

func TestFormatEntry(t *testing.T) {
	l := models.Listing{
		ID:            "l1",
		Title:         "Anuncio",
		Age:           25,
		City:          "Quito",
		Price:         80,
		AverageRating: 4.5,
		ReviewCount:   12,
		Category:      models.CategoryFemale,
		Featured:      true,
		Phone:         "0991234567",
		WhatsApp:      true,
		ContactMode:   models.ContactBoth,
		Services:      "masajes, compañía, eventos, viajes",
		Photos:        []models.Photo{{URL: "https://cdn.example.com/a.jpg"}},
	}
	owner := models.Profile{Username: "ana25", FirstName: "Ana"}

	entry := FormatEntry(l, owner)

	if entry.User != "Ana" {
		t.Errorf("User = %q, want the first name", entry.User)
	}
	if entry.Category != "Escort Femenino" {
		t.Errorf("Category = %q", entry.Category)
	}
	if entry.PhotoURL != "https://cdn.example.com/a.jpg" {
		t.Errorf("PhotoURL = %q", entry.PhotoURL)
	}
	if entry.Phone != "0991234567" {
		t.Errorf("Phone = %q, want visible", entry.Phone)
	}
	if want := []string{"masajes", "compañía", "eventos"}; !reflect.DeepEqual(entry.Services, want) {
		t.Errorf("Services = %v, want first three entries %v", entry.Services, want)
	}
	if entry.Rating != 4.5 || entry.TotalReviews != 12 {
		t.Errorf("aggregates = %v/%d", entry.Rating, entry.TotalReviews)
	}
}

func TestFormatEntryFallbacks(t *testing.T) {
	l := models.Listing{
		ID:          "l1",
		Phone:       "0991234567",
		ContactMode: models.ContactEmail,
	}
	owner := models.Profile{Username: "ana25"}

	entry := FormatEntry(l, owner)

	if entry.User != "ana25" {
		t.Errorf("User = %q, want the username fallback", entry.User)
	}
	if entry.PhotoURL != models.PlaceholderPhotoURL {
		t.Errorf("PhotoURL = %q, want placeholder", entry.PhotoURL)
	}
	if entry.Phone != "" {
		t.Errorf("Phone = %q, want hidden under email-only contact mode", entry.Phone)
	}
	if entry.Services != nil {
		t.Errorf("Services = %v, want nil", entry.Services)
	}
}
