package account

import (
	"context"
	"time"

	profileRepo "iscort/database/repository/profile"
	"iscort/models"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"firstName"`
	City      string     `json:"city"`
	Gender    string     `json:"gender"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Plan      string     `json:"plan"`
}

// UpdateProfileInput carries the editable profile fields. Nil pointers leave
// the field untouched.
type UpdateProfileInput struct {
	FirstName   *string `json:"firstName,omitempty"`
	City        *string `json:"city,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Ethnicity   *string `json:"ethnicity,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Plan        *string `json:"plan,omitempty"`
}

// AccountService manages registration, authentication, and profile upkeep.
type AccountService interface {
	// Register creates a new profile with a hashed password.
	Register(ctx context.Context, in RegisterInput) (*models.Profile, error)
	// Authenticate checks credentials and returns a signed session token.
	Authenticate(ctx context.Context, email, password string) (string, *models.Profile, error)
	// GetProfile retrieves a profile by id.
	GetProfile(ctx context.Context, profileID string) (*models.Profile, error)
	// UpdateProfile applies partial edits to a profile.
	UpdateProfile(ctx context.Context, profileID string, in UpdateProfileInput) (*models.Profile, error)
	// SetVerification flips one of the email/phone/document flags. Admin only.
	SetVerification(ctx context.Context, profileID, flag string, value bool) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Profiles profileRepo.ProfileRepository
}
