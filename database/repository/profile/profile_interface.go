package profileRepo

import (
	"errors"

	"iscort/models"
)

// ErrNotFound is returned when a referenced profile does not exist.
var ErrNotFound = errors.New("profile not found")

// Verification flag identifiers accepted by SetVerificationFlag.
const (
	FlagEmail    = "email"
	FlagPhone    = "phone"
	FlagDocument = "document"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.Profile, error)
	// GetByEmail retrieves a profile by its email address.
	GetByEmail(email string) (*models.Profile, error)
	// GetByUsername retrieves a profile by its login handle.
	GetByUsername(username string) (*models.Profile, error)
	// GetAll retrieves all profiles.
	GetAll() ([]models.Profile, error)
	// Create inserts a new profile record.
	Create(profile *models.Profile) error
	// Update modifies an existing profile record.
	Update(profile *models.Profile) error
	// Delete removes a profile record by its ID.
	Delete(id string) error
	// UpdateRankingScore persists the cached ranking score.
	UpdateRankingScore(id string, score float64) error
	// UpdateRankingPosition persists the cached leaderboard position.
	UpdateRankingPosition(id string, position int) error
	// SetVerificationFlag updates one of the email/phone/document flags.
	SetVerificationFlag(id string, flag string, value bool) error
}
