package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	profileRepo "iscort/database/repository/profile"
	"iscort/models"
	"iscort/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens stay valid for a week.
const tokenDuration = 7 * 24 * time.Hour

func (s *DefaultAccountService) Register(ctx context.Context, in RegisterInput) (*models.Profile, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" || in.Password == "" {
		return nil, fmt.Errorf("username, email, and password are required")
	}

	if existing, err := s.Profiles.GetByEmail(email); err != nil && !errors.Is(err, profileRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.Profiles.GetByUsername(username); err != nil && !errors.Is(err, profileRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	plan := in.Plan
	if plan == "" {
		plan = models.PlanBasic
	}
	profile := &models.Profile{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		City:         strings.TrimSpace(in.City),
		Gender:       in.Gender,
		BirthDate:    in.BirthDate,
		Plan:         plan,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Profiles.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.Info("profile registered",
		zap.String("profileId", profile.ID),
		zap.String("username", profile.Username))
	return profile, nil
}

func (s *DefaultAccountService) Authenticate(ctx context.Context, email, password string) (string, *models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	profile, err := s.Profiles.GetByEmail(email)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(profile.ID, profile.Email, tokenDuration)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, profile, nil
}

func (s *DefaultAccountService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	return s.Profiles.GetByID(profileID)
}

func (s *DefaultAccountService) UpdateProfile(ctx context.Context, profileID string, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	apply(&profile.FirstName, in.FirstName)
	apply(&profile.City, in.City)
	apply(&profile.Gender, in.Gender)
	apply(&profile.Ethnicity, in.Ethnicity)
	apply(&profile.Nationality, in.Nationality)
	apply(&profile.Bio, in.Bio)
	if in.Plan != nil {
		switch *in.Plan {
		case models.PlanBasic, models.PlanPremium, models.PlanVIP:
			profile.Plan = *in.Plan
		default:
			return nil, fmt.Errorf("unknown plan %q", *in.Plan)
		}
	}
	profile.UpdatedAt = time.Now()

	if err := s.Profiles.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *DefaultAccountService) SetVerification(ctx context.Context, profileID, flag string, value bool) error {
	switch flag {
	case profileRepo.FlagEmail, profileRepo.FlagPhone, profileRepo.FlagDocument:
	default:
		return fmt.Errorf("unknown verification flag %q", flag)
	}
	if err := s.Profiles.SetVerificationFlag(profileID, flag, value); err != nil {
		return err
	}
	utils.GetLogger().Info("verification flag updated",
		zap.String("profileId", profileID),
		zap.String("flag", flag),
		zap.Bool("value", value))
	return nil
}
