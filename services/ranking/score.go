package ranking

import (
	"context"
	"math"
	"sort"
	"time"

	"iscort/models"
	"iscort/utils"

	"go.uber.org/zap"
)

// Component weights of the composite ranking score. They sum to 100.
const (
	weightRatings       = 40
	weightCompleteness  = 20
	weightActiveListing = 15
	weightVerifications = 15
	weightRecency       = 10

	// Each active listing is worth this many points, saturating at the
	// active-listings weight (three listings).
	pointsPerListing = 5
)

// ScoreInputs is an immutable snapshot of everything the composite score
// depends on. The service assembles it from the repositories; tests build
// it directly.
type ScoreInputs struct {
	// Mean star score over all verified ratings across the profile's
	// listings. Ignored when HasVerifiedRatings is false.
	VerifiedRatingMean float64
	HasVerifiedRatings bool

	// Fraction of the fixed profile fields that are filled, in [0, 1].
	ProfileCompleteness float64

	ActiveListings    int
	VerificationCount int

	// Days elapsed since the most recently updated listing. Ignored when
	// HasListings is false.
	DaysSinceLastUpdate int
	HasListings         bool
}

// ComputeScore combines the five weighted components into a single value
// in [0, 100], rounded to two decimals. Each component degrades to zero on
// missing data; none of them can produce an error.
func ComputeScore(in ScoreInputs) float64 {
	score := 0.0

	if in.HasVerifiedRatings {
		score += in.VerifiedRatingMean / 5.0 * weightRatings
	}

	score += in.ProfileCompleteness * weightCompleteness

	score += math.Min(weightActiveListing, float64(in.ActiveListings*pointsPerListing))

	score += float64(in.VerificationCount) / 3.0 * weightVerifications

	if in.HasListings {
		days := in.DaysSinceLastUpdate
		if days < 0 {
			days = 0
		}
		score += math.Max(0, float64(weightRecency-days))
	}

	return round2(score)
}

// Completeness returns the filled fraction of the seven profile fields that
// count toward the completeness component.
func Completeness(p models.Profile) float64 {
	fields := []string{
		p.FirstName,
		p.Email,
		p.City,
		p.Gender,
		p.Ethnicity,
		p.Nationality,
		p.Bio,
	}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}

// RecomputeProfileScore assembles the score inputs for one profile,
// computes the composite score, and persists it onto the profile.
func (s *DefaultRankingService) RecomputeProfileScore(ctx context.Context, profileID string) (float64, error) {
	profile, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return 0, err
	}

	listings, err := s.Listings.GetByProfile(profileID)
	if err != nil {
		return 0, err
	}

	in := ScoreInputs{
		ProfileCompleteness: Completeness(*profile),
		VerificationCount:   profile.Verification.Count(),
	}

	ids := make([]string, 0, len(listings))
	var lastUpdate time.Time
	for _, l := range listings {
		ids = append(ids, l.ID)
		if l.Active {
			in.ActiveListings++
		}
		if l.UpdatedAt.After(lastUpdate) {
			lastUpdate = l.UpdatedAt
		}
	}
	if len(listings) > 0 {
		in.HasListings = true
		in.DaysSinceLastUpdate = int(time.Since(lastUpdate).Hours() / 24)
	}

	verified, err := s.Ratings.GetVerifiedByListings(ids)
	if err != nil {
		return 0, err
	}
	if len(verified) > 0 {
		sum := 0
		for _, r := range verified {
			sum += r.Score
		}
		in.HasVerifiedRatings = true
		in.VerifiedRatingMean = float64(sum) / float64(len(verified))
	}

	score := ComputeScore(in)
	if err := s.Profiles.UpdateRankingScore(profileID, score); err != nil {
		return 0, err
	}
	return score, nil
}

// RecomputeAll refreshes the aggregates of every active listing, then every
// profile's ranking score, and finally the leaderboard positions. It is not
// atomic with individual rating writes and tolerates staleness between runs.
func (s *DefaultRankingService) RecomputeAll(ctx context.Context) error {
	logger := utils.GetLogger()

	listings, err := s.Listings.Find(activeFilter())
	if err != nil {
		return err
	}
	for _, l := range listings {
		if err := s.Aggregates.RecomputeListingAggregate(ctx, l.ID); err != nil {
			logger.Error("failed to refresh listing aggregate",
				zap.String("listingId", l.ID), zap.Error(err))
		}
	}

	profiles, err := s.Profiles.GetAll()
	if err != nil {
		return err
	}

	type scored struct {
		id    string
		score float64
	}
	board := make([]scored, 0, len(profiles))
	for _, p := range profiles {
		score, err := s.RecomputeProfileScore(ctx, p.ID)
		if err != nil {
			logger.Error("failed to recompute profile score",
				zap.String("profileId", p.ID), zap.Error(err))
			continue
		}
		board = append(board, scored{id: p.ID, score: score})
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].score > board[j].score
	})
	for pos, entry := range board {
		if err := s.Profiles.UpdateRankingPosition(entry.id, pos+1); err != nil {
			logger.Error("failed to persist ranking position",
				zap.String("profileId", entry.id), zap.Error(err))
		}
	}

	// Drop the cached home bundle so readers see the fresh order.
	s.InvalidateHomeRankings(ctx)

	logger.Info("rankings recomputed",
		zap.Int("listings", len(listings)),
		zap.Int("profiles", len(board)))
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
