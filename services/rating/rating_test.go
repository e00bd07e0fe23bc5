package rating

import (
	"context"
	"errors"
	"testing"
	"time"

	listingRepo "iscort/database/repository/listing"
	ratingRepo "iscort/database/repository/rating"
	"iscort/models"
)

type fakeRatingRepo struct {
	ratings map[string]*models.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]*models.Rating)}
}

func (f *fakeRatingRepo) GetByID(id string) (*models.Rating, error) {
	if r, ok := f.ratings[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, ratingRepo.ErrNotFound
}

func (f *fakeRatingRepo) GetByListing(listingID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.ratings {
		if r.ListingID == listingID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) GetVerifiedByListing(listingID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.ratings {
		if r.ListingID == listingID && r.Verified {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) GetVerifiedByListings(listingIDs []string) ([]models.Rating, error) {
	ids := make(map[string]bool, len(listingIDs))
	for _, id := range listingIDs {
		ids[id] = true
	}
	var out []models.Rating
	for _, r := range f.ratings {
		if ids[r.ListingID] && r.Verified {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) GetVerifiedSince(since time.Time) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.ratings {
		if r.Verified && !r.SubmittedAt.Before(since) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) GetByListingAndEmail(listingID, clientEmail string) (*models.Rating, error) {
	for _, r := range f.ratings {
		if r.ListingID == listingID && r.ClientEmail == clientEmail {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ratingRepo.ErrNotFound
}

func (f *fakeRatingRepo) GetPending() ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.ratings {
		if !r.Verified {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) Create(r *models.Rating) error {
	for _, existing := range f.ratings {
		if existing.ListingID == r.ListingID && existing.ClientEmail == r.ClientEmail {
			return ratingRepo.ErrDuplicate
		}
	}
	cp := *r
	f.ratings[r.ID] = &cp
	return nil
}

func (f *fakeRatingRepo) SetVerified(id string, verified bool) error {
	r, ok := f.ratings[id]
	if !ok {
		return ratingRepo.ErrNotFound
	}
	r.Verified = verified
	return nil
}

func (f *fakeRatingRepo) DeleteByListing(listingID string) error {
	for id, r := range f.ratings {
		if r.ListingID == listingID {
			delete(f.ratings, id)
		}
	}
	return nil
}

func (f *fakeRatingRepo) CountVerified() (int, error) {
	n := 0
	for _, r := range f.ratings {
		if r.Verified {
			n++
		}
	}
	return n, nil
}

func (f *fakeRatingRepo) GlobalVerifiedAverage() (float64, error) {
	sum, n := 0, 0
	for _, r := range f.ratings {
		if r.Verified {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

type fakeListingRepo struct {
	listings map[string]*models.Listing
}

func newFakeListingRepo(listings ...*models.Listing) *fakeListingRepo {
	f := &fakeListingRepo{listings: make(map[string]*models.Listing)}
	for _, l := range listings {
		f.listings[l.ID] = l
	}
	return f
}

func (f *fakeListingRepo) GetByID(id string) (*models.Listing, error) {
	if l, ok := f.listings[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, listingRepo.ErrNotFound
}

func (f *fakeListingRepo) GetByProfile(profileID string) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range f.listings {
		if l.ProfileID == profileID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) Find(filter listingRepo.ListingFilter) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range f.listings {
		if filter.ActiveOnly && !l.Active {
			continue
		}
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if filter.City != "" && l.City != filter.City {
			continue
		}
		if filter.ProfileID != "" && l.ProfileID != filter.ProfileID {
			continue
		}
		if !filter.CreatedAfter.IsZero() && l.CreatedAt.Before(filter.CreatedAfter) {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeListingRepo) Create(l *models.Listing) error {
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeListingRepo) Update(l *models.Listing) error {
	if _, ok := f.listings[l.ID]; !ok {
		return listingRepo.ErrNotFound
	}
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeListingRepo) Delete(id string) error {
	delete(f.listings, id)
	return nil
}

func (f *fakeListingRepo) UpdateAggregate(id string, averageRating float64, reviewCount int) error {
	l, ok := f.listings[id]
	if !ok {
		return listingRepo.ErrNotFound
	}
	l.AverageRating = averageRating
	l.ReviewCount = reviewCount
	return nil
}

func (f *fakeListingRepo) AddPhoto(id string, photo models.Photo) error {
	l, ok := f.listings[id]
	if !ok {
		return listingRepo.ErrNotFound
	}
	l.Photos = append(l.Photos, photo)
	return nil
}

func (f *fakeListingRepo) IncrementViews(id string) error {
	l, ok := f.listings[id]
	if !ok {
		return listingRepo.ErrNotFound
	}
	l.Views++
	return nil
}

func (f *fakeListingRepo) IncrementContactClicks(id string) error {
	l, ok := f.listings[id]
	if !ok {
		return listingRepo.ErrNotFound
	}
	l.ContactClicks++
	return nil
}

func (f *fakeListingRepo) CountActive() (int, error) {
	n := 0
	for _, l := range f.listings {
		if l.Active {
			n++
		}
	}
	return n, nil
}

func (f *fakeListingRepo) DistinctActiveCities() ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, l := range f.listings {
		if l.Active && !seen[l.City] {
			seen[l.City] = true
			out = append(out, l.City)
		}
	}
	return out, nil
}

func newTestService() (*DefaultRatingService, *fakeListingRepo) {
	listings := newFakeListingRepo(&models.Listing{ID: "l1", ProfileID: "p1", Active: true})
	svc := &DefaultRatingService{
		Ratings:  newFakeRatingRepo(),
		Listings: listings,
	}
	return svc, listings
}

func submit(t *testing.T, svc *DefaultRatingService, email string, score int) *models.Rating {
	t.Helper()
	rt, err := svc.SubmitRating(context.Background(), SubmitRatingInput{
		ListingID:   "l1",
		ClientName:  "Cliente",
		ClientEmail: email,
		Score:       score,
	})
	if err != nil {
		t.Fatalf("SubmitRating(%s, %d): %v", email, score, err)
	}
	return rt
}

func TestSubmitRatingStartsUnverified(t *testing.T) {
	svc, listings := newTestService()

	rt := submit(t, svc, "a@example.com", 5)
	if rt.Verified {
		t.Fatal("new rating should be unverified")
	}

	l, _ := listings.GetByID("l1")
	if l.AverageRating != 0 || l.ReviewCount != 0 {
		t.Errorf("unverified rating changed aggregate: avg=%v count=%d", l.AverageRating, l.ReviewCount)
	}
}

func TestSubmitRatingRejectsDuplicateEmail(t *testing.T) {
	svc, listings := newTestService()

	submit(t, svc, "a@example.com", 5)

	// Same email with different case and surrounding space is the same client.
	_, err := svc.SubmitRating(context.Background(), SubmitRatingInput{
		ListingID:   "l1",
		ClientEmail: "  A@Example.com ",
		Score:       1,
	})
	if !errors.Is(err, ErrDuplicateRating) {
		t.Fatalf("expected ErrDuplicateRating, got %v", err)
	}

	l, _ := listings.GetByID("l1")
	if l.AverageRating != 0 || l.ReviewCount != 0 {
		t.Errorf("rejected rating changed aggregate: avg=%v count=%d", l.AverageRating, l.ReviewCount)
	}
}

func TestSubmitRatingValidatesScores(t *testing.T) {
	svc, _ := newTestService()

	for _, score := range []int{0, 6, -1} {
		_, err := svc.SubmitRating(context.Background(), SubmitRatingInput{
			ListingID:   "l1",
			ClientEmail: "a@example.com",
			Score:       score,
		})
		if !errors.Is(err, ErrInvalidScore) {
			t.Errorf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}

	bad := 7
	_, err := svc.SubmitRating(context.Background(), SubmitRatingInput{
		ListingID:   "l1",
		ClientEmail: "a@example.com",
		Score:       4,
		Treatment:   &bad,
	})
	if !errors.Is(err, ErrInvalidScore) {
		t.Errorf("sub-score 7: expected ErrInvalidScore, got %v", err)
	}
}

func TestSubmitRatingUnknownListing(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SubmitRating(context.Background(), SubmitRatingInput{
		ListingID:   "missing",
		ClientEmail: "a@example.com",
		Score:       4,
	})
	if !errors.Is(err, listingRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVerifyRatingUpdatesAggregate(t *testing.T) {
	svc, listings := newTestService()

	r1 := submit(t, svc, "a@example.com", 5)
	r2 := submit(t, svc, "b@example.com", 4)

	if _, err := svc.SetVerified(context.Background(), r1.ID, true); err != nil {
		t.Fatalf("SetVerified: %v", err)
	}
	l, _ := listings.GetByID("l1")
	if l.AverageRating != 5.0 || l.ReviewCount != 1 {
		t.Errorf("after first verification: avg=%v count=%d, want 5.0/1", l.AverageRating, l.ReviewCount)
	}

	if _, err := svc.SetVerified(context.Background(), r2.ID, true); err != nil {
		t.Fatalf("SetVerified: %v", err)
	}
	l, _ = listings.GetByID("l1")
	if l.AverageRating != 4.5 || l.ReviewCount != 2 {
		t.Errorf("after second verification: avg=%v count=%d, want 4.5/2", l.AverageRating, l.ReviewCount)
	}
}

func TestUnverifyRatingRecomputesAggregate(t *testing.T) {
	svc, listings := newTestService()

	r1 := submit(t, svc, "a@example.com", 5)
	r2 := submit(t, svc, "b@example.com", 3)
	svc.SetVerified(context.Background(), r1.ID, true)
	svc.SetVerified(context.Background(), r2.ID, true)

	if _, err := svc.SetVerified(context.Background(), r2.ID, false); err != nil {
		t.Fatalf("SetVerified(false): %v", err)
	}

	l, _ := listings.GetByID("l1")
	if l.AverageRating != 5.0 || l.ReviewCount != 1 {
		t.Errorf("after unverify: avg=%v count=%d, want 5.0/1", l.AverageRating, l.ReviewCount)
	}
}

func TestListingRatingsReturnsOnlyVerified(t *testing.T) {
	svc, _ := newTestService()

	r1 := submit(t, svc, "a@example.com", 5)
	submit(t, svc, "b@example.com", 2)
	svc.SetVerified(context.Background(), r1.ID, true)

	got, err := svc.ListingRatings(context.Background(), "l1")
	if err != nil {
		t.Fatalf("ListingRatings: %v", err)
	}
	if len(got) != 1 || got[0].ID != r1.ID {
		t.Errorf("expected only the verified rating, got %d entries", len(got))
	}
}
