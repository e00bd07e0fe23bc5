package listingRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"iscort/database"
	"iscort/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	coll := database.DB().Collection("listings")
	repo := &MongoListingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var listing models.Listing
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}

func (r *MongoListingRepo) GetByProfile(profileID string) ([]models.Listing, error) {
	return r.Find(ListingFilter{ProfileID: profileID})
}

func (r *MongoListingRepo) Find(filter ListingFilter) ([]models.Listing, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.City != "" {
		query["city"] = bson.M{"$regex": "^" + escapeRegex(filter.City) + "$", "$options": "i"}
	}
	if filter.ProfileID != "" {
		query["profileId"] = filter.ProfileID
	}
	if !filter.CreatedAfter.IsZero() {
		query["createdAt"] = bson.M{"$gte": filter.CreatedAfter}
	}
	if filter.ActiveOnly {
		query["active"] = true
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	for cursor.Next(ctx) {
		var l models.Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return listings, nil
}

func (r *MongoListingRepo) Create(listing *models.Listing) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (r *MongoListingRepo) Update(listing *models.Listing) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": listing.ID}
	update := bson.M{"$set": listing}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update listing with id %s: %w", listing.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepo) UpdateAggregate(id string, averageRating float64, reviewCount int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"averageRating": averageRating,
		"reviewCount":   reviewCount,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update aggregate for listing %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepo) AddPhoto(id string, photo models.Photo) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{
		"$push": bson.M{"photos": photo},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add photo to listing %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepo) IncrementViews(id string) error {
	return r.increment(id, "views")
}

func (r *MongoListingRepo) IncrementContactClicks(id string) error {
	return r.increment(id, "contactClicks")
}

func (r *MongoListingRepo) increment(id, field string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("failed to increment %s for listing %s: %w", field, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepo) CountActive() (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count active listings: %w", err)
	}
	return int(count), nil
}

func (r *MongoListingRepo) DistinctActiveCities() ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	values, err := r.coll.Distinct(ctx, "city", bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct cities: %w", err)
	}
	cities := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			cities = append(cities, s)
		}
	}
	return cities, nil
}

// escapeRegex quotes regex metacharacters in a literal city name.
func escapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}
