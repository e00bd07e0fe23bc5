package ratingRepo

import (
	"context"
	"fmt"
	"time"

	"iscort/database"
	"iscort/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRatingRepo implements RatingRepository using MongoDB.
type MongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo creates a new instance of RatingRepository using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	coll := database.DB().Collection("ratings")
	repo := &MongoRatingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRatingRepo) GetByID(id string) (*models.Rating, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var rating models.Rating
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rating); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch rating with id %s: %w", id, err)
	}
	return &rating, nil
}

func (r *MongoRatingRepo) GetByListing(listingID string) ([]models.Rating, error) {
	return r.find(bson.M{"listingId": listingID})
}

func (r *MongoRatingRepo) GetVerifiedByListing(listingID string) ([]models.Rating, error) {
	return r.find(bson.M{"listingId": listingID, "verified": true})
}

func (r *MongoRatingRepo) GetVerifiedByListings(listingIDs []string) ([]models.Rating, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}
	return r.find(bson.M{"listingId": bson.M{"$in": listingIDs}, "verified": true})
}

func (r *MongoRatingRepo) GetVerifiedSince(since time.Time) ([]models.Rating, error) {
	return r.find(bson.M{"verified": true, "submittedAt": bson.M{"$gte": since}})
}

func (r *MongoRatingRepo) GetByListingAndEmail(listingID, clientEmail string) (*models.Rating, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var rating models.Rating
	filter := bson.M{"listingId": listingID, "clientEmail": clientEmail}
	if err := r.coll.FindOne(ctx, filter).Decode(&rating); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch rating for listing %s: %w", listingID, err)
	}
	return &rating, nil
}

func (r *MongoRatingRepo) GetPending() ([]models.Rating, error) {
	return r.find(bson.M{"verified": false})
}

func (r *MongoRatingRepo) Create(rating *models.Rating) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, rating); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

func (r *MongoRatingRepo) SetVerified(id string, verified bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"verified": verified}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set verified=%v on rating %s: %w", verified, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRatingRepo) DeleteByListing(listingID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.DeleteMany(ctx, bson.M{"listingId": listingID}); err != nil {
		return fmt.Errorf("failed to delete ratings for listing %s: %w", listingID, err)
	}
	return nil
}

func (r *MongoRatingRepo) CountVerified() (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"verified": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count verified ratings: %w", err)
	}
	return int(count), nil
}

// GlobalVerifiedAverage computes the platform-wide mean score with an
// aggregation pipeline so the documents never leave the database.
func (r *MongoRatingRepo) GlobalVerifiedAverage() (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"verified": true}}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$score"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate verified ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Avg float64 `bson:"avg"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode aggregate result: %w", err)
		}
	}
	return result.Avg, nil
}

func (r *MongoRatingRepo) find(filter bson.M) ([]models.Rating, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	for cursor.Next(ctx) {
		var rt models.Rating
		if err := cursor.Decode(&rt); err != nil {
			return nil, fmt.Errorf("failed to decode rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ratings, nil
}
