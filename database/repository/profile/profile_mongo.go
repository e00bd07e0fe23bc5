package profileRepo

import (
	"context"
	"fmt"
	"time"

	"iscort/database"
	"iscort/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.DB().Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfileRepo) GetByID(id string) (*models.Profile, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoProfileRepo) GetByUsername(username string) (*models.Profile, error) {
	return r.findOne(bson.M{"username": username})
}

func (r *MongoProfileRepo) findOne(filter bson.M) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var profile models.Profile
	if err := r.coll.FindOne(ctx, filter).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

func (r *MongoProfileRepo) GetAll() ([]models.Profile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	for cursor.Next(ctx) {
		var p models.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return profiles, nil
}

func (r *MongoProfileRepo) Create(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *MongoProfileRepo) Update(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profile.ID}, bson.M{"$set": profile})
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProfileRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete profile with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProfileRepo) UpdateRankingScore(id string, score float64) error {
	return r.set(id, bson.M{"rankingScore": score})
}

func (r *MongoProfileRepo) UpdateRankingPosition(id string, position int) error {
	return r.set(id, bson.M{"rankingPosition": position})
}

func (r *MongoProfileRepo) SetVerificationFlag(id string, flag string, value bool) error {
	var field string
	switch flag {
	case FlagEmail:
		field = "verification.emailVerified"
	case FlagPhone:
		field = "verification.phoneVerified"
	case FlagDocument:
		field = "verification.documentVerified"
	default:
		return fmt.Errorf("unknown verification flag %q", flag)
	}
	return r.set(id, bson.M{field: value})
}

func (r *MongoProfileRepo) set(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
