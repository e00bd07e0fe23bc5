package listingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoListingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// Compound index backing the ranked top lists: filter on category/active,
	// order on the cached aggregate fields and recency.
	rankIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "active", Value: 1},
			{Key: "averageRating", Value: -1},
			{Key: "reviewCount", Value: -1},
			{Key: "updatedAt", Value: -1},
		},
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "profileId", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "active", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		rankIdx,
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
