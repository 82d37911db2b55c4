package repository

import (
	"context"

	"feedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const FeedbacksCollection = "feedbacks"

func NewFeedbackRepo(db *mongo.Database) *MongoCollection[models.Feedback] {
	return NewMongoCollection[models.Feedback](db.Collection(FeedbacksCollection))
}

// EnsureFeedbackIndexes backs the from_user / to_user filter queries.
func EnsureFeedbackIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "from_user", Value: 1}, {Key: "to_user", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "to_user", Value: 1}},
		},
	}
	_, err := db.Collection(FeedbacksCollection).Indexes().CreateMany(ctx, indexes)
	return err
}
