package repository

import (
	"context"

	"feedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const QuestionSetsCollection = "question_sets"

func NewQuestionSetRepo(db *mongo.Database) *MongoCollection[models.QuestionSet] {
	return NewMongoCollection[models.QuestionSet](db.Collection(QuestionSetsCollection))
}

// EnsureQuestionSetIndexes creates necessary indexes for the question_sets collection
func EnsureQuestionSetIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "to", Value: 1}},
		},
	}
	_, err := db.Collection(QuestionSetsCollection).Indexes().CreateMany(ctx, indexes)
	return err
}
