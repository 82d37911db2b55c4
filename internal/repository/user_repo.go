package repository

import (
	"feedback-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const UsersCollection = "users"

// NewUserRepo returns the users collection. Documents are keyed by googleUid,
// which is already the primary key, so no extra index is needed.
func NewUserRepo(db *mongo.Database) *MongoCollection[models.User] {
	return NewMongoCollection[models.User](db.Collection(UsersCollection))
}
