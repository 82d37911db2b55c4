package repository

import (
	"context"
	"errors"

	"feedback-backend/internal/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoCollection implements store.Collection on top of a MongoDB collection.
type MongoCollection[T any] struct {
	collection *mongo.Collection
}

var _ store.Collection[struct{}] = (*MongoCollection[struct{}])(nil)

func NewMongoCollection[T any](collection *mongo.Collection) *MongoCollection[T] {
	return &MongoCollection[T]{collection: collection}
}

func (r *MongoCollection[T]) Get(ctx context.Context, key string) (*T, error) {
	var doc T
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *MongoCollection[T]) Set(ctx context.Context, key string, doc *T) error {
	d, err := store.WithID(key, doc)
	if err != nil {
		return err
	}
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": key}, d, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoCollection[T]) Update(ctx context.Context, key string, fields store.Fields) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": key}, bson.M{
		"$set": bson.M(fields),
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *MongoCollection[T]) Delete(ctx context.Context, key string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *MongoCollection[T]) Add(ctx context.Context, doc *T) (string, error) {
	key := store.NewID()
	d, err := store.WithID(key, doc)
	if err != nil {
		return "", err
	}
	if _, err := r.collection.InsertOne(ctx, d); err != nil {
		return "", err
	}
	return key, nil
}

func (r *MongoCollection[T]) Find(ctx context.Context, filters ...store.Filter) ([]T, error) {
	query := bson.D{}
	for _, f := range filters {
		query = append(query, bson.E{Key: f.Field, Value: f.Value})
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
