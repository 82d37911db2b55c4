// Package store defines the document collection capability the services
// depend on. Implementations live in internal/repository (MongoDB) and
// internal/store/memstore.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound is returned by Update and Delete when the key does not exist.
var ErrNotFound = errors.New("document not found")

// Fields is a sparse set of top-level fields merged into a document.
type Fields map[string]any

// Filter is an equality predicate on a top-level field.
type Filter struct {
	Field string
	Value any
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

// Collection is a named set of documents of type T keyed by a string _id.
type Collection[T any] interface {
	// Get returns nil, nil when no document has the key.
	Get(ctx context.Context, key string) (*T, error)
	// Set creates or fully replaces the document stored under key.
	Set(ctx context.Context, key string, doc *T) error
	// Update merges fields into an existing document.
	Update(ctx context.Context, key string, fields Fields) error
	Delete(ctx context.Context, key string) error
	// Add stores doc under a freshly generated key and returns it.
	Add(ctx context.Context, doc *T) (string, error)
	// Find returns the documents matching every filter, ordered by key.
	Find(ctx context.Context, filters ...Filter) ([]T, error)
}

// WithID encodes doc as a BSON document whose _id is key, dropping any _id the
// document already carries.
func WithID(key string, doc any) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	out := make(bson.D, 0, len(fields)+1)
	out = append(out, bson.E{Key: "_id", Value: key})
	for _, f := range fields {
		if f.Key == "_id" {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
