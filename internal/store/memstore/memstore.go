// Package memstore is an in-process implementation of store.Collection.
// Documents are kept BSON-encoded so reads observe the same codec behaviour
// as the MongoDB repository.
package memstore

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"feedback-backend/internal/store"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Collection[T any] struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{docs: make(map[string][]byte)}
}

func (c *Collection[T]) Get(_ context.Context, key string) (*T, error) {
	c.mu.RLock()
	raw, ok := c.docs[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var doc T
	if err := decode(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Collection[T]) Set(_ context.Context, key string, doc *T) error {
	raw, err := encodeWithID(key, doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.docs[key] = raw
	c.mu.Unlock()
	return nil
}

func (c *Collection[T]) Update(_ context.Context, key string, fields store.Fields) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.docs[key]
	if !ok {
		return store.ErrNotFound
	}

	var current bson.D
	if err := bson.Unmarshal(raw, &current); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		replaced := false
		for i := range current {
			if current[i].Key == name {
				current[i].Value = fields[name]
				replaced = true
				break
			}
		}
		if !replaced {
			current = append(current, bson.E{Key: name, Value: fields[name]})
		}
	}

	updated, err := bson.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	c.docs[key] = updated
	return nil
}

func (c *Collection[T]) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[key]; !ok {
		return store.ErrNotFound
	}
	delete(c.docs, key)
	return nil
}

func (c *Collection[T]) Add(ctx context.Context, doc *T) (string, error) {
	key := store.NewID()
	if err := c.Set(ctx, key, doc); err != nil {
		return "", err
	}
	return key, nil
}

func (c *Collection[T]) Find(_ context.Context, filters ...store.Filter) ([]T, error) {
	c.mu.RLock()
	keys := make([]string, 0, len(c.docs))
	snapshot := make(map[string][]byte, len(c.docs))
	for key, raw := range c.docs {
		keys = append(keys, key)
		snapshot[key] = raw
	}
	c.mu.RUnlock()

	sort.Strings(keys)

	out := make([]T, 0)
	for _, key := range keys {
		raw := snapshot[key]
		if len(filters) > 0 {
			ok, err := matches(raw, filters)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		var doc T
		if err := decode(raw, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// Len reports the number of stored documents.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func matches(raw []byte, filters []store.Filter) (bool, error) {
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return false, fmt.Errorf("decode document: %w", err)
	}
	for _, f := range filters {
		v, ok := fields[f.Field]
		if !ok || !reflect.DeepEqual(v, f.Value) {
			return false, nil
		}
	}
	return true, nil
}

func encodeWithID(key string, doc any) ([]byte, error) {
	d, err := store.WithID(key, doc)
	if err != nil {
		return nil, err
	}
	raw, err := bson.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

// decode mirrors the client option used for MongoDB: embedded documents held
// in interface values come back as bson.M.
func decode(raw []byte, out any) error {
	dec := bson.NewDecoder(bson.NewDocumentReader(bytes.NewReader(raw)))
	dec.DefaultDocumentM()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
