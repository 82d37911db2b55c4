package service_test

import (
	"context"
	"errors"
	"time"

	"feedback-backend/internal/displaytime"
	"feedback-backend/internal/models"
	"feedback-backend/internal/notify"
	"feedback-backend/internal/store"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, time.October, 19, 14, 3, 5, 0, time.UTC)

const fixedStamp = "19 de outubro de 2026 às 14:03:05 UTC"

func testClock() *displaytime.Clock {
	return &displaytime.Clock{Now: func() time.Time { return fixedNow }, Loc: time.UTC}
}

// steppingClock advances one second per reading.
func steppingClock() *displaytime.Clock {
	now := fixedNow
	return &displaytime.Clock{
		Now: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
		Loc: time.UTC,
	}
}

func ptr[T any](v T) *T { return &v }

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Publish(ctx context.Context, msg notify.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

var errStoreDown = errors.New("connection refused")

// failingCollection fails every operation with errStoreDown.
type failingCollection[T any] struct{}

func (failingCollection[T]) Get(context.Context, string) (*T, error) { return nil, errStoreDown }
func (failingCollection[T]) Set(context.Context, string, *T) error { return errStoreDown }
func (failingCollection[T]) Update(context.Context, string, store.Fields) error {
	return errStoreDown
}
func (failingCollection[T]) Delete(context.Context, string) error { return errStoreDown }
func (failingCollection[T]) Add(context.Context, *T) (string, error) { return "", errStoreDown }
func (failingCollection[T]) Find(context.Context, ...store.Filter) ([]T, error) {
	return nil, errStoreDown
}

// recordingCollection wraps a collection and counts writes.
type recordingCollection[T any] struct {
	store.Collection[T]
	writes int
}

func (r *recordingCollection[T]) Set(ctx context.Context, key string, doc *T) error {
	r.writes++
	return r.Collection.Set(ctx, key, doc)
}

func (r *recordingCollection[T]) Update(ctx context.Context, key string, fields store.Fields) error {
	r.writes++
	return r.Collection.Update(ctx, key, fields)
}

func (r *recordingCollection[T]) Delete(ctx context.Context, key string) error {
	r.writes++
	return r.Collection.Delete(ctx, key)
}

func (r *recordingCollection[T]) Add(ctx context.Context, doc *T) (string, error) {
	r.writes++
	return r.Collection.Add(ctx, doc)
}

func seedUser(c store.Collection[models.User], uid, name, email string) {
	_ = c.Set(context.Background(), uid, &models.User{Name: name, Email: email})
}
