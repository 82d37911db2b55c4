package service

import (
	"context"
	"errors"

	"feedback-backend/internal/apperr"
	"feedback-backend/internal/models"
	"feedback-backend/internal/store"
)

// Patch is the write-set of a partial update. Only staged fields are written;
// everything else in the stored document is left untouched.
type Patch struct {
	fields store.Fields
}

func NewPatch() *Patch {
	return &Patch{fields: store.Fields{}}
}

func (p *Patch) Set(field string, value any) {
	p.fields[field] = value
}

func (p *Patch) Len() int {
	return len(p.fields)
}

func (p *Patch) Fields() store.Fields {
	return p.fields
}

// Present stages *v whenever v is non-nil, so explicit zero values (0, false, "") are applied.
func Present[V any](p *Patch, field string, v *V) {
	if v != nil {
		p.Set(field, *v)
	}
}

// PresentNullable stages v whenever it was sent; a sent null is written as null.
func PresentNullable[V any](p *Patch, field string, v models.Optional[V]) {
	if !v.Set {
		return
	}
	if v.Value == nil {
		p.Set(field, nil)
		return
	}
	p.Set(field, *v.Value)
}

// NonBlank stages v only when it is a non-empty string.
func NonBlank(p *Patch, field, v string) {
	if v != "" {
		p.Set(field, v)
	}
}

// NonEmptySlice stages v only when it has at least one element.
func NonEmptySlice[E any](p *Patch, field string, v []E) {
	if len(v) > 0 {
		p.Set(field, v)
	}
}

// PresentSlice stages v whenever it was sent, including an empty slice.
func PresentSlice[E any](p *Patch, field string, v []E) {
	if v != nil {
		p.Set(field, v)
	}
}

// NonEmptyMap stages v only when it has at least one key.
func NonEmptyMap[V any](p *Patch, field string, v map[string]V) {
	if len(v) > 0 {
		p.Set(field, v)
	}
}

// patchPlan describes how a partial update is staged for one resource.
type patchPlan struct {
	notFound string
	stage    func(p *Patch)
	// touch, when set, stages the resource's updated timestamp on every call.
	touch func(p *Patch)
}

// applyPatch loads key, stages the write-set, merges it into the stored
// document and returns the re-read result. A missing key yields NotFound and
// no write.
func applyPatch[T any](ctx context.Context, coll store.Collection[T], key string, plan patchPlan) (*T, error) {
	existing, err := coll.Get(ctx, key)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if existing == nil {
		return nil, apperr.NotFound(plan.notFound)
	}

	p := NewPatch()
	plan.stage(p)
	if plan.touch != nil {
		plan.touch(p)
	}
	if p.Len() == 0 {
		return existing, nil
	}

	if err := coll.Update(ctx, key, p.Fields()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(plan.notFound)
		}
		return nil, apperr.Store(err)
	}

	updated, err := coll.Get(ctx, key)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if updated == nil {
		return nil, apperr.NotFound(plan.notFound)
	}
	return updated, nil
}

// deleteExisting removes key after checking that it exists.
func deleteExisting[T any](ctx context.Context, coll store.Collection[T], key, notFound string) error {
	existing, err := coll.Get(ctx, key)
	if err != nil {
		return apperr.Store(err)
	}
	if existing == nil {
		return apperr.NotFound(notFound)
	}

	if err := coll.Delete(ctx, key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(notFound)
		}
		return apperr.Store(err)
	}
	return nil
}

// getExisting returns the document under key or NotFound.
func getExisting[T any](ctx context.Context, coll store.Collection[T], key, notFound string) (*T, error) {
	doc, err := coll.Get(ctx, key)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if doc == nil {
		return nil, apperr.NotFound(notFound)
	}
	return doc, nil
}

// findAll wraps Find failures as store errors.
func findAll[T any](ctx context.Context, coll store.Collection[T], filters ...store.Filter) ([]T, error) {
	docs, err := coll.Find(ctx, filters...)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return docs, nil
}
