package service_test

import (
	"context"
	"testing"

	"feedback-backend/internal/apperr"
	"feedback-backend/internal/models"
	"feedback-backend/internal/service"
	"feedback-backend/internal/store/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQuestionSets(t *testing.T) (*service.QuestionSetService, *recordingCollection[models.QuestionSet]) {
	t.Helper()
	sets := &recordingCollection[models.QuestionSet]{Collection: memstore.NewCollection[models.QuestionSet]()}
	return service.NewQuestionSetService(sets, testClock()), sets
}

func validQuestionSet() models.CreateQuestionSetInput {
	return models.CreateQuestionSetInput{
		Criteria: []any{"Communication", "Ownership"},
		From:     "developer",
		To:       "manager",
	}
}

// ── Create ──────────────────────────────────────────────────────────

func TestCreateQuestionSet(t *testing.T) {
	t.Run("DefaultsWeightToZero", func(t *testing.T) {
		svc, _ := setupQuestionSets(t)

		qs, err := svc.Create(context.Background(), validQuestionSet())
		require.NoError(t, err)
		assert.NotEmpty(t, qs.ID)
		assert.Equal(t, []any{"Communication", "Ownership"}, qs.Criteria)
		assert.Zero(t, qs.Weight)
		assert.Equal(t, fixedStamp, qs.CreatedAt)
		assert.Equal(t, fixedStamp, qs.UpdatedAt)
	})

	t.Run("KeepsWeight", func(t *testing.T) {
		svc, _ := setupQuestionSets(t)

		in := validQuestionSet()
		in.Weight = ptr(2.5)
		qs, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, 2.5, qs.Weight)
	})

	t.Run("ValidationOrder", func(t *testing.T) {
		tests := []struct {
			name string
			in   models.CreateQuestionSetInput
			want string
		}{
			{"NoCriteria", models.CreateQuestionSetInput{From: "a", To: "b"}, "criteria is required and must be a non-empty array"},
			{"EmptyCriteria", models.CreateQuestionSetInput{Criteria: []any{}, From: "a", To: "b"}, "criteria is required and must be a non-empty array"},
			{"NoFrom", models.CreateQuestionSetInput{Criteria: []any{"x"}, To: "b"}, "from is required"},
			{"NoTo", models.CreateQuestionSetInput{Criteria: []any{"x"}, From: "a"}, "to is required"},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc, sets := setupQuestionSets(t)

				_, err := svc.Create(context.Background(), tc.in)
				assert.True(t, apperr.IsCode(err, apperr.CodeInvalid))
				assert.Equal(t, tc.want, apperr.MessageOf(err))
				assert.Zero(t, sets.writes)
			})
		}
	})

	t.Run("StoreFailure", func(t *testing.T) {
		svc := service.NewQuestionSetService(failingCollection[models.QuestionSet]{}, testClock())

		_, err := svc.Create(context.Background(), validQuestionSet())
		assert.True(t, apperr.IsCode(err, apperr.CodeStore))
	})
}

// ── Update ──────────────────────────────────────────────────────────

func TestUpdateQuestionSet(t *testing.T) {
	t.Run("ExplicitZeroWeightApplied", func(t *testing.T) {
		svc, _ := setupQuestionSets(t)
		ctx := context.Background()

		in := validQuestionSet()
		in.Weight = ptr(3.0)
		qs, err := svc.Create(ctx, in)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, qs.ID, models.UpdateQuestionSetInput{Weight: ptr(0.0)})
		require.NoError(t, err)
		assert.Zero(t, updated.Weight)
	})

	t.Run("EmptyCriteriaLeavesExisting", func(t *testing.T) {
		svc, _ := setupQuestionSets(t)
		ctx := context.Background()

		qs, err := svc.Create(ctx, validQuestionSet())
		require.NoError(t, err)

		updated, err := svc.Update(ctx, qs.ID, models.UpdateQuestionSetInput{Criteria: []any{}, To: ptr("lead")})
		require.NoError(t, err)
		assert.Equal(t, []any{"Communication", "Ownership"}, updated.Criteria)
		assert.Equal(t, "lead", updated.To)
		assert.Equal(t, "developer", updated.From)
	})

	t.Run("CriteriaReplaced", func(t *testing.T) {
		svc, _ := setupQuestionSets(t)
		ctx := context.Background()

		qs, err := svc.Create(ctx, validQuestionSet())
		require.NoError(t, err)

		updated, err := svc.Update(ctx, qs.ID, models.UpdateQuestionSetInput{Criteria: []any{"Delivery"}})
		require.NoError(t, err)
		assert.Equal(t, []any{"Delivery"}, updated.Criteria)
	})

	t.Run("UnsentFieldsUntouched", func(t *testing.T) {
		svc, _ := setupQuestionSets(t)
		ctx := context.Background()

		in := validQuestionSet()
		in.Weight = ptr(1.5)
		qs, err := svc.Create(ctx, in)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, qs.ID, models.UpdateQuestionSetInput{})
		require.NoError(t, err)
		assert.Equal(t, 1.5, updated.Weight)
		assert.Equal(t, qs.Criteria, updated.Criteria)
		assert.Equal(t, "developer", updated.From)
		assert.Equal(t, "manager", updated.To)
	})

	t.Run("NotFoundDoesNotWrite", func(t *testing.T) {
		svc, sets := setupQuestionSets(t)

		_, err := svc.Update(context.Background(), "missing", models.UpdateQuestionSetInput{Weight: ptr(0.0)})
		assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
		assert.Equal(t, "Question set not found", apperr.MessageOf(err))
		assert.Zero(t, sets.writes)
		assert.Zero(t, sets.Collection.(*memstore.Collection[models.QuestionSet]).Len())
	})
}

// ── Filter / Delete ─────────────────────────────────────────────────

func TestFilterQuestionSets(t *testing.T) {
	svc, _ := setupQuestionSets(t)
	ctx := context.Background()

	for _, pair := range [][2]string{{"developer", "manager"}, {"developer", "designer"}, {"manager", "developer"}} {
		in := validQuestionSet()
		in.From, in.To = pair[0], pair[1]
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	got, err := svc.Filter(ctx, models.QuestionSetFilter{From: "developer"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Filter(ctx, models.QuestionSetFilter{From: "developer", To: "manager"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "manager", got[0].To)

	got, err = svc.Filter(ctx, models.QuestionSetFilter{To: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.Filter(ctx, models.QuestionSetFilter{})
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalid))
	assert.Equal(t, "At least one of from or to parameters is required", apperr.MessageOf(err))
}

func TestDeleteQuestionSet(t *testing.T) {
	svc, sets := setupQuestionSets(t)
	ctx := context.Background()

	qs, err := svc.Create(ctx, validQuestionSet())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, qs.ID))
	writes := sets.writes

	err = svc.Delete(ctx, qs.ID)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	assert.Equal(t, writes, sets.writes)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
