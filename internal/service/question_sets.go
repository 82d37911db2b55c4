package service

import (
	"context"

	"feedback-backend/internal/apperr"
	"feedback-backend/internal/displaytime"
	"feedback-backend/internal/models"
	"feedback-backend/internal/store"
	"feedback-backend/internal/validation"
)

const questionSetNotFound = "Question set not found"

var createQuestionSetMessages = validation.Messages{
	"criteria": "criteria is required and must be a non-empty array",
	"from":     "from is required",
	"to":       "to is required",
}

type QuestionSetService struct {
	questionSets store.Collection[models.QuestionSet]
	clock        *displaytime.Clock
}

func NewQuestionSetService(questionSets store.Collection[models.QuestionSet], clock *displaytime.Clock) *QuestionSetService {
	return &QuestionSetService{questionSets: questionSets, clock: clock}
}

func (s *QuestionSetService) Create(ctx context.Context, in models.CreateQuestionSetInput) (*models.QuestionSet, error) {
	if err := validation.Struct(in, createQuestionSetMessages); err != nil {
		return nil, err
	}

	now := s.clock.Stamp()
	qs := &models.QuestionSet{
		Criteria:  in.Criteria,
		From:      in.From,
		To:        in.To,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Weight != nil {
		qs.Weight = *in.Weight
	}

	id, err := s.questionSets.Add(ctx, qs)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return getExisting(ctx, s.questionSets, id, questionSetNotFound)
}

func (s *QuestionSetService) List(ctx context.Context) ([]models.QuestionSet, error) {
	return findAll(ctx, s.questionSets)
}

// Filter returns the question sets matching every supplied role.
func (s *QuestionSetService) Filter(ctx context.Context, f models.QuestionSetFilter) ([]models.QuestionSet, error) {
	if f.From == "" && f.To == "" {
		return nil, apperr.Invalid("At least one of from or to parameters is required")
	}

	var filters []store.Filter
	if f.From != "" {
		filters = append(filters, store.Eq("from", f.From))
	}
	if f.To != "" {
		filters = append(filters, store.Eq("to", f.To))
	}
	return findAll(ctx, s.questionSets, filters...)
}

func (s *QuestionSetService) Get(ctx context.Context, id string) (*models.QuestionSet, error) {
	return getExisting(ctx, s.questionSets, id, questionSetNotFound)
}

// Update refreshes updated_at on every call. An empty criteria list is
// ignored; from, to and weight (including 0) are applied whenever sent.
func (s *QuestionSetService) Update(ctx context.Context, id string, in models.UpdateQuestionSetInput) (*models.QuestionSet, error) {
	return applyPatch(ctx, s.questionSets, id, patchPlan{
		notFound: questionSetNotFound,
		stage: func(p *Patch) {
			NonEmptySlice(p, "criteria", in.Criteria)
			Present(p, "from", in.From)
			Present(p, "to", in.To)
			Present(p, "weight", in.Weight)
		},
		touch: func(p *Patch) {
			p.Set("updated_at", s.clock.Stamp())
		},
	})
}

func (s *QuestionSetService) Delete(ctx context.Context, id string) error {
	return deleteExisting(ctx, s.questionSets, id, questionSetNotFound)
}
