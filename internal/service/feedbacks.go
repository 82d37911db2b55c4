package service

import (
	"context"
	"sync"

	"feedback-backend/internal/apperr"
	"feedback-backend/internal/displaytime"
	"feedback-backend/internal/models"
	"feedback-backend/internal/notify"
	"feedback-backend/internal/store"
	"feedback-backend/internal/validation"

	"go.uber.org/zap"
)

const feedbackNotFound = "Feedback not found"

var createFeedbackMessages = validation.Messages{
	"answers":   "answers is required and must be a non-empty object",
	"from_user": "from_user is required",
	"to_user":   "to_user is required",
}

type FeedbackService struct {
	feedbacks store.Collection[models.Feedback]
	users     store.Collection[models.User]
	notifier  notify.Notifier
	clock     *displaytime.Clock
	log       *zap.Logger

	pending sync.WaitGroup
}

func NewFeedbackService(
	feedbacks store.Collection[models.Feedback],
	users store.Collection[models.User],
	notifier notify.Notifier,
	clock *displaytime.Clock,
	log *zap.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedbacks: feedbacks,
		users:     users,
		notifier:  notifier,
		clock:     clock,
		log:       log,
	}
}

// Create stores a feedback after checking that both users exist. The
// addressee is notified in the background once the write succeeded.
func (s *FeedbackService) Create(ctx context.Context, in models.CreateFeedbackInput) (*models.Feedback, error) {
	if err := validation.Struct(in, createFeedbackMessages); err != nil {
		return nil, err
	}

	from, err := s.users.Get(ctx, in.FromUser)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if from == nil {
		return nil, apperr.Invalid("from_user does not exist")
	}

	to, err := s.users.Get(ctx, in.ToUser)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if to == nil {
		return nil, apperr.Invalid("to_user does not exist")
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	now := s.clock.Stamp()
	feedback := &models.Feedback{
		Answers:      in.Answers,
		FromUser:     in.FromUser,
		ToUser:       in.ToUser,
		OpenFeedback: in.OpenFeedback,
		Tags:         tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.feedbacks.Add(ctx, feedback)
	if err != nil {
		return nil, apperr.Store(err)
	}

	created, err := getExisting(ctx, s.feedbacks, id, feedbackNotFound)
	if err != nil {
		return nil, err
	}

	msg := notify.FeedbackReceived(to.Email, to.Name, from.Name)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.publish(context.WithoutCancel(ctx), id, msg)
	}()

	return created, nil
}

func (s *FeedbackService) publish(ctx context.Context, feedbackID string, msg notify.Message) {
	if err := s.notifier.Publish(ctx, msg); err != nil {
		s.log.Warn("failed to notify feedback recipient",
			zap.String("feedback_id", feedbackID),
			zap.Error(err),
		)
	}
}

// Wait blocks until every background notification has finished or ctx is done.
func (s *FeedbackService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return findAll(ctx, s.feedbacks)
}

// Filter returns the feedbacks matching every supplied user.
func (s *FeedbackService) Filter(ctx context.Context, f models.FeedbackFilter) ([]models.Feedback, error) {
	if f.FromUser == "" && f.ToUser == "" {
		return nil, apperr.Invalid("At least one of from_user or to_user parameters is required")
	}

	var filters []store.Filter
	if f.FromUser != "" {
		filters = append(filters, store.Eq("from_user", f.FromUser))
	}
	if f.ToUser != "" {
		filters = append(filters, store.Eq("to_user", f.ToUser))
	}
	return findAll(ctx, s.feedbacks, filters...)
}

func (s *FeedbackService) Get(ctx context.Context, id string) (*models.Feedback, error) {
	return getExisting(ctx, s.feedbacks, id, feedbackNotFound)
}

// Update refreshes updated_at on every call. answers must be non-empty to be
// applied; open_feedback and tags are applied whenever sent.
func (s *FeedbackService) Update(ctx context.Context, id string, in models.UpdateFeedbackInput) (*models.Feedback, error) {
	return applyPatch(ctx, s.feedbacks, id, patchPlan{
		notFound: feedbackNotFound,
		stage: func(p *Patch) {
			NonEmptyMap(p, "answers", in.Answers)
			Present(p, "open_feedback", in.OpenFeedback)
			PresentSlice(p, "tags", in.Tags)
		},
		touch: func(p *Patch) {
			p.Set("updated_at", s.clock.Stamp())
		},
	})
}

func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	return deleteExisting(ctx, s.feedbacks, id, feedbackNotFound)
}
