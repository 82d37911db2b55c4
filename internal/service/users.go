package service

import (
	"context"

	"feedback-backend/internal/apperr"
	"feedback-backend/internal/displaytime"
	"feedback-backend/internal/models"
	"feedback-backend/internal/store"
	"feedback-backend/internal/validation"
)

const userNotFound = "User not found"

var upsertUserMessages = validation.Messages{
	"googleUid": "googleUid, name and email are required",
	"name":      "googleUid, name and email are required",
	"email":     "googleUid, name and email are required",
}

type UserService struct {
	users store.Collection[models.User]
	clock *displaytime.Clock
}

func NewUserService(users store.Collection[models.User], clock *displaytime.Clock) *UserService {
	return &UserService{users: users, clock: clock}
}

// UpsertResult is the outcome of a login.
type UpsertResult struct {
	User         models.UserView `json:"user"`
	IsFirstLogin bool            `json:"isFirstLogin"`
}

// Upsert registers a user on first login and otherwise only reads the stored
// record. Existing records are never modified here: position, seniority,
// isAdmin and createdAt are set once and name/email are not refreshed.
// IsFirstLogin stays true until both position and seniority are set.
func (s *UserService) Upsert(ctx context.Context, in models.UpsertUserInput) (*UpsertResult, error) {
	if err := validation.Struct(in, upsertUserMessages); err != nil {
		return nil, err
	}

	existing, err := s.users.Get(ctx, in.GoogleUID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if existing != nil {
		return &UpsertResult{
			User:         existing.View(),
			IsFirstLogin: existing.OnboardingPending(),
		}, nil
	}

	user := &models.User{
		GoogleUID: in.GoogleUID,
		Name:      in.Name,
		Email:     in.Email,
		Picture:   in.Picture,
		CreatedAt: s.clock.UnixMilli(),
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	if err := s.users.Set(ctx, in.GoogleUID, user); err != nil {
		return nil, apperr.Store(err)
	}

	return &UpsertResult{User: user.View(), IsFirstLogin: true}, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return findAll(ctx, s.users)
}

func (s *UserService) Get(ctx context.Context, googleUID string) (*models.User, error) {
	return getExisting(ctx, s.users, googleUID, userNotFound)
}

// UpdateProfile applies every profile field that was sent, including explicit
// empty or false values. A null picture clears it.
func (s *UserService) UpdateProfile(ctx context.Context, googleUID string, in models.UpdateProfileInput) (*models.User, error) {
	return applyPatch(ctx, s.users, googleUID, patchPlan{
		notFound: userNotFound,
		stage: func(p *Patch) {
			Present(p, "name", in.Name)
			Present(p, "email", in.Email)
			PresentNullable(p, "picture", in.Picture)
			Present(p, "isAdmin", in.IsAdmin)
		},
	})
}

// UpdatePositionSeniority completes onboarding. Blank values are ignored and
// at least one of the two must be given.
func (s *UserService) UpdatePositionSeniority(ctx context.Context, googleUID string, in models.UpdatePositionSeniorityInput) (*models.User, error) {
	if in.Position == "" && in.Seniority == "" {
		return nil, apperr.Invalid("position or seniority is required")
	}

	return applyPatch(ctx, s.users, googleUID, patchPlan{
		notFound: userNotFound,
		stage: func(p *Patch) {
			NonBlank(p, "position", in.Position)
			NonBlank(p, "seniority", in.Seniority)
		},
	})
}
