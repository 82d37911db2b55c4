package handlers

import (
	"net/http"

	"feedback-backend/internal/models"
	"feedback-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users: users,
		log:   log,
	}
}

// --- POST /users ---

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertUserInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.users.Upsert(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// --- GET /users ---

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// --- GET /users/{googleUid} ---

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "googleUid"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// --- PUT /users/{googleUid} ---

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), chi.URLParam(r, "googleUid"), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user.View(),
	})
}

// --- PATCH /users/{googleUid}/position-seniority ---

func (h *UserHandler) UpdatePositionSeniority(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePositionSeniorityInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	user, err := h.users.UpdatePositionSeniority(r.Context(), chi.URLParam(r, "googleUid"), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
