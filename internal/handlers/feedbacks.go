package handlers

import (
	"net/http"

	"feedback-backend/internal/models"
	"feedback-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	feedbacks *service.FeedbackService
	log       *zap.Logger
}

func NewFeedbackHandler(feedbacks *service.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbacks: feedbacks,
		log:       log,
	}
}

// --- POST /feedbacks ---

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	feedback, err := h.feedbacks.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, feedback)
}

// --- GET /feedbacks ---

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.feedbacks.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, feedbacks)
}

// --- GET /feedbacks/filter?from_user=&to_user= ---

func (h *FeedbackHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	feedbacks, err := h.feedbacks.Filter(r.Context(), models.FeedbackFilter{
		FromUser: q.Get("from_user"),
		ToUser:   q.Get("to_user"),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, feedbacks)
}

// --- GET /feedbacks/{id} ---

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.feedbacks.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}

// --- PUT /feedbacks/{id} ---

func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateFeedbackInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	feedback, err := h.feedbacks.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}

// --- DELETE /feedbacks/{id} ---

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.feedbacks.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Feedback deleted successfully",
	})
}
