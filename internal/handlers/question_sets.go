package handlers

import (
	"net/http"

	"feedback-backend/internal/models"
	"feedback-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QuestionSetHandler struct {
	questionSets *service.QuestionSetService
	log          *zap.Logger
}

func NewQuestionSetHandler(questionSets *service.QuestionSetService, log *zap.Logger) *QuestionSetHandler {
	return &QuestionSetHandler{
		questionSets: questionSets,
		log:          log,
	}
}

// --- POST /question-sets ---

func (h *QuestionSetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionSetInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	qs, err := h.questionSets.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, qs)
}

// --- GET /question-sets ---

func (h *QuestionSetHandler) List(w http.ResponseWriter, r *http.Request) {
	sets, err := h.questionSets.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

// --- GET /question-sets/filter?from=&to= ---

func (h *QuestionSetHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sets, err := h.questionSets.Filter(r.Context(), models.QuestionSetFilter{
		From: q.Get("from"),
		To:   q.Get("to"),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

// --- GET /question-sets/{id} ---

func (h *QuestionSetHandler) Get(w http.ResponseWriter, r *http.Request) {
	qs, err := h.questionSets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, qs)
}

// --- PUT /question-sets/{id} ---

func (h *QuestionSetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuestionSetInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	qs, err := h.questionSets.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, qs)
}

// --- DELETE /question-sets/{id} ---

func (h *QuestionSetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.questionSets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Question set deleted successfully",
	})
}
