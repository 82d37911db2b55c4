package router

import (
	"net/http"

	"feedback-backend/internal/handlers"
	"feedback-backend/internal/metrics"
	mw "feedback-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Dependencies struct {
	Log            *zap.Logger
	Metrics        *metrics.Metrics
	RateLimiter    *mw.RateLimiter // nil disables rate limiting
	AllowedOrigins []string

	// TrustProxyHeaders takes the client address from X-Forwarded-For /
	// X-Real-IP. Leave it off unless a proxy in front overwrites them.
	TrustProxyHeaders bool

	Users        *handlers.UserHandler
	Feedbacks    *handlers.FeedbackHandler
	QuestionSets *handlers.QuestionSetHandler
}

func New(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	if dep.TrustProxyHeaders {
		r.Use(chimid.RealIP)
	}
	r.Use(mw.RequestID)
	r.Use(mw.Logging(dep.Log))
	r.Use(chimid.Recoverer)
	if dep.Metrics != nil {
		r.Use(dep.Metrics.Instrument)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: dep.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)
	if dep.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", dep.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		if dep.RateLimiter != nil {
			r.Use(dep.RateLimiter.Handler)
		}

		r.Route("/users", func(ur chi.Router) {
			ur.Post("/", dep.Users.Login)
			ur.Get("/", dep.Users.List)
			ur.Get("/{googleUid}", dep.Users.Get)
			ur.Put("/{googleUid}", dep.Users.UpdateProfile)
			ur.Patch("/{googleUid}/position-seniority", dep.Users.UpdatePositionSeniority)
		})

		r.Route("/feedbacks", func(fr chi.Router) {
			fr.Post("/", dep.Feedbacks.Create)
			fr.Get("/", dep.Feedbacks.List)
			fr.Get("/filter", dep.Feedbacks.Filter)
			fr.Get("/{id}", dep.Feedbacks.Get)
			fr.Put("/{id}", dep.Feedbacks.Update)
			fr.Delete("/{id}", dep.Feedbacks.Delete)
		})

		r.Route("/question-sets", func(qr chi.Router) {
			qr.Post("/", dep.QuestionSets.Create)
			qr.Get("/", dep.QuestionSets.List)
			qr.Get("/filter", dep.QuestionSets.Filter)
			qr.Get("/{id}", dep.QuestionSets.Get)
			qr.Put("/{id}", dep.QuestionSets.Update)
			qr.Delete("/{id}", dep.QuestionSets.Delete)
		})
	})

	return r
}
