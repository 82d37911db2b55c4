package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedback-backend/internal/config"
	"feedback-backend/internal/database"
	"feedback-backend/internal/displaytime"
	"feedback-backend/internal/handlers"
	"feedback-backend/internal/logger"
	"feedback-backend/internal/metrics"
	customMiddleware "feedback-backend/internal/middleware"
	"feedback-backend/internal/models"
	"feedback-backend/internal/notify"
	"feedback-backend/internal/repository"
	"feedback-backend/internal/router"
	"feedback-backend/internal/service"
	"feedback-backend/internal/store"
	"feedback-backend/internal/store/memstore"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type stores struct {
	users        store.Collection[models.User]
	feedbacks    store.Collection[models.Feedback]
	questionSets store.Collection[models.QuestionSet]
	client       *mongo.Client
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("invalid display timezone", zap.Error(err))
	}
	clock := displaytime.NewClock(loc)

	// Connect to the configured store
	st, err := openStores(cfg, log)
	if err != nil {
		log.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	if st.client != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := st.client.Disconnect(ctx); err != nil {
				log.Warn("mongo disconnect failed", zap.Error(err))
			}
		}()
	}

	// Notifications
	var notifier notify.Notifier
	if cfg.ResendAPIKey != "" {
		notifier = notify.NewEmailNotifier(cfg.ResendAPIKey, cfg.FromEmail, log)
	} else {
		log.Info("RESEND_API_KEY not set, notifications are only logged")
		notifier = notify.NewLogNotifier(log)
	}

	// Initialize services and handlers
	userService := service.NewUserService(st.users, clock)
	feedbackService := service.NewFeedbackService(st.feedbacks, st.users, notifier, clock, log)
	questionSetService := service.NewQuestionSetService(st.questionSets, clock)

	var limiter *customMiddleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = customMiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	h := router.New(router.Dependencies{
		Log:               log,
		Metrics:           metrics.New(),
		RateLimiter:       limiter,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
		Users:             handlers.NewUserHandler(userService, log),
		Feedbacks:         handlers.NewFeedbackHandler(feedbackService, log),
		QuestionSets:      handlers.NewQuestionSetHandler(questionSetService, log),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("feedback backend starting",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreDriver),
			zap.String("timezone", loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := feedbackService.Wait(ctx); err != nil {
		log.Warn("pending notifications dropped", zap.Error(err))
	}
	log.Info("server stopped")
}

func openStores(cfg *config.Config, log *zap.Logger) (*stores, error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return &stores{
			users:        memstore.NewCollection[models.User](),
			feedbacks:    memstore.NewCollection[models.Feedback](),
			questionSets: memstore.NewCollection[models.QuestionSet](),
		}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName, log)
	if err != nil {
		return nil, err
	}

	// Ensure indexes
	if err := repository.EnsureFeedbackIndexes(ctx, db); err != nil {
		log.Warn("failed to create feedback indexes", zap.Error(err))
	}
	if err := repository.EnsureQuestionSetIndexes(ctx, db); err != nil {
		log.Warn("failed to create question set indexes", zap.Error(err))
	}

	return &stores{
		users:        repository.NewUserRepo(db),
		feedbacks:    repository.NewFeedbackRepo(db),
		questionSets: repository.NewQuestionSetRepo(db),
		client:       client,
	}, nil
}
