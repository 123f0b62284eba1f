package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/philleif/tempcheck-api/internal/adapter/postgres"
	ratingrepo "github.com/philleif/tempcheck-api/internal/adapter/postgres/rating"
	"github.com/philleif/tempcheck-api/internal/adapter/postgres/suggestion"
	topicrepo "github.com/philleif/tempcheck-api/internal/adapter/postgres/topic"
	"github.com/philleif/tempcheck-api/internal/config"
	"github.com/philleif/tempcheck-api/internal/service/fallback"
	ratingsvc "github.com/philleif/tempcheck-api/internal/service/rating"
	topicsvc "github.com/philleif/tempcheck-api/internal/service/topic"
	"github.com/philleif/tempcheck-api/internal/transport/middleware"
	"github.com/philleif/tempcheck-api/internal/transport/rest"
)

// Database is the store handle the HTTP stack runs on. *pgxpool.Pool
// satisfies it.
type Database interface {
	postgres.Querier
	Ping(ctx context.Context) error
}

// NewHandler wires repositories, services and handlers on top of db and
// returns the complete HTTP handler, middleware included.
func NewHandler(cfg *config.Config, db Database, logger *slog.Logger) http.Handler {
	// Repositories.
	topics := topicrepo.New(db)
	ratings := ratingrepo.New(db)
	suggestions := suggestion.New(db)

	// Services.
	policy := fallback.New(cfg.Fallback)
	topicService := topicsvc.NewService(logger, topics, suggestions, policy, cfg.Topics.DropHour)
	ratingService := ratingsvc.NewService(logger, ratings, policy)

	// Handlers.
	expose := cfg.Fallback.ExposeHeader
	topicHandler := rest.NewTopicHandler(topicService, expose, logger)
	ratingHandler := rest.NewRatingHandler(ratingService, expose, logger)
	healthHandler := rest.NewHealthHandler(db, BuildVersion(), cfg.Fallback.Enabled)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /topics/daily", topicHandler.Daily)
	mux.HandleFunc("POST /topics/suggest", topicHandler.Suggest)
	mux.HandleFunc("POST /ratings/submit", ratingHandler.Submit)
	mux.HandleFunc("GET /ratings/results/{topicId}", ratingHandler.Results)
	mux.HandleFunc("GET /ratings/results/{$}", ratingHandler.MissingTopic)

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	var metricsMW middleware.Middleware
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.Handler())
		metricsMW = middleware.Metrics()
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		metricsMW,
		middleware.CORS(cfg.CORS, middleware.RequestIDHeader, rest.SyntheticHeader),
	)(mux)
}
