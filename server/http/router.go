package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"match-service/internal/config"
	"match-service/internal/match/engine"
	matchHnd "match-service/internal/match/handler"
	"match-service/internal/middleware"
)

func NewRouter(cfg config.Config, eng *engine.Engine, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", matchHnd.Health)

	r.Post("/search", matchHnd.Search(eng, logger))
	r.Post("/corpus", matchHnd.ReplaceCorpus(eng, logger))
	r.Post("/corpus/upload", matchHnd.UploadCorpus(cfg, eng, logger))
	r.Get("/corpus/stats", matchHnd.Stats(eng, logger))

	return r
}
