package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/vncsmyrnk/pollsite/internal/adapters/metrics"
)

// RateLimit bounds how often a single IP may submit votes and questions.
// A zero PerMinute disables the limit.
type RateLimit struct {
	PerMinute int
	Burst     int
}

func (rl RateLimit) limit() rate.Limit {
	if rl.PerMinute <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(rl.PerMinute) / 60)
}

func NewHandler(questionHandler *QuestionHandler, voteHandler *VoteHandler, rl RateLimit) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	limited := rateLimitByIP(rl.limit(), rl.Burst)

	r.Route("/polls", func(r chi.Router) {
		r.Get("/", questionHandler.List)
		r.Get("/new", questionHandler.NewForm)
		r.With(limited).Post("/new", questionHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", questionHandler.Detail)
			r.Get("/results", questionHandler.Results)
			r.With(limited).Post("/vote", voteHandler.Vote)
		})
	})

	return r
}
