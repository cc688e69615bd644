package metrics

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
)

var (
	httpRequestsTotal *prometheus.CounterVec
	questionsCreated  prometheus.Counter
	votesCast         prometheus.Counter
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pollsite",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the poll site.",
		}, []string{"method", "path", "status"})
		questionsCreated = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "pollsite",
			Name:      "questions_created_total",
			Help:      "Questions successfully created.",
		})
		votesCast = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "pollsite",
			Name:      "votes_cast_total",
			Help:      "Votes successfully recorded.",
		})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Middleware counts every request by its chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(rw, r)

		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		IncRequest(r.Method, route, status)
	})
}

// Auditor counts audit events. Register must be called first.
type Auditor struct{}

func (Auditor) QuestionCreated(context.Context, string, *domain.Question) {
	if questionsCreated != nil {
		questionsCreated.Inc()
	}
}

func (Auditor) VoteCast(context.Context, string, *domain.Question) {
	if votesCast != nil {
		votesCast.Inc()
	}
}
