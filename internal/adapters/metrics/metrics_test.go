package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vncsmyrnk/pollsite/internal/core/domain"
)

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	Register()

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/polls/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/polls/{id}", "404"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/polls/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/polls/{id}", "404"))
	assert.Equal(t, before+2, after)
}

func TestAuditorCounters(t *testing.T) {
	Register()

	createdBefore := testutil.ToFloat64(questionsCreated)
	votesBefore := testutil.ToFloat64(votesCast)

	var a Auditor
	a.QuestionCreated(context.Background(), "127.0.0.1", &domain.Question{})
	a.VoteCast(context.Background(), "127.0.0.1", &domain.Question{})
	a.VoteCast(context.Background(), "127.0.0.1", &domain.Question{})

	assert.Equal(t, createdBefore+1, testutil.ToFloat64(questionsCreated))
	assert.Equal(t, votesBefore+2, testutil.ToFloat64(votesCast))
}
