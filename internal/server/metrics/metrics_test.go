package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := m.Middleware(mux)

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/api/posts/"+id, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	count := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "GET /api/posts/{id}", "404"))
	assert.Equal(t, float64(3), count)

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestDomainCounters(t *testing.T) {
	m := New()

	m.RecordRegistration()
	m.RecordLogin(true)
	m.RecordLogin(false)
	m.RecordLogin(false)
	m.RecordPostAction(ActionLike)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.registrations))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.logins.WithLabelValues("failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.postActions.WithLabelValues(ActionLike)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.RecordPostAction(ActionCreate)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `devsocial_posts_actions_total{action="create"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
