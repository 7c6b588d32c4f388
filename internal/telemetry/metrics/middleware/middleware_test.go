package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_WrapHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, nil)

	wrapped := m.WrapHandler("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	wrapped.ServeHTTP(rr, req)
	require.Equal(t, http.StatusTeapot, rr.Code)

	count := testutil.CollectAndCount(m.histDuration, "http_handler_duration_seconds")
	assert.Equal(t, 1, count)
}
