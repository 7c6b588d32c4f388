package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var defaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Middleware observes request durations per wrapped route and registers
// its histogram on the given registry. Used for handlers living outside
// the main router, like the /metrics endpoint itself.
type Middleware struct {
	histDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer, buckets []float64) *Middleware {
	if len(buckets) == 0 {
		buckets = defaultBuckets
	}

	return &Middleware{
		histDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_handler_duration_seconds",
			Help:    "Histogram of handler response times in seconds",
			Buckets: buckets,
		}, []string{"route", "method", "status_code"}),
	}
}

func (m *Middleware) WrapHandler(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(sw, r)

		m.histDuration.With(prometheus.Labels{
			"route":       route,
			"method":      r.Method,
			"status_code": strconv.Itoa(sw.statusCode),
		}).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.statusCode = statusCode
}
