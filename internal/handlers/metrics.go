package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	matchesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rating_matches_submitted_total",
		Help: "Total number of matches submitted successfully",
	})

	matchesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rating_matches_rejected_total",
		Help: "Total number of match submissions rejected by validation",
	})

	submissionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rating_submissions_failed_total",
		Help: "Total number of match submissions that failed after validation",
	})

	ratingPointsMoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rating_points_moved_total",
		Help: "Total absolute rating points moved across all submissions",
	})

	statsRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rating_stats_recomputes_total",
		Help: "Total number of full statistics recomputes served",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rating_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// MetricsMiddleware records request durations per method and status class.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		requestDuration.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}
