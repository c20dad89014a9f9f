package routes

import (
	"net/http"

	"contact-service/configs"
	"contact-service/controllers"
	"contact-service/metrics"
	"contact-service/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Options configures the cross-cutting behaviour of the router.
type Options struct {
	Logger         *logrus.Entry
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	// SubmitRateLimit is requests per second per client on the submission
	// endpoints. Zero or less disables limiting.
	SubmitRateLimit float64
	SubmitRateBurst int
	TrustProxy      bool
}

// NewRouter builds the complete HTTP handler for the service.
func NewRouter(h *controllers.Handler, opts Options) http.Handler {
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Logger == nil {
		opts.Logger = configs.LogWithContext("contact-service", "http")
	}

	router := mux.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(opts.Logger))
	router.Use(middleware.MetricsMiddleware(opts.Metrics))
	router.Use(middleware.RecoveryMiddleware(opts.Logger))

	limiter := middleware.NewRateLimiter(opts.SubmitRateLimit, opts.SubmitRateBurst)
	if limiter == nil {
		opts.Logger.Debug("Submission rate limiting disabled")
	}

	DiagnosticRoutes(router, h, opts.Gatherer)
	opts.Logger.Debug("Diagnostic routes registered")

	SubmissionRoutes(router, h, middleware.RateLimit(limiter, opts.TrustProxy))
	opts.Logger.Debug("Submission routes registered")

	// CORS sits outside the router so preflight requests, which match no
	// route, are still answered.
	return middleware.CORS(opts.AllowedOrigins)(router)
}
