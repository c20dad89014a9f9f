package controllers

import (
	"time"

	"contact-service/configs"
	"contact-service/metrics"
	"contact-service/notify"
	"contact-service/store"

	"github.com/sirupsen/logrus"
)

// Deps are the collaborators a Handler is built from. Only Store is
// required; a nil Store makes the submission endpoints fail with 500 and
// /test report the database as not initialized.
type Deps struct {
	Store    store.Store
	Notifier notify.Publisher
	Metrics  *metrics.Metrics
	Logger   *logrus.Entry

	// StoreTimeout bounds each write. Zero means no bound beyond the
	// request context.
	StoreTimeout time.Duration

	Diagnostics DiagnosticsConfig
}

// DiagnosticsConfig controls what GET /test reports.
type DiagnosticsConfig struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
	ListCollections bool
}

// Handler serves every endpoint of the service.
type Handler struct {
	store        store.Store
	notifier     notify.Publisher
	metrics      *metrics.Metrics
	logger       *logrus.Entry
	storeTimeout time.Duration
	diagnostics  DiagnosticsConfig
	now          func() time.Time
}

func NewHandler(deps Deps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = configs.LogWithContext("contact-service", "controllers")
	}
	return &Handler{
		store:        deps.Store,
		notifier:     deps.Notifier,
		metrics:      deps.Metrics,
		logger:       logger,
		storeTimeout: deps.StoreTimeout,
		diagnostics:  deps.Diagnostics,
		now:          time.Now,
	}
}
