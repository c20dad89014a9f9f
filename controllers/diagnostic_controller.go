package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"contact-service/responses"
	"contact-service/utils"
)

const (
	diagnosticCollectionLimit = 10
	diagnosticErrorLength     = 50
	readyTimeout              = 2 * time.Second
)

// Root handles GET /.
func (h *Handler) Root() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, http.StatusOK, responses.MessageResponse{Message: "Hello from FastAPI Backend!"})
	}
}

// Hello handles GET /api/hello.
func (h *Handler) Hello() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, http.StatusOK, responses.MessageResponse{Message: "Hello from the backend API!"})
	}
}

// Healthz reports that the process is serving.
func (h *Handler) Healthz() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		fmt.Fprintln(rw, "OK")
	}
}

// Ready reports whether the store answers a ping.
func (h *Handler) Ready() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			rw.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(rw, "Store not initialized")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			h.requestLogger(r).WithError(err).Warn("Readiness check failed")
			rw.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(rw, "Not ready")
			return
		}

		rw.WriteHeader(http.StatusOK)
		fmt.Fprintln(rw, "Ready")
	}
}

// TestDatabase handles GET /test. It always answers 200; problems are
// reported in the status strings.
func (h *Handler) TestDatabase() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		resp := responses.DiagnosticResponse{
			Backend:          "✅ Running",
			Database:         "❌ Not Available",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		h.probeDatabase(r.Context(), &resp)

		resp.DatabaseURL = setStatus(h.diagnostics.DatabaseURLSet)
		resp.DatabaseName = setStatus(h.diagnostics.DatabaseNameSet)

		writeJSON(rw, http.StatusOK, resp)
	}
}

func (h *Handler) probeDatabase(ctx context.Context, resp *responses.DiagnosticResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.WithField("panic", rec).Error("Database probe panicked")
			resp.Database = "❌ Error: " + utils.Truncate(fmt.Sprint(rec), diagnosticErrorLength)
		}
	}()

	if h.store == nil {
		resp.Database = "⚠️  Available but not initialized"
		return
	}

	resp.Database = "✅ Available"
	resp.ConnectionStatus = "Connected"

	if !h.diagnostics.ListCollections {
		if err := h.store.Ping(ctx); err != nil {
			resp.Database = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), diagnosticErrorLength)
			return
		}
		resp.Database = "✅ Connected & Working"
		return
	}

	names, err := h.store.ListCollections(ctx, diagnosticCollectionLimit)
	if err != nil {
		resp.Database = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), diagnosticErrorLength)
		return
	}
	resp.Collections = names
	resp.Database = "✅ Connected & Working"
}

func setStatus(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
