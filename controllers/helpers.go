package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"contact-service/middleware"
	"contact-service/models"
	"contact-service/responses"

	"github.com/sirupsen/logrus"
)

const notificationTimeout = 2 * time.Second

func writeJSON(rw http.ResponseWriter, code int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	json.NewEncoder(rw).Encode(body)
}

func errorResponse(rw http.ResponseWriter, detail interface{}, code int) {
	writeJSON(rw, code, responses.ErrorResponse{Detail: detail})
}

func successResponse(rw http.ResponseWriter, id string) {
	writeJSON(rw, http.StatusOK, responses.SubmissionResponse{Status: "ok", ID: id})
}

// sendNotification publishes n without letting a slow or failing notifier
// affect the response the client gets.
func (h *Handler) sendNotification(ctx context.Context, n models.SubmissionNotification) {
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
	defer cancel()

	if err := h.notifier.Publish(ctx, n); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"collection": n.Collection,
			"id":         n.ID,
		}).Warn("Failed to publish submission notification")
	}
}

func (h *Handler) requestLogger(r *http.Request) *logrus.Entry {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.logger.WithField("request_id", id)
	}
	return h.logger
}
