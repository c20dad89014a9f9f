package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"contact-service/metrics"
	"contact-service/models"
	"contact-service/validation"
)

// maxBodyBytes comfortably fits the largest valid submission.
const maxBodyBytes = 64 << 10

// SubmitContact handles POST /api/contact.
func (h *Handler) SubmitContact() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var in models.ContactMessageInput
		if !h.decode(rw, r, models.ContactMessageCollection, &in) {
			return
		}

		msg, err := models.NewContactMessage(in, h.now())
		if err != nil {
			h.reject(rw, r, models.ContactMessageCollection, err)
			return
		}

		id, ok := h.create(rw, r, models.ContactMessageCollection, msg)
		if !ok {
			return
		}

		h.sendNotification(r.Context(), models.SubmissionNotification{
			Type:        models.ContactMessageNotification,
			Collection:  models.ContactMessageCollection,
			ID:          id,
			Name:        msg.Name,
			Email:       msg.Email,
			Summary:     string(msg.Source),
			DateCreated: msg.CreatedAt,
		})
		successResponse(rw, id)
	}
}

// SubmitQuote handles POST /api/quote.
func (h *Handler) SubmitQuote() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var in models.QuoteRequestInput
		if !h.decode(rw, r, models.QuoteRequestCollection, &in) {
			return
		}

		quote, err := models.NewQuoteRequest(in, h.now())
		if err != nil {
			h.reject(rw, r, models.QuoteRequestCollection, err)
			return
		}

		id, ok := h.create(rw, r, models.QuoteRequestCollection, quote)
		if !ok {
			return
		}

		h.sendNotification(r.Context(), models.SubmissionNotification{
			Type:        models.QuoteRequestNotification,
			Collection:  models.QuoteRequestCollection,
			ID:          id,
			Name:        quote.Name,
			Email:       quote.Email,
			Summary:     string(quote.ProductType),
			DateCreated: quote.CreatedAt,
		})
		successResponse(rw, id)
	}
}

// decode reads the JSON body into dst. A field of the wrong JSON type is a
// schema violation (422); anything else that stops decoding is a 400.
func (h *Handler) decode(rw http.ResponseWriter, r *http.Request, collection string, dst interface{}) bool {
	err := json.NewDecoder(http.MaxBytesReader(rw, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}

	h.metrics.ObserveSubmission(collection, metrics.OutcomeRejected)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		kind := typeErr.Type.Kind().String()
		errorResponse(rw, []validation.FieldError{{
			Field:      typeErr.Field,
			Constraint: "type",
			Param:      kind,
			Message:    fmt.Sprintf("must be a %s, not a %s", kind, typeErr.Value),
		}}, http.StatusUnprocessableEntity)
		return false
	}

	errorResponse(rw, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
	return false
}

func (h *Handler) reject(rw http.ResponseWriter, r *http.Request, collection string, err error) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		h.requestLogger(r).WithError(err).Error("Submission could not be validated")
		h.metrics.ObserveSubmission(collection, metrics.OutcomeFailed)
		errorResponse(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	h.requestLogger(r).WithField("collection", collection).WithField("fields", verr.Fields).Debug("Submission rejected")
	h.metrics.ObserveSubmission(collection, metrics.OutcomeRejected)
	errorResponse(rw, verr.Fields, http.StatusUnprocessableEntity)
}

func (h *Handler) create(rw http.ResponseWriter, r *http.Request, collection string, doc interface{}) (string, bool) {
	logger := h.requestLogger(r).WithField("collection", collection)

	if h.store == nil {
		logger.Error("Submission received but no store is configured")
		h.metrics.ObserveSubmission(collection, metrics.OutcomeFailed)
		errorResponse(rw, "database not initialized", http.StatusInternalServerError)
		return "", false
	}

	ctx := r.Context()
	if h.storeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.storeTimeout)
		defer cancel()
	}

	id, err := h.store.Create(ctx, collection, doc)
	if err != nil {
		logger.WithError(err).Error("Failed to store submission")
		h.metrics.ObserveSubmission(collection, metrics.OutcomeFailed)
		errorResponse(rw, err.Error(), http.StatusInternalServerError)
		return "", false
	}

	logger.WithField("id", id).Info("Submission stored")
	h.metrics.ObserveSubmission(collection, metrics.OutcomeStored)
	return id, true
}
