package routes

import (
	"contact-service/controllers"

	"github.com/gorilla/mux"
)

func SubmissionRoutes(router *mux.Router, h *controllers.Handler, limit mux.MiddlewareFunc) {
	router.Handle("/api/contact", limit(h.SubmitContact())).Methods("POST")
	router.Handle("/api/quote", limit(h.SubmitQuote())).Methods("POST")
}
