package routes

import (
	"contact-service/controllers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func DiagnosticRoutes(router *mux.Router, h *controllers.Handler, gatherer prometheus.Gatherer) {
	router.HandleFunc("/", h.Root()).Methods("GET")
	router.HandleFunc("/api/hello", h.Hello()).Methods("GET")
	router.HandleFunc("/test", h.TestDatabase()).Methods("GET")

	router.HandleFunc("/healthz", h.Healthz()).Methods("GET")
	router.HandleFunc("/ready", h.Ready()).Methods("GET")

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")
}
