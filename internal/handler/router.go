package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all routes. Registration order matters: the fixed paths
// must come before the catch-all /{code} redirect route.
func NewRouter(h *LinkHandler) *mux.Router {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/links", h.ListLinks).Methods(http.MethodGet)
	r.HandleFunc("/api/links", h.CreateLink).Methods(http.MethodPost)
	r.HandleFunc("/api/links/{code}", h.GetLink).Methods(http.MethodGet)
	r.HandleFunc("/api/links/{code}", h.DeleteLink).Methods(http.MethodDelete)

	r.HandleFunc("/{code}", h.Redirect).Methods(http.MethodGet)

	return r
}

// methodNotAllowed answers 405 with an Allow header naming the methods the
// matched path actually supports.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	var allow string
	switch {
	case r.URL.Path == "/api/links":
		allow = "GET, POST"
	case strings.HasPrefix(r.URL.Path, "/api/links/"):
		allow = "GET, DELETE"
	default:
		allow = "GET"
	}
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
