package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linkreg/linkreg/internal/models"
	"github.com/linkreg/linkreg/internal/service"
	"github.com/linkreg/linkreg/pkg/validate"
)

type LinkHandler struct {
	service *service.LinkService
}

func NewLinkHandler(svc *service.LinkService) *LinkHandler {
	return &LinkHandler{service: svc}
}

// POST /api/links
func (h *LinkHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLinkRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidCode):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCodeConflict):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrGenerationExhausted):
			log.Printf("CreateLink: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to generate unique code")
		default:
			log.Printf("CreateLink error: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// GET /api/links
func (h *LinkHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("ListLinks error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if links == nil {
		links = []models.Link{}
	}
	writeJSON(w, http.StatusOK, links)
}

// GET /api/links/{code}
func (h *LinkHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	link, err := h.service.Get(r.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		log.Printf("GetLink error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// DELETE /api/links/{code}
func (h *LinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.service.Delete(r.Context(), code); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		log.Printf("DeleteLink error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /{code} - redirect to the stored URL
func (h *LinkHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	// Codes outside the legal format can never exist; skip the store.
	if !validate.IsValidCode(code) {
		writeError(w, http.StatusNotFound, "short code not found")
		return
	}

	dest, err := h.service.Resolve(r.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "short code not found")
			return
		}
		log.Printf("Redirect error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// 302 so browsers treat it as temporary and keep coming back for stats.
	http.Redirect(w, r, dest, http.StatusFound)
}

// GET /healthz
func (h *LinkHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"version": "1.0",
	})
}

// helper: write JSON response
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON encode error: %v", err)
	}
}

// helper: write an error message in JSON form { "error": "msg" }
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
