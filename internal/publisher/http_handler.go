package publisher

import (
	"encoding/json"
	"net/http"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type createPublisherReq struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

// List handles GET /api/publishers
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.svc.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if publishers == nil {
		publishers = []Publisher{}
	}
	httpx.JSONOK(w, publishers)
}

// Create handles POST /api/publishers. The created publisher, id included,
// comes back with a 200 status.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPublisherReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	p := Publisher{Name: req.Name, Address: req.Address}
	if err := h.svc.Create(r.Context(), &p); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONOK(w, p)
}
