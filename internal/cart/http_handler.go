package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type cartItemReq struct {
	ISBN string `json:"isbn" validate:"required,isbn"`
}

type link struct {
	Href string `json:"href"`
}

// Root handles GET /api/shopping-cart with a static discoverability
// descriptor.
func (h *HTTPHandler) Root(w http.ResponseWriter, r *http.Request) {
	httpx.JSONOK(w, map[string]any{
		"_links": map[string]link{
			"self":        {Href: "/api/shopping-cart"},
			"books":       {Href: "/api/shopping-cart/{userId}/books"},
			"subtotal":    {Href: "/api/shopping-cart/{userId}/subtotal"},
			"add-book":    {Href: "/api/shopping-cart/{userId}/add-book"},
			"remove-book": {Href: "/api/shopping-cart/{userId}/remove-book"},
		},
	})
}

// ListItems handles GET /api/shopping-cart/{userId}/books
func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.svc.ListItems(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if items == nil {
		items = []Item{}
	}
	httpx.JSONOK(w, items)
}

// GetSubtotal handles GET /api/shopping-cart/{userId}/subtotal
func (h *HTTPHandler) GetSubtotal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	subtotal, err := h.svc.ComputeSubtotal(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONOK(w, subtotal)
}

// AddBook handles POST /api/shopping-cart/{userId}/add-book
func (h *HTTPHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, ok := h.itemRequest(w, r)
	if !ok {
		return
	}

	if err := h.svc.AddBook(r.Context(), userID, req.ISBN); err != nil {
		if errors.Is(err, ErrBookNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// RemoveBook handles DELETE /api/shopping-cart/{userId}/remove-book.
// Removing a book that is not in the cart still returns 200.
func (h *HTTPHandler) RemoveBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, ok := h.itemRequest(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveBook(r.Context(), userID, req.ISBN); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// userID parses and validates the {userId} path segment. Non-positive
// ids are rejected before any service call runs.
func (h *HTTPHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil || userID <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "User id must be a positive integer", nil)
		return 0, false
	}
	return userID, true
}

func (h *HTTPHandler) itemRequest(w http.ResponseWriter, r *http.Request) (cartItemReq, bool) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return req, false
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return req, false
	}
	return req, true
}
