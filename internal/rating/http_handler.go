package rating

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

type createRatingReq struct {
	UserID int64  `json:"userId" validate:"required,gt=0"`
	ISBN   string `json:"isbn" validate:"required,isbn"`
	Star   int    `json:"star" validate:"required,min=1,max=5"`
}

// ListByMinimumRating handles GET /api/books/rating/{rating}
func (h *HTTPHandler) ListByMinimumRating(w http.ResponseWriter, r *http.Request) {
	threshold, err := strconv.Atoi(r.PathValue("rating"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid rating threshold", nil)
		return
	}

	ratings, err := h.svc.ListByMinimumRating(r.Context(), threshold)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if ratings == nil {
		ratings = []BookRating{}
	}
	httpx.JSONOK(w, ratings)
}

// CreateRating handles POST /api/ratings
func (h *HTTPHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req createRatingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.svc.CreateOrUpdate(r.Context(), req.UserID, req.ISBN, req.Star); err != nil {
		if errors.Is(err, ErrBookNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBookRating handles GET /api/ratings/{isbn}
func (h *HTTPHandler) GetBookRating(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	average, count, err := h.svc.GetBookRating(r.Context(), isbn)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONOK(w, map[string]any{
		"isbn":          isbn,
		"averageRating": average,
		"ratingsCount":  count,
	})
}
