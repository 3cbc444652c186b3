package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/httpx"

	"github.com/shopspring/decimal"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type createBookReq struct {
	ISBN          string          `json:"isbn" validate:"required,isbn"`
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Genre         string          `json:"genre"`
	YearPublished int             `json:"yearPublished"`
	CopiesSold    int             `json:"copiesSold" validate:"gte=0"`
	PublisherID   *int64          `json:"publisherId"`
	AuthorID      *int64          `json:"authorId"`
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONOK(w, books)
}

// ListByGenre handles GET /api/books/genre/{genre}
func (h *HTTPHandler) ListByGenre(w http.ResponseWriter, r *http.Request) {
	genre := r.PathValue("genre")
	books, err := h.svc.ListByGenre(r.Context(), genre)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONOK(w, books)
}

// ListByPublisher handles GET /api/books/publisher/{publisherId}
func (h *HTTPHandler) ListByPublisher(w http.ResponseWriter, r *http.Request) {
	publisherID, err := strconv.ParseInt(r.PathValue("publisherId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid publisher id", nil)
		return
	}

	books, err := h.svc.ListByPublisher(r.Context(), publisherID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSONOK(w, books)
}

// TopSellers handles GET /api/books/top-sellers
func (h *HTTPHandler) TopSellers(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.TopSellers(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONOK(w, books)
}

// GetByISBN handles GET /api/books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	b, err := h.svc.GetByISBN(r.Context(), isbn)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONOK(w, b)
}

// Create handles POST /api/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	if req.Price.IsNegative() {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]httpx.ErrorDetail{{Field: "price", Message: "price must not be negative"}})
		return
	}

	b := Book{
		ISBN:          req.ISBN,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Genre:         req.Genre,
		YearPublished: req.YearPublished,
		CopiesSold:    req.CopiesSold,
		PublisherID:   req.PublisherID,
		AuthorID:      req.AuthorID,
	}
	if err := h.svc.Add(r.Context(), &b); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONCreated(w, b)
}

// DiscountByPublisher handles PATCH /api/books/discount?percentage=&publisherId=
func (h *HTTPHandler) DiscountByPublisher(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	percentage, err := decimal.NewFromString(query.Get("percentage"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid percentage", nil)
		return
	}
	publisherID, err := strconv.ParseInt(query.Get("publisherId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid publisher id", nil)
		return
	}

	if err := h.svc.ApplyPublisherDiscount(r.Context(), percentage, publisherID); err != nil {
		switch {
		case errors.Is(err, ErrInvalidPercentage):
			httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Percentage must be between 0 and 100", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
