package book

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("success renders a bare array", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]Book{
			{ISBN: "9780123456789", Title: "Test Book", Price: decimal.RequireFromString("29.99"), Genre: "Technology"},
		}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "9780123456789", body[0]["isbn"])
		assert.Equal(t, "Test Book", body[0]["title"])
		assert.Equal(t, 29.99, body[0]["price"])
		assert.Equal(t, "Technology", body[0]["genre"])
	})

	t.Run("store error maps to 500", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_GetByISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	testBook := Book{
		ISBN:        "9780123456789",
		Title:       "Test Book",
		Description: "A test book",
		Price:       decimal.RequireFromString("29.99"),
		Genre:       "Technology",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "9780123456789").Return(testBook, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/9780123456789", nil)
		r.SetPathValue("isbn", "9780123456789")

		handler.GetByISBN(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Test Book", body["title"])
		assert.Equal(t, "A test book", body["description"])
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(gomock.Any(), "9999999999999").Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/9999999999999", nil)
		r.SetPathValue("isbn", "9999999999999")

		handler.GetByISBN(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_ListByGenre(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("no matches yields an empty array, not an error", func(t *testing.T) {
		mockRepo.EXPECT().ListByGenre(gomock.Any(), "Poetry").Return(nil, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/genre/Poetry", nil)
		r.SetPathValue("genre", "Poetry")

		handler.ListByGenre(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("valid book is upserted and returned with 201", func(t *testing.T) {
		mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		payload := map[string]any{
			"isbn":  "9781234567890",
			"title": "Python Data Science",
			"price": 54.99,
			"genre": "Technology",
		}
		body, _ := json.Marshal(payload)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "9781234567890", created["isbn"])
		assert.Equal(t, "Python Data Science", created["title"])
		assert.Equal(t, 54.99, created["price"])
	})

	t.Run("malformed isbn is rejected with 400", func(t *testing.T) {
		payload := map[string]any{
			"isbn":  "not-an-isbn",
			"title": "Broken",
			"price": 10,
		}
		body, _ := json.Marshal(payload)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing title is rejected with 400", func(t *testing.T) {
		payload := map[string]any{
			"isbn":  "9781234567890",
			"price": 10,
		}
		body, _ := json.Marshal(payload)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_DiscountByPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().ListByPublisher(gomock.Any(), int64(1)).Return([]Book{
			{ISBN: "9780123456789", Price: decimal.RequireFromString("49.99")},
		}, nil)
		mockRepo.EXPECT().UpdatePrices(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/books/discount?percentage=10&publisherId=1", nil)

		handler.DiscountByPublisher(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("out-of-range percentage maps to 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/books/discount?percentage=150&publisherId=1", nil)

		handler.DiscountByPublisher(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing percentage maps to 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/books/discount?publisherId=1", nil)

		handler.DiscountByPublisher(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
