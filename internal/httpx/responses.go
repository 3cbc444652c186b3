package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every failed request renders. Successful
// responses carry the bare payload so list endpoints serialize as plain
// JSON arrays.
type ErrorResponse struct {
	Error ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func JSONOK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

func JSONCreated(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusCreated, payload)
}

func JSONError(w http.ResponseWriter, statusCode int, code string, message string, details []ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
