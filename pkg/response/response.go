package response

import (
	"encoding/json"
	"net/http"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Count   *int                  `json:"count,omitempty"`
	Data    interface{}           `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
	Fields  []apperror.FieldError `json:"fields,omitempty"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK sends a successful envelope
func OK(w http.ResponseWriter, status int, message string, data interface{}) {
	JSON(w, status, Response{Success: true, Message: message, Data: data})
}

// List sends a successful envelope with the item count
func List(w http.ResponseWriter, data interface{}, count int) {
	JSON(w, http.StatusOK, Response{Success: true, Count: &count, Data: data})
}

// Fail sends an error envelope with a status derived from the error taxonomy
func Fail(w http.ResponseWriter, err error, fallback string) {
	JSON(w, apperror.StatusCode(err), Response{
		Success: false,
		Error:   apperror.PublicMessage(err, fallback),
		Fields:  apperror.FieldsOf(err),
	})
}

// BadRequest sends a 400 envelope with a fixed message
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, Response{Success: false, Error: message})
}
