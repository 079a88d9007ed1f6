package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/paveldk/go-blog-api/models"
)

// WriteJSON marshals data and writes it as the response body with the given
// status code and a "Content-Type: application/json" header. A marshaling
// failure turns into a plain 500 and a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("marshaling response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteJSONError writes the uniform error body `{"error": "..."}` with the
// given status code. Every endpoint uses this helper so that the error body
// key stays consistent across the whole surface.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, models.ErrorResponse{Error: message}, statusCode) //nolint:errcheck
}
