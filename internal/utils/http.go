package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the JSON content type and the given status
// code, and writes the body. Marshalling failures answer with a bare 500 and
// are returned to the caller; the status code passed in is then never sent.
// Returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
