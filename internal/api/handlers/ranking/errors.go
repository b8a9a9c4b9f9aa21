package ranking

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorResponse represents a standardized JSON error response
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response with the given status code
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service-layer errors to HTTP responses.
// Ranking queries have no validation or not-found failures: bad input
// is defaulted, so anything surfacing here is internal.
func handleServiceError(w http.ResponseWriter, err error) {
	log.Printf("Unexpected error in ranking handler: %v", err)
	writeError(w, http.StatusInternalServerError, "InternalServerError",
		"An internal error occurred")
}
