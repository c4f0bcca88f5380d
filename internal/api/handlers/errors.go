package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the JSON body of every failed operation
type ErrorResponse struct {
	Op      string `json:"op,omitempty"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, op, errorType, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Op:      op,
		Error:   errorType,
		Message: message,
	})
}

// WriteJSON writes v as a JSON response
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already sent
		log.Printf("Failed to encode response: %v", err)
	}
}
