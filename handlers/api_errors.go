package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIErrorResponse is the body of every error response.
type APIErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// WriteAPIError writes {"error": message} with the given HTTP status.
func WriteAPIError(w http.ResponseWriter, httpStatus int, message string) {
	writeJSON(w, httpStatus, APIErrorResponse{Error: message})
}

// writeInternalError logs err with its context and answers 500 with message.
func writeInternalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	log.Printf("%s %s error: %v", r.Method, r.URL.Path, err)
	WriteAPIError(w, http.StatusInternalServerError, message)
}
