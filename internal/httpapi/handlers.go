package httpapi

import (
	"encoding/json"
	"net/http"

	"quizbattle-backend/internal/content"
)

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Questions serves the trivia bank. Clients render prompts from it; the
// server never grades answers itself.
func Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, content.Questions())
}

func Characters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, content.Characters())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
