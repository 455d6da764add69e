package pipeline

import (
	"encoding/json"
	"net/http"

	"Reforma/internal/calc/debris"
)

type Handler struct {
	Defaults debris.Settings
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input.Settings = input.Settings.Merge(h.Defaults)
	res := Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
