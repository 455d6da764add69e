package debris

import (
	"encoding/json"
	"net/http"

	"Reforma/internal/calc/demolition"
	"Reforma/internal/calc/rooms"
)

// Handler computes the demolition summary and its debris volumes in one
// request. Defaults are the server-wide settings overrides, applied before
// the built-in defaults.
type Handler struct {
	Defaults Settings
}

type calcRequest struct {
	Rooms    []rooms.Input     `json:"rooms"`
	Config   demolition.Config `json:"config"`
	Settings Settings          `json:"settings"`
}

type calcResponse struct {
	Summary demolition.Summary `json:"summary"`
	Debris  Result             `json:"debris"`
	Issues  []rooms.Issue      `json:"issues,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	normalized, issues := rooms.NormalizeAll(req.Rooms, rooms.Options{
		StandardHeightM: req.Config.StandardHeightM,
		Phase:           rooms.PhaseDemolition,
	})
	summary := demolition.Calculate(normalized, req.Config)
	result := Calculate(summary, normalized, req.Config, req.Settings.Merge(h.Defaults))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcResponse{Summary: summary, Debris: result, Issues: issues})
}
