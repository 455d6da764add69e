package reform

import (
	"encoding/json"
	"net/http"

	"Reforma/internal/calc/rooms"
)

type Handler struct{}

type calcRequest struct {
	Rooms      []rooms.Input `json:"rooms"`
	Config     Config        `json:"config"`
	Electrical Electrical    `json:"electrical"`
}

type calcResponse struct {
	Summary Summary       `json:"summary"`
	Issues  []rooms.Issue `json:"issues,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	normalized, issues := rooms.NormalizeAll(req.Rooms, rooms.Options{
		StandardHeightM: req.Config.StandardHeightM,
		Phase:           rooms.PhaseReform,
	})
	summary := Calculate(normalized, req.Config, req.Electrical)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcResponse{Summary: summary, Issues: issues})
}
