package materials

import (
	"encoding/json"
	"net/http"

	"Reforma/internal/calc/rooms"
)

type Handler struct{}

type calcRequest struct {
	Partitions  []Partition   `json:"partitions"`
	WallLinings []WallLining  `json:"wall_linings"`
	ReformRooms []rooms.Input `json:"reform_rooms"`
	Options     rooms.Options `json:"options"`
}

type calcResponse struct {
	Quantities Result        `json:"quantities"`
	Issues     []rooms.Issue `json:"issues,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Options.Phase = rooms.PhaseReform
	normalized, issues := rooms.NormalizeAll(req.ReformRooms, req.Options)
	res := Calculate(req.Partitions, req.WallLinings, normalized)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcResponse{Quantities: res, Issues: issues})
}
