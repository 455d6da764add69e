package rooms

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type normalizeRequest struct {
	Room    Input   `json:"room"`
	Rooms   []Input `json:"rooms"`
	Options Options `json:"options"`
}

type normalizeResponse struct {
	Rooms  []Room  `json:"rooms"`
	Issues []Issue `json:"issues,omitempty"`
}

func (h *Handler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	ins := req.Rooms
	if len(ins) == 0 && (req.Room.ID != "" || req.Room.Type != "") {
		ins = []Input{req.Room}
	}
	normalized, issues := NormalizeAll(ins, req.Options)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(normalizeResponse{Rooms: normalized, Issues: issues})
}
