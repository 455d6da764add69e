package project

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"Reforma/internal/auth"
	"Reforma/internal/calc/debris"
	"Reforma/internal/calc/pipeline"
	"Reforma/internal/pricing"
	"Reforma/internal/repo"
)

// Handler serves the persistence side of the product: projects, stored
// takeoff documents, and the budget lifecycle. All computation is delegated
// to the pipeline. Pricer is optional; without it the price endpoint
// reports the service as unavailable.
type Handler struct {
	Repo     repo.Repository
	Log      *zap.Logger
	Defaults debris.Settings
	Pricer   pricing.Pricer
}

type createProjectRequest struct {
	Name string `json:"name"`
}

type createBudgetRequest struct {
	Total float64 `json:"total"`
}

type updateBudgetRequest struct {
	Status string `json:"status"`
}

type adjustmentRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (h *Handler) user(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := auth.UserID(r.Context())
	if !ok || id == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}

func (h *Handler) ownedProject(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := h.user(w, r)
	if !ok {
		return "", false
	}
	projectID := mux.Vars(r)["id"]
	owns, err := h.Repo.OwnsProject(r.Context(), userID, projectID)
	if err != nil {
		h.Log.Error("project ownership check", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return "", false
	}
	if !owns {
		http.Error(w, "Project not found", http.StatusNotFound)
		return "", false
	}
	return projectID, true
}

// ownedBudget resolves the budget from the URL and verifies the caller owns
// the project it belongs to. Foreign budgets read as not found.
func (h *Handler) ownedBudget(w http.ResponseWriter, r *http.Request) (repo.Budget, bool) {
	userID, ok := h.user(w, r)
	if !ok {
		return repo.Budget{}, false
	}
	budgetID := mux.Vars(r)["id"]
	budget, err := h.Repo.GetBudget(r.Context(), budgetID)
	if err != nil {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return repo.Budget{}, false
	}
	owns, err := h.Repo.OwnsProject(r.Context(), userID, budget.ProjectID)
	if err != nil {
		h.Log.Error("budget ownership check", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return repo.Budget{}, false
	}
	if !owns {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return repo.Budget{}, false
	}
	return budget, true
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	projects, err := h.Repo.ListProjects(r.Context(), userID)
	if err != nil {
		h.Log.Error("list projects", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Project name required", http.StatusBadRequest)
		return
	}
	id, err := h.Repo.CreateProject(r.Context(), userID, req.Name)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

// SaveTakeoff validates the document against the pipeline input shape
// before storing it verbatim.
func (h *Handler) SaveTakeoff(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.ownedProject(w, r)
	if !ok {
		return
	}
	var doc json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var input pipeline.Input
	if err := json.Unmarshal(doc, &input); err != nil {
		http.Error(w, "Invalid takeoff document", http.StatusBadRequest)
		return
	}
	if err := h.Repo.SaveTakeoff(r.Context(), projectID, doc); err != nil {
		h.Log.Error("save takeoff", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTakeoff(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.ownedProject(w, r)
	if !ok {
		return
	}
	doc, err := h.Repo.LoadTakeoff(r.Context(), projectID)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "No takeoff stored", http.StatusNotFound)
			return
		}
		h.Log.Error("load takeoff", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(doc)
}

// Compute loads the stored document and runs the full pipeline on it.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.ownedProject(w, r)
	if !ok {
		return
	}
	doc, err := h.Repo.LoadTakeoff(r.Context(), projectID)
	if err != nil {
		http.Error(w, "No takeoff stored", http.StatusNotFound)
		return
	}
	var input pipeline.Input
	if err := json.Unmarshal(doc, &input); err != nil {
		http.Error(w, "Stored takeoff is not valid", http.StatusConflict)
		return
	}
	input.Settings = input.Settings.Merge(h.Defaults)
	result := pipeline.Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

type priceResponse struct {
	Lines []pricing.Line `json:"lines"`
	Total float64        `json:"total"`
}

// Price loads the stored document, runs the pipeline and sends the
// resulting quantities to the price catalog.
func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.ownedProject(w, r)
	if !ok {
		return
	}
	if h.Pricer == nil {
		http.Error(w, "Pricing not configured", http.StatusServiceUnavailable)
		return
	}
	doc, err := h.Repo.LoadTakeoff(r.Context(), projectID)
	if err != nil {
		http.Error(w, "No takeoff stored", http.StatusNotFound)
		return
	}
	var input pipeline.Input
	if err := json.Unmarshal(doc, &input); err != nil {
		http.Error(w, "Stored takeoff is not valid", http.StatusConflict)
		return
	}
	input.Settings = input.Settings.Merge(h.Defaults)
	result := pipeline.Calculate(input)

	lines, err := h.Pricer.Price(r.Context(), pricing.ItemsFromTakeoff(result))
	if err != nil {
		h.Log.Error("price takeoff", zap.Error(err))
		http.Error(w, "Pricing service error", http.StatusBadGateway)
		return
	}
	var total float64
	for _, l := range lines {
		total += l.Total
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(priceResponse{Lines: lines, Total: total})
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	projectID, ok := h.ownedProject(w, r)
	if !ok {
		return
	}
	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	id, err := h.Repo.CreateBudget(r.Context(), projectID, req.Total)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id, "status": string(repo.BudgetDraft)})
}

func (h *Handler) UpdateBudgetStatus(w http.ResponseWriter, r *http.Request) {
	budget, ok := h.ownedBudget(w, r)
	if !ok {
		return
	}
	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	next := repo.BudgetStatus(req.Status)
	if !next.Valid() {
		http.Error(w, "Unknown status", http.StatusBadRequest)
		return
	}
	if !budget.Status.CanTransitionTo(next) {
		http.Error(w, "Invalid status transition", http.StatusConflict)
		return
	}
	if err := h.Repo.UpdateBudgetStatus(r.Context(), budget.ID, next); err != nil {
		h.Log.Error("update budget status", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddAdjustment appends a change order. Only delivered or accepted budgets
// can be adjusted.
func (h *Handler) AddAdjustment(w http.ResponseWriter, r *http.Request) {
	budget, ok := h.ownedBudget(w, r)
	if !ok {
		return
	}
	var req adjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Description == "" {
		http.Error(w, "Description required", http.StatusBadRequest)
		return
	}
	if budget.Status != repo.BudgetDelivered && budget.Status != repo.BudgetAccepted {
		http.Error(w, "Budget not adjustable", http.StatusConflict)
		return
	}
	id, err := h.Repo.AddAdjustment(r.Context(), budget.ID, req.Description, req.Amount)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (h *Handler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	budget, ok := h.ownedBudget(w, r)
	if !ok {
		return
	}
	adjustments, err := h.Repo.ListAdjustments(r.Context(), budget.ID)
	if err != nil {
		h.Log.Error("list adjustments", zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(adjustments)
}
