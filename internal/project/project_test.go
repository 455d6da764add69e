package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Reforma/internal/auth"
	"Reforma/internal/pricing"
	"Reforma/internal/repo"
)

type fakeRepo struct {
	projects    map[string]int
	takeoffs    map[string]json.RawMessage
	budgets     map[string]repo.Budget
	adjustments map[string][]repo.Adjustment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		projects:    map[string]int{},
		takeoffs:    map[string]json.RawMessage{},
		budgets:     map[string]repo.Budget{},
		adjustments: map[string][]repo.Adjustment{},
	}
}

func (f *fakeRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 1, nil
}

func (f *fakeRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (f *fakeRepo) CreateProject(ctx context.Context, userID int, name string) (string, error) {
	id := fmt.Sprintf("p%d", len(f.projects)+1)
	f.projects[id] = userID
	return id, nil
}

func (f *fakeRepo) ListProjects(ctx context.Context, userID int) ([]repo.Project, error) {
	var out []repo.Project
	for id, owner := range f.projects {
		if owner == userID {
			out = append(out, repo.Project{ID: id})
		}
	}
	return out, nil
}

func (f *fakeRepo) OwnsProject(ctx context.Context, userID int, projectID string) (bool, error) {
	return f.projects[projectID] == userID, nil
}

func (f *fakeRepo) SaveTakeoff(ctx context.Context, projectID string, doc json.RawMessage) error {
	f.takeoffs[projectID] = doc
	return nil
}

func (f *fakeRepo) LoadTakeoff(ctx context.Context, projectID string) (json.RawMessage, error) {
	doc, ok := f.takeoffs[projectID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return doc, nil
}

func (f *fakeRepo) CreateBudget(ctx context.Context, projectID string, total float64) (string, error) {
	id := fmt.Sprintf("b%d", len(f.budgets)+1)
	f.budgets[id] = repo.Budget{ID: id, ProjectID: projectID, Status: repo.BudgetDraft, Total: total}
	return id, nil
}

func (f *fakeRepo) GetBudget(ctx context.Context, budgetID string) (repo.Budget, error) {
	b, ok := f.budgets[budgetID]
	if !ok {
		return repo.Budget{}, sql.ErrNoRows
	}
	return b, nil
}

func (f *fakeRepo) UpdateBudgetStatus(ctx context.Context, budgetID string, status repo.BudgetStatus) error {
	b := f.budgets[budgetID]
	b.Status = status
	f.budgets[budgetID] = b
	return nil
}

func (f *fakeRepo) AddAdjustment(ctx context.Context, budgetID, description string, amount float64) (string, error) {
	id := fmt.Sprintf("a%d", len(f.adjustments[budgetID])+1)
	f.adjustments[budgetID] = append(f.adjustments[budgetID], repo.Adjustment{
		ID: id, BudgetID: budgetID, Description: description, Amount: amount,
	})
	return id, nil
}

func (f *fakeRepo) ListAdjustments(ctx context.Context, budgetID string) ([]repo.Adjustment, error) {
	return f.adjustments[budgetID], nil
}

type fakePricer struct {
	items []pricing.Item
}

func (f *fakePricer) Price(ctx context.Context, items []pricing.Item) ([]pricing.Line, error) {
	f.items = items
	lines := make([]pricing.Line, len(items))
	for i, it := range items {
		lines[i] = pricing.Line{Item: it, UnitPrice: 10, Total: 10 * it.Quantity}
	}
	return lines, nil
}

func newTestHandler() (*Handler, *fakeRepo) {
	f := newFakeRepo()
	return &Handler{Repo: f, Log: zap.NewNop()}, f
}

func request(userID int, method, body string, vars map[string]string) *http.Request {
	r := httptest.NewRequest(method, "/", strings.NewReader(body))
	r = r.WithContext(auth.WithUserID(r.Context(), userID))
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}

func TestBudgetStatusUpdateRequiresOwnership(t *testing.T) {
	h, f := newTestHandler()
	f.projects["p1"] = 1
	f.budgets["b1"] = repo.Budget{ID: "b1", ProjectID: "p1", Status: repo.BudgetDelivered}

	// a different authenticated user cannot see or move the budget
	w := httptest.NewRecorder()
	h.UpdateBudgetStatus(w, request(2, http.MethodPatch, `{"status":"accepted"}`, map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, repo.BudgetDelivered, f.budgets["b1"].Status)

	// the owner can
	w = httptest.NewRecorder()
	h.UpdateBudgetStatus(w, request(1, http.MethodPatch, `{"status":"accepted"}`, map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, repo.BudgetAccepted, f.budgets["b1"].Status)
}

func TestBudgetStatusUpdateRejectsInvalidTransition(t *testing.T) {
	h, f := newTestHandler()
	f.projects["p1"] = 1
	f.budgets["b1"] = repo.Budget{ID: "b1", ProjectID: "p1", Status: repo.BudgetDraft}

	w := httptest.NewRecorder()
	h.UpdateBudgetStatus(w, request(1, http.MethodPatch, `{"status":"accepted"}`, map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, repo.BudgetDraft, f.budgets["b1"].Status)
}

func TestAdjustmentsRequireOwnership(t *testing.T) {
	h, f := newTestHandler()
	f.projects["p1"] = 1
	f.budgets["b1"] = repo.Budget{ID: "b1", ProjectID: "p1", Status: repo.BudgetDelivered}
	f.adjustments["b1"] = []repo.Adjustment{{ID: "a1", BudgetID: "b1", Description: "extra socket", Amount: 45}}

	w := httptest.NewRecorder()
	h.AddAdjustment(w, request(2, http.MethodPost, `{"description":"sneaky","amount":1}`, map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, f.adjustments["b1"], 1)

	w = httptest.NewRecorder()
	h.ListAdjustments(w, request(2, http.MethodGet, "", map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.AddAdjustment(w, request(1, http.MethodPost, `{"description":"skip one door","amount":-120}`, map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, f.adjustments["b1"], 2)

	w = httptest.NewRecorder()
	h.ListAdjustments(w, request(1, http.MethodGet, "", map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusOK, w.Code)
	var out []repo.Adjustment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
}

func TestAdjustmentsOnlyOnDeliveredOrAccepted(t *testing.T) {
	h, f := newTestHandler()
	f.projects["p1"] = 1
	f.budgets["b1"] = repo.Budget{ID: "b1", ProjectID: "p1", Status: repo.BudgetDraft}

	w := httptest.NewRecorder()
	h.AddAdjustment(w, request(1, http.MethodPost, `{"description":"too early","amount":1}`, map[string]string{"id": "b1"}))
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestPriceTakeoff(t *testing.T) {
	h, f := newTestHandler()
	pricer := &fakePricer{}
	h.Pricer = pricer
	f.projects["p1"] = 1
	f.takeoffs["p1"] = json.RawMessage(`{
		"demolition_rooms": [{
			"id": "bath", "type": "Baño", "area_m2": 6, "perimeter_m": 10,
			"floor_material": "Cerámica", "wall_material": "Cerámica", "remove_floor": true
		}]
	}`)

	w := httptest.NewRecorder()
	h.Price(w, request(1, http.MethodPost, "", map[string]string{"id": "p1"}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Lines []pricing.Line `json:"lines"`
		Total float64        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, pricer.items)
	require.Len(t, resp.Lines, len(pricer.items))
	require.Positive(t, resp.Total)
}

func TestPriceWithoutPricerConfigured(t *testing.T) {
	h, f := newTestHandler()
	f.projects["p1"] = 1
	f.takeoffs["p1"] = json.RawMessage(`{}`)

	w := httptest.NewRecorder()
	h.Price(w, request(1, http.MethodPost, "", map[string]string{"id": "p1"}))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
