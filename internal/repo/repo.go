package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BudgetStatus is the budget lifecycle. Draft budgets get delivered, then
// the client accepts or rejects; adjustments hang off delivered budgets.
type BudgetStatus string

const (
	BudgetDraft     BudgetStatus = "draft"
	BudgetDelivered BudgetStatus = "delivered"
	BudgetAccepted  BudgetStatus = "accepted"
	BudgetRejected  BudgetStatus = "rejected"
)

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetDraft, BudgetDelivered, BudgetAccepted, BudgetRejected:
		return true
	}
	return false
}

// CanTransitionTo enforces draft -> delivered -> accepted|rejected.
func (s BudgetStatus) CanTransitionTo(next BudgetStatus) bool {
	switch s {
	case BudgetDraft:
		return next == BudgetDelivered
	case BudgetDelivered:
		return next == BudgetAccepted || next == BudgetRejected
	}
	return false
}

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Budget struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"project_id"`
	Status    BudgetStatus `json:"status"`
	Total     float64      `json:"total"`
	CreatedAt time.Time    `json:"created_at"`
}

type Adjustment struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	CreateProject(ctx context.Context, userID int, name string) (string, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	OwnsProject(ctx context.Context, userID int, projectID string) (bool, error)

	SaveTakeoff(ctx context.Context, projectID string, doc json.RawMessage) error
	LoadTakeoff(ctx context.Context, projectID string) (json.RawMessage, error)

	CreateBudget(ctx context.Context, projectID string, total float64) (string, error)
	GetBudget(ctx context.Context, budgetID string) (Budget, error)
	UpdateBudgetStatus(ctx context.Context, budgetID string, status BudgetStatus) error
	AddAdjustment(ctx context.Context, budgetID, description string, amount float64) (string, error)
	ListAdjustments(ctx context.Context, budgetID string) ([]Adjustment, error)
}

type PostgresRepository struct {
	db  *sql.DB
	log *zap.Logger
}

func NewPostgresRepository(db *sql.DB, log *zap.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, log: log}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) CreateProject(ctx context.Context, userID int, name string) (string, error) {
	id := uuid.NewString()
	query := "INSERT INTO projects (id, user_id, name) VALUES ($1, $2, $3)"
	if _, err := r.db.ExecContext(ctx, query, id, userID, name); err != nil {
		r.log.Error("create project", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := "SELECT id, name, created_at FROM projects WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresRepository) OwnsProject(ctx context.Context, userID int, projectID string) (bool, error) {
	var n int
	query := "SELECT COUNT(1) FROM projects WHERE id=$1 AND user_id=$2"
	if err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) SaveTakeoff(ctx context.Context, projectID string, doc json.RawMessage) error {
	query := "UPDATE projects SET takeoff=$2, updated_at=NOW() WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, projectID, []byte(doc))
	return err
}

func (r *PostgresRepository) LoadTakeoff(ctx context.Context, projectID string) (json.RawMessage, error) {
	var doc []byte
	query := "SELECT takeoff FROM projects WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(&doc)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc), nil
}

func (r *PostgresRepository) CreateBudget(ctx context.Context, projectID string, total float64) (string, error) {
	id := uuid.NewString()
	query := "INSERT INTO budgets (id, project_id, status, total) VALUES ($1, $2, $3, $4)"
	if _, err := r.db.ExecContext(ctx, query, id, projectID, string(BudgetDraft), total); err != nil {
		r.log.Error("create budget", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) GetBudget(ctx context.Context, budgetID string) (Budget, error) {
	var b Budget
	var status string
	query := "SELECT id, project_id, status, total, created_at FROM budgets WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, budgetID).Scan(&b.ID, &b.ProjectID, &status, &b.Total, &b.CreatedAt)
	if err != nil {
		return Budget{}, err
	}
	b.Status = BudgetStatus(status)
	return b, nil
}

func (r *PostgresRepository) UpdateBudgetStatus(ctx context.Context, budgetID string, status BudgetStatus) error {
	query := "UPDATE budgets SET status=$2, updated_at=NOW() WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, budgetID, string(status))
	return err
}

func (r *PostgresRepository) AddAdjustment(ctx context.Context, budgetID, description string, amount float64) (string, error) {
	id := uuid.NewString()
	query := "INSERT INTO adjustments (id, budget_id, description, amount) VALUES ($1, $2, $3, $4)"
	if _, err := r.db.ExecContext(ctx, query, id, budgetID, description, amount); err != nil {
		r.log.Error("add adjustment", zap.Error(err))
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) ListAdjustments(ctx context.Context, budgetID string) ([]Adjustment, error) {
	query := "SELECT id, budget_id, description, amount, created_at FROM adjustments WHERE budget_id=$1 ORDER BY created_at"
	rows, err := r.db.QueryContext(ctx, query, budgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Adjustment
	for rows.Next() {
		var a Adjustment
		if err := rows.Scan(&a.ID, &a.BudgetID, &a.Description, &a.Amount, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
