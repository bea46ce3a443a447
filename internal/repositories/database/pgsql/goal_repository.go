package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	"github.com/finflowhq/finflow_bot/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

func toModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		ID:            d.ID,
		AccountID:     d.AccountID,
		Title:         d.Title,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		ID:            m.ID,
		AccountID:     m.AccountID,
		Title:         m.Title,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		Status:        domain.GoalStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

const goalColumns = "id, account_id, title, target_amount, current_amount, deadline, status, created_at, updated_at"

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.Title,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Deadline,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := toModelGoal(goal)
	query := `
		INSERT INTO goals (id, account_id, title, target_amount, current_amount, deadline, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.Title,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := fmt.Sprintf("SELECT %s FROM goals WHERE id = $1;", goalColumns)
	m, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	d := toDomainGoal(m)
	return &d, nil
}

func (r *PgxGoalRepository) FindGoals(ctx context.Context, accountID int64, status domain.GoalStatus) ([]domain.Goal, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM goals
		WHERE account_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at ASC;
	`, goalColumns)

	rows, err := r.Pool.Query(ctx, query, accountID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, toDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goal rows: %w", err)
	}
	return goals, nil
}

func (r *PgxGoalRepository) AddContribution(ctx context.Context, goalID string, amount decimal.Decimal) error {
	// Single statement so the increment and the completion flip stay atomic.
	query := `
		UPDATE goals
		SET current_amount = current_amount + $1,
			status = CASE WHEN current_amount + $1 >= target_amount THEN 'completed' ELSE status END,
			updated_at = $2
		WHERE id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, amount, time.Now().UTC(), goalID)
	if err != nil {
		return fmt.Errorf("failed to add contribution to goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) error {
	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 5)
	argIdx := 1

	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.TargetAmount != nil {
		addSet("target_amount", *update.TargetAmount)
	}
	if update.ClearDeadline {
		setClauses = append(setClauses, "deadline = NULL")
	} else if update.Deadline != nil {
		addSet("deadline", *update.Deadline)
	}
	if len(setClauses) == 0 {
		return nil
	}
	addSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE goals SET %s WHERE id = $%d;", strings.Join(setClauses, ", "), argIdx)
	args = append(args, goalID)

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
