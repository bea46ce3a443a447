package repositories

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalRepository persists savings goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// FindGoalByID returns apperrors.ErrNotFound when no row exists.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	FindGoals(ctx context.Context, accountID int64, status domain.GoalStatus) ([]domain.Goal, error)

	// AddContribution atomically increments the goal's accumulated amount.
	AddContribution(ctx context.Context, goalID string, amount decimal.Decimal) error

	UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) error
	DeleteGoal(ctx context.Context, goalID string) error
}
