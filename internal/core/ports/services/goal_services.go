package services

import (
	"context"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/shopspring/decimal"
)

// GoalSvc manages savings goals. Every operation checks ownership: a goal
// belonging to another account reads as not found.
type GoalSvc interface {
	CreateGoal(ctx context.Context, accountID int64, req dto.CreateGoalRequest) (*domain.Goal, error)
	ListGoals(ctx context.Context, accountID int64) ([]domain.Goal, error)
	GetGoal(ctx context.Context, accountID int64, goalID string) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, accountID int64, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, accountID int64, goalID string) error

	// Contribute adds a non-negative amount to the goal's accumulated
	// total and returns the refreshed goal.
	Contribute(ctx context.Context, accountID int64, goalID string, amount decimal.Decimal) (*domain.Goal, error)
}
