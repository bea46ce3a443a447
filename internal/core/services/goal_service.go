package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const deadlineLayout = "2006-01-02"

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
}

func NewGoalService(goalRepo portsrepo.GoalRepository) portssvc.GoalSvc {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvc = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, accountID int64, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(deadlineLayout, req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: deadline must be formatted YYYY-MM-DD", apperrors.ErrValidation)
		}
		deadline = &parsed
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		ID:            uuid.NewString(),
		AccountID:     accountID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Status:        domain.GoalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	s.LogInfo(ctx, "Goal created", "account_id", accountID, "goal_id", goal.ID)
	return &goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, accountID int64) ([]domain.Goal, error) {
	return s.goalRepo.FindGoals(ctx, accountID, "")
}

// GetGoal enforces ownership: a goal belonging to another account reads as
// not found so goal ids cannot be probed across accounts.
func (s *goalService) GetGoal(ctx context.Context, accountID int64, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.AccountID != accountID {
		return nil, apperrors.ErrNotFound
	}
	return goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, accountID int64, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	if _, err := s.GetGoal(ctx, accountID, goalID); err != nil {
		return nil, err
	}

	update := domain.GoalUpdate{
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		ClearDeadline: req.ClearDeadline,
	}
	if req.TargetAmount != nil && !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}
	if req.Deadline != nil {
		parsed, err := time.Parse(deadlineLayout, *req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: deadline must be formatted YYYY-MM-DD", apperrors.ErrValidation)
		}
		update.Deadline = &parsed
	}

	if err := s.goalRepo.UpdateGoal(ctx, goalID, update); err != nil {
		return nil, err
	}
	return s.goalRepo.FindGoalByID(ctx, goalID)
}

func (s *goalService) DeleteGoal(ctx context.Context, accountID int64, goalID string) error {
	if _, err := s.GetGoal(ctx, accountID, goalID); err != nil {
		return err
	}
	return s.goalRepo.DeleteGoal(ctx, goalID)
}

func (s *goalService) Contribute(ctx context.Context, accountID int64, goalID string, amount decimal.Decimal) (*domain.Goal, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: contribution cannot be negative", apperrors.ErrValidation)
	}
	if _, err := s.GetGoal(ctx, accountID, goalID); err != nil {
		return nil, err
	}

	if err := s.goalRepo.AddContribution(ctx, goalID, amount); err != nil {
		return nil, err
	}
	return s.goalRepo.FindGoalByID(ctx, goalID)
}
