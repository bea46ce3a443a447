package dto

import (
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest creates a new savings goal. Deadline is optional,
// formatted YYYY-MM-DD.
type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     string          `json:"deadline,omitempty"`
}

// UpdateGoalRequest edits a goal. Nil fields are left unchanged;
// ClearDeadline removes an existing deadline.
type UpdateGoalRequest struct {
	Title         *string          `json:"title,omitempty"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	ClearDeadline bool             `json:"clearDeadline,omitempty"`
}

// ContributionRequest adds money to a goal.
type ContributionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse decorates a goal with its rendered progress.
type GoalResponse struct {
	domain.Goal
	ProgressPercent float64 `json:"progressPercent"`
	ProgressText    string  `json:"progressText"`
	ProgressBar     string  `json:"progressBar"`
	DeadlineText    string  `json:"deadlineText"`
}
