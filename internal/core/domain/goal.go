package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus tracks the lifecycle of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// Goal is a savings target owned by one account. CurrentAmount only ever
// grows through contributions and may exceed TargetAmount (over-funding is
// allowed).
type Goal struct {
	ID            string          `json:"id"`
	AccountID     int64           `json:"accountID"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Status        GoalStatus      `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProgressPercent returns the unclamped completion percentage.
func (g Goal) ProgressPercent() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// GoalUpdate carries the editable goal fields. Nil means "leave unchanged";
// ClearDeadline removes an existing deadline.
type GoalUpdate struct {
	Title         *string
	TargetAmount  *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool
}
