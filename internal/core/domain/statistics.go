package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Statistics aggregates an account's ledger over a date range.
// Balance is always TotalIncome minus TotalExpense, and the category
// breakdown covers expenses only, ordered by descending total.
type Statistics struct {
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpense       decimal.Decimal `json:"totalExpense"`
	Balance            decimal.Decimal `json:"balance"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	PeriodStart        time.Time       `json:"periodStart"`
	PeriodEnd          time.Time       `json:"periodEnd"`
}

// AdminStatistics is the operator-facing aggregate across all accounts.
type AdminStatistics struct {
	TotalAccounts     int64           `json:"totalAccounts"`
	NewAccountsToday  int64           `json:"newAccountsToday"`
	ActiveAccountsWk  int64           `json:"activeAccountsWeek"`
	TotalEntries      int64           `json:"totalEntries"`
	EntriesToday      int64           `json:"entriesToday"`
	EntriesWeek       int64           `json:"entriesWeek"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	TotalGoals        int64           `json:"totalGoals"`
	CompletedGoals    int64           `json:"completedGoals"`
	UsageByProvider   map[string]int64 `json:"usageByProvider"`
}
