package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection marks a ledger entry as money in or money out.
type EntryDirection string

const (
	DirectionIncome  EntryDirection = "income"
	DirectionExpense EntryDirection = "expense"
)

// IsValid reports whether the direction is one of the two known values.
func (d EntryDirection) IsValid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// CategoryFallback is used when the extractor produced no recognisable category.
const CategoryFallback = "Boshqa"

// ExpenseCategories is the fixed enumerated set for expense entries.
var ExpenseCategories = []string{
	"Oziq-ovqat",
	"Transport",
	"Uy-joy",
	"Sog'liq",
	"Ta'lim",
	"O'yin-kulgi",
	"Kiyim",
	"Aloqa",
	"Boshqa",
}

// IncomeCategories is the fixed enumerated set for income entries.
var IncomeCategories = []string{
	"Maosh",
	"Biznes",
	"Sovg'a",
	"Investitsiya",
	"Boshqa",
}

// CategoriesFor returns the enumerated category set for a direction.
func CategoriesFor(direction EntryDirection) []string {
	if direction == DirectionIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// IsKnownCategory reports whether category belongs to the enumerated set for
// the direction. Extraction coerces anything outside the set to
// CategoryFallback before an entry is stored.
func IsKnownCategory(direction EntryDirection, category string) bool {
	for _, c := range CategoriesFor(direction) {
		if c == category {
			return true
		}
	}
	return false
}

// LedgerEntry is one recorded income or expense event. Entries are immutable
// once created.
type LedgerEntry struct {
	ID          string          `json:"id"`
	AccountID   int64           `json:"accountID"`
	Direction   EntryDirection  `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	OccurredOn  time.Time       `json:"occurredOn"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// LedgerFilter narrows a ledger listing.
type LedgerFilter struct {
	Direction *EntryDirection
	From      *time.Time
	To        *time.Time
	Limit     int
}
