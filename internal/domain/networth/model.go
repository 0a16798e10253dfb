package networth

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the current balance-sheet view.
type Summary struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"net_worth"`
}

// Snapshot is one persisted point of the net-worth trend, at most one
// per user per day.
type Snapshot struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Date        time.Time       `json:"date"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"net_worth"`
}

// ProjectionInput parameterizes a FIRE projection.
type ProjectionInput struct {
	MonthlyExpenses     decimal.Decimal `json:"monthly_expenses"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	// AnnualReturnPct is the expected nominal return, e.g. 7 for 7%.
	AnnualReturnPct decimal.Decimal `json:"annual_return_pct"`
}

// Projection is the outcome of a FIRE calculation using the 4% rule:
// the target is 25x annual expenses.
type Projection struct {
	TargetAmount   decimal.Decimal `json:"target_amount"`
	CurrentAmount  decimal.Decimal `json:"current_amount"`
	MonthsToTarget int             `json:"months_to_target"`
	Achievable     bool            `json:"achievable"`
}
