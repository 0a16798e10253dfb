package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

func (t TxType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Type      TxType          `json:"type"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter narrows a listing to one calendar month and/or type.
type Filter struct {
	Year  int
	Month time.Month
	Type  TxType
}

// Summary aggregates one month of activity.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}
