package budget

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Month is stored as "YYYY-MM".
var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func ValidMonth(month string) bool {
	return monthPattern.MatchString(month)
}

func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

type Budget struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Month     string          `json:"month"`
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Status is a budget with the month's spending aggregated against it.
type Status struct {
	Budget
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}
