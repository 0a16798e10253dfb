package liability

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	List(ctx context.Context, userID int) ([]Liability, error)
	Get(ctx context.Context, userID, liabilityID int) (*Liability, error)
	Create(ctx context.Context, l *Liability) (int, error)
	Update(ctx context.Context, l *Liability) error
	Delete(ctx context.Context, userID, liabilityID int) error
	Total(ctx context.Context, userID int) (decimal.Decimal, error)
}
