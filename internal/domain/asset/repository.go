package asset

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	List(ctx context.Context, userID int) ([]Asset, error)
	Get(ctx context.Context, userID, assetID int) (*Asset, error)
	Create(ctx context.Context, a *Asset) (int, error)
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, userID, assetID int) error
	// Total sums the user's asset values for net-worth computation.
	Total(ctx context.Context, userID int) (decimal.Decimal, error)
}
