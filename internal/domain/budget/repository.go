package budget

import "context"

type Repository interface {
	// Upsert inserts or replaces the limit for (userID, month,
	// category) in a single statement. First-use row creation is
	// handled here by the database, not by retry loops in callers.
	Upsert(ctx context.Context, b *Budget) (int, error)
	// ListWithSpending returns the month's budgets with expense
	// aggregation joined in.
	ListWithSpending(ctx context.Context, userID int, month string) ([]Status, error)
	Delete(ctx context.Context, userID int, month, category string) error
}
