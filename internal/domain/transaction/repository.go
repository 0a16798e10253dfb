package transaction

import "context"

type Repository interface {
	List(ctx context.Context, userID int, filter Filter) ([]Transaction, error)
	Create(ctx context.Context, tx *Transaction) (int, error)
	Delete(ctx context.Context, userID, txID int) error
	Summarize(ctx context.Context, userID int, filter Filter) (Summary, error)
}
