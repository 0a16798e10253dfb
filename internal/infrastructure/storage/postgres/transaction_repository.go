package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/domain/transaction"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTransactionRepository(pool *pgxpool.Pool, log *slog.Logger) *TransactionRepository {
	return &TransactionRepository{
		pool: pool,
		log:  log.With("component", "transaction_repository"),
	}
}

func (r *TransactionRepository) List(ctx context.Context, userID int, filter transaction.Filter) ([]transaction.Transaction, error) {
	query := `
		SELECT id, user_id, type, category, amount::text, note, date, created_at
		FROM transactions
		WHERE user_id = $1`

	args := []interface{}{userID}
	argIndex := 2

	if filter.Year != 0 {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM date) = $%d AND EXTRACT(MONTH FROM date) = $%d",
			argIndex, argIndex+1)
		args = append(args, filter.Year, int(filter.Month))
		argIndex += 2
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, string(filter.Type))
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list transactions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []transaction.Transaction
	for rows.Next() {
		var tx transaction.Transaction
		var amount string
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Category, &amount,
			&tx.Note, &tx.Date, &tx.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse transaction amount: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) (int, error) {
	const query = `
		INSERT INTO transactions (user_id, type, category, amount, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		tx.UserID, string(tx.Type), tx.Category, tx.Amount.String(), tx.Note, tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		r.log.Error("failed to create transaction", "user_id", tx.UserID, "error", err)
		return 0, fmt.Errorf("create transaction: %w", err)
	}
	return tx.ID, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, txID int) error {
	const query = `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, txID, userID)
	if err != nil {
		r.log.Error("failed to delete transaction", "transaction_id", txID, "error", err)
		return fmt.Errorf("delete transaction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return transaction.ErrNotFound
	}
	return nil
}

// Summarize aggregates income and expense in one pass; absent rows
// yield zeros rather than NULLs.
func (r *TransactionRepository) Summarize(ctx context.Context, userID int, filter transaction.Filter) (transaction.Summary, error) {
	const query = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)::text,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)::text
		FROM transactions
		WHERE user_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3`

	var summary transaction.Summary
	var income, expense string
	err := r.pool.QueryRow(ctx, query, userID, filter.Year, int(filter.Month)).
		Scan(&income, &expense)
	if err != nil {
		r.log.Error("failed to summarize transactions", "user_id", userID, "error", err)
		return summary, fmt.Errorf("summarize transactions: %w", err)
	}

	if summary.Income, err = decimal.NewFromString(income); err != nil {
		return summary, fmt.Errorf("parse income total: %w", err)
	}
	if summary.Expense, err = decimal.NewFromString(expense); err != nil {
		return summary, fmt.Errorf("parse expense total: %w", err)
	}
	summary.Net = summary.Income.Sub(summary.Expense)
	return summary, nil
}
