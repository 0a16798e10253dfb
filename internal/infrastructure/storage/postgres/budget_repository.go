package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/domain/budget"
)

type BudgetRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBudgetRepository(pool *pgxpool.Pool, log *slog.Logger) *BudgetRepository {
	return &BudgetRepository{
		pool: pool,
		log:  log.With("component", "budget_repository"),
	}
}

// Upsert relies on the UNIQUE(user_id, month, category) constraint:
// setting a limit twice updates in place, no read-modify-write cycle.
func (r *BudgetRepository) Upsert(ctx context.Context, b *budget.Budget) (int, error) {
	const query = `
		INSERT INTO budgets (user_id, month, category, limit_amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month, category)
		DO UPDATE SET limit_amount = EXCLUDED.limit_amount, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		b.UserID, b.Month, b.Category, b.Limit.String(),
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		r.log.Error("failed to upsert budget",
			"user_id", b.UserID, "month", b.Month, "category", b.Category, "error", err)
		return 0, fmt.Errorf("upsert budget: %w", err)
	}
	return b.ID, nil
}

func (r *BudgetRepository) ListWithSpending(ctx context.Context, userID int, month string) ([]budget.Status, error) {
	const query = `
		SELECT b.id, b.user_id, b.month, b.category, b.limit_amount::text,
		       b.created_at, b.updated_at,
		       COALESCE((
		           SELECT SUM(t.amount)
		           FROM transactions t
		           WHERE t.user_id = b.user_id
		             AND t.type = 'expense'
		             AND t.category = b.category
		             AND to_char(t.date, 'YYYY-MM') = b.month
		       ), 0)::text AS spent
		FROM budgets b
		WHERE b.user_id = $1 AND b.month = $2
		ORDER BY b.category`

	rows, err := r.pool.Query(ctx, query, userID, month)
	if err != nil {
		r.log.Error("failed to list budgets", "user_id", userID, "month", month, "error", err)
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var statuses []budget.Status
	for rows.Next() {
		var st budget.Status
		var limit, spent string
		err := rows.Scan(&st.ID, &st.UserID, &st.Month, &st.Category, &limit,
			&st.CreatedAt, &st.UpdatedAt, &spent)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		if st.Limit, err = decimal.NewFromString(limit); err != nil {
			return nil, fmt.Errorf("parse budget limit: %w", err)
		}
		if st.Spent, err = decimal.NewFromString(spent); err != nil {
			return nil, fmt.Errorf("parse budget spending: %w", err)
		}
		statuses = append(statuses, st)
	}
	return statuses, rows.Err()
}

func (r *BudgetRepository) Delete(ctx context.Context, userID int, month, category string) error {
	const query = `DELETE FROM budgets WHERE user_id = $1 AND month = $2 AND category = $3`

	result, err := r.pool.Exec(ctx, query, userID, month, category)
	if err != nil {
		r.log.Error("failed to delete budget",
			"user_id", userID, "month", month, "category", category, "error", err)
		return fmt.Errorf("delete budget: %w", err)
	}
	if result.RowsAffected() == 0 {
		return budget.ErrNotFound
	}
	return nil
}
