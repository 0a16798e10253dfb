package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/domain/liability"
)

type LiabilityRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewLiabilityRepository(pool *pgxpool.Pool, log *slog.Logger) *LiabilityRepository {
	return &LiabilityRepository{
		pool: pool,
		log:  log.With("component", "liability_repository"),
	}
}

func (r *LiabilityRepository) List(ctx context.Context, userID int) ([]liability.Liability, error) {
	const query = `
		SELECT id, user_id, name, category, balance::text, created_at, updated_at
		FROM liabilities
		WHERE user_id = $1
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list liabilities", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list liabilities: %w", err)
	}
	defer rows.Close()

	var items []liability.Liability
	for rows.Next() {
		l, err := r.scanLiability(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

func (r *LiabilityRepository) Get(ctx context.Context, userID, liabilityID int) (*liability.Liability, error) {
	const query = `
		SELECT id, user_id, name, category, balance::text, created_at, updated_at
		FROM liabilities
		WHERE id = $1 AND user_id = $2`

	l, err := r.scanLiability(r.pool.QueryRow(ctx, query, liabilityID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, liability.ErrNotFound
		}
		return nil, fmt.Errorf("get liability: %w", err)
	}
	return l, nil
}

func (r *LiabilityRepository) Create(ctx context.Context, l *liability.Liability) (int, error) {
	const query = `
		INSERT INTO liabilities (user_id, name, category, balance)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		l.UserID, l.Name, l.Category, l.Balance.String(),
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create liability", "user_id", l.UserID, "error", err)
		return 0, fmt.Errorf("create liability: %w", err)
	}
	return l.ID, nil
}

func (r *LiabilityRepository) Update(ctx context.Context, l *liability.Liability) error {
	const query = `
		UPDATE liabilities
		SET name = $1, category = $2, balance = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5`

	result, err := r.pool.Exec(ctx, query,
		l.Name, l.Category, l.Balance.String(), l.ID, l.UserID)
	if err != nil {
		r.log.Error("failed to update liability", "liability_id", l.ID, "error", err)
		return fmt.Errorf("update liability: %w", err)
	}
	if result.RowsAffected() == 0 {
		return liability.ErrNotFound
	}
	return nil
}

func (r *LiabilityRepository) Delete(ctx context.Context, userID, liabilityID int) error {
	const query = `DELETE FROM liabilities WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, liabilityID, userID)
	if err != nil {
		r.log.Error("failed to delete liability", "liability_id", liabilityID, "error", err)
		return fmt.Errorf("delete liability: %w", err)
	}
	if result.RowsAffected() == 0 {
		return liability.ErrNotFound
	}
	return nil
}

func (r *LiabilityRepository) Total(ctx context.Context, userID int) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(balance), 0)::text FROM liabilities WHERE user_id = $1`

	var raw string
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("total liabilities: %w", err)
	}
	return decimal.NewFromString(raw)
}

func (r *LiabilityRepository) scanLiability(row interface {
	Scan(dest ...interface{}) error
}) (*liability.Liability, error) {
	var l liability.Liability
	var balance string

	err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.Category, &balance, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	l.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse liability balance: %w", err)
	}
	return &l, nil
}
