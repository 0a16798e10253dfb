package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/domain/asset"
)

type AssetRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAssetRepository(pool *pgxpool.Pool, log *slog.Logger) *AssetRepository {
	return &AssetRepository{
		pool: pool,
		log:  log.With("component", "asset_repository"),
	}
}

// Monetary columns are NUMERIC; they are cast to text in SQL and parsed
// with decimal.NewFromString so no float ever touches the value.
func (r *AssetRepository) List(ctx context.Context, userID int) ([]asset.Asset, error) {
	const query = `
		SELECT id, user_id, name, category, value::text, created_at, updated_at
		FROM assets
		WHERE user_id = $1
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list assets", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := r.scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

func (r *AssetRepository) Get(ctx context.Context, userID, assetID int) (*asset.Asset, error) {
	const query = `
		SELECT id, user_id, name, category, value::text, created_at, updated_at
		FROM assets
		WHERE id = $1 AND user_id = $2`

	a, err := r.scanAsset(r.pool.QueryRow(ctx, query, assetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, asset.ErrNotFound
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) (int, error) {
	const query = `
		INSERT INTO assets (user_id, name, category, value)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		a.UserID, a.Name, a.Category, a.Value.String(),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create asset", "user_id", a.UserID, "error", err)
		return 0, fmt.Errorf("create asset: %w", err)
	}
	return a.ID, nil
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	const query = `
		UPDATE assets
		SET name = $1, category = $2, value = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5`

	result, err := r.pool.Exec(ctx, query,
		a.Name, a.Category, a.Value.String(), a.ID, a.UserID)
	if err != nil {
		r.log.Error("failed to update asset", "asset_id", a.ID, "error", err)
		return fmt.Errorf("update asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return asset.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, userID, assetID int) error {
	const query = `DELETE FROM assets WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, assetID, userID)
	if err != nil {
		r.log.Error("failed to delete asset", "asset_id", assetID, "error", err)
		return fmt.Errorf("delete asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return asset.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) Total(ctx context.Context, userID int) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(value), 0)::text FROM assets WHERE user_id = $1`

	var raw string
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("total assets: %w", err)
	}
	return decimal.NewFromString(raw)
}

func (r *AssetRepository) scanAsset(row interface {
	Scan(dest ...interface{}) error
}) (*asset.Asset, error) {
	var a asset.Asset
	var value string

	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Category, &value, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.Value, err = decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("parse asset value: %w", err)
	}
	return &a, nil
}
