package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/domain/networth"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSnapshotRepository(pool *pgxpool.Pool, log *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		pool: pool,
		log:  log.With("component", "snapshot_repository"),
	}
}

// Save upserts on (user_id, date): one trend point per day.
func (r *SnapshotRepository) Save(ctx context.Context, s *networth.Snapshot) (int, error) {
	const query = `
		INSERT INTO net_worth_snapshots (user_id, date, assets, liabilities, net_worth)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date)
		DO UPDATE SET assets = EXCLUDED.assets,
		              liabilities = EXCLUDED.liabilities,
		              net_worth = EXCLUDED.net_worth
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		s.UserID, s.Date,
		s.Assets.String(), s.Liabilities.String(), s.NetWorth.String(),
	).Scan(&s.ID)
	if err != nil {
		r.log.Error("failed to save snapshot", "user_id", s.UserID, "error", err)
		return 0, fmt.Errorf("save snapshot: %w", err)
	}
	return s.ID, nil
}

func (r *SnapshotRepository) List(ctx context.Context, userID, limit int) ([]networth.Snapshot, error) {
	query := `
		SELECT id, user_id, date, assets::text, liabilities::text, net_worth::text
		FROM net_worth_snapshots
		WHERE user_id = $1
		ORDER BY date DESC`

	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list snapshots", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []networth.Snapshot
	for rows.Next() {
		var s networth.Snapshot
		var assets, liabilities, net string
		err := rows.Scan(&s.ID, &s.UserID, &s.Date, &assets, &liabilities, &net)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if s.Assets, err = decimal.NewFromString(assets); err != nil {
			return nil, fmt.Errorf("parse snapshot assets: %w", err)
		}
		if s.Liabilities, err = decimal.NewFromString(liabilities); err != nil {
			return nil, fmt.Errorf("parse snapshot liabilities: %w", err)
		}
		if s.NetWorth, err = decimal.NewFromString(net); err != nil {
			return nil, fmt.Errorf("parse snapshot net worth: %w", err)
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}
