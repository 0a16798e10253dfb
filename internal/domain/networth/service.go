package networth

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/domain/asset"
	"fintrack/internal/domain/liability"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

// maxHorizonMonths caps a projection at 100 years; beyond that the
// target is reported as unreachable.
const maxHorizonMonths = 1200

var (
	twelve     = decimal.NewFromInt(12)
	hundred    = decimal.NewFromInt(100)
	twentyFive = decimal.NewFromInt(25)
)

type Servicer interface {
	Summary(ctx context.Context, userID int) (Summary, error)
	TakeSnapshot(ctx context.Context, userID int) (Snapshot, error)
	History(ctx context.Context, userID, limit int) ([]Snapshot, error)
	Project(ctx context.Context, userID int, in ProjectionInput) (Projection, error)
}

type Service struct {
	assets      asset.Repository
	liabilities liability.Repository
	snapshots   SnapshotRepository
	log         *slog.Logger
}

func NewService(assets asset.Repository, liabilities liability.Repository, snapshots SnapshotRepository, log *slog.Logger) *Service {
	return &Service{
		assets:      assets,
		liabilities: liabilities,
		snapshots:   snapshots,
		log:         log.With("component", "networth_service"),
	}
}

func (s *Service) Summary(ctx context.Context, userID int) (Summary, error) {
	assets, err := s.assets.Total(ctx, userID)
	if err != nil {
		s.log.Error("failed to total assets", "user_id", userID, "error", err)
		return Summary{}, fmt.Errorf("total assets: %w", err)
	}

	liabilities, err := s.liabilities.Total(ctx, userID)
	if err != nil {
		s.log.Error("failed to total liabilities", "user_id", userID, "error", err)
		return Summary{}, fmt.Errorf("total liabilities: %w", err)
	}

	return Summary{
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    assets.Sub(liabilities),
	}, nil
}

// TakeSnapshot records today's summary into the trend; one point per
// day, latest wins.
func (s *Service) TakeSnapshot(ctx context.Context, userID int) (Snapshot, error) {
	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		UserID:      userID,
		Date:        time.Now().Truncate(24 * time.Hour),
		Assets:      summary.Assets,
		Liabilities: summary.Liabilities,
		NetWorth:    summary.NetWorth,
	}

	id, err := s.snapshots.Save(ctx, &snap)
	if err != nil {
		s.log.Error("failed to save snapshot", "user_id", userID, "error", err)
		return Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = id

	return snap, nil
}

func (s *Service) History(ctx context.Context, userID, limit int) ([]Snapshot, error) {
	snaps, err := s.snapshots.List(ctx, userID, limit)
	if err != nil {
		s.log.Error("failed to list snapshots", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

// Project runs a FIRE projection from the user's current net worth:
// target is 25x annual expenses (the 4% rule), compounding monthly at
// the expected return with a fixed monthly contribution.
func (s *Service) Project(ctx context.Context, userID int, in ProjectionInput) (Projection, error) {
	if !in.MonthlyExpenses.IsPositive() || in.MonthlyContribution.IsNegative() || in.AnnualReturnPct.IsNegative() {
		return Projection{}, ErrInvalidProjection
	}

	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return Projection{}, err
	}

	target := in.MonthlyExpenses.Mul(twelve).Mul(twentyFive)
	projection := Projection{
		TargetAmount:  target,
		CurrentAmount: summary.NetWorth,
	}

	monthlyRate := in.AnnualReturnPct.Div(hundred).Div(twelve)

	balance := summary.NetWorth
	for months := 0; months <= maxHorizonMonths; months++ {
		if balance.GreaterThanOrEqual(target) {
			projection.MonthsToTarget = months
			projection.Achievable = true
			return projection, nil
		}
		balance = balance.Add(balance.Mul(monthlyRate)).Add(in.MonthlyContribution)
	}

	projection.MonthsToTarget = maxHorizonMonths
	return projection, nil
}
