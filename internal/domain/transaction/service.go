package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID int, filter Filter) ([]Transaction, error)
	Create(ctx context.Context, userID int, typ TxType, category string, amount decimal.Decimal, note string, date time.Time) (int, error)
	Delete(ctx context.Context, userID, txID int) error
	MonthlySummary(ctx context.Context, userID, year int, month time.Month) (Summary, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "transaction_service"),
	}
}

func (s *Service) List(ctx context.Context, userID int, filter Filter) ([]Transaction, error) {
	txs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		s.log.Error("failed to list transactions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *Service) Create(ctx context.Context, userID int, typ TxType, category string, amount decimal.Decimal, note string, date time.Time) (int, error) {
	if !typ.Valid() || category == "" || !amount.IsPositive() {
		return 0, ErrInvalidData
	}
	if date.IsZero() {
		date = time.Now()
	}

	id, err := s.repo.Create(ctx, &Transaction{
		UserID:   userID,
		Type:     typ,
		Category: category,
		Amount:   amount,
		Note:     note,
		Date:     date,
	})
	if err != nil {
		s.log.Error("failed to create transaction", "user_id", userID, "type", typ, "error", err)
		return 0, fmt.Errorf("create transaction: %w", err)
	}

	return id, nil
}

func (s *Service) Delete(ctx context.Context, userID, txID int) error {
	if err := s.repo.Delete(ctx, userID, txID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete transaction", "tx_id", txID, "user_id", userID, "error", err)
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (s *Service) MonthlySummary(ctx context.Context, userID, year int, month time.Month) (Summary, error) {
	summary, err := s.repo.Summarize(ctx, userID, Filter{Year: year, Month: month})
	if err != nil {
		s.log.Error("failed to summarize transactions", "user_id", userID, "error", err)
		return Summary{}, fmt.Errorf("summarize transactions: %w", err)
	}

	summary.Net = summary.Income.Sub(summary.Expense)
	return summary, nil
}
