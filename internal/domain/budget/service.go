package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	SetLimit(ctx context.Context, userID int, month, category string, limit decimal.Decimal) (int, error)
	Overview(ctx context.Context, userID int, month string) ([]Status, error)
	Delete(ctx context.Context, userID int, month, category string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "budget_service"),
	}
}

// SetLimit creates or replaces the budget for (month, category). The
// operation is idempotent: repeating it with the same limit is a
// no-op at the database.
func (s *Service) SetLimit(ctx context.Context, userID int, month, category string, limit decimal.Decimal) (int, error) {
	if month == "" {
		month = CurrentMonth()
	}
	if !ValidMonth(month) || category == "" || limit.IsNegative() {
		return 0, ErrInvalidData
	}

	id, err := s.repo.Upsert(ctx, &Budget{
		UserID:   userID,
		Month:    month,
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		s.log.Error("failed to upsert budget", "user_id", userID, "month", month, "category", category, "error", err)
		return 0, fmt.Errorf("upsert budget: %w", err)
	}

	return id, nil
}

func (s *Service) Overview(ctx context.Context, userID int, month string) ([]Status, error) {
	if month == "" {
		month = CurrentMonth()
	}
	if !ValidMonth(month) {
		return nil, ErrInvalidData
	}

	statuses, err := s.repo.ListWithSpending(ctx, userID, month)
	if err != nil {
		s.log.Error("failed to list budgets", "user_id", userID, "month", month, "error", err)
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	for i := range statuses {
		statuses[i].Remaining = statuses[i].Limit.Sub(statuses[i].Spent)
	}
	return statuses, nil
}

func (s *Service) Delete(ctx context.Context, userID int, month, category string) error {
	if err := s.repo.Delete(ctx, userID, month, category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete budget", "user_id", userID, "month", month, "category", category, "error", err)
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
