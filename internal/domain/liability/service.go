package liability

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID int) ([]Liability, error)
	Create(ctx context.Context, userID int, name, category string, balance decimal.Decimal) (int, error)
	Update(ctx context.Context, userID, liabilityID int, name, category string, balance decimal.Decimal) error
	Delete(ctx context.Context, userID, liabilityID int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "liability_service"),
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]Liability, error) {
	liabilities, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list liabilities", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list liabilities: %w", err)
	}
	return liabilities, nil
}

func (s *Service) Create(ctx context.Context, userID int, name, category string, balance decimal.Decimal) (int, error) {
	if name == "" || balance.IsNegative() {
		return 0, ErrInvalidData
	}

	id, err := s.repo.Create(ctx, &Liability{
		UserID:   userID,
		Name:     name,
		Category: category,
		Balance:  balance,
	})
	if err != nil {
		s.log.Error("failed to create liability", "user_id", userID, "error", err)
		return 0, fmt.Errorf("create liability: %w", err)
	}

	return id, nil
}

func (s *Service) Update(ctx context.Context, userID, liabilityID int, name, category string, balance decimal.Decimal) error {
	if name == "" || balance.IsNegative() {
		return ErrInvalidData
	}

	err := s.repo.Update(ctx, &Liability{
		ID:       liabilityID,
		UserID:   userID,
		Name:     name,
		Category: category,
		Balance:  balance,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update liability", "liability_id", liabilityID, "user_id", userID, "error", err)
		return fmt.Errorf("update liability: %w", err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, userID, liabilityID int) error {
	if err := s.repo.Delete(ctx, userID, liabilityID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete liability", "liability_id", liabilityID, "user_id", userID, "error", err)
		return fmt.Errorf("delete liability: %w", err)
	}
	return nil
}
