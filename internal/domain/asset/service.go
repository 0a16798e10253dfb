package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID int) ([]Asset, error)
	Create(ctx context.Context, userID int, name, category string, value decimal.Decimal) (int, error)
	Update(ctx context.Context, userID, assetID int, name, category string, value decimal.Decimal) error
	Delete(ctx context.Context, userID, assetID int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "asset_service"),
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]Asset, error) {
	assets, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list assets", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (s *Service) Create(ctx context.Context, userID int, name, category string, value decimal.Decimal) (int, error) {
	if name == "" || value.IsNegative() {
		return 0, ErrInvalidData
	}

	id, err := s.repo.Create(ctx, &Asset{
		UserID:   userID,
		Name:     name,
		Category: category,
		Value:    value,
	})
	if err != nil {
		s.log.Error("failed to create asset", "user_id", userID, "error", err)
		return 0, fmt.Errorf("create asset: %w", err)
	}

	return id, nil
}

func (s *Service) Update(ctx context.Context, userID, assetID int, name, category string, value decimal.Decimal) error {
	if name == "" || value.IsNegative() {
		return ErrInvalidData
	}

	err := s.repo.Update(ctx, &Asset{
		ID:       assetID,
		UserID:   userID,
		Name:     name,
		Category: category,
		Value:    value,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update asset", "asset_id", assetID, "user_id", userID, "error", err)
		return fmt.Errorf("update asset: %w", err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, userID, assetID int) error {
	if err := s.repo.Delete(ctx, userID, assetID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete asset", "asset_id", assetID, "user_id", userID, "error", err)
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
