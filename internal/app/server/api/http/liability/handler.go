package liability

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/app/server/api/http/middleware/auth"
	"fintrack/internal/domain/liability"
)

type Handler struct {
	service    liability.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service liability.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	liabilities, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: listResponse{Liabilities: liabilities}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	balance, err := decimal.NewFromString(input.Body.Balance)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid balance")
	}

	id, err := h.service.Create(ctx, userID, input.Body.Name, input.Body.Category, balance)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &createOutput{Body: createResponse{ID: id, Status: "Ok"}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	balance, err := decimal.NewFromString(input.Body.Balance)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid balance")
	}

	if err := h.service.Update(ctx, userID, input.ID, input.Body.Name, input.Body.Category, balance); err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, liability.ErrNotFound):
		return huma.Error404NotFound("liability not found")
	case errors.Is(err, liability.ErrInvalidData):
		return huma.Error422UnprocessableEntity("invalid liability data")
	default:
		return err
	}
}
