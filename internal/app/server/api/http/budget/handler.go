package budget

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/app/server/api/http/middleware/auth"
	"fintrack/internal/domain/budget"
)

type Handler struct {
	service    budget.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service budget.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.setOp(), h.set)
	huma.Register(api, h.overviewOp(), h.overview)
	huma.Register(api, h.deleteOp(), h.delete)
}

// set is create and update in one: the limit for (month, category) is
// written in place whether or not it existed before.
func (h *Handler) set(ctx context.Context, input *setInput) (*setOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	limit, err := decimal.NewFromString(input.Body.Limit)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid limit")
	}

	id, err := h.service.SetLimit(ctx, userID, input.Body.Month, input.Body.Category, limit)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &setOutput{Body: setResponse{ID: id, Status: "Ok"}}, nil
}

func (h *Handler) overview(ctx context.Context, input *overviewInput) (*overviewOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	statuses, err := h.service.Overview(ctx, userID, input.Month)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &overviewOutput{Body: overviewResponse{Budgets: statuses}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.Month, input.Category); err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, budget.ErrNotFound):
		return huma.Error404NotFound("budget not found")
	case errors.Is(err, budget.ErrInvalidData):
		return huma.Error422UnprocessableEntity("invalid budget data")
	default:
		return err
	}
}
