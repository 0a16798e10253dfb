package networth

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/app/server/api/http/middleware/auth"
	"fintrack/internal/domain/networth"
)

type Handler struct {
	service    networth.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service networth.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.summaryOp(), h.summary)
	huma.Register(api, h.snapshotOp(), h.snapshot)
	huma.Register(api, h.historyOp(), h.history)
	huma.Register(api, h.projectionOp(), h.project)
}

func (h *Handler) summary(ctx context.Context, _ *struct{}) (*summaryOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	summary, err := h.service.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &summaryOutput{Body: summary}, nil
}

func (h *Handler) snapshot(ctx context.Context, _ *struct{}) (*snapshotOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	snap, err := h.service.TakeSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &snapshotOutput{Body: snap}, nil
}

func (h *Handler) history(ctx context.Context, input *historyInput) (*historyOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	snaps, err := h.service.History(ctx, userID, input.Limit)
	if err != nil {
		return nil, err
	}

	return &historyOutput{Body: historyResponse{Snapshots: snaps}}, nil
}

func (h *Handler) project(ctx context.Context, input *projectionInput) (*projectionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	in, err := parseProjectionRequest(input.Body)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	projection, err := h.service.Project(ctx, userID, in)
	if err != nil {
		if errors.Is(err, networth.ErrInvalidProjection) {
			return nil, huma.Error422UnprocessableEntity("invalid projection input")
		}
		return nil, err
	}

	return &projectionOutput{Body: projection}, nil
}

func parseProjectionRequest(body projectionRequest) (networth.ProjectionInput, error) {
	var in networth.ProjectionInput
	var err error

	if in.MonthlyExpenses, err = decimal.NewFromString(body.MonthlyExpenses); err != nil {
		return in, errors.New("invalid monthly_expenses")
	}
	if in.MonthlyContribution, err = decimal.NewFromString(body.MonthlyContribution); err != nil {
		return in, errors.New("invalid monthly_contribution")
	}
	if in.AnnualReturnPct, err = decimal.NewFromString(body.AnnualReturnPct); err != nil {
		return in, errors.New("invalid annual_return_pct")
	}
	return in, nil
}
