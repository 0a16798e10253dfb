package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"fintrack/internal/app/server/api/http/middleware/auth"
	"fintrack/internal/domain/transaction"
)

type Handler struct {
	service    transaction.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service transaction.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.summaryOp(), h.summary)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	filter := transaction.Filter{Type: transaction.TxType(input.Type)}
	if input.Year != 0 {
		if input.Month == 0 {
			return nil, huma.Error422UnprocessableEntity("month is required when year is set")
		}
		filter.Year = input.Year
		filter.Month = time.Month(input.Month)
	}

	txs, err := h.service.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: listResponse{Transactions: txs}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid amount")
	}

	id, err := h.service.Create(ctx, userID,
		transaction.TxType(input.Body.Type), input.Body.Category,
		amount, input.Body.Note, input.Body.Date)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &createOutput{Body: createResponse{ID: id, Status: "Ok"}}, nil
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

func (h *Handler) summary(ctx context.Context, input *summaryInput) (*summaryOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	year, month := input.Year, time.Month(input.Month)
	if year == 0 || month == 0 {
		now := time.Now()
		year, month = now.Year(), now.Month()
	}

	summary, err := h.service.MonthlySummary(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	return &summaryOutput{Body: summary}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		return huma.Error404NotFound("transaction not found")
	case errors.Is(err, transaction.ErrInvalidData):
		return huma.Error422UnprocessableEntity("invalid transaction data")
	default:
		return err
	}
}
