package integration

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"fintrack/internal/app/server/api/http/middleware/auth"
	"fintrack/internal/domain/credential"
	"fintrack/internal/integration/trading212"
)

// PortfolioFetcher is the slice of the Trading 212 client this handler
// needs.
type PortfolioFetcher interface {
	FetchPortfolio(ctx context.Context, apiKey string) ([]trading212.Position, error)
}

type Handler struct {
	service    credential.Servicer
	portfolio  PortfolioFetcher
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service credential.Servicer, portfolio PortfolioFetcher, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		portfolio:  portfolio,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.connectOp(), h.connect)
	huma.Register(api, h.rotateOp(), h.rotate)
	huma.Register(api, h.disconnectOp(), h.disconnect)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.portfolioOp(), h.fetchPortfolio)
}

func (h *Handler) connect(ctx context.Context, input *connectInput) (*connectOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Connect(ctx, userID, input.Name, input.Body.toInput()); err != nil {
		return nil, h.mapError(err)
	}

	return &connectOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) rotate(ctx context.Context, input *rotateInput) (*rotateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Rotate(ctx, userID, input.Name, input.Body.toInput()); err != nil {
		return nil, h.mapError(err)
	}

	return &rotateOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) disconnect(ctx context.Context, input *disconnectInput) (*disconnectOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Disconnect(ctx, userID, input.Name); err != nil {
		return nil, h.mapError(err)
	}

	return &disconnectOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	integrations, err := h.service.Status(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &listOutput{Body: ListResponse{Integrations: integrations}}, nil
}

func (h *Handler) fetchPortfolio(ctx context.Context, input *portfolioInput) (*portfolioOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	apiKey, err := h.service.Use(ctx, userID, input.Name)
	if err != nil {
		return nil, h.mapError(err)
	}

	positions, err := h.portfolio.FetchPortfolio(ctx, apiKey)
	if err != nil {
		var upstream *trading212.UpstreamError
		if errors.As(err, &upstream) {
			h.log.Warn("upstream portfolio fetch failed",
				"user_id", userID, "name", input.Name, "status", upstream.StatusCode)
			return nil, huma.Error502BadGateway("upstream service unavailable")
		}
		return nil, err
	}

	return &portfolioOutput{Body: PortfolioResponse{Positions: positions}}, nil
}

// mapError translates domain sentinels into response statuses. A
// failed decrypt is reported as a conflict: the stored envelope no
// longer matches the server secret and the user must reconnect.
func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, credential.ErrInvalidInput):
		return huma.Error422UnprocessableEntity("invalid credential input")
	case errors.Is(err, credential.ErrConflict):
		return huma.Error409Conflict("integration already connected")
	case errors.Is(err, credential.ErrNotConnected):
		return huma.Error404NotFound("integration not connected")
	case errors.Is(err, credential.ErrDecrypt):
		return huma.Error409Conflict("stored credential cannot be decrypted, reconnect the integration")
	case errors.Is(err, credential.ErrMissingSecret):
		return huma.Error500InternalServerError("credential subsystem unavailable")
	default:
		return err
	}
}
