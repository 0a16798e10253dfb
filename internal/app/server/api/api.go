// Registration and authentication, encrypted broker credentials,
// balance-sheet CRUD and the derived net worth / budget views all hang
// off one chi mux, with every operation registered through huma.
//
// POST /user/register                       # Register (public)
// POST /user/login                          # Login (public)
// POST /api/integrations/{name}             # Connect integration (auth)
// PUT  /api/integrations/{name}             # Rotate credential (auth)
// DELETE /api/integrations/{name}           # Disconnect (auth)
// GET  /api/integrations                    # List integrations (auth)
// GET  /api/integrations/{name}/portfolio   # Live portfolio (auth)
// GET/POST/PUT/DELETE /api/assets, /api/liabilities, /api/transactions
// POST/GET/DELETE /api/budgets
// GET/POST /api/networth...

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	assetAPI "fintrack/internal/app/server/api/http/asset"
	budgetAPI "fintrack/internal/app/server/api/http/budget"
	healthAPI "fintrack/internal/app/server/api/http/health"
	integrationAPI "fintrack/internal/app/server/api/http/integration"
	liabilityAPI "fintrack/internal/app/server/api/http/liability"
	"fintrack/internal/app/server/api/http/middleware"
	"fintrack/internal/app/server/api/http/middleware/auth"
	"fintrack/internal/app/server/api/http/middleware/logger"
	networthAPI "fintrack/internal/app/server/api/http/networth"
	transactionAPI "fintrack/internal/app/server/api/http/transaction"
	userAPI "fintrack/internal/app/server/api/http/user"
	"fintrack/internal/app/server/config"
	"fintrack/internal/domain/asset"
	"fintrack/internal/domain/budget"
	"fintrack/internal/domain/credential"
	"fintrack/internal/domain/liability"
	"fintrack/internal/domain/networth"
	"fintrack/internal/domain/session"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/domain/user"
	"fintrack/internal/infrastructure/storage/postgres"
	"fintrack/internal/integration/trading212"
)

type Handlers struct {
	Health      *healthAPI.Handler
	User        *userAPI.Handler
	Integration *integrationAPI.Handler
	Asset       *assetAPI.Handler
	Liability   *liabilityAPI.Handler
	Transaction *transactionAPI.Handler
	Budget      *budgetAPI.Handler
	NetWorth    *networthAPI.Handler
}

// New builds the chi mux with every operation registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Fintrack API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Integration.SetupRoutes(API)
	h.Asset.SetupRoutes(API)
	h.Liability.SetupRoutes(API)
	h.Transaction.SetupRoutes(API)
	h.Budget.SetupRoutes(API)
	h.NetWorth.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, user.NewPasswordValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	credentialRepo := postgres.NewCredentialRepository(pool, log)
	credentialService := credential.NewService(credentialRepo, cfg.Credential.Secret, log)
	portfolioClient := trading212.NewClient(cfg.Trading212.BaseURL)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	integrationHandler := integrationAPI.NewHandler(credentialService, portfolioClient, log, middlewares.GetAllAndClear())

	assetRepo := postgres.NewAssetRepository(pool, log)
	assetService := asset.NewService(assetRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	assetHandler := assetAPI.NewHandler(assetService, log, middlewares.GetAllAndClear())

	liabilityRepo := postgres.NewLiabilityRepository(pool, log)
	liabilityService := liability.NewService(liabilityRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	liabilityHandler := liabilityAPI.NewHandler(liabilityService, log, middlewares.GetAllAndClear())

	transactionRepo := postgres.NewTransactionRepository(pool, log)
	transactionService := transaction.NewService(transactionRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	transactionHandler := transactionAPI.NewHandler(transactionService, log, middlewares.GetAllAndClear())

	budgetRepo := postgres.NewBudgetRepository(pool, log)
	budgetService := budget.NewService(budgetRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	budgetHandler := budgetAPI.NewHandler(budgetService, log, middlewares.GetAllAndClear())

	snapshotRepo := postgres.NewSnapshotRepository(pool, log)
	networthService := networth.NewService(assetRepo, liabilityRepo, snapshotRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	networthHandler := networthAPI.NewHandler(networthService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:      healthHandler,
		User:        userHandler,
		Integration: integrationHandler,
		Asset:       assetHandler,
		Liability:   liabilityHandler,
		Transaction: transactionHandler,
		Budget:      budgetHandler,
		NetWorth:    networthHandler,
	}
}
