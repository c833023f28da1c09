package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	elementAPI "passvault/internal/app/server/api/http/element"
	healthAPI "passvault/internal/app/server/api/http/health"
	"passvault/internal/app/server/api/http/middleware"
	"passvault/internal/app/server/api/http/middleware/auth"
	loggerMW "passvault/internal/app/server/api/http/middleware/logger"
	userAPI "passvault/internal/app/server/api/http/user"
	"passvault/internal/app/server/config"
	"passvault/internal/domain/element"
	"passvault/internal/domain/token"
	"passvault/internal/domain/user"
	"passvault/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Element *elementAPI.Handler
}

// New builds the chi mux with all operations registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaCfg := huma.DefaultConfig("Passvault API", "1.0.0")
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaCfg)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Element.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	issuer := token.NewIssuer(
		cfg.Token.AccessSecret, cfg.Token.RefreshSecret,
		cfg.Token.AccessTTL, cfg.Token.RefreshTTL)

	authMW := auth.New(issuer.AccessSecret(), log)
	requestLog := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestLog.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, issuer, log)
	middlewares.Add(requestLog.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(requestLog.Middleware())
	middlewares.Add(authMW.Middleware())
	protected := middlewares.GetAllAndClear()
	userHandler := userAPI.NewHandler(userService, log, public, protected)

	elementRepo := postgres.NewElementRepository(storage.Pool(), log)
	elementService := element.NewService(elementRepo, log)
	middlewares.Add(requestLog.Middleware())
	middlewares.Add(authMW.Middleware())
	elementHandler := elementAPI.NewHandler(elementService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		User:    userHandler,
		Element: elementHandler,
	}
}
