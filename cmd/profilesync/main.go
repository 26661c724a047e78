package main

import (
	"context"
	"log/slog"
	"os"

	"profilesync/config"
	"profilesync/internal/delivery"
	"profilesync/internal/delivery/api"
	"profilesync/internal/delivery/api/middleware"
	"profilesync/internal/delivery/api/router/handler"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/service"
	"profilesync/internal/infra/auth"
	"profilesync/internal/infra/crypto"
	logs "profilesync/internal/infra/log"
	"profilesync/internal/infra/oauth"
	"profilesync/internal/infra/persistence"
	"profilesync/internal/infra/persistence/securestore"
	"profilesync/internal/infra/provider/demo"
	"profilesync/internal/infra/provider/github"
	"profilesync/internal/infra/provider/linkedin"
	"profilesync/internal/infra/pubsub"
	"profilesync/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.NewKeyValueStore,
		crypto.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			securestore.NewTokenRepository,
			securestore.NewProfileCacheRepository,
			securestore.NewRateLimitRepository,
			securestore.NewSyncRepository,
			securestore.NewOAuthStateRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			oauth.NewStateStore,
			pubsub.NewEventPublisher,
			newOAuthService,
			newGitHubClient,
			newLinkedInClient,
		),
	)
}

// newOAuthService selects the live OAuth exchange or the demo issuer
func newOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	if cfg.Providers.Mode == constants.ProviderModeDemo {
		logger.Warn("Provider mode is demo, no real provider is contacted")

		return demo.NewOAuthService()
	}

	return oauth.NewService(cfg)
}

func newGitHubClient(cfg *config.Config) service.GitHubClient {
	if cfg.Providers.Mode == constants.ProviderModeDemo {
		return demo.NewGitHubClient()
	}

	return github.NewClient(cfg)
}

func newLinkedInClient(cfg *config.Config) service.LinkedInClient {
	if cfg.Providers.Mode == constants.ProviderModeDemo {
		return demo.NewLinkedInClient()
	}

	return linkedin.NewClient(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserLocks,
			impl.NewTokenService,
			impl.NewProviderDataService,
			impl.NewSyncService,
			impl.NewConflictService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIntegrationHandler,
			handler.NewSyncHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
