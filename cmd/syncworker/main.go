package main

import (
	"context"
	"log/slog"
	"os"

	"profilesync/config"
	"profilesync/internal/delivery"
	"profilesync/internal/delivery/worker"
	"profilesync/internal/delivery/worker/handler"
	"profilesync/internal/domain/constants"
	"profilesync/internal/domain/service"
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
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
			oauth.NewStateStore,
			pubsub.NewEventPublisher,
			newOAuthService,
			newGitHubClient,
			newLinkedInClient,
		),
	)
}

func newOAuthService(cfg *config.Config) service.OAuthService {
	if cfg.Providers.Mode == constants.ProviderModeDemo {
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
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
