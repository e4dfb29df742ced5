package main

import (
	"context"
	"log/slog"
	"os"

	"shelf/config"
	"shelf/internal/delivery"
	"shelf/internal/delivery/api"
	"shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/router/handler"
	"shelf/internal/infra/auth"
	"shelf/internal/infra/auth/spotify"
	"shelf/internal/infra/linkstate"
	logs "shelf/internal/infra/log"
	"shelf/internal/infra/persistence/postgres"
	"shelf/internal/infra/pubsub"
	"shelf/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		impl.Module,
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		postgres.Module,
		linkstate.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewScryptHasher,
			auth.NewPasswordPolicy,
			auth.NewSessionTokenService,
			spotify.NewOAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewSpotifyHandler,
			handler.NewListHandler,
			handler.NewRatingHandler,
			handler.NewHealthHandler,
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
				os.Exit(1)
			}
		}()
	}
}
