package main

import (
	"context"
	"log/slog"
	"os"

	"ozicme/config"
	"ozicme/internal/delivery"
	"ozicme/internal/delivery/http"
	"ozicme/internal/delivery/http/router/handler"
	"ozicme/internal/domain/repository"
	"ozicme/internal/infra/dataset"
	logs "ozicme/internal/infra/log"
	"ozicme/internal/usecase"
	"ozicme/internal/usecase/impl"

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
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			dataset.NewStoreRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newStoreUsecase,
		),
	)
}

// newStoreUsecase creates the store usecase with configured paging limits
func newStoreUsecase(cfg *config.Config, repo repository.StoreRepository, logger *slog.Logger) usecase.StoreUsecase {
	defaultLimit, maxLimit := 0, 0
	if cfg.Search != nil {
		defaultLimit = cfg.Search.DefaultLimit
		maxLimit = cfg.Search.MaxLimit
	}

	return impl.NewStoreService(repo, logger, defaultLimit, maxLimit)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStoreHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
