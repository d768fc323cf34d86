package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"epicblogs/config"
	"epicblogs/internal/delivery"
	"epicblogs/internal/delivery/http"
	"epicblogs/internal/delivery/http/middleware"
	"epicblogs/internal/delivery/http/router/handler"
	"epicblogs/internal/domain/service"
	"epicblogs/internal/infra/auth"
	"epicblogs/internal/infra/auth/google"
	"epicblogs/internal/infra/auth/ticket"
	logs "epicblogs/internal/infra/log"
	"epicblogs/internal/infra/persistence/postgres"
	"epicblogs/internal/infra/sanitize"
	"epicblogs/internal/infra/storage"
	"epicblogs/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			sanitize.NewSanitizer,
			newTicketStore,
			newFileStorage,
		),
	)
}

// newTicketStore creates the handoff ticket store and stops its janitor on shutdown.
func newTicketStore(lc fx.Lifecycle, cfg *config.Config) service.TicketStore {
	store := ticket.NewStore(cfg)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			store.Close()

			return nil
		},
	})

	return store
}

// newFileStorage opens the blob bucket and closes it on shutdown.
func newFileStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	fileStorage, err := storage.NewBlobStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if closer, ok := fileStorage.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return closer.Close()
			},
		})
	}

	return fileStorage, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewHandoffService,
			impl.NewUserService,
			impl.NewPostService,
			impl.NewCommentService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPostHandler,
			handler.NewCommentHandler,
			handler.NewUploadHandler,
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
