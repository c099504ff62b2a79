package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"macts/config"
	"macts/internal/delivery"
	"macts/internal/delivery/http"
	"macts/internal/delivery/http/middleware"
	"macts/internal/delivery/http/router/handler"
	"macts/internal/delivery/stream"
	"macts/internal/delivery/worker"
	workerhandler "macts/internal/delivery/worker/handler"
	"macts/internal/domain/service"
	"macts/internal/infra/auth"
	logs "macts/internal/infra/log"
	"macts/internal/infra/notification"
	"macts/internal/infra/persistence/postgres"
	"macts/internal/infra/pubsub"
	"macts/internal/infra/qrcode"
	infrastream "macts/internal/infra/stream"
	"macts/internal/usecase"
	"macts/internal/usecase/impl"

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
			registerSessionShutdown,
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
			postgres.NewStudentRepository,
			postgres.NewDeviceRepository,
			postgres.NewTapHistoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
			infrastream.NewWebSocketSource,
		),
		pubsub.Module,
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.AlertService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHistoryService,
			impl.NewRegistryService,
			impl.NewSessionManager,
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
			handler.NewDashboardHandler,
			handler.NewReportHandler,
			handler.NewRegistryHandler,
			handler.NewTestHandler,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				stream.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerSessionShutdown closes every open dashboard session when the app
// stops, draining pending persistence and alert timers.
func registerSessionShutdown(lc fx.Lifecycle, sessions usecase.TapSessionUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sessions.StopAll()

			return nil
		},
	})
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
