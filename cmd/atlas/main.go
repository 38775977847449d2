package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"atlas/config"
	"atlas/internal/delivery"
	"atlas/internal/delivery/http"
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/infra/auth"
	logs "atlas/internal/infra/log"
	"atlas/internal/infra/metrics"
	"atlas/internal/infra/notification"
	"atlas/internal/infra/persistence/postgres"
	"atlas/internal/infra/pubsub"
	"atlas/internal/infra/qrcode"
	"atlas/internal/infra/sociallink"
	"atlas/internal/usecase/impl"

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
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewCategoryRepository,
			postgres.NewFollowRepository,
			postgres.NewSocialNetworkRepository,
			postgres.NewNotificationRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			sociallink.NewLinkValidator,
			newPushSender,
			newStrategyRegistry,
			newQRCodeService,
		),
	)
}

// newPushSender creates the FCM sender when Firebase is configured
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push delivery is optional
	}

	sender, err := notification.NewFCMSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM sender: %w", err)
	}

	return sender, nil
}

// newStrategyRegistry wires one delivery strategy per configured channel
func newStrategyRegistry(cfg *config.Config, pushSender service.PushSender, userRepo repository.UserRepository) service.StrategyRegistry {
	var email, sms, push service.DeliveryStrategy

	if cfg.Webhook != nil {
		if cfg.Webhook.EmailEndpoint != "" {
			email = notification.NewWebhookStrategy(entity.ChannelEmail, cfg.Webhook.EmailEndpoint, cfg.Webhook.Timeout, userRepo)
		}
		if cfg.Webhook.SMSEndpoint != "" {
			sms = notification.NewWebhookStrategy(entity.ChannelSMS, cfg.Webhook.SMSEndpoint, cfg.Webhook.Timeout, userRepo)
		}
	}
	if pushSender != nil {
		push = notification.NewPushStrategy(pushSender, userRepo)
	}

	return notification.NewStrategyRegistry(email, sms, push)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := ""
	if cfg.Directory != nil {
		baseURL = cfg.Directory.BaseURL
	}

	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(baseURL, 256, "M")
	}

	return qrcode.NewQRCodeService(baseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewNotificationService,
			impl.NewFollowService,
			impl.NewSocialService,
			impl.NewCategoryService,
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
			handler.NewProfileHandler,
			handler.NewFollowHandler,
			handler.NewNotificationHandler,
			handler.NewSocialHandler,
			handler.NewCategoryHandler,
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
