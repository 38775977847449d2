package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"atlas/config"
	"atlas/internal/delivery"
	"atlas/internal/delivery/worker"
	"atlas/internal/delivery/worker/handler"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	logs "atlas/internal/infra/log"
	"atlas/internal/infra/metrics"
	"atlas/internal/infra/notification"
	"atlas/internal/infra/persistence/postgres"
	"atlas/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
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
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFollowRepository,
			postgres.NewNotificationRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushSender,
			newStrategyRegistry,
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
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
