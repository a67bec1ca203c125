package components

import (
	"parkgate/internal/infra/dedup"
	"parkgate/internal/infra/gateway"
	"parkgate/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			dedup.NewRedisStore,
			fx.As(new(usecase.DedupStore)),
		),
		fx.Annotate(
			gateway.NewSMTPMailer,
			fx.As(new(usecase.Mailer)),
		),
		fx.Annotate(
			gateway.NewTwilioSender,
			fx.As(new(usecase.SMSSender)),
		),
		fx.Annotate(
			gateway.NewFTPGateUploader,
			fx.As(new(usecase.GateUploader)),
		),
		fx.Annotate(
			gateway.NewMinioLogoStore,
			fx.As(new(usecase.LogoStore)),
		),
	),
)
