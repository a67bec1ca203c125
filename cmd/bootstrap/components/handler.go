package components

import (
	"parkgate/internal/handler"
	"parkgate/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewQRViewHandler,
	),
	fx.Invoke(handler.NewRouter),
)
