package components

import (
	"equipment-checkout/internal/handler"
	"equipment-checkout/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewWaitlistHandler,
		api.NewAuditLogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
