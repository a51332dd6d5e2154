package components

import (
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/pkg/clock"
	"equipment-checkout/internal/pkg/config"
	"equipment-checkout/internal/usecase/commands"
	"equipment-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPool,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
	),
)

func NewPool(cfg config.Config, ledger commands.CheckoutLedger) *resource.Pool {
	return resource.NewPool(cfg.Pool.Capacity, ledger)
}
