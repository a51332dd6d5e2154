package components

import (
	"context"
	"fmt"
	"log/slog"

	"equipment-checkout/internal/infra/db"
	"equipment-checkout/internal/infra/dynamo"
	"equipment-checkout/internal/infra/memstore"
	"equipment-checkout/internal/infra/repository"
	"equipment-checkout/internal/pkg/config"
	"equipment-checkout/internal/usecase/commands"
	"equipment-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewStores,
	),
)

// Stores exposes one backend through both the engine ports and the read side.
type Stores struct {
	fx.Out

	Ledger        commands.CheckoutLedger
	Registry      commands.WaitlistRegistry
	AuditLog      commands.AuditLog
	CheckoutReads queries.CheckoutReadStore
	WaitlistReads queries.WaitlistReadStore
	AuditLogReads queries.AuditLogReadStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	logger.Info("selecting store backend", "driver", cfg.Store.Driver)

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return newPostgresStores(lc, cfg)
	case config.StoreDriverDynamoDB:
		return newDynamoStores(cfg)
	case config.StoreDriverMemory:
		return newMemoryStores(), nil
	default:
		return Stores{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Stores{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	q := repository.NewQueries()
	checkouts := repository.NewCheckoutRepository(q, pool)
	waitlist := repository.NewWaitlistRepository(q, pool)
	auditLogs := repository.NewAuditLogRepository(q, pool)

	return Stores{
		Ledger:        checkouts,
		Registry:      waitlist,
		AuditLog:      auditLogs,
		CheckoutReads: checkouts,
		WaitlistReads: waitlist,
		AuditLogReads: auditLogs,
	}, nil
}

func newDynamoStores(cfg config.Config) (Stores, error) {
	client, err := dynamo.NewClient(cfg.Dynamo)
	if err != nil {
		return Stores{}, fmt.Errorf("failed to create dynamodb client: %w", err)
	}

	tables := dynamo.TablesFromConfig(cfg.Dynamo)
	checkouts := dynamo.NewCheckoutLedger(client, tables, cfg.Dynamo.ConsistentRead)
	waitlist := dynamo.NewWaitlistRegistry(client, tables, cfg.Dynamo.ConsistentRead)
	auditLogs := dynamo.NewAuditLog(client, tables, cfg.Dynamo.ConsistentRead)

	return Stores{
		Ledger:        checkouts,
		Registry:      waitlist,
		AuditLog:      auditLogs,
		CheckoutReads: checkouts,
		WaitlistReads: waitlist,
		AuditLogReads: auditLogs,
	}, nil
}

func newMemoryStores() Stores {
	checkouts := memstore.NewCheckoutLedger()
	waitlist := memstore.NewWaitlistRegistry()
	auditLogs := memstore.NewAuditLog()

	return Stores{
		Ledger:        checkouts,
		Registry:      waitlist,
		AuditLog:      auditLogs,
		CheckoutReads: checkouts,
		WaitlistReads: waitlist,
		AuditLogReads: auditLogs,
	}
}
