//go:build unit

package config_test

import (
	"testing"

	"equipment-checkout/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "test defaults", mutate: func(*config.Config) {}},
		{name: "largest pool", mutate: func(c *config.Config) { c.Pool.Capacity = config.MaxPoolCapacity }},
		{name: "empty pool", mutate: func(c *config.Config) { c.Pool.Capacity = 0 }, wantErr: true},
		{name: "pool too large for two digit codes", mutate: func(c *config.Config) { c.Pool.Capacity = 100 }, wantErr: true},
		{name: "unknown driver", mutate: func(c *config.Config) { c.Store.Driver = "redis" }, wantErr: true},
		{name: "dynamodb needs no db", mutate: func(c *config.Config) {
			c.Store.Driver = config.StoreDriverDynamoDB
			c.DB = config.DBConfig{}
		}},
		{name: "postgres needs credentials", mutate: func(c *config.Config) {
			c.Store.Driver = config.StoreDriverPostgres
			c.DB.DBName = ""
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("POOL_CAPACITY", "12")

	cfg, err := config.LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 12, cfg.Pool.Capacity)
	assert.Equal(t, "tiw_checkouts", cfg.Dynamo.CheckoutTable)
}
