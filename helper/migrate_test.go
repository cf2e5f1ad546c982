package helper_test

import (
	"ohanna/config"
	"ohanna/helper"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoMigrate_SkipsWhenNotRequested(t *testing.T) {
	tests := []struct {
		name        string
		driver      string
		autoMigrate bool
	}{
		{name: "memory storage", driver: config.StorageDriverMemory, autoMigrate: true},
		{name: "s3 storage", driver: config.StorageDriverS3, autoMigrate: true},
		{name: "postgres without flag", driver: config.StorageDriverPostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Storage.Driver = tt.driver
			cfg.DB.Postgres.AutoMigrate = tt.autoMigrate

			assert.NoError(t, helper.AutoMigrate(cfg))
		})
	}
}
