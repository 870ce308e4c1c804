package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"ingestion": map[string]any{
			"unregisteredDevice": "reject",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"report": map[string]any{
			"maxMonths": 24,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "INGESTION_UNREGISTEREDDEVICE", want: "ingestion.unregisteredDevice"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REPORT_MAXMONTHS", want: "report.maxMonths"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Badger: &BadgerConfig{InMemory: true}}
	cfg.Store = &StoreConfig{Driver: " Badger "}

	applyDefaults(cfg)
	require.NoError(t, cfg.validate())

	assert.Equal(t, StoreDriverBadger, cfg.Store.Driver)
	assert.Equal(t, UnregisteredDeviceReject, cfg.Ingestion.UnregisteredDevice)
	assert.Equal(t, defaultIngestionTimeout, cfg.Ingestion.Timeout)
	assert.Equal(t, defaultReportMaxMonths, cfg.Report.MaxMonths)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.UTC, cfg.Report.Location())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name:   "unknown driver",
			mutate: func(cfg *Config) { cfg.Store.Driver = "cassandra" },
		},
		{
			name:   "postgres without section",
			mutate: func(cfg *Config) { cfg.Store.Driver = StoreDriverPostgres },
		},
		{
			name:   "mongo without uri",
			mutate: func(cfg *Config) { cfg.Store.Driver = StoreDriverMongo; cfg.Mongo = &MongoConfig{Database: "insulink"} },
		},
		{
			name:   "unknown device policy",
			mutate: func(cfg *Config) { cfg.Ingestion.UnregisteredDevice = "maybe" },
		},
		{
			name:   "bad timezone",
			mutate: func(cfg *Config) { cfg.Report.Timezone = "Mars/Olympus" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Store:  &StoreConfig{Driver: StoreDriverBadger},
				Badger: &BadgerConfig{InMemory: true},
			}
			applyDefaults(cfg)
			tt.mutate(cfg)

			assert.Error(t, cfg.validate())
		})
	}
}

func TestReportConfig_Location(t *testing.T) {
	var nilCfg *ReportConfig
	assert.Equal(t, time.UTC, nilCfg.Location())

	cfg := &ReportConfig{Timezone: "Asia/Kolkata"}
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
}
