package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/app"
)

type appOptions map[string]interface{}

func (o appOptions) Get(key string) interface{} { return o[key] }

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, app.DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*app.Config)
	}{
		{"unknown backend", func(c *app.Config) { c.DBBackend = "rocksdb" }},
		{"leveldb without home", func(c *app.Config) { c.Home = "" }},
		{"bad level", func(c *app.Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *app.Config) { c.LogFormat = "xml" }},
		{"sample rate above one", func(c *app.Config) { c.TraceSampleRate = 1.5 }},
		{"tracing without endpoint", func(c *app.Config) { c.TracingEnabled = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := app.DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
home = "/var/lib/amm"

[db]
backend = "memdb"

[log]
level = "debug"

[telemetry]
metrics-enabled = false
trace-sample-rate = 0.25
`), 0o600))

	t.Setenv("AMM_LOG_FORMAT", "json")

	cfg, err := app.ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/amm", cfg.Home)
	require.Equal(t, app.BackendMemDB, cfg.DBBackend)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, app.LogFormatJSON, cfg.LogFormat)
	require.False(t, cfg.MetricsEnabled)
	require.False(t, cfg.TracingEnabled)
	require.Equal(t, 0.25, cfg.TraceSampleRate)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := app.ReadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestConfigFromOptions(t *testing.T) {
	cfg := app.ConfigFromOptions(appOptions{
		app.FlagDBBackend:       "memdb",
		app.FlagMetricsEnabled:  "false",
		app.FlagTraceSampleRate: "0.5",
	})
	require.Equal(t, app.BackendMemDB, cfg.DBBackend)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, 0.5, cfg.TraceSampleRate)
	require.Equal(t, app.DefaultConfig().LogLevel, cfg.LogLevel)
}
