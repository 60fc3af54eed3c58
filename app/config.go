package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Supported values of the db.backend and log.format settings.
const (
	BackendGoLevelDB = "goleveldb"
	BackendMemDB     = "memdb"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// Config keys, as written in app.toml and read from AppOptions.
const (
	FlagHome            = "home"
	FlagDBBackend       = "db.backend"
	FlagLogLevel        = "log.level"
	FlagLogFormat       = "log.format"
	FlagMetricsEnabled  = "telemetry.metrics-enabled"
	FlagTracingEnabled  = "telemetry.tracing-enabled"
	FlagTraceEndpoint   = "telemetry.trace-endpoint"
	FlagTraceSampleRate = "telemetry.trace-sample-rate"
)

// EnvPrefix prefixes environment overrides: log.level is read from
// AMM_LOG_LEVEL.
const EnvPrefix = "AMM"

// DefaultNodeHome is the home directory used when none is configured.
var DefaultNodeHome = defaultHome()

func defaultHome() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".amm"
	}
	return filepath.Join(userHome, ".amm")
}

// Config holds the runtime settings of the AMM application.
type Config struct {
	Home      string
	DBBackend string
	LogLevel  string
	LogFormat string

	MetricsEnabled  bool
	TracingEnabled  bool
	TraceEndpoint   string
	TraceSampleRate float64
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Home:            DefaultNodeHome,
		DBBackend:       BackendGoLevelDB,
		LogLevel:        zerolog.InfoLevel.String(),
		LogFormat:       LogFormatPlain,
		MetricsEnabled:  true,
		TracingEnabled:  false,
		TraceSampleRate: 1.0,
	}
}

// Validate rejects settings the application cannot run with.
func (c Config) Validate() error {
	switch c.DBBackend {
	case BackendGoLevelDB, BackendMemDB:
	default:
		return fmt.Errorf("unsupported db backend %q", c.DBBackend)
	}
	if c.DBBackend == BackendGoLevelDB && c.Home == "" {
		return fmt.Errorf("home directory is required for the %s backend", BackendGoLevelDB)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch c.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("sample rate must be between 0 and 1")
	}
	if c.TracingEnabled && c.TraceEndpoint == "" {
		return fmt.Errorf("trace endpoint is required when tracing is enabled")
	}
	return nil
}

// ReadConfig loads a TOML config file on top of the defaults. Every key can be
// overridden from the environment.
func ReadConfig(path string) (Config, error) {
	v := newViper()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := configFromViper(v)
	return cfg, cfg.Validate()
}

// ConfigFromOptions converts an SDK options bag. Missing keys keep their
// defaults.
func ConfigFromOptions(appOpts servertypes.AppOptions) Config {
	cfg := DefaultConfig()
	if v := appOpts.Get(FlagHome); v != nil {
		cfg.Home = cast.ToString(v)
	}
	if v := appOpts.Get(FlagDBBackend); v != nil {
		cfg.DBBackend = cast.ToString(v)
	}
	if v := appOpts.Get(FlagLogLevel); v != nil {
		cfg.LogLevel = cast.ToString(v)
	}
	if v := appOpts.Get(FlagLogFormat); v != nil {
		cfg.LogFormat = cast.ToString(v)
	}
	if v := appOpts.Get(FlagMetricsEnabled); v != nil {
		cfg.MetricsEnabled = cast.ToBool(v)
	}
	if v := appOpts.Get(FlagTracingEnabled); v != nil {
		cfg.TracingEnabled = cast.ToBool(v)
	}
	if v := appOpts.Get(FlagTraceEndpoint); v != nil {
		cfg.TraceEndpoint = cast.ToString(v)
	}
	if v := appOpts.Get(FlagTraceSampleRate); v != nil {
		cfg.TraceSampleRate = cast.ToFloat64(v)
	}
	return cfg
}

func newViper() *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(FlagHome, def.Home)
	v.SetDefault(FlagDBBackend, def.DBBackend)
	v.SetDefault(FlagLogLevel, def.LogLevel)
	v.SetDefault(FlagLogFormat, def.LogFormat)
	v.SetDefault(FlagMetricsEnabled, def.MetricsEnabled)
	v.SetDefault(FlagTracingEnabled, def.TracingEnabled)
	v.SetDefault(FlagTraceEndpoint, def.TraceEndpoint)
	v.SetDefault(FlagTraceSampleRate, def.TraceSampleRate)
	return v
}

func configFromViper(v *viper.Viper) Config {
	return Config{
		Home:            v.GetString(FlagHome),
		DBBackend:       v.GetString(FlagDBBackend),
		LogLevel:        v.GetString(FlagLogLevel),
		LogFormat:       v.GetString(FlagLogFormat),
		MetricsEnabled:  v.GetBool(FlagMetricsEnabled),
		TracingEnabled:  v.GetBool(FlagTracingEnabled),
		TraceEndpoint:   v.GetString(FlagTraceEndpoint),
		TraceSampleRate: v.GetFloat64(FlagTraceSampleRate),
	}
}
