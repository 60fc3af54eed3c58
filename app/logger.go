package app

import (
	"fmt"
	"io"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

// NewLogger builds the application logger described by cfg.
func NewLogger(cfg Config, w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := []log.Option{log.LevelOption(level)}
	switch cfg.LogFormat {
	case LogFormatJSON:
		opts = append(opts, log.OutputJSONOption())
	case LogFormatPlain, "":
		opts = append(opts, log.ColorOption(false))
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}
	return log.NewLogger(w, opts...), nil
}
