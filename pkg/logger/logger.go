package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options controls the process-wide logger.
type Options struct {
	Level   string
	Console bool
}

// InitLogger installs a debug level console logger as the context default.
func InitLogger() *zerolog.Logger {
	return InitLoggerWithOptions(Options{Level: "debug", Console: true})
}

func InitLoggerWithOptions(opts Options) *zerolog.Logger {
	var out io.Writer = os.Stdout
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
