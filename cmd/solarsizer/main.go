package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/solarsizer/solarsizer/pkg/estimate"
	"github.com/solarsizer/solarsizer/pkg/log"
	"github.com/solarsizer/solarsizer/pkg/report"

	"github.com/levenlabs/go-lflag"
	"github.com/levenlabs/go-llog"
)

func main() {
	// init packages
	calc := estimate.Configured()
	rend := report.Configured()

	// parse flags
	lflag.Configure()

	var level slog.Level
	// lflag automatically sets llog's level, but we need to set the slog level
	switch llog.GetLevel() {
	case llog.DebugLevel:
		level = slog.LevelDebug
	case llog.InfoLevel:
		level = slog.LevelInfo
	case llog.WarnLevel:
		level = slog.LevelWarn
	case llog.ErrorLevel:
		level = slog.LevelError
	default:
		panic(fmt.Errorf("unknown log level: %s", llog.GetLevel().String()))
	}

	// stdout is reserved for the rendered report
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	log.SetDefaultLogLevel(level)

	ctx := context.Background()

	est, err := calc.Run(ctx)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "estimation failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := rend.Render(est); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to render report", slog.Any("error", err))
		os.Exit(1)
	}
}
