package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/udisondev/dftime/internal/config"
	"github.com/udisondev/dftime/internal/dftime"
)

const ConfigPath = "config/dfcal.yaml"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("DFTIME_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadCalendar(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", cfgPath, "show_index", cfg.ShowIndex)

	switch len(args) {
	case 0:
		return dftime.WriteTables(out, cfg.ShowIndex)
	case 2:
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("parsing day %q: %w", args[0], err)
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("parsing month %q: %w", args[1], err)
		}
		s, err := dftime.FormatDaySep(day, month, cfg.MonthSeparator)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	default:
		return fmt.Errorf("usage: dfcal [<day> <month-index>]")
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
