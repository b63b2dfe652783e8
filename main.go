package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"ticket-inventory/auth"
	"ticket-inventory/cli"
	"ticket-inventory/codec"
	"ticket-inventory/config"
	"ticket-inventory/models"
	"ticket-inventory/monitoring"
	"ticket-inventory/services"
	"ticket-inventory/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Flags override the environment.
	dataDir := pflag.String("data-dir", cfg.DataDir, "directory holding the data files")
	format := pflag.String("format", cfg.Format, "persistence format: binary or text")
	policy := pflag.String("expiry-policy", cfg.ExpiryPolicy, "expiry policy: delete or zero_stock")
	ttl := pflag.Duration("ttl", cfg.TTL, "ticket time-to-live")
	noLogin := pflag.Bool("no-login", false, "skip the administrator login gate")
	logLevel := pflag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	pflag.Parse()

	cfg.DataDir = *dataDir
	cfg.Format = *format
	cfg.ExpiryPolicy = *policy
	cfg.TTL = *ttl

	logger := newLogger(*logLevel)
	slog.SetDefault(logger)

	c, err := codec.ForFormat(codec.Format(cfg.Format))
	if err != nil {
		return err
	}
	expiryPolicy, err := models.ParseExpiryPolicy(cfg.ExpiryPolicy)
	if err != nil {
		return err
	}

	monitor := monitoring.NewMonitor()
	tickets := store.NewTicketStore(cfg.TicketPath(), c, logger)
	purchases := store.NewPurchaseStore(cfg.PurchasePath(), c, logger)
	svc := services.NewInventoryService(tickets, purchases, monitor, cfg.TTL, logger)

	// Out-of-memory or I/O trouble on the initial load is the one place
	// the process is allowed to die.
	if err := svc.Load(); err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	var gate *auth.Gate
	if !*noLogin {
		gate, err = auth.NewGate(cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("init login gate: %w", err)
		}
	}

	menu := cli.NewMenu(os.Stdin, os.Stdout, svc, gate, monitor, expiryPolicy, logger)
	return menu.Run()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
