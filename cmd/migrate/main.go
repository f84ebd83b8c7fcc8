package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/konveksi/payroll-backend-go/internal/config"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
)

const usage = "usage: migrate <up|down|version>"

func main() {
	if len(os.Args) != 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	migrator, err := database.NewMigrator(cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to initialise migrator", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			slog.Warn("failed to close migrator", "error", err)
		}
	}()

	if err := runCommand(migrator, os.Args[1]); err != nil {
		slog.Error("migration failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func runCommand(m *database.Migrator, command string) error {
	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q, %s", command, usage)
	}
}
