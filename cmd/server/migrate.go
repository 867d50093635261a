package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/bookmark-api/internal/config"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "] [args...]",
		Short: "Run database migrations",
		Long: "Run database migrations embedded in the binary.\n" +
			"Defaults to \"up\" when no command is given.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			return validateMigrationCommand(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) > 0 {
				command, args = args[0], args[1:]
			}
			return runMigrate(cmd.Context(), command, args...)
		},
	}
}

func validateMigrationCommand(command string) error {
	if slices.Contains(postgres.MigrationCommands, command) {
		return nil
	}
	return fmt.Errorf("unknown migration command %q (expected one of: %s)",
		command, strings.Join(postgres.MigrationCommands, ", "))
}

func runMigrate(ctx context.Context, command string, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	return postgres.Migrate(ctx, db, log, command, args...)
}
