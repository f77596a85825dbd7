package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/bootstrap"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/config"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/db"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	log, err := bootstrap.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		log.Errorf("failed to load config: %v", err)
		return err
	}

	app, err := bootstrap.NewApp(ctx, cfg, log)
	if err != nil {
		log.Errorf("failed to initialize application: %v", err)
		return err
	}
	return app.Run(ctx)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDatabaseConfig()
			if err != nil {
				return err
			}
			log, err := bootstrap.NewLogger()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			if err := db.Migrate(cmd.Context(), log, cfg.URL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
