package main

import (
	"fmt"

	"github.com/diegoclair/slack-send-later/internal/config"
	"github.com/diegoclair/slack-send-later/internal/database"
	"github.com/diegoclair/slack-send-later/internal/dynamo"
	"github.com/diegoclair/slack-send-later/internal/logger"
	"github.com/diegoclair/slack-send-later/migrator/sqlite"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or migrate the storage schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			log := logger.New(cfg.Logging, "migrate")

			if cfg.Storage.Backend == config.BackendDynamoDB {
				client, err := dynamo.New(cmd.Context(), cfg.Storage.DynamoDB)
				if err != nil {
					return err
				}
				if err := client.CreateTables(cmd.Context()); err != nil {
					return err
				}
				log.Info().
					Str("messages_table", cfg.Storage.DynamoDB.MessagesTable).
					Str("credentials_table", cfg.Storage.DynamoDB.CredentialsTable).
					Msg("dynamodb tables ready")
				return nil
			}

			db, err := database.New(cfg.Storage.SQLite.Path)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			log.Info().Msg("running migrations")
			if err := sqlite.Migrate(db.DB()); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info().Msg("migrations completed successfully")
			return nil
		},
	}
}
