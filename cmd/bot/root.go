package main

import (
	"fmt"

	"github.com/diegoclair/slack-send-later/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "send-later",
		Short:         "Schedule Slack messages and deliver them when they are due",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "optional YAML configuration file")

	cmd.AddCommand(
		newServeCmd(opts),
		newSweepCmd(opts),
		newMigrateCmd(opts),
		newCredentialCmd(opts),
	)

	return cmd
}
