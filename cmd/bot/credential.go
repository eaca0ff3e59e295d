package main

import (
	"github.com/spf13/cobra"
)

func newCredentialCmd(opts *rootOptions) *cobra.Command {
	var teamID, userID string

	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Seed or revoke a user's posting token",
	}
	cmd.PersistentFlags().StringVar(&teamID, "team", "", "Slack team id")
	cmd.PersistentFlags().StringVar(&userID, "user", "", "Slack user id")
	cmd.MarkPersistentFlagRequired("team")
	cmd.MarkPersistentFlagRequired("user")

	var token string
	set := &cobra.Command{
		Use:   "set",
		Short: "Store an active token for the user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.cfg, "credential")
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.services.Credential.Store(cmd.Context(), teamID, userID, token); err != nil {
				return err
			}
			a.log.Info().Str("team_id", teamID).Str("user_id", userID).Msg("credential stored")
			return nil
		},
	}
	set.Flags().StringVar(&token, "token", "", "user OAuth token (xoxp-...)")
	set.MarkFlagRequired("token")

	revoke := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke the user's token, pending messages stay deferred until it is set again",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.cfg, "credential")
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.services.Credential.Revoke(cmd.Context(), teamID, userID); err != nil {
				return err
			}
			a.log.Info().Str("team_id", teamID).Str("user_id", userID).Msg("credential revoked")
			return nil
		},
	}

	cmd.AddCommand(set, revoke)
	return cmd
}
