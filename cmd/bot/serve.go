package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-send-later/internal/handlers"
	"github.com/diegoclair/slack-send-later/internal/scheduler"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var noSweep bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Slack commands and run the delivery sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.cfg.ValidateInbound(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, opts.cfg, "server")
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					a.log.Error().Err(err).Msg("failed to close resources")
				}
			}()

			handler := handlers.New(a.services.Message, handlers.Options{
				SigningSecret:     opts.cfg.Slack.SigningSecret,
				VerificationToken: opts.cfg.Slack.VerificationToken,
				InstallURL:        opts.cfg.Slack.InstallURL,
				Logger:            a.log.With().Str("layer", "http").Logger(),
			})

			srv := &http.Server{
				Addr:              ":" + opts.cfg.Server.Port,
				Handler:           handlers.NewRouter(handler, a.dm, a.registry, a.log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			var sched *scheduler.Scheduler
			if !noSweep {
				sched, err = scheduler.New(a.services.Delivery, scheduler.Options{
					Spec:     opts.cfg.Scheduler.Spec,
					Timeout:  opts.cfg.Scheduler.SweepTimeout,
					Location: opts.cfg.Location(),
					Logger:   a.log.With().Str("layer", "scheduler").Logger(),
				})
				if err != nil {
					return err
				}
				sched.Start(ctx)
			}

			errCh := make(chan error, 1)
			go func() {
				a.log.Info().Str("addr", srv.Addr).Msg("server starting")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				a.log.Info().Msg("shutting down")
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			var errs []error
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("failed to shut down server: %w", err))
			}
			if sched != nil {
				if err := sched.Stop(shutdownCtx); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVar(&noSweep, "no-sweep", false, "serve requests only and leave delivery to an external timer")

	return cmd
}
