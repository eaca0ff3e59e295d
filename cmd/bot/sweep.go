package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegoclair/slack-send-later/internal/scheduler"
	"github.com/spf13/cobra"
)

func newSweepCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run a single delivery sweep and exit",
		Long: "Run a single delivery sweep and exit. Meant for external timers such as a " +
			"system cron job. Exits non-zero when the sweep hit store or credential errors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, opts.cfg, "sweep")
			if err != nil {
				return err
			}
			defer a.Close()

			sched, err := scheduler.New(a.services.Delivery, scheduler.Options{
				Spec:     opts.cfg.Scheduler.Spec,
				Timeout:  opts.cfg.Scheduler.SweepTimeout,
				Location: opts.cfg.Location(),
				Logger:   a.log,
			})
			if err != nil {
				return err
			}

			if report := sched.RunOnce(ctx); report.HasErrors() {
				return errors.New("sweep finished with errors, affected messages are retried on the next run")
			}
			return nil
		},
	}
}
