package main

import (
	"github.com/spf13/cobra"

	"github.com/retracesoftware/retrace-demo-requests/config"
	"github.com/retracesoftware/retrace-demo-requests/demo"
	"github.com/retracesoftware/retrace-demo-requests/logger"
)

func newRootCmd() *cobra.Command {
	var triggerBug bool

	cmd := &cobra.Command{
		Use:   "retrace-demo",
		Short: "HTTP demo with a deterministic forced-retry path",
		Long: `retrace-demo fetches three resources from a public REST test API, runs a
forced-retry sequence (a guaranteed 503 followed by a stable 200), and prints
a structured summary of the run. Progress lines and the summary go to stdout;
structured logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
			runner := demo.NewRunner(cfg, log, cmd.OutOrStdout())

			_, err = runner.Run(cmd.Context(), demo.Options{TriggerBug: triggerBug})
			return err
		},
	}

	cmd.Flags().BoolVar(&triggerBug, "trigger-bug", false, "trigger an intentional bug to replay into")

	return cmd
}
