package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/tour/internal"
	"github.com/gnoswap-labs/tour/tour"
)

var watchCmd = &cobra.Command{
	Use:   "watch [module|module/demo ...]",
	Short: "Re-run demonstrations whenever the project file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		runOnce(ctx, out, args)

		w, err := internal.NewWatcher(cfgFile, logger, func(ctx context.Context) {
			runOnce(ctx, out, args)
		})
		if err != nil {
			return err
		}
		if err := w.StartWatching(ctx); err != nil {
			return err
		}
		logger.Info("watching", zap.String("config", cfgFile))

		<-ctx.Done()
		return w.StopWatching()
	},
}

func init() {
	watchCmd.Flags().StringVarP(&runFormat, "format", "f", "text", "Output format: text, json or yaml")
}

// runOnce reloads the project file and runs the targets. Errors are logged
// so that a bad edit does not stop the watch.
func runOnce(ctx context.Context, out io.Writer, targets []string) {
	engine, _, closeStore, err := loadEngine(ctx)
	if err != nil {
		logger.Error("Error loading configuration", zap.Error(err))
		return
	}
	defer closeStore()

	results, err := tour.ProcessModules(ctx, logger, engine, targets, tour.ProcessTarget)
	if err != nil {
		logger.Error("Error running demos", zap.Error(err))
		return
	}
	if err := writeResults(out, results, runFormat, ""); err != nil {
		logger.Error("Error writing results", zap.Error(err))
	}
}
