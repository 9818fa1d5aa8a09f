package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/tour/formatter"
	tt "github.com/gnoswap-labs/tour/internal/types"
	"github.com/gnoswap-labs/tour/tour"
)

var errDemosFailed = errors.New("one or more demos failed")

var (
	ignoreDemos string
	runFormat   string
	outPath     string
)

var runCmd = &cobra.Command{
	Use:   "run [module|module/demo ...]",
	Short: "Run demonstrations and print their results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		engine, _, closeStore, err := loadEngine(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		for _, name := range splitList(ignoreDemos) {
			engine.IgnoreDemo(name)
		}
		if ignored := engine.Ignored(); len(ignored) > 0 {
			logger.Debug("Ignoring demos", zap.Strings("demos", ignored))
		}

		results, err := tour.ProcessModules(ctx, logger, engine, args, tour.ProcessTarget)
		if err != nil {
			logger.Error("Error running demos", zap.Error(err))
			return err
		}

		if err := writeResults(cmd.OutOrStdout(), results, runFormat, outPath); err != nil {
			return err
		}

		if tour.Failed(results) {
			return errDemosFailed
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&ignoreDemos, "ignore", "", "Comma-separated list of modules or demos to skip")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", formatter.FormatText, "Output format: text, json or yaml")
	runCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write results to this file instead of stdout")
}

func writeResults(stdout io.Writer, results []tt.Result, format, path string) error {
	if path == "" {
		return formatter.Render(stdout, results, format)
	}

	// escape codes do not belong in files
	color.NoColor = true

	f, err := appFs.Create(path)
	if err != nil {
		logger.Error("Error creating output file", zap.String("path", path), zap.Error(err))
		return err
	}
	defer f.Close()

	return formatter.Render(f, results, format)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
