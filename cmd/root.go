package cmd

import (
	"context"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/tour/internal"
	"github.com/gnoswap-labs/tour/internal/config"
	"github.com/gnoswap-labs/tour/internal/memo"
	"github.com/gnoswap-labs/tour/tour"
)

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
	appFs  = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:              "tour [modules...]",
	Short:            "tour - runnable demonstrations of Go and its ecosystem",
	TraverseChildren: true, // Prioritize subcommands
	Args:             cobra.ArbitraryArgs,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'tour' is entered
			return cmd.Help()
		}
		// Format: tour [module1 module2/demo ...] => behaves like the run subcommand
		return runCmd.RunE(cmd, args)
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "Path to the project file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-demo timeout (overrides the project file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadEngine reads the project file and builds an engine over the
// configured memo store. The returned function releases the store.
func loadEngine(ctx context.Context) (*internal.Engine, *config.Config, func() error, error) {
	noop := func() error { return nil }

	cfg, err := config.Load(appFs, cfgFile)
	if err != nil {
		return nil, nil, noop, err
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	store, closeStore, err := memo.Open(ctx, memo.Options{
		Backend:    cfg.Memo.Backend,
		Dir:        cfg.Memo.Dir,
		RedisAddr:  cfg.Memo.RedisAddr,
		MaxEntries: cfg.Memo.MaxEntries,
		MaxAge:     cfg.Memo.MaxAge,
		Fs:         appFs,
	})
	if err != nil {
		return nil, nil, noop, err
	}

	engine, err := tour.New(cfg, internal.Env{Fs: appFs, Memo: store, Logger: logger})
	if err != nil {
		_ = closeStore()
		return nil, nil, noop, err
	}
	return engine, cfg, closeStore, nil
}
