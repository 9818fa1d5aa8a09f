// Package tour drives the demonstration engine over a list of targets.
package tour

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/tour/internal"
	"github.com/gnoswap-labs/tour/internal/config"
	tt "github.com/gnoswap-labs/tour/internal/types"
)

// DemoEngine is the part of the engine the runner needs.
type DemoEngine interface {
	RunTarget(ctx context.Context, target string) ([]tt.Result, error)
	IgnoreDemo(name string)
	Modules() []string
}

// Processor runs a single target against an engine.
type Processor func(ctx context.Context, engine DemoEngine, target string) ([]tt.Result, error)

// ProgressWriter receives the progress bar. It defaults to stderr so that
// machine-readable output on stdout stays clean.
var ProgressWriter io.Writer = os.Stderr

// New builds an engine from the configuration.
func New(cfg *config.Config, env internal.Env) (*internal.Engine, error) {
	env.Seed = cfg.Seed
	if env.Root == "" {
		env.Root = cfg.Root
	}
	return internal.NewEngine(env, cfg)
}

// ProcessTarget is the default Processor.
func ProcessTarget(ctx context.Context, engine DemoEngine, target string) ([]tt.Result, error) {
	return engine.RunTarget(ctx, target)
}

// ProcessModules runs every target concurrently, at most NumCPU at a time,
// and returns the results in target order. With no targets every module
// runs.
func ProcessModules(
	ctx context.Context,
	logger *zap.Logger,
	engine DemoEngine,
	targets []string,
	processor Processor,
) ([]tt.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(targets) == 0 {
		targets = engine.Modules()
	}
	targets = lo.Uniq(targets)

	bar := progressbar.NewOptions(len(targets),
		progressbar.OptionSetWriter(ProgressWriter),
		progressbar.OptionSetDescription("demos"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	perTarget := make([][]tt.Result, len(targets))
	for i, target := range targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.Debug("running target", zap.String("target", target))

			results, err := processor(gctx, engine, target)
			if err != nil {
				logger.Error("Error processing target", zap.String("target", target), zap.Error(err))
				return fmt.Errorf("%s: %w", target, err)
			}
			perTarget[i] = results
			_ = bar.Add(1)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return lo.Flatten(perTarget), err
}

// Failed reports whether any result carries an error.
func Failed(results []tt.Result) bool {
	return lo.SomeBy(results, func(r tt.Result) bool { return r.Failed() })
}
