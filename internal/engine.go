package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/tour/internal/config"
	"github.com/gnoswap-labs/tour/internal/memo"
	"github.com/gnoswap-labs/tour/internal/trie"
	tt "github.com/gnoswap-labs/tour/internal/types"
)

var (
	ErrUnknownModule = errors.New("unknown module")
	ErrUnknownDemo   = errors.New("unknown demo")
	ErrDemoDisabled  = errors.New("demo is disabled")
)

// Env is what a demonstration may use beyond its fixed inputs.
type Env struct {
	Fs     afero.Fs
	Root   string
	Seed   uint64
	Memo   memo.Store
	Logger *zap.Logger
	Now    func() time.Time
}

func (env Env) withDefaults() (Env, error) {
	if env.Fs == nil {
		env.Fs = afero.NewOsFs()
	}
	if env.Root == "" {
		env.Root = "."
	}
	if env.Logger == nil {
		env.Logger = zap.NewNop()
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	if env.Memo == nil {
		store, err := memo.NewMemoryStore(0)
		if err != nil {
			return env, err
		}
		env.Memo = store
	}
	return env, nil
}

// Engine runs demonstrations from the registry.
type Engine struct {
	env     Env
	timeout time.Duration
	demos   []Demonstration

	mu      sync.RWMutex
	ignored *trie.Trie
	states  map[string]tt.State
}

// NewEngine creates a demonstration engine. cfg may be nil, in which case
// every demo is enabled and no timeout applies.
func NewEngine(env Env, cfg *config.Config) (*Engine, error) {
	env, err := env.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("error preparing environment: %w", err)
	}

	engine := &Engine{
		env:     env,
		demos:   allDemos,
		ignored: trie.New(),
	}
	if cfg != nil {
		engine.timeout = cfg.Timeout
		engine.applyStates(cfg)
	}
	return engine, nil
}

func (e *Engine) applyStates(cfg *config.Config) {
	e.states = make(map[string]tt.State, len(e.demos))
	for _, d := range e.demos {
		e.states[d.Name()] = cfg.State(d.Name())
	}

	for key := range cfg.Demos {
		if _, ok := e.states[key]; ok {
			continue
		}
		if len(e.moduleDemos(key)) > 0 {
			continue
		}
		e.env.Logger.Warn("unknown demo in configuration", zap.String("demo", key))
	}
}

// IgnoreDemo skips a demo ("module/demo") or a whole module ("module").
func (e *Engine) IgnoreDemo(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ignored.Insert(name)
}

// Ignored returns the ignored names in sorted order.
func (e *Engine) Ignored() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ignored.Names()
}

// Enabled reports whether name ("module/demo") would run.
func (e *Engine) Enabled(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.ignored.Covers(name) {
		return false
	}
	return e.states[name] != tt.StateOff
}

// Modules returns the module names in registration order.
func (e *Engine) Modules() []string {
	return lo.Uniq(lo.Map(e.demos, func(d Demonstration, _ int) string {
		return d.Module()
	}))
}

// DemoInfo describes one registered demonstration.
type DemoInfo struct {
	Module string   `json:"module" yaml:"module"`
	Demo   string   `json:"demo" yaml:"demo"`
	State  tt.State `json:"state" yaml:"state"`
}

// Catalogue lists the demonstrations of the given modules, or all of them
// when none are named.
func (e *Engine) Catalogue(modules ...string) []DemoInfo {
	demos := e.demos
	if len(modules) > 0 {
		demos = lo.Filter(demos, func(d Demonstration, _ int) bool {
			return lo.Contains(modules, d.Module())
		})
	}
	return lo.Map(demos, func(d Demonstration, _ int) DemoInfo {
		state := tt.StateOn
		if !e.Enabled(d.Name()) {
			state = tt.StateOff
		}
		return DemoInfo{Module: d.Module(), Demo: d.Demo(), State: state}
	})
}

func (e *Engine) moduleDemos(module string) []Demonstration {
	return lo.Filter(e.demos, func(d Demonstration, _ int) bool {
		return d.Module() == module
	})
}

func (e *Engine) findDemo(name string) Demonstration {
	d, ok := lo.Find(e.demos, func(d Demonstration) bool {
		return d.Name() == name
	})
	if !ok {
		return nil
	}
	return d
}

// Run executes every enabled demonstration of module concurrently and
// returns their results in registration order.
func (e *Engine) Run(ctx context.Context, module string) ([]tt.Result, error) {
	demos := e.moduleDemos(module)
	if len(demos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	results := make(map[int]tt.Result, len(demos))
	for i, d := range demos {
		if !e.Enabled(d.Name()) {
			continue
		}
		wg.Add(1)
		go func(i int, d Demonstration) {
			defer wg.Done()
			r := e.run(ctx, d)

			mu.Lock()
			results[i] = r
			mu.Unlock()
		}(i, d)
	}
	wg.Wait()

	ordered := make([]tt.Result, 0, len(results))
	for i := range demos {
		if r, ok := results[i]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, nil
}

// RunDemo executes a single demonstration named "module/demo".
func (e *Engine) RunDemo(ctx context.Context, name string) (tt.Result, error) {
	d := e.findDemo(name)
	if d == nil {
		return tt.Result{}, fmt.Errorf("%w: %s", ErrUnknownDemo, name)
	}
	if !e.Enabled(name) {
		return tt.Result{}, fmt.Errorf("%w: %s", ErrDemoDisabled, name)
	}
	return e.run(ctx, d), nil
}

// RunTarget runs a module ("stdlib") or a single demo ("stdlib/math").
func (e *Engine) RunTarget(ctx context.Context, target string) ([]tt.Result, error) {
	if !strings.Contains(target, "/") {
		return e.Run(ctx, target)
	}
	r, err := e.RunDemo(ctx, target)
	if err != nil {
		return nil, err
	}
	return []tt.Result{r}, nil
}

func (e *Engine) run(ctx context.Context, d Demonstration) (result tt.Result) {
	result = tt.Result{Module: d.Module(), Demo: d.Demo()}
	logger := e.env.Logger.With(zap.String("demo", d.Name()))

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result.Value = nil
			result.Err = fmt.Sprintf("panic: %v", r)
		}
		result.Elapsed = time.Since(start)
		if result.Failed() {
			logger.Warn("demo failed", zap.String("error", result.Err), zap.Duration("elapsed", result.Elapsed))
			return
		}
		logger.Debug("demo finished", zap.Duration("elapsed", result.Elapsed))
	}()

	value, err := d.Run(ctx, e.env)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	result.Value = value
	return result
}
