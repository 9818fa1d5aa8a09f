package internal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/gnoswap-labs/tour/internal/basics"
	"github.com/gnoswap-labs/tour/internal/config"
	"github.com/gnoswap-labs/tour/internal/stdlib"
	tt "github.com/gnoswap-labs/tour/internal/types"
)

func newTestEngine(t *testing.T, cfg *config.Config) *Engine {
	t.Helper()
	engine, err := NewEngine(Env{Fs: afero.NewMemMapFs(), Root: "/"}, cfg)
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	assert.Equal(t,
		[]string{"basics", "controlflow", "collections", "fileio", "funcs", "oop", "stdlib", "idioms"},
		engine.Modules())

	names := lo.Map(allDemos, func(d Demonstration, _ int) string { return d.Name() })
	assert.Len(t, lo.Uniq(names), len(names), "demo names must be unique")

	for _, info := range engine.Catalogue() {
		assert.Equal(t, tt.StateOn, info.State, info.Module+"/"+info.Demo)
	}
}

func TestEngine_ApplyStates(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Demos = map[string]tt.DemoConfig{
		"stdlib/subprocess": {State: tt.StateOff},
		"fileio":            {State: tt.StateOff},
		"fileio/json":       {State: tt.StateOn},
		"no/such-demo":      {State: tt.StateOff},
	}
	engine := newTestEngine(t, cfg)

	assert.False(t, engine.Enabled("stdlib/subprocess"))
	assert.True(t, engine.Enabled("stdlib/math"))
	assert.False(t, engine.Enabled("fileio/csv"))
	assert.True(t, engine.Enabled("fileio/json"))
	assert.Equal(t, time.Minute, engine.timeout)

	infos := engine.Catalogue("fileio")
	assert.Len(t, infos, 10)
	on := lo.Filter(infos, func(i DemoInfo, _ int) bool { return i.State == tt.StateOn })
	require.Len(t, on, 1)
	assert.Equal(t, "json", on[0].Demo)
}

func TestEngine_IgnoreDemo(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	engine.IgnoreDemo("basics/identity")
	engine.IgnoreDemo("oop")

	assert.False(t, engine.Enabled("basics/identity"))
	assert.False(t, engine.Enabled("oop/classes"))
	assert.True(t, engine.Enabled("basics/variables"))
	assert.Equal(t, []string{"basics/identity", "oop"}, engine.Ignored())

	results, err := engine.Run(context.Background(), "oop")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngine_RunModule(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	results, err := engine.Run(context.Background(), "basics")
	require.NoError(t, err)
	require.Len(t, results, 11)

	assert.Equal(t, "variables", results[0].Demo)
	assert.Equal(t, "identity", results[len(results)-1].Demo)
	for _, r := range results {
		assert.False(t, r.Failed(), "%s: %s", r.Name(), r.Err)
		assert.Equal(t, "basics", r.Module)
	}

	arith, ok := results[2].Value.(basics.ArithmeticResult)
	require.True(t, ok)
	assert.Equal(t, basics.Arithmetic(10, 3), arith)
}

func TestEngine_RunTarget(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)
	ctx := context.Background()

	results, err := engine.RunTarget(ctx, "stdlib/math")
	require.NoError(t, err)
	require.Len(t, results, 1)
	_, ok := results[0].Value.(stdlib.MathResult)
	assert.True(t, ok)

	_, err = engine.RunTarget(ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownModule)

	_, err = engine.RunTarget(ctx, "stdlib/nope")
	assert.ErrorIs(t, err, ErrUnknownDemo)

	engine.IgnoreDemo("stdlib/math")
	_, err = engine.RunDemo(ctx, "stdlib/math")
	assert.ErrorIs(t, err, ErrDemoDisabled)
}

func TestEngine_FileDemosOnMemFs(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, nil)

	results, err := engine.Run(context.Background(), "fileio")
	require.NoError(t, err)
	require.Len(t, results, 10)
	for _, r := range results {
		assert.False(t, r.Failed(), "%s: %s", r.Name(), r.Err)
	}
}

func TestEngine_RunCapturesFailures(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	engine := newTestEngine(t, nil)
	engine.timeout = 20 * time.Millisecond
	engine.demos = []Demonstration{
		register("test", "ok", pure(func() int { return 42 })),
		register("test", "error", fallible(func() (int, error) {
			return 0, errors.New("ValueError: boom")
		})),
		register("test", "panic", pure(func() int {
			var s []int
			return s[3]
		})),
		register("test", "slow", withContext(func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		})),
	}

	results, err := engine.Run(context.Background(), "test")
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, 42, results[0].Value)
	assert.Empty(t, results[0].Err)

	assert.Equal(t, "ValueError: boom", results[1].Err)
	assert.Nil(t, results[1].Value)

	assert.Contains(t, results[2].Err, "panic: runtime error: index out of range")

	assert.Equal(t, context.DeadlineExceeded.Error(), results[3].Err)
	assert.GreaterOrEqual(t, results[3].Elapsed, 20*time.Millisecond)
}
