package tour

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/tour/internal"
	"github.com/gnoswap-labs/tour/internal/config"
	tt "github.com/gnoswap-labs/tour/internal/types"
)

func TestMain(m *testing.M) {
	ProgressWriter = io.Discard
	os.Exit(m.Run())
}

type mockDemoEngine struct {
	mock.Mock
}

func (m *mockDemoEngine) RunTarget(ctx context.Context, target string) ([]tt.Result, error) {
	args := m.Called(ctx, target)
	return args.Get(0).([]tt.Result), args.Error(1)
}

func (m *mockDemoEngine) IgnoreDemo(name string) {
	m.Called(name)
}

func (m *mockDemoEngine) Modules() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func results(module string, demos ...string) []tt.Result {
	out := make([]tt.Result, 0, len(demos))
	for _, d := range demos {
		out = append(out, tt.Result{Module: module, Demo: d})
	}
	return out
}

func TestProcessModulesKeepsTargetOrder(t *testing.T) {
	t.Parallel()

	engine := new(mockDemoEngine)
	engine.On("RunTarget", mock.Anything, "basics").Return(results("basics", "a", "b"), nil)
	engine.On("RunTarget", mock.Anything, "stdlib/math").Return(results("stdlib", "math"), nil)
	engine.On("RunTarget", mock.Anything, "oop").Return(results("oop", "classes"), nil)

	got, err := ProcessModules(context.Background(), nil, engine,
		[]string{"basics", "stdlib/math", "oop", "basics"}, ProcessTarget)
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, r := range got {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"basics/a", "basics/b", "stdlib/math", "oop/classes"}, names)
	engine.AssertNumberOfCalls(t, "RunTarget", 3)
}

func TestProcessModulesDefaultsToAllModules(t *testing.T) {
	t.Parallel()

	engine := new(mockDemoEngine)
	engine.On("Modules").Return([]string{"basics", "idioms"})
	engine.On("RunTarget", mock.Anything, "basics").Return(results("basics", "a"), nil)
	engine.On("RunTarget", mock.Anything, "idioms").Return(results("idioms", "demo"), nil)

	got, err := ProcessModules(context.Background(), nil, engine, nil, ProcessTarget)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	engine.AssertExpectations(t)
}

func TestProcessModulesError(t *testing.T) {
	t.Parallel()

	engine := new(mockDemoEngine)
	boom := errors.New("boom")
	engine.On("RunTarget", mock.Anything, "nope").Return([]tt.Result(nil), boom)

	_, err := ProcessModules(context.Background(), nil, engine, []string{"nope"}, ProcessTarget)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "nope")
}

func TestProcessModulesContextCancellation(t *testing.T) {
	t.Parallel()

	engine := new(mockDemoEngine)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := ProcessModules(ctx, nil, engine, []string{"basics", "oop"}, ProcessTarget)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
	engine.AssertNotCalled(t, "RunTarget", mock.Anything, mock.Anything)
}

func TestNewRunsRealDemos(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Demos["stdlib/subprocess"] = tt.DemoConfig{State: tt.StateOff}
	engine, err := New(cfg, internal.Env{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	got, err := ProcessModules(context.Background(), nil, engine,
		[]string{"collections", "funcs", "stdlib/random"}, ProcessTarget)
	require.NoError(t, err)
	assert.False(t, Failed(got))
	assert.Equal(t, "stdlib/random", got[len(got)-1].Name())

	assert.True(t, Failed([]tt.Result{{Err: "x"}}))
}
