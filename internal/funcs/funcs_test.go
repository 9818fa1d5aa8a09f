package funcs

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/gnoswap-labs/tour/internal/memo"
)

func TestDemonstrateFunctions(t *testing.T) {
	t.Parallel()
	r := DemonstrateFunctions()

	assert.Equal(t, "Hello, Python!", r.Basic)
	assert.Equal(t, 9.0, r.DefaultUsed)
	assert.Equal(t, 16.0, r.DefaultOverridden)
	assert.Equal(t, 15, r.VarArgs)
	assert.Equal(t, map[string]any{"name": "Alice", "age": 30, "city": "NYC"}, r.Kwargs)
	assert.Equal(t, Params{
		Required: "required",
		Default:  "custom",
		Args:     []any{1, 2},
		Kwargs:   map[string]any{"x": 10, "y": 20},
	}, r.AllParams)
	assert.Equal(t, 25, r.LambdaSquare)
	assert.Equal(t, 10, r.LambdaAdd)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, r.LambdaFilter)
}

func TestAllParamsDefaults(t *testing.T) {
	t.Parallel()
	p := AllParams("x", "", nil, nil)
	assert.Equal(t, "default", p.Default)
	assert.Empty(t, p.Args)
	assert.Empty(t, p.Kwargs)
}

func TestKwargsCopies(t *testing.T) {
	t.Parallel()
	in := map[string]any{"a": 1}
	out := Kwargs(in)
	out["b"] = 2
	assert.Len(t, in, 1)
}

func TestDemonstrateDecorators(t *testing.T) {
	t.Parallel()
	store, err := memo.NewMemoryStore(0)
	require.NoError(t, err)

	r, err := DemonstrateDecorators(context.Background(), store, 42)
	require.NoError(t, err)

	assert.Equal(t, "Completed", r.TimedFunction.Result)
	assert.GreaterOrEqual(t, r.TimedFunction.ExecutionTime, 0.01)
	assert.Equal(t, MemoizedResult{Fibonacci10: 55, CacheHits: 9, CacheMisses: 11}, r.Memoized)
	assert.Equal(t, 15.0, r.ValidArea)
	assert.Equal(t, "Negative value not allowed: -5", r.InvalidArea)
	require.Len(t, r.Repeated, 3)
	for _, n := range r.Repeated {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 100)
	}
	assert.Equal(t, []int{1, 4, 9}, r.Throttled.Results)
}

func TestDemonstrateDecoratorsSeeded(t *testing.T) {
	t.Parallel()
	run := func() []int {
		store, err := memo.NewMemoryStore(0)
		require.NoError(t, err)
		r, err := DemonstrateDecorators(context.Background(), store, 7)
		require.NoError(t, err)
		return r.Repeated
	}
	assert.Equal(t, run(), run())
}

func TestMemoizeWarmStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := memo.NewMemoryStore(0)
	require.NoError(t, err)

	_, err = Fibonacci(store).Call(ctx, 10)
	require.NoError(t, err)

	fib := Fibonacci(store)
	v, err := fib.Call(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 55, v)
	assert.Equal(t, int64(0), fib.Info(ctx).Misses)
	assert.Equal(t, int64(1), fib.Info(ctx).Hits)

	calls := 0
	sq := Memoize(store, "square", func(n int) int {
		calls++
		return n * n
	})
	for range 3 {
		v, err := sq.Call(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 16, v)
	}
	assert.Equal(t, 1, calls)
}

func TestValidatePositive(t *testing.T) {
	t.Parallel()
	_, err := CalculateArea(2, -1.5)
	var neg *NegativeValueError
	require.ErrorAs(t, err, &neg)
	assert.Equal(t, -1.5, neg.Value)

	v, err := CalculateArea(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24.0, v)
}

func TestThrottleCancelled(t *testing.T) {
	t.Parallel()
	limited := Throttle(rate.NewLimiter(rate.Every(time.Hour), 1), Square)

	ctx, cancel := context.WithCancel(context.Background())
	v, err := limited(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	cancel()
	_, err = limited(ctx, 3)
	assert.Error(t, err)
}

func TestClosures(t *testing.T) {
	t.Parallel()
	r := DemonstrateClosures()
	assert.Equal(t, 10.0, r.Double5)
	assert.Equal(t, 15.0, r.Triple5)
	assert.Equal(t, []int{11, 12, 13}, r.CounterCalls)
	assert.Equal(t, 13, r.CounterValue)

	next, count := Counter(0)
	assert.Equal(t, 0, count())
	next()
	assert.Equal(t, 1, count())
}

func TestGenerators(t *testing.T) {
	t.Parallel()
	r := DemonstrateGenerators()
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89}, r.FibonacciUnder100)
	assert.Equal(t, []int{0, 5, 10, 15, 20}, r.CounterFirst5)

	assert.Empty(t, slices.Collect(FibonacciUpTo(0)))
	assert.Empty(t, Take(InfiniteCounter(1, 1), 0))
}
