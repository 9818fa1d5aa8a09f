package funcs

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/gnoswap-labs/tour/internal/memo"
)

// TimedFunc wraps fn and records how long the most recent call took.
type TimedFunc[A, R any] struct {
	fn   func(A) R
	last atomic.Int64
}

func Timed[A, R any](fn func(A) R) *TimedFunc[A, R] {
	return &TimedFunc[A, R]{fn: fn}
}

func (t *TimedFunc[A, R]) Call(arg A) R {
	start := time.Now()
	r := t.fn(arg)
	t.last.Store(int64(time.Since(start)))
	return r
}

func (t *TimedFunc[A, R]) LastDuration() time.Duration {
	return time.Duration(t.last.Load())
}

// Memoize caches fn through store under name.
func Memoize[K comparable, V any](store memo.Store, name string, fn func(K) V) *memo.Func[K, V] {
	return memo.NewFunc(store, name, func(_ context.Context, k K) (V, error) {
		return fn(k), nil
	})
}

// Fibonacci returns a memoized recursive Fibonacci whose inner calls go
// through the cache as well.
func Fibonacci(store memo.Store) *memo.Func[int, int] {
	var fib *memo.Func[int, int]
	fib = memo.NewFunc(store, "fibonacci", func(ctx context.Context, n int) (int, error) {
		if n <= 1 {
			return n, nil
		}
		a, err := fib.Call(ctx, n-1)
		if err != nil {
			return 0, err
		}
		b, err := fib.Call(ctx, n-2)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	})
	return fib
}

type NegativeValueError struct {
	Value float64
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("Negative value not allowed: %v", e.Value)
}

// ValidatePositive rejects any negative argument before fn runs.
func ValidatePositive(fn func(...float64) float64) func(...float64) (float64, error) {
	return func(args ...float64) (float64, error) {
		for _, a := range args {
			if a < 0 {
				return 0, &NegativeValueError{Value: a}
			}
		}
		return fn(args...), nil
	}
}

// Repeat calls fn n times and collects the results.
func Repeat[T any](n int, fn func() T) func() []T {
	return func() []T {
		out := make([]T, 0, n)
		for range n {
			out = append(out, fn())
		}
		return out
	}
}

// Throttle makes every call to fn wait for a token from limiter.
func Throttle[A, R any](limiter *rate.Limiter, fn func(A) R) func(context.Context, A) (R, error) {
	return func(ctx context.Context, arg A) (R, error) {
		if err := limiter.Wait(ctx); err != nil {
			var zero R
			return zero, err
		}
		return fn(arg), nil
	}
}

var CalculateArea = ValidatePositive(func(dims ...float64) float64 {
	area := 1.0
	for _, d := range dims {
		area *= d
	}
	return area
})

type TimedResult struct {
	Result        string  `json:"result" yaml:"result"`
	ExecutionTime float64 `json:"execution_time" yaml:"execution_time"`
}

type MemoizedResult struct {
	Fibonacci10 int   `json:"fibonacci_10" yaml:"fibonacci_10"`
	CacheHits   int64 `json:"cache_hits" yaml:"cache_hits"`
	CacheMisses int64 `json:"cache_misses" yaml:"cache_misses"`
}

type ThrottledResult struct {
	Results []int   `json:"results" yaml:"results"`
	Elapsed float64 `json:"elapsed" yaml:"elapsed"`
}

type DecoratorsResult struct {
	TimedFunction TimedResult     `json:"timed_function" yaml:"timed_function"`
	Memoized      MemoizedResult  `json:"memoized" yaml:"memoized"`
	ValidArea     any             `json:"valid_area" yaml:"valid_area"`
	InvalidArea   any             `json:"invalid_area" yaml:"invalid_area"`
	Repeated      []int           `json:"repeated" yaml:"repeated"`
	Throttled     ThrottledResult `json:"throttled" yaml:"throttled"`
}

func areaOrError(dims ...float64) any {
	v, err := CalculateArea(dims...)
	if err != nil {
		return err.Error()
	}
	return v
}

// DemonstrateDecorators runs each wrapper once. Memoization goes through
// store, so the hit and miss counts reflect whatever it already holds.
func DemonstrateDecorators(ctx context.Context, store memo.Store, seed uint64) (DecoratorsResult, error) {
	var r DecoratorsResult

	slow := Timed(func(d time.Duration) string {
		time.Sleep(d)
		return "Completed"
	})
	r.TimedFunction.Result = slow.Call(10 * time.Millisecond)
	r.TimedFunction.ExecutionTime = slow.LastDuration().Seconds()

	fib := Fibonacci(store)
	first, err := fib.Call(ctx, 10)
	if err != nil {
		return r, err
	}
	if _, err := fib.Call(ctx, 10); err != nil {
		return r, err
	}
	info := fib.Info(ctx)
	r.Memoized = MemoizedResult{Fibonacci10: first, CacheHits: info.Hits, CacheMisses: info.Misses}

	r.ValidArea = areaOrError(5, 3)
	r.InvalidArea = areaOrError(-5, 3)

	rng := rand.New(rand.NewPCG(seed, seed))
	r.Repeated = Repeat(3, func() int { return rng.IntN(100) + 1 })()

	limited := Throttle(rate.NewLimiter(rate.Every(5*time.Millisecond), 1), Square)
	start := time.Now()
	for i := range 3 {
		v, err := limited(ctx, i+1)
		if err != nil {
			return r, err
		}
		r.Throttled.Results = append(r.Throttled.Results, v)
	}
	r.Throttled.Elapsed = time.Since(start).Seconds()

	return r, nil
}
