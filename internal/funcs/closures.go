package funcs

import (
	"iter"
	"slices"
)

func Multiplier(factor float64) func(float64) float64 {
	return func(x float64) float64 { return x * factor }
}

// Counter returns a function that increments and returns the count, and a
// second one that reads it without changing it.
func Counter(start int) (next func() int, count func() int) {
	n := start
	next = func() int {
		n++
		return n
	}
	count = func() int { return n }
	return next, count
}

// FibonacciUpTo yields Fibonacci numbers below limit.
func FibonacciUpTo(limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for a, b := 0, 1; a < limit; a, b = b, a+b {
			if !yield(a) {
				return
			}
		}
	}
}

func InfiniteCounter(start, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := start; ; n += step {
			if !yield(n) {
				return
			}
		}
	}
}

// Take collects the first n values of seq.
func Take[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, n)
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

type ClosuresResult struct {
	Double5      float64 `json:"double_5" yaml:"double_5"`
	Triple5      float64 `json:"triple_5" yaml:"triple_5"`
	CounterCalls []int   `json:"counter_calls" yaml:"counter_calls"`
	CounterValue int     `json:"counter_value" yaml:"counter_value"`
}

func DemonstrateClosures() ClosuresResult {
	double, triple := Multiplier(2), Multiplier(3)
	next, count := Counter(10)

	r := ClosuresResult{Double5: double(5), Triple5: triple(5)}
	for range 3 {
		r.CounterCalls = append(r.CounterCalls, next())
	}
	r.CounterValue = count()
	return r
}

type GeneratorsResult struct {
	FibonacciUnder100 []int `json:"fibonacci_under_100" yaml:"fibonacci_under_100"`
	CounterFirst5     []int `json:"counter_first_5" yaml:"counter_first_5"`
}

func DemonstrateGenerators() GeneratorsResult {
	return GeneratorsResult{
		FibonacciUnder100: slices.Collect(FibonacciUpTo(100)),
		CounterFirst5:     Take(InfiniteCounter(0, 5), 5),
	}
}
