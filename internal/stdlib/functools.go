package stdlib

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/gnoswap-labs/tour/internal/memo"
)

// Partial binds the first argument of a two-argument function.
func Partial[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R { return fn(a, b) }
}

// FuncName reports the unqualified name of the function fn refers to.
func FuncName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	return name[strings.LastIndexByte(name, '.')+1:]
}

// Documented is a function carrying its own name and description, so a
// wrapper can keep both.
type Documented struct {
	Name string
	Doc  string
	Fn   func() string
}

// Wraps applies decorate to d.Fn and keeps d's name and description.
func Wraps(d Documented, decorate func(func() string) func() string) Documented {
	return Documented{Name: d.Name, Doc: d.Doc, Fn: decorate(d.Fn)}
}

// Graded orders by grade alone; the name is ignored.
type Graded struct {
	Name  string
	Grade int
}

func (g Graded) Compare(o Graded) int { return cmp.Compare(g.Grade, o.Grade) }

type PartialResult struct {
	Double5 int `json:"double_5" yaml:"double_5"`
	Triple5 int `json:"triple_5" yaml:"triple_5"`
}

type ReduceResult struct {
	Sum     int `json:"sum" yaml:"sum"`
	Product int `json:"product" yaml:"product"`
}

type LRUResult struct {
	Result         int    `json:"result" yaml:"result"`
	FirstCallTime  string `json:"first_call_time" yaml:"first_call_time"`
	CachedCallTime string `json:"cached_call_time" yaml:"cached_call_time"`
	CacheInfo      string `json:"cache_info" yaml:"cache_info"`
}

type WrapsResult struct {
	Name        string `json:"name" yaml:"name"`
	Doc         string `json:"doc" yaml:"doc"`
	Result      string `json:"result" yaml:"result"`
	WrappedName string `json:"wrapped_name" yaml:"wrapped_name"`
}

type OrderingResult struct {
	S1LtS2 bool `json:"s1_lt_s2" yaml:"s1_lt_s2"`
	S1GtS2 bool `json:"s1_gt_s2" yaml:"s1_gt_s2"`
	S1LeS2 bool `json:"s1_le_s2" yaml:"s1_le_s2"`
	S1GeS2 bool `json:"s1_ge_s2" yaml:"s1_ge_s2"`
}

type FunctoolsResult struct {
	Partial       PartialResult  `json:"partial" yaml:"partial"`
	Reduce        ReduceResult   `json:"reduce" yaml:"reduce"`
	LRUCache      LRUResult      `json:"lru_cache" yaml:"lru_cache"`
	Wraps         WrapsResult    `json:"wraps" yaml:"wraps"`
	TotalOrdering OrderingResult `json:"total_ordering" yaml:"total_ordering"`
}

func multiply(x, y int) int { return x * y }

func exampleFunction() string { return "example" }

// Functools caches a slow square in a fresh LRU of 128 entries; delay is
// how long the uncached call takes.
func Functools(ctx context.Context, delay time.Duration) (FunctoolsResult, error) {
	var r FunctoolsResult

	double, triple := Partial(multiply, 2), Partial(multiply, 3)
	r.Partial = PartialResult{Double5: double(5), Triple5: triple(5)}

	nums := []int{1, 2, 3, 4, 5}
	r.Reduce = ReduceResult{
		Sum:     lo.Reduce(nums, func(acc, x, _ int) int { return acc + x }, 0),
		Product: lo.Reduce(nums, func(acc, x, _ int) int { return acc * x }, 1),
	}

	store, err := memo.NewMemoryStore(128)
	if err != nil {
		return r, err
	}
	expensive := memo.NewFunc(store, "expensive_function", func(ctx context.Context, n int) (int, error) {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
		return n * n, nil
	})

	start := time.Now()
	result, err := expensive.Call(ctx, 5)
	if err != nil {
		return r, err
	}
	first := time.Since(start)

	start = time.Now()
	if _, err := expensive.Call(ctx, 5); err != nil {
		return r, err
	}
	cached := time.Since(start)

	r.LRUCache = LRUResult{
		Result:         result,
		FirstCallTime:  fmt.Sprintf("%.4fs", first.Seconds()),
		CachedCallTime: fmt.Sprintf("%.4fs", cached.Seconds()),
		CacheInfo:      expensive.Info(ctx).String(),
	}

	passthrough := func(fn func() string) func() string {
		return func() string { return fn() }
	}
	wrapped := Wraps(Documented{
		Name: FuncName(exampleFunction),
		Doc:  "Example function docstring.",
		Fn:   exampleFunction,
	}, passthrough)
	r.Wraps = WrapsResult{
		Name:        wrapped.Name,
		Doc:         wrapped.Doc,
		Result:      wrapped.Fn(),
		WrappedName: FuncName(wrapped.Fn),
	}

	s1, s2 := Graded{"Alice", 85}, Graded{"Bob", 90}
	c := s1.Compare(s2)
	r.TotalOrdering = OrderingResult{S1LtS2: c < 0, S1GtS2: c > 0, S1LeS2: c <= 0, S1GeS2: c >= 0}

	return r, nil
}
