package idioms

import (
	"context"
	"encoding/json"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/gnoswap-labs/tour/internal/funcs"
	"github.com/gnoswap-labs/tour/internal/memo"
)

type Person struct {
	ID    int     `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Email *string `json:"email" yaml:"email"`
}

type DemoResult struct {
	People          []Person         `json:"people" yaml:"people"`
	Squares         map[int]int      `json:"squares" yaml:"squares"`
	Nested          map[string][]int `json:"nested" yaml:"nested"`
	WordFrequencies map[string]int   `json:"word_frequencies" yaml:"word_frequencies"`
	GoFiles         []string         `json:"go_files" yaml:"go_files"`
	Fibonacci10     int              `json:"fibonacci_10" yaml:"fibonacci_10"`
	NowUTC          string           `json:"now_utc" yaml:"now_utc"`
	JSON            string           `json:"json" yaml:"json"`
	AsyncSum        int              `json:"async_sum" yaml:"async_sum"`
	TaskGroup       []int            `json:"task_group" yaml:"task_group"`
	VectorSum       string           `json:"vector_sum" yaml:"vector_sum"`
	Sizes           []int            `json:"sizes" yaml:"sizes"`
	Descriptions    []string         `json:"descriptions" yaml:"descriptions"`
}

// Demo runs every idiom once. Go files are listed under root on fs, and
// Fibonacci is cached in store.
func Demo(ctx context.Context, fs afero.Fs, root string, store memo.Store) (DemoResult, error) {
	var r DemoResult

	email := "alan@example.com"
	r.People = []Person{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Alan", Email: &email}}

	r.Squares = lo.SliceToMap(lo.Range(6), func(n int) (int, int) { return n, n * n })
	r.Nested = map[string][]int{
		"evens": lo.Filter(lo.Range(10), func(n, _ int) bool { return n%2 == 0 }),
	}
	r.WordFrequencies = WordFrequencies("Hello hello World! world of code")

	files, err := ListFiles(fs, root, ".go")
	if err != nil {
		return r, err
	}
	r.GoFiles = files[:min(5, len(files))]

	if r.Fibonacci10, err = funcs.Fibonacci(store).Call(ctx, 10); err != nil {
		return r, err
	}

	r.NowUTC = time.Now().UTC().Format(time.RFC3339Nano)

	blob, err := json.MarshalIndent(map[string][]Person{"people": r.People}, "", "  ")
	if err != nil {
		return r, err
	}
	r.JSON = string(blob)

	if r.AsyncSum, err = AsyncSum(ctx, lo.Range(10)); err != nil {
		return r, err
	}
	if r.TaskGroup, err = TaskGroup(ctx, 5); err != nil {
		return r, err
	}

	r.VectorSum = Vector{1, 2}.Add(Vector{3, 4}).String()
	r.Sizes = []int{Size("abc"), Size([]int{1, 2, 3})}
	r.Descriptions = []string{
		Describe(map[string]any{"type": "point", "x": 1, "y": 2}),
		Describe([]any{3, 4}),
		Describe("123"),
		Describe(3.5),
	}

	return r, nil
}
