// Package idioms collects small everyday patterns: counting words, walking
// a tree, caching, concurrent fan-out, value types and type dispatch.
package idioms

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/tour/internal/collections"
	"github.com/gnoswap-labs/tour/internal/fileio"
)

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// WordFrequencies counts lower-cased alphabetic words.
func WordFrequencies(text string) map[string]int {
	return collections.NewCounter(wordRe.FindAllString(strings.ToLower(text), -1)...).Counts()
}

// ListFiles returns the regular files below root whose names end in ext.
func ListFiles(fs afero.Fs, root, ext string) ([]string, error) {
	return fileio.GlobRecursive(fs, root, "*"+ext)
}

// AsyncSum adds values on another goroutine and waits for the answer or
// for ctx to end.
func AsyncSum(ctx context.Context, values []int) (int, error) {
	done := make(chan int, 1)
	go func() {
		sum := 0
		for _, v := range values {
			sum += v
		}
		done <- sum
	}()
	select {
	case sum := <-done:
		return sum, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// TaskGroup squares 0..n-1 concurrently. Results keep input order.
func TaskGroup(ctx context.Context, n int) ([]int, error) {
	results := make([]int, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = i * i
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(x=%g, y=%g)", v.X, v.Y)
}

// Size is the element count for slices and maps and the length of the
// printed form for anything else.
func Size(x any) int {
	switch v := x.(type) {
	case []any:
		return len(v)
	case []int:
		return len(v)
	case []string:
		return len(v)
	case map[string]any:
		return len(v)
	case string:
		return len(v)
	default:
		return len(fmt.Sprint(v))
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Describe matches value against a few shapes: a point map, a two-element
// slice and a string of digits.
func Describe(value any) string {
	switch v := value.(type) {
	case map[string]any:
		x, hasX := v["x"]
		y, hasY := v["y"]
		if v["type"] == "point" && hasX && hasY {
			return fmt.Sprintf("Point(%v,%v)", x, y)
		}
	case []any:
		if len(v) == 2 {
			return fmt.Sprintf("Pair(%v,%v)", v[0], v[1])
		}
	case []int:
		if len(v) == 2 {
			return fmt.Sprintf("Pair(%d,%d)", v[0], v[1])
		}
	case string:
		if isDigits(v) {
			return "Digits:" + v
		}
	}
	return "Unknown"
}
