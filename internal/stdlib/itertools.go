package stdlib

import (
	"iter"
	"math"
	"slices"

	"github.com/samber/lo"
)

func Count(start, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := start; yield(n); n += step {
		}
	}
}

func Cycle[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(items) == 0 {
			return
		}
		for i := 0; yield(items[i%len(items)]); i++ {
		}
	}
}

// Take collects at most n values from seq.
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

// Permutations returns every ordered selection of r items.
func Permutations[T any](items []T, r int) [][]T {
	var out [][]T
	used := make([]bool, len(items))
	cur := make([]T, 0, r)
	var rec func()
	rec = func() {
		if len(cur) == r {
			out = append(out, slices.Clone(cur))
			return
		}
		for i, it := range items {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, it)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}

func combinations[T any](items []T, r int, repeat bool) [][]T {
	var out [][]T
	cur := make([]T, 0, r)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == r {
			out = append(out, slices.Clone(cur))
			return
		}
		for i := start; i < len(items); i++ {
			cur = append(cur, items[i])
			if repeat {
				rec(i)
			} else {
				rec(i + 1)
			}
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}

func Combinations[T any](items []T, r int) [][]T { return combinations(items, r, false) }

func CombinationsWithReplacement[T any](items []T, r int) [][]T {
	return combinations(items, r, true)
}

func Product[A, B any](as []A, bs []B) []lo.Tuple2[A, B] {
	out := make([]lo.Tuple2[A, B], 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			out = append(out, lo.T2(a, b))
		}
	}
	return out
}

// Accumulate returns the running totals of xs.
func Accumulate(xs []int) []int {
	out := make([]int, len(xs))
	sum := 0
	for i, x := range xs {
		sum += x
		out[i] = sum
	}
	return out
}

func Compress[T any](items []T, selectors []bool) []T {
	return lo.Filter(items, func(_ T, i int) bool { return i < len(selectors) && selectors[i] })
}

type Group[K comparable, T any] struct {
	Key   K   `json:"key" yaml:"key"`
	Items []T `json:"items" yaml:"items"`
}

// GroupBy groups consecutive items that share a key. Unlike lo.GroupBy it
// keeps runs separate and preserves their order.
func GroupBy[K comparable, T any](items []T, key func(T) K) []Group[K, T] {
	var out []Group[K, T]
	for _, it := range items {
		k := key(it)
		if n := len(out); n > 0 && out[n-1].Key == k {
			out[n-1].Items = append(out[n-1].Items, it)
			continue
		}
		out = append(out, Group[K, T]{Key: k, Items: []T{it}})
	}
	return out
}

// ISlice keeps items[start:stop] at the given step.
func ISlice[T any](items []T, start, stop, step int) []T {
	var out []T
	for i := start; i < min(stop, len(items)); i += step {
		out = append(out, items[i])
	}
	return out
}

// Tee returns n independent iterators over the same values.
func Tee[T any](items []T, n int) []iter.Seq[T] {
	out := make([]iter.Seq[T], n)
	for i := range out {
		out[i] = slices.Values(items)
	}
	return out
}

type Tee2 struct {
	Iter1 []int `json:"iter1" yaml:"iter1"`
	Iter2 []int `json:"iter2" yaml:"iter2"`
}

type ItertoolsResult struct {
	Count                       []int                    `json:"count" yaml:"count"`
	Cycle                       []string                 `json:"cycle" yaml:"cycle"`
	Repeat                      []string                 `json:"repeat" yaml:"repeat"`
	Permutations                [][]string               `json:"permutations" yaml:"permutations"`
	Combinations                [][]string               `json:"combinations" yaml:"combinations"`
	CombinationsWithReplacement [][]string               `json:"combinations_with_replacement" yaml:"combinations_with_replacement"`
	Product                     []lo.Tuple2[int, string] `json:"product" yaml:"product"`
	Accumulate                  []int                    `json:"accumulate" yaml:"accumulate"`
	Chain                       []int                    `json:"chain" yaml:"chain"`
	Compress                    []string                 `json:"compress" yaml:"compress"`
	GroupBy                     []Group[string, Pair]    `json:"groupby" yaml:"groupby"`
	FilterFalse                 []int                    `json:"filterfalse" yaml:"filterfalse"`
	Starmap                     []int                    `json:"starmap" yaml:"starmap"`
	ISlice                      []int                    `json:"islice" yaml:"islice"`
	Tee                         Tee2                     `json:"tee" yaml:"tee"`
}

type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value int    `json:"value" yaml:"value"`
}

func Itertools() ItertoolsResult {
	abc := []string{"A", "B", "C"}
	data := []Pair{{"A", 1}, {"A", 2}, {"B", 3}, {"B", 4}, {"C", 5}}
	pows := [][2]int{{2, 3}, {3, 2}, {10, 2}}
	tees := Tee(lo.Range(5), 2)

	return ItertoolsResult{
		Count:                       Take(Count(1, 2), 5),
		Cycle:                       Take(Cycle(abc), 7),
		Repeat:                      lo.RepeatBy(3, func(int) string { return "X" }),
		Permutations:                Permutations(abc, 2),
		Combinations:                Combinations(abc, 2),
		CombinationsWithReplacement: CombinationsWithReplacement(abc, 2),
		Product:                     Product([]int{1, 2}, []string{"A", "B"}),
		Accumulate:                  Accumulate([]int{1, 2, 3, 4, 5}),
		Chain:                       lo.Flatten([][]int{{1, 2}, {3, 4}, {5, 6}}),
		Compress:                    Compress([]string{"A", "B", "C", "D", "E", "F"}, []bool{true, false, true, false, true, true}),
		GroupBy:                     GroupBy(data, func(p Pair) string { return p.Key }),
		FilterFalse:                 lo.Reject(lo.Range(10), func(x, _ int) bool { return x%2 != 0 }),
		Starmap: lo.Map(pows, func(p [2]int, _ int) int {
			return int(math.Pow(float64(p[0]), float64(p[1])))
		}),
		ISlice: ISlice(lo.Range(100), 5, 15, 2),
		Tee: Tee2{
			Iter1: slices.Collect(tees[0]),
			Iter2: slices.Collect(tees[1]),
		},
	}
}
