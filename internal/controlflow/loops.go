package controlflow

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

type Indexed struct {
	Index int    `json:"index" yaml:"index"`
	Value string `json:"value" yaml:"value"`
}

type ForLoopResult struct {
	Fruits     []string    `json:"fruits" yaml:"fruits"`
	Range5     []int       `json:"range_5" yaml:"range_5"`
	Range2To10 []int       `json:"range_2_10_2" yaml:"range_2_10_2"`
	Enumerated []Indexed   `json:"enumerated" yaml:"enumerated"`
	Zipped     [][2]string `json:"zipped" yaml:"zipped"`
	Matrix     [][]int     `json:"matrix" yaml:"matrix"`
}

func ForLoop() ForLoopResult {
	var r ForLoopResult
	fruits := []string{"apple", "banana", "orange"}
	colors := []string{"red", "yellow", "orange"}

	for _, f := range fruits {
		r.Fruits = append(r.Fruits, strings.ToUpper(f))
	}
	for i := range 5 {
		r.Range5 = append(r.Range5, i)
	}
	for i := 2; i < 10; i += 2 {
		r.Range2To10 = append(r.Range2To10, i)
	}
	for i, f := range fruits {
		r.Enumerated = append(r.Enumerated, Indexed{Index: i, Value: f})
	}
	for i := range min(len(fruits), len(colors)) {
		r.Zipped = append(r.Zipped, [2]string{fruits[i], colors[i]})
	}
	for i := range 3 {
		row := make([]int, 0, 3)
		for j := range 3 {
			row = append(row, i*3+j)
		}
		r.Matrix = append(r.Matrix, row)
	}
	return r
}

type WhileLoopResult struct {
	BasicCount []int `json:"basic_count" yaml:"basic_count"`
	WithBreak  []int `json:"with_break" yaml:"with_break"`
	Fibonacci  []int `json:"fibonacci" yaml:"fibonacci"`
}

func WhileLoop() WhileLoopResult {
	var r WhileLoopResult

	count := 0
	for count < 5 {
		r.BasicCount = append(r.BasicCount, count)
		count++
	}

	num := 0
	for {
		if num >= 10 {
			break
		}
		r.WithBreak = append(r.WithBreak, num)
		num += 2
	}

	a, b := 0, 1
	for a < 100 {
		r.Fibonacci = append(r.Fibonacci, a)
		a, b = b, a+b
	}
	return r
}

type LoopControlResult struct {
	OddsOnly           []int  `json:"odds_only" yaml:"odds_only"`
	FirstMultipleOf7   *int   `json:"first_multiple_of_7_after_10" yaml:"first_multiple_of_7_after_10"`
	Found6             bool   `json:"found_6" yaml:"found_6"`
	WithPass           []int  `json:"with_pass" yaml:"with_pass"`
	LabeledBreakTarget [2]int `json:"labeled_break_target" yaml:"labeled_break_target"`
}

func LoopControl() LoopControlResult {
	var r LoopControlResult

	for i := range 10 {
		if i%2 == 0 {
			continue
		}
		r.OddsOnly = append(r.OddsOnly, i)
	}

	for i := range 100 {
		if i > 10 && i%7 == 0 {
			r.FirstMultipleOf7 = &i
			break
		}
	}

	search := []int{1, 3, 5, 7, 9}
	for _, item := range search {
		if item == 6 {
			r.Found6 = true
			break
		}
	}

	for i := range 5 {
		if i == 2 {
			continue
		}
		r.WithPass = append(r.WithPass, i)
	}

	// first (row, col) whose product exceeds 5
outer:
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			if i*j > 5 {
				r.LabeledBreakTarget = [2]int{i, j}
				break outer
			}
		}
	}
	return r
}

type ListComprehensionResult struct {
	Squares        []int    `json:"squares" yaml:"squares"`
	Evens          []int    `json:"evens" yaml:"evens"`
	DivisibleBy15  []int    `json:"divisible_by_15" yaml:"divisible_by_15"`
	Matrix         [][]int  `json:"matrix" yaml:"matrix"`
	AbsoluteValues []int    `json:"absolute_values" yaml:"absolute_values"`
	Uppercase      []string `json:"uppercase" yaml:"uppercase"`
}

func ListComprehension() ListComprehensionResult {
	return ListComprehensionResult{
		Squares: lo.Map(lo.Range(10), func(x, _ int) int { return x * x }),
		Evens:   lo.Filter(lo.Range(20), func(x, _ int) bool { return x%2 == 0 }),
		DivisibleBy15: lo.Filter(lo.Range(100), func(x, _ int) bool {
			return x%3 == 0 && x%5 == 0
		}),
		Matrix: lo.Map(lo.Range(3), func(i, _ int) []int {
			return lo.Map(lo.Range(3), func(j, _ int) int { return i*3 + j })
		}),
		AbsoluteValues: lo.Map([]int{-3, -1, 0, 1, 3}, func(x, _ int) int {
			if x > 0 {
				return x
			}
			return -x
		}),
		Uppercase: lo.Map([]string{"hello", "world", "python"}, func(w string, _ int) string {
			return strings.ToUpper(w)
		}),
	}
}

type DictSetComprehensionResult struct {
	SquaresDict      map[int]int        `json:"squares_dict" yaml:"squares_dict"`
	EvenSquares      map[int]int        `json:"even_squares" yaml:"even_squares"`
	DiscountedPrices map[string]float64 `json:"discounted_prices" yaml:"discounted_prices"`
	UniqueLengths    []int              `json:"unique_lengths" yaml:"unique_lengths"`
	UniqueVowels     []string           `json:"unique_vowels" yaml:"unique_vowels"`
}

func DictSetComprehension() DictSetComprehensionResult {
	squares := lo.SliceToMap(lo.Range(5), func(x int) (int, int) { return x, x * x })
	evenSquares := lo.SliceToMap(
		lo.Filter(lo.Range(10), func(x, _ int) bool { return x%2 == 0 }),
		func(x int) (int, int) { return x, x * x },
	)

	prices := map[string]float64{"apple": 0.5, "banana": 0.3, "orange": 0.7}
	discounted := lo.MapValues(prices, func(p float64, _ string) float64 { return p * 0.8 })

	lengths := mapset.NewSet[int]()
	for _, w := range []string{"hi", "hello", "hi", "python"} {
		lengths.Add(len(w))
	}

	vowels := mapset.NewSet[string]()
	for _, ch := range strings.ToLower("Hello World") {
		if strings.ContainsRune("aeiou", ch) {
			vowels.Add(string(ch))
		}
	}

	return DictSetComprehensionResult{
		SquaresDict:      squares,
		EvenSquares:      evenSquares,
		DiscountedPrices: discounted,
		UniqueLengths:    sorted(lengths),
		UniqueVowels:     sorted(vowels),
	}
}

func sorted[T int | string](s mapset.Set[T]) []T {
	out := s.ToSlice()
	slices.Sort(out)
	return out
}
