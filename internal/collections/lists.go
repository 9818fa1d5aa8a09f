// Package collections covers slices, maps, sets, tuples and the container
// types built from them.
package collections

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

type StackOps struct {
	Stack  []int `json:"stack" yaml:"stack"`
	Popped int   `json:"popped" yaml:"popped"`
}

type QueueOps struct {
	Queue    []int `json:"queue" yaml:"queue"`
	Dequeued int   `json:"dequeued" yaml:"dequeued"`
}

type ListOperationsResult struct {
	AfterAdding     []int    `json:"after_adding" yaml:"after_adding"`
	AfterRemoving   []int    `json:"after_removing" yaml:"after_removing"`
	PoppedValues    [2]int   `json:"popped_values" yaml:"popped_values"`
	Count2          int      `json:"count_2" yaml:"count_2"`
	IndexOf3        int      `json:"index_of_3" yaml:"index_of_3"`
	FourInList      bool     `json:"4_in_list" yaml:"4_in_list"`
	Sorted          []int    `json:"sorted" yaml:"sorted"`
	Reversed        []int    `json:"reversed" yaml:"reversed"`
	StackOperations StackOps `json:"stack_operations" yaml:"stack_operations"`
	QueueOperations QueueOps `json:"queue_operations" yaml:"queue_operations"`
}

func ListOperations() ListOperationsResult {
	var r ListOperationsResult

	lst := []int{1, 2, 3}
	lst = append(lst, 4)
	lst = slices.Insert(lst, 0, 0)
	lst = append(lst, 5, 6)
	r.AfterAdding = slices.Clone(lst)

	if i := slices.Index(lst, 3); i >= 0 {
		lst = slices.Delete(lst, i, i+1)
	}
	popped := lst[len(lst)-1]
	lst = lst[:len(lst)-1]
	poppedAt := lst[0]
	lst = lst[1:]
	r.AfterRemoving = slices.Clone(lst)
	r.PoppedValues = [2]int{popped, poppedAt}

	test := []int{1, 2, 3, 2, 4, 2}
	r.Count2 = lo.Count(test, 2)
	r.IndexOf3 = slices.Index(test, 3)
	r.FourInList = slices.Contains(test, 4)

	unsorted := []int{3, 1, 4, 1, 5, 9, 2}
	r.Sorted = slices.Sorted(slices.Values(unsorted))
	slices.Sort(unsorted)
	slices.Reverse(unsorted)
	r.Reversed = unsorted

	stack := []int{1, 2, 3}
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	r.StackOperations = StackOps{Stack: stack, Popped: top}

	queue := []int{1, 2, 3}
	queue = append(queue, 4)
	first := queue[0]
	queue = queue[1:]
	r.QueueOperations = QueueOps{Queue: queue, Dequeued: first}

	return r
}

type SliceAssignmentResult struct {
	AfterReplace []any `json:"after_replace" yaml:"after_replace"`
	AfterDelete  []any `json:"after_delete" yaml:"after_delete"`
	AfterInsert  []any `json:"after_insert" yaml:"after_insert"`
}

type SlicingResult struct {
	Original           []int                 `json:"original" yaml:"original"`
	FirstThree         []int                 `json:"first_three" yaml:"first_three"`
	LastThree          []int                 `json:"last_three" yaml:"last_three"`
	Middle             []int                 `json:"middle" yaml:"middle"`
	EverySecond        []int                 `json:"every_second" yaml:"every_second"`
	Reverse            []int                 `json:"reverse" yaml:"reverse"`
	ReverseEverySecond []int                 `json:"reverse_every_second" yaml:"reverse_every_second"`
	Copy               []int                 `json:"copy" yaml:"copy"`
	ExceptFirstLast    []int                 `json:"except_first_last" yaml:"except_first_last"`
	SliceAssignment    SliceAssignmentResult `json:"slice_assignment" yaml:"slice_assignment"`
}

// Step returns every step-th element starting at the first one; a negative
// step walks from the end.
func Step[T any](s []T, step int) []T {
	var out []T
	switch {
	case step > 0:
		for i := 0; i < len(s); i += step {
			out = append(out, s[i])
		}
	case step < 0:
		for i := len(s) - 1; i >= 0; i += step {
			out = append(out, s[i])
		}
	}
	return out
}

func ListSlicing() SlicingResult {
	nums := lo.Range(10)
	n := len(nums)

	return SlicingResult{
		Original:           nums,
		FirstThree:         slices.Clone(nums[:3]),
		LastThree:          slices.Clone(nums[n-3:]),
		Middle:             slices.Clone(nums[3:7]),
		EverySecond:        Step(nums, 2),
		Reverse:            Step(nums, -1),
		ReverseEverySecond: Step(nums, -2),
		Copy:               slices.Clone(nums),
		ExceptFirstLast:    slices.Clone(nums[1 : n-1]),
		SliceAssignment:    SliceAssignment(),
	}
}

func SliceAssignment() SliceAssignmentResult {
	lst := lo.Map(lo.Range(10), func(x, _ int) any { return x })

	lst = slices.Replace(lst, 2, 5, any("a"), "b", "c")
	replaced := slices.Clone(lst)

	lst = slices.Delete(lst, 2, 5)
	deleted := slices.Clone(lst)

	lst = slices.Insert(lst, 2, any("x"), "y", "z")

	return SliceAssignmentResult{
		AfterReplace: replaced,
		AfterDelete:  deleted,
		AfterInsert:  slices.Clone(lst),
	}
}

type ListComprehensionsResult struct {
	Squares        []int    `json:"squares" yaml:"squares"`
	Evens          []int    `json:"evens" yaml:"evens"`
	DivisibleBy15  []int    `json:"divisible_by_15" yaml:"divisible_by_15"`
	Pairs          [][2]int `json:"pairs" yaml:"pairs"`
	Matrix         [][]int  `json:"matrix" yaml:"matrix"`
	AbsoluteValues []int    `json:"absolute_values" yaml:"absolute_values"`
	Flattened      []int    `json:"flattened" yaml:"flattened"`
	WordLengths    []int    `json:"word_lengths" yaml:"word_lengths"`
	LongWordsUpper []string `json:"long_words_upper" yaml:"long_words_upper"`
}

func ListComprehensions() ListComprehensionsResult {
	words := []string{"hello", "world", "python"}

	var pairs [][2]int
	for x := range 3 {
		for y := range 3 {
			pairs = append(pairs, [2]int{x, y})
		}
	}

	return ListComprehensionsResult{
		Squares:       lo.Map(lo.Range(10), func(x, _ int) int { return x * x }),
		Evens:         lo.Filter(lo.Range(20), func(x, _ int) bool { return x%2 == 0 }),
		DivisibleBy15: lo.Filter(lo.Range(100), func(x, _ int) bool { return x%3 == 0 && x%5 == 0 }),
		Pairs:         pairs,
		Matrix: lo.Map(lo.Range(3), func(i, _ int) []int {
			return lo.Map(lo.Range(3), func(j, _ int) int { return i*3 + j })
		}),
		AbsoluteValues: lo.Map([]int{-3, -1, 0, 1, 3}, func(x, _ int) int { return max(x, -x) }),
		Flattened:      lo.Flatten([][]int{{1, 2}, {3, 4}, {5, 6}}),
		WordLengths:    lo.Map(words, func(w string, _ int) int { return len(w) }),
		LongWordsUpper: lo.FilterMap(words, func(w string, _ int) (string, bool) {
			return strings.ToUpper(w), len(w) > 4
		}),
	}
}
