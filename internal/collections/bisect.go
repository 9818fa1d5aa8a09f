package collections

import (
	"slices"
	"sort"
)

// BisectLeft returns the first index at which x could be inserted keeping
// s sorted.
func BisectLeft(s []int, x int) int {
	return sort.SearchInts(s, x)
}

// BisectRight returns the index after any existing entries equal to x.
func BisectRight(s []int, x int) int {
	return sort.Search(len(s), func(i int) bool { return s[i] > x })
}

func Insort(s []int, x int) []int {
	return slices.Insert(s, BisectRight(s, x), x)
}

// BinarySearch returns the index of item or -1.
func BinarySearch(s []int, item int) int {
	if i, found := slices.BinarySearch(s, item); found {
		return i
	}
	return -1
}

func Grade(score int) string {
	breakpoints := []int{60, 70, 80, 90}
	grades := "FDCBA"
	return string(grades[BisectRight(breakpoints, score)])
}

type BisectResult struct {
	InsertionPoint int    `json:"insertion_point" yaml:"insertion_point"`
	AfterInsert    []int  `json:"after_insert" yaml:"after_insert"`
	SearchFor7     int    `json:"search_for_7" yaml:"search_for_7"`
	SearchFor6     int    `json:"search_for_6" yaml:"search_for_6"`
	Grade85        string `json:"grade_85" yaml:"grade_85"`
	Grade72        string `json:"grade_72" yaml:"grade_72"`
}

func BisectOperations() BisectResult {
	s := []int{1, 3, 4, 7, 9}
	pos := BisectLeft(s, 5)
	s = Insort(s, 5)

	return BisectResult{
		InsertionPoint: pos,
		AfterInsert:    s,
		SearchFor7:     BinarySearch(s, 7),
		SearchFor6:     BinarySearch(s, 6),
		Grade85:        Grade(85),
		Grade72:        Grade(72),
	}
}
