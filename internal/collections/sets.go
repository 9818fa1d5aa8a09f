package collections

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// FrozenSet is a read-only set. Its Key is stable across equal sets so it
// can index a map.
type FrozenSet[T cmp.Ordered] struct {
	items mapset.Set[T]
}

func Freeze[T cmp.Ordered](items ...T) FrozenSet[T] {
	return FrozenSet[T]{items: mapset.NewSet(items...)}
}

func (f FrozenSet[T]) Contains(v T) bool { return f.items.Contains(v) }
func (f FrozenSet[T]) Len() int          { return f.items.Cardinality() }
func (f FrozenSet[T]) Kind() string      { return "frozenset" }

func (f FrozenSet[T]) Key() string {
	parts := make([]string, 0, f.Len())
	for _, v := range Sorted(f.items) {
		parts = append(parts, fmt.Sprint(v))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s mapset.Set[T]) []T {
	out := s.ToSlice()
	slices.Sort(out)
	return out
}

type SetComprehensions struct {
	Squares []int `json:"squares" yaml:"squares"`
	Evens   []int `json:"evens" yaml:"evens"`
}

type FrozenSetInfo struct {
	Type     string `json:"type" yaml:"type"`
	Hashable bool   `json:"hashable" yaml:"hashable"`
}

type SetOperationsResult struct {
	ModifiedSet         []int             `json:"modified_set" yaml:"modified_set"`
	Union               []int             `json:"union" yaml:"union"`
	Intersection        []int             `json:"intersection" yaml:"intersection"`
	Difference          []int             `json:"difference" yaml:"difference"`
	SymmetricDifference []int             `json:"symmetric_difference" yaml:"symmetric_difference"`
	IsSubset            bool              `json:"is_subset" yaml:"is_subset"`
	IsSuperset          bool              `json:"is_superset" yaml:"is_superset"`
	IsDisjoint          bool              `json:"is_disjoint" yaml:"is_disjoint"`
	Comprehensions      SetComprehensions `json:"comprehensions" yaml:"comprehensions"`
	FrozenSet           FrozenSetInfo     `json:"frozen_set" yaml:"frozen_set"`
}

func SetOperations() SetOperationsResult {
	var r SetOperationsResult

	s := mapset.NewSet(1, 2, 3)
	s.Add(4)
	s.Append(5, 6, 7)
	s.Remove(7)
	s.Remove(6)
	r.ModifiedSet = Sorted(s)

	set1 := mapset.NewSet(1, 2, 3, 4, 5)
	set2 := mapset.NewSet(4, 5, 6, 7, 8)
	r.Union = Sorted(set1.Union(set2))
	r.Intersection = Sorted(set1.Intersect(set2))
	r.Difference = Sorted(set1.Difference(set2))
	r.SymmetricDifference = Sorted(set1.SymmetricDifference(set2))

	small := mapset.NewSet(1, 2)
	r.IsSubset = small.IsSubset(set1)
	r.IsSuperset = set1.IsSuperset(small)
	r.IsDisjoint = small.Intersect(mapset.NewSet(3, 4)).Cardinality() == 0

	squares := mapset.NewSet[int]()
	evens := mapset.NewSet[int]()
	for x := range 10 {
		squares.Add(x * x)
	}
	for x := range 20 {
		if x%2 == 0 {
			evens.Add(x)
		}
	}
	r.Comprehensions = SetComprehensions{Squares: Sorted(squares), Evens: Sorted(evens)}

	frozen := Freeze(1, 2, 3)
	index := map[string]string{frozen.Key(): "first three"}
	_, hashable := index[Freeze(3, 2, 1).Key()]
	r.FrozenSet = FrozenSetInfo{Type: frozen.Kind(), Hashable: hashable}

	return r
}
