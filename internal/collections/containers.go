package collections

import (
	"container/list"
	"errors"
	"slices"

	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var ErrEmpty = errors.New("container is empty")

// Counter counts occurrences while remembering first-seen order, which
// breaks ties in MostCommon.
type Counter[T comparable] struct {
	counts map[T]int
	order  []T
}

func NewCounter[T comparable](items ...T) *Counter[T] {
	c := &Counter[T]{counts: make(map[T]int)}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

func (c *Counter[T]) Add(item T) {
	if _, seen := c.counts[item]; !seen {
		c.order = append(c.order, item)
	}
	c.counts[item]++
}

func (c *Counter[T]) Get(item T) int { return c.counts[item] }

func (c *Counter[T]) Counts() map[T]int {
	out := make(map[T]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

func (c *Counter[T]) Total() int {
	return lo.Sum(lo.Values(c.counts))
}

// MostCommon returns the n most frequent items, or all of them when n <= 0.
func (c *Counter[T]) MostCommon(n int) []KV[T, int] {
	out := make([]KV[T, int], 0, len(c.order))
	for _, k := range c.order {
		out = append(out, KV[T, int]{Key: k, Value: c.counts[k]})
	}
	slices.SortStableFunc(out, func(a, b KV[T, int]) int { return b.Value - a.Value })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Deque is a double-ended queue backed by a linked list. The zero value is
// an empty deque.
type Deque[T any] struct {
	l *list.List
}

func (d *Deque[T]) elems() *list.List {
	if d.l == nil {
		d.l = list.New()
	}
	return d.l
}

func NewDeque[T any](items ...T) *Deque[T] {
	d := &Deque[T]{l: list.New()}
	for _, it := range items {
		d.PushBack(it)
	}
	return d
}

func (d *Deque[T]) Len() int      { return d.elems().Len() }
func (d *Deque[T]) PushBack(v T)  { d.elems().PushBack(v) }
func (d *Deque[T]) PushFront(v T) { d.elems().PushFront(v) }
func (d *Deque[T]) IsEmpty() bool { return d.elems().Len() == 0 }

func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	e := d.elems().Back()
	if e == nil {
		return zero, ErrEmpty
	}
	return d.elems().Remove(e).(T), nil
}

func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	e := d.elems().Front()
	if e == nil {
		return zero, ErrEmpty
	}
	return d.elems().Remove(e).(T), nil
}

func (d *Deque[T]) Front() (T, error) {
	var zero T
	if e := d.elems().Front(); e != nil {
		return e.Value.(T), nil
	}
	return zero, ErrEmpty
}

// Rotate moves n elements from the back to the front. A negative n rotates
// the other way.
func (d *Deque[T]) Rotate(n int) {
	if d.elems().Len() == 0 {
		return
	}
	n %= d.elems().Len()
	for ; n > 0; n-- {
		d.elems().MoveToFront(d.elems().Back())
	}
	for ; n < 0; n++ {
		d.elems().MoveToBack(d.elems().Front())
	}
}

func (d *Deque[T]) Slice() []T {
	out := make([]T, 0, d.elems().Len())
	for e := d.elems().Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(T))
	}
	return out
}

// ChainMap looks keys up through several maps, first match wins.
type ChainMap[K comparable, V any] struct {
	Maps []map[K]V
}

func (c ChainMap[K, V]) Get(key K) (V, bool) {
	for _, m := range c.Maps {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Flatten merges the chain into one map honoring lookup precedence.
func (c ChainMap[K, V]) Flatten() map[K]V {
	out := make(map[K]V)
	for i := len(c.Maps) - 1; i >= 0; i-- {
		for k, v := range c.Maps[i] {
			out[k] = v
		}
	}
	return out
}

type CounterResult struct {
	Counts     map[string]int    `json:"counts" yaml:"counts"`
	MostCommon []KV[string, int] `json:"most_common" yaml:"most_common"`
	Total      int               `json:"total" yaml:"total"`
}

type DequeResult struct {
	Final  []int  `json:"final" yaml:"final"`
	Popped [2]int `json:"popped" yaml:"popped"`
}

type ChainMapResult struct {
	Combined map[string]int   `json:"combined" yaml:"combined"`
	Maps     []map[string]int `json:"maps" yaml:"maps"`
	BValue   int              `json:"b_value" yaml:"b_value"`
}

type CollectionsResult struct {
	Counter        CounterResult       `json:"counter" yaml:"counter"`
	DefaultDict    map[string][]string `json:"defaultdict" yaml:"defaultdict"`
	DefaultDictInt map[string]int      `json:"defaultdict_int" yaml:"defaultdict_int"`
	Deque          DequeResult         `json:"deque" yaml:"deque"`
	OrderedDict    []KV[string, int]   `json:"ordered_dict" yaml:"ordered_dict"`
	ChainMap       ChainMapResult      `json:"chain_map" yaml:"chain_map"`
}

func Collections() (CollectionsResult, error) {
	var r CollectionsResult

	words := []string{"apple", "banana", "apple", "orange", "banana", "apple"}
	counter := NewCounter(words...)
	r.Counter = CounterResult{
		Counts:     counter.Counts(),
		MostCommon: counter.MostCommon(2),
		Total:      counter.Total(),
	}

	// a missing key reads as the zero value, so append and += need no setup
	dd := map[string][]string{}
	dd["fruits"] = append(dd["fruits"], "apple")
	dd["fruits"] = append(dd["fruits"], "banana")
	dd["vegetables"] = append(dd["vegetables"], "carrot")
	r.DefaultDict = dd

	ddInt := map[string]int{}
	ddInt["a"]++
	ddInt["b"] += 2
	r.DefaultDictInt = ddInt

	d := NewDeque(1, 2, 3)
	d.PushBack(4)
	d.PushFront(0)
	d.Rotate(1)
	right, err := d.PopBack()
	if err != nil {
		return r, err
	}
	left, err := d.PopFront()
	if err != nil {
		return r, err
	}
	r.Deque = DequeResult{Final: d.Slice(), Popped: [2]int{left, right}}

	od := orderedmap.New[string, int]()
	od.Set("first", 1)
	od.Set("second", 2)
	od.Set("third", 3)
	if err := od.MoveToBack("first"); err != nil {
		return r, err
	}
	r.OrderedDict = pairs(od)

	chain := ChainMap[string, int]{Maps: []map[string]int{
		{"a": 1, "b": 2},
		{"b": 3, "c": 4},
	}}
	b, _ := chain.Get("b")
	r.ChainMap = ChainMapResult{Combined: chain.Flatten(), Maps: chain.Maps, BValue: b}

	return r, nil
}
