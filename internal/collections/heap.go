package collections

import (
	"cmp"
	"container/heap"
	"slices"
)

// MinHeap adapts a slice to container/heap.
type MinHeap[T cmp.Ordered] []T

func (h MinHeap[T]) Len() int           { return len(h) }
func (h MinHeap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h MinHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *MinHeap[T]) Push(x any)        { *h = append(*h, x.(T)) }

func (h *MinHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

type pqItem[T any] struct {
	value    T
	priority int
	seq      int
}

type pqItems[T any] []pqItem[T]

func (q pqItems[T]) Len() int { return len(q) }
func (q pqItems[T]) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}
func (q pqItems[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *pqItems[T]) Push(x any)   { *q = append(*q, x.(pqItem[T])) }
func (q *pqItems[T]) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// PriorityQueue pops the lowest priority first; equal priorities leave in
// insertion order.
type PriorityQueue[T any] struct {
	items pqItems[T]
	seq   int
}

func (pq *PriorityQueue[T]) Push(v T, priority int) {
	heap.Push(&pq.items, pqItem[T]{value: v, priority: priority, seq: pq.seq})
	pq.seq++
}

func (pq *PriorityQueue[T]) Pop() (T, error) {
	var zero T
	if pq.items.Len() == 0 {
		return zero, ErrEmpty
	}
	return heap.Pop(&pq.items).(pqItem[T]).value, nil
}

func (pq *PriorityQueue[T]) Len() int { return pq.items.Len() }

func NLargest[T cmp.Ordered](n int, data []T) []T {
	s := slices.Clone(data)
	slices.SortFunc(s, func(a, b T) int { return cmp.Compare(b, a) })
	return s[:min(n, len(s))]
}

func NSmallest[T cmp.Ordered](n int, data []T) []T {
	s := slices.Sorted(slices.Values(data))
	return s[:min(n, len(s))]
}

type HeapResult struct {
	SmallestPopped   int    `json:"smallest_popped" yaml:"smallest_popped"`
	HeapAfterPop     []int  `json:"heap_after_pop" yaml:"heap_after_pop"`
	Heapified        []int  `json:"heapified" yaml:"heapified"`
	Largest3         []int  `json:"largest_3" yaml:"largest_3"`
	Smallest3        []int  `json:"smallest_3" yaml:"smallest_3"`
	PriorityQueuePop string `json:"priority_queue_pop" yaml:"priority_queue_pop"`
}

func HeapOperations() (HeapResult, error) {
	h := &MinHeap[int]{}
	for _, v := range []int{5, 3, 7, 1} {
		heap.Push(h, v)
	}
	smallest := heap.Pop(h).(int)

	nums := MinHeap[int]{4, 1, 7, 3, 8, 5}
	heap.Init(&nums)

	data := []int{1, 3, 5, 7, 9, 2, 4, 6, 8, 0}

	var pq PriorityQueue[string]
	pq.Push("task1", 3)
	pq.Push("task2", 1)
	pq.Push("task3", 2)
	top, err := pq.Pop()
	if err != nil {
		return HeapResult{}, err
	}

	return HeapResult{
		SmallestPopped:   smallest,
		HeapAfterPop:     []int(*h),
		Heapified:        []int(nums),
		Largest3:         NLargest(3, data),
		Smallest3:        NSmallest(3, data),
		PriorityQueuePop: top,
	}, nil
}
