package collections

import "fmt"

// Stack is a LIFO container.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

func (s *Stack[T]) Pop() (T, error) {
	v, err := s.Peek()
	if err != nil {
		return v, err
	}
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, fmt.Errorf("stack: %w", ErrEmpty)
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
func (s *Stack[T]) Size() int     { return len(s.items) }

// Queue is a FIFO container. The zero value is an empty queue.
type Queue[T any] struct {
	items Deque[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Enqueue(v T) { q.items.PushBack(v) }

func (q *Queue[T]) Dequeue() (T, error) {
	v, err := q.items.PopFront()
	if err != nil {
		return v, fmt.Errorf("queue: %w", err)
	}
	return v, nil
}

func (q *Queue[T]) Front() (T, error) {
	v, err := q.items.Front()
	if err != nil {
		return v, fmt.Errorf("queue: %w", err)
	}
	return v, nil
}

func (q *Queue[T]) IsEmpty() bool { return q.items.IsEmpty() }
func (q *Queue[T]) Size() int     { return q.items.Len() }

type ListStackResult struct {
	Remaining []int `json:"remaining" yaml:"remaining"`
	Popped    int   `json:"popped" yaml:"popped"`
}

type DequeQueueResult struct {
	Remaining []int `json:"remaining" yaml:"remaining"`
	Dequeued  int   `json:"dequeued" yaml:"dequeued"`
}

type StackInfo struct {
	Peek int `json:"peek" yaml:"peek"`
	Size int `json:"size" yaml:"size"`
}

type QueueInfo struct {
	Front string `json:"front" yaml:"front"`
	Size  int    `json:"size" yaml:"size"`
}

type StackQueueResult struct {
	ListStack   ListStackResult  `json:"list_stack" yaml:"list_stack"`
	DequeQueue  DequeQueueResult `json:"deque_queue" yaml:"deque_queue"`
	CustomStack StackInfo        `json:"custom_stack" yaml:"custom_stack"`
	CustomQueue QueueInfo        `json:"custom_queue" yaml:"custom_queue"`
}

func StackQueue() (StackQueueResult, error) {
	var r StackQueueResult

	stack := []int{1, 2, 3}
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	r.ListStack = ListStackResult{Remaining: stack, Popped: top}

	dq := NewDeque(1, 2, 3)
	first, err := dq.PopFront()
	if err != nil {
		return r, err
	}
	r.DequeQueue = DequeQueueResult{Remaining: dq.Slice(), Dequeued: first}

	var s Stack[int]
	s.Push(10)
	s.Push(20)
	peek, err := s.Peek()
	if err != nil {
		return r, err
	}
	r.CustomStack = StackInfo{Peek: peek, Size: s.Size()}

	q := NewQueue[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	front, err := q.Front()
	if err != nil {
		return r, err
	}
	r.CustomQueue = QueueInfo{Front: front, Size: q.Size()}

	return r, nil
}
