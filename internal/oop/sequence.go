package oop

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Sequence is a list-like container that accepts negative indices.
type Sequence[T comparable] struct {
	data []T
}

func NewSequence[T comparable](items ...T) *Sequence[T] {
	return &Sequence[T]{data: slices.Clone(items)}
}

func (s *Sequence[T]) Len() int { return len(s.data) }

func (s *Sequence[T]) index(i int) (int, error) {
	if i < 0 {
		i += len(s.data)
	}
	if i < 0 || i >= len(s.data) {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return i, nil
}

func (s *Sequence[T]) At(i int) (T, error) {
	idx, err := s.index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[idx], nil
}

func (s *Sequence[T]) Set(i int, v T) error {
	idx, err := s.index(i)
	if err != nil {
		return err
	}
	s.data[idx] = v
	return nil
}

func (s *Sequence[T]) Contains(v T) bool {
	return slices.Contains(s.data, v)
}

func (s *Sequence[T]) All() iter.Seq[T] {
	return slices.Values(s.data)
}

// Concat returns a new sequence holding s followed by other.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	return &Sequence[T]{data: slices.Concat(s.data, other.data)}
}
