package catalog

import (
	"iter"
	"slices"

	"github.com/meschbach/fakegen/pkg/gen"
)

// Predicate decides whether a catalog entry is kept by Where.
type Predicate[T any] func(T) bool

// List is an immutable ordered collection of candidate values.  Filtering returns a new List and never touches
// the receiver.
type List[T any] struct {
	items []T
}

func Of[T any](items ...T) List[T] {
	return List[T]{items: slices.Clone(items)}
}

func (l List[T]) Len() int {
	return len(l.items)
}

func (l List[T]) Empty() bool {
	return len(l.items) == 0
}

func (l List[T]) At(index int) T {
	return l.items[index]
}

// Items returns a copy of the backing values.
func (l List[T]) Items() []T {
	return slices.Clone(l.items)
}

func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Where keeps the entries matching every predicate, in order.
func (l List[T]) Where(predicates ...Predicate[T]) List[T] {
	var out []T
	for _, item := range l.items {
		if matchesAll(item, predicates) {
			out = append(out, item)
		}
	}
	return List[T]{items: out}
}

func matchesAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// Cycle replays the list forever.  An empty list yields gen.ErrEmptySequence.
func (l List[T]) Cycle() (*gen.CircularSequence[T], error) {
	return gen.Circular(l.items)
}

// Map projects every entry.  Methods cannot introduce type parameters, so this is a function.
func Map[T, R any](l List[T], transform func(T) R) List[R] {
	out := make([]R, len(l.items))
	for i, item := range l.items {
		out[i] = transform(item)
	}
	return List[R]{items: out}
}

func And[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		return matchesAll(item, predicates)
	}
}

func Or[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range predicates {
			if p(item) {
				return true
			}
		}
		return false
	}
}

func Not[T any](predicate Predicate[T]) Predicate[T] {
	return func(item T) bool {
		return !predicate(item)
	}
}
