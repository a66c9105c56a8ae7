package unique

import (
	"errors"
	"fmt"
)

// DefaultLimit bounds the candidates an Engine considers for a single value unless WithLimit says otherwise.
const DefaultLimit = 10_000

var ErrExhausted = errors.New("could not produce a unique value")

type ExhaustedError struct {
	Op       string
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: no unique value after %d attempts", e.Op, e.Attempts)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// Mutator derives the next candidate to try from a duplicate.  It must be deterministic.
type Mutator[T comparable] func(candidate T) T

// Engine remembers every value it handed out and refuses to hand out a value twice.  The history only grows and
// lives as long as the engine; an engine is meant to be owned by a single builder.
type Engine[T comparable] struct {
	seen  map[T]struct{}
	limit int
}

type Option func(*options)

type options struct {
	limit int
}

// WithLimit caps the candidates considered per produced value.  Non positive values keep the default.
func WithLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

func New[T comparable](opts ...Option) *Engine[T] {
	cfg := options{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine[T]{
		seen:  make(map[T]struct{}),
		limit: cfg.limit,
	}
}

func (e *Engine[T]) Limit() int {
	return e.limit
}

func (e *Engine[T]) Len() int {
	return len(e.seen)
}

func (e *Engine[T]) Seen(value T) bool {
	_, has := e.seen[value]
	return has
}

// Claim records value as produced.  It reports false, leaving the history untouched, when value was already taken.
func (e *Engine[T]) Claim(value T) bool {
	if _, has := e.seen[value]; has {
		return false
	}
	e.seen[value] = struct{}{}
	return true
}

// Mutate offers candidate and then successive mutations of it until one is novel.  At most limit candidates are
// considered, candidate included.
func (e *Engine[T]) Mutate(candidate T, mutate Mutator[T]) (T, error) {
	return e.MutateWithin(candidate, mutate, e.limit)
}

// MutateWithin is Mutate with an explicit bound, for builders whose candidate space is known to be smaller.
func (e *Engine[T]) MutateWithin(candidate T, mutate Mutator[T], attempts int) (T, error) {
	if mutate == nil {
		panic("unique: nil mutator")
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if e.Claim(candidate) {
			return candidate, nil
		}
		candidate = mutate(candidate)
	}
	var zero T
	return zero, &ExhaustedError{Op: "mutate", Attempts: attempts}
}

// Regenerate asks next for fresh candidates until one is novel, giving up after limit calls.
func (e *Engine[T]) Regenerate(next func() (T, error)) (T, error) {
	if next == nil {
		panic("unique: nil candidate producer")
	}
	for attempt := 0; attempt < e.limit; attempt++ {
		candidate, err := next()
		if err != nil {
			return candidate, err
		}
		if e.Claim(candidate) {
			return candidate, nil
		}
	}
	var zero T
	return zero, &ExhaustedError{Op: "regenerate", Attempts: e.limit}
}
