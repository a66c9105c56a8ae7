package gen

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type OverflowError[T constraints.Integer] struct {
	Op   string
	Last T
}

func (o *OverflowError[T]) Error() string {
	return fmt.Sprintf("%s: stepping past %v overflows %T", o.Op, o.Last, o.Last)
}

func (o *OverflowError[T]) Unwrap() error {
	return ErrOverflow
}

type counter[T constraints.Integer] struct {
	op        string
	current   T
	down      bool
	exhausted bool
}

func (c *counter[T]) Next() (T, error) {
	if c.exhausted {
		var zero T
		return zero, &OverflowError[T]{Op: c.op, Last: c.current}
	}
	value := c.current
	next := value + 1
	if c.down {
		next = value - 1
	}
	// integer arithmetic wraps in Go; a step that moves the wrong way has left the type's range
	if (!c.down && next < value) || (c.down && next > value) {
		c.exhausted = true
	} else {
		c.current = next
	}
	return value, nil
}

// Incrementer returns start, start+1, ...  The maximum of T is produced once; the pull after it fails with
// ErrOverflow instead of wrapping.  Unlike a checked post-increment, which fails on the pull
// that would return the maximum, the error arrives one pull later.
func Incrementer[T constraints.Integer](start T) Generator[T] {
	return &counter[T]{op: "Incrementer", current: start}
}

// Decrementer returns start, start-1, ...  The minimum of T is produced once; the pull after it fails with
// ErrOverflow.
func Decrementer[T constraints.Integer](start T) Generator[T] {
	return &counter[T]{op: "Decrementer", current: start, down: true}
}
