package gen

import "slices"

// CircularSequence replays a fixed ordered sequence forever, starting over once the last element was produced.
type CircularSequence[T any] struct {
	items  []T
	cursor int
}

// Circular copies items and replays them in order.  An empty sequence is rejected.
func Circular[T any](items []T) (*CircularSequence[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}
	return &CircularSequence[T]{items: slices.Clone(items)}, nil
}

// Repeat is Circular over literal values.  It panics when no values are given.
func Repeat[T any](values ...T) *CircularSequence[T] {
	c, err := Circular(values)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *CircularSequence[T]) Next() (T, error) {
	value := c.items[c.cursor]
	c.cursor++
	if c.cursor == len(c.items) {
		c.cursor = 0
	}
	return value, nil
}

// Len is the length of one full round.
func (c *CircularSequence[T]) Len() int {
	return len(c.items)
}

// Position is the index of the element the next pull returns.
func (c *CircularSequence[T]) Position() int {
	return c.cursor
}

// Reset moves the cursor back to the first element.
func (c *CircularSequence[T]) Reset() {
	c.cursor = 0
}
