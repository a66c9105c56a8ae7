package gen

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrEmptySequence        = errors.New("empty backing sequence")
	ErrInvalidRange         = errors.New("invalid range")
	ErrInvalidCount         = errors.New("invalid count")
	ErrPredicateUnsatisfied = errors.New("predicate unsatisfied")
	ErrOverflow             = errors.New("arithmetic overflow")
)

// ArgumentError reports a missing generator or callback at composition time.  Composition functions panic with it
// since a nil argument is a programming error rather than a runtime condition.
type ArgumentError struct {
	Op  string
	Arg string
}

func (a *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must not be nil", a.Op, a.Arg)
}

func (a *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// RequireArg panics with an ArgumentError unless ok holds.  Packages composing pipelines on top of gen use it to
// reject nil inputs while the pipeline is built.
func RequireArg(ok bool, op, arg string) {
	if !ok {
		panic(&ArgumentError{Op: op, Arg: arg})
	}
}

type RangeError[T any] struct {
	Op  string
	Min T
	Max T
}

func (r *RangeError[T]) Error() string {
	return fmt.Sprintf("%s: min %v must be below max %v", r.Op, r.Min, r.Max)
}

func (r *RangeError[T]) Unwrap() error {
	return ErrInvalidRange
}

type CountError struct {
	Op    string
	Count int
}

func (c *CountError) Error() string {
	return fmt.Sprintf("%s: count %d is negative", c.Op, c.Count)
}

func (c *CountError) Unwrap() error {
	return ErrInvalidCount
}

// UnsatisfiedError is returned by Where once the attempt limit has been spent without a match.
type UnsatisfiedError struct {
	Attempts int
}

func (u *UnsatisfiedError) Error() string {
	return fmt.Sprintf("where: no value satisfied the predicate after %d attempts", u.Attempts)
}

func (u *UnsatisfiedError) Unwrap() error {
	return ErrPredicateUnsatisfied
}
