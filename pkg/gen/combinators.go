package gen

// DefaultWhereAttempts bounds Where when no positive limit is given.  Predicates over catalogs may match sparsely.
const DefaultWhereAttempts = 100_000

type selected[T, R any] struct {
	source    Generator[T]
	transform func(T) R
}

func (s *selected[T, R]) Next() (R, error) {
	value, err := s.source.Next()
	if err != nil {
		var zero R
		return zero, err
	}
	return s.transform(value), nil
}

// Select maps every pulled value through transform.
func Select[T, R any](source Generator[T], transform func(T) R) Generator[R] {
	RequireArg(source != nil, "Select", "source")
	RequireArg(transform != nil, "Select", "transform")
	return &selected[T, R]{source: source, transform: transform}
}

type filtered[T any] struct {
	source    Generator[T]
	predicate func(T) bool
	limit     int
}

func (f *filtered[T]) Next() (T, error) {
	for attempt := 0; attempt < f.limit; attempt++ {
		value, err := f.source.Next()
		if err != nil {
			return value, err
		}
		if f.predicate(value) {
			return value, nil
		}
	}
	var zero T
	return zero, &UnsatisfiedError{Attempts: f.limit}
}

// Where pulls until predicate holds.  After limit rejected values the pull fails with ErrPredicateUnsatisfied; the
// caller decides whether that is fatal.  A limit <= 0 selects DefaultWhereAttempts.
func Where[T any](source Generator[T], predicate func(T) bool, limit int) Generator[T] {
	RequireArg(source != nil, "Where", "source")
	RequireArg(predicate != nil, "Where", "predicate")
	if limit <= 0 {
		limit = DefaultWhereAttempts
	}
	return &filtered[T]{source: source, predicate: predicate, limit: limit}
}

type flattened[T, U, R any] struct {
	source Generator[T]
	inner  func(T) Generator[U]
	result func(T, U) R
}

func (f *flattened[T, U, R]) Next() (R, error) {
	var zero R
	outer, err := f.source.Next()
	if err != nil {
		return zero, err
	}
	g := f.inner(outer)
	if g == nil {
		return zero, &ArgumentError{Op: "SelectMany", Arg: "generator returned by selector"}
	}
	value, err := g.Next()
	if err != nil {
		return zero, err
	}
	return f.result(outer, value), nil
}

// SelectMany pulls an outer value, derives a generator from it and returns that generator's next value.
func SelectMany[T, U any](source Generator[T], selector func(T) Generator[U]) Generator[U] {
	RequireArg(selector != nil, "SelectMany", "selector")
	return SelectManyWith(source, selector, func(_ T, u U) U { return u })
}

// SelectManyWith is SelectMany keeping the outer value, combining both through result.
func SelectManyWith[T, U, R any](source Generator[T], selector func(T) Generator[U], result func(T, U) R) Generator[R] {
	RequireArg(source != nil, "SelectMany", "source")
	RequireArg(selector != nil, "SelectMany", "selector")
	RequireArg(result != nil, "SelectMany", "result")
	return &flattened[T, U, R]{source: source, inner: selector, result: result}
}

type zipped[A, B, R any] struct {
	first  Generator[A]
	second Generator[B]
	result func(A, B) R
}

func (z *zipped[A, B, R]) Next() (R, error) {
	var zero R
	a, err := z.first.Next()
	if err != nil {
		return zero, err
	}
	b, err := z.second.Next()
	if err != nil {
		return zero, err
	}
	return z.result(a, b), nil
}

// Zip pulls first then second, exactly once each per call.  The order is fixed so pipelines sharing a seeded
// source stay reproducible.
func Zip[A, B, R any](first Generator[A], second Generator[B], result func(A, B) R) Generator[R] {
	RequireArg(first != nil, "Zip", "first")
	RequireArg(second != nil, "Zip", "second")
	RequireArg(result != nil, "Zip", "result")
	return &zipped[A, B, R]{first: first, second: second, result: result}
}

type tapped[T any] struct {
	source Generator[T]
	action func(T) error
}

func (t *tapped[T]) Next() (T, error) {
	value, err := t.source.Next()
	if err != nil {
		return value, err
	}
	if err := t.action(value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Do runs action on every pulled value and passes the value through unchanged.  Errors from action propagate.
func Do[T any](source Generator[T], action func(T) error) Generator[T] {
	RequireArg(source != nil, "Do", "source")
	RequireArg(action != nil, "Do", "action")
	return &tapped[T]{source: source, action: action}
}
