package gen

import "iter"

// Take lazily yields exactly count values.  A negative count is rejected up front; zero is a valid empty sequence.
// Iteration stops after the first error, which is yielded with a zero value.
func Take[T any](source Generator[T], count int) (iter.Seq2[T, error], error) {
	RequireArg(source != nil, "Take", "source")
	if count < 0 {
		return nil, &CountError{Op: "Take", Count: count}
	}
	return func(yield func(T, error) bool) {
		for i := 0; i < count; i++ {
			value, err := source.Next()
			if !yield(value, err) || err != nil {
				return
			}
		}
	}, nil
}

// ToList eagerly pulls count values.  Zero yields an empty, non-nil slice.
func ToList[T any](source Generator[T], count int) ([]T, error) {
	RequireArg(source != nil, "ToList", "source")
	if count < 0 {
		return nil, &CountError{Op: "ToList", Count: count}
	}
	out := []T{}
	for i := 0; i < count; i++ {
		value, err := source.Next()
		if err != nil {
			return out, err
		}
		out = append(out, value)
	}
	return out, nil
}

// ToArray is ToList into a slice allocated to exactly count elements.  On error the slice holds the values pulled
// so far.
func ToArray[T any](source Generator[T], count int) ([]T, error) {
	RequireArg(source != nil, "ToArray", "source")
	if count < 0 {
		return nil, &CountError{Op: "ToArray", Count: count}
	}
	out := make([]T, count)
	for i := range out {
		value, err := source.Next()
		if err != nil {
			return out[:i], err
		}
		out[i] = value
	}
	return out, nil
}

// Release pulls and discards count values for their side effects and returns source for further chaining.
func Release[T any](source Generator[T], count int) (Generator[T], error) {
	RequireArg(source != nil, "Release", "source")
	if count < 0 {
		return nil, &CountError{Op: "Release", Count: count}
	}
	for i := 0; i < count; i++ {
		if _, err := source.Next(); err != nil {
			return source, err
		}
	}
	return source, nil
}
