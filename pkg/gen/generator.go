// Package gen is a small pull based generator toolkit.  A Generator produces one value per call to Next and may be
// stateful; combinators wrap generators into new ones and exclusively own the generator they wrap.
package gen

// Generator produces values of a single type.  A generator must not be shared between two pipelines since many
// implementations carry cursor or counter state.
type Generator[T any] interface {
	Next() (T, error)
}

// FuncE adapts a fallible callback into a Generator.
type FuncE[T any] func() (T, error)

func (f FuncE[T]) Next() (T, error) {
	return f()
}

// Func wraps an infallible callback.  The callback may be impure, for example drawing from a random.Source.
func Func[T any](fn func() T) Generator[T] {
	RequireArg(fn != nil, "Func", "fn")
	return FuncE[T](func() (T, error) {
		return fn(), nil
	})
}

type constant[T any] struct {
	value T
}

func (c *constant[T]) Next() (T, error) {
	return c.value, nil
}

func Constant[T any](value T) Generator[T] {
	return &constant[T]{value: value}
}

type lazy[T any] struct {
	factory func() (Generator[T], error)
	inner   Generator[T]
}

func (l *lazy[T]) Next() (T, error) {
	if l.inner == nil {
		inner, err := l.factory()
		if err != nil {
			var zero T
			return zero, err
		}
		if inner == nil {
			var zero T
			return zero, &ArgumentError{Op: "Lazy", Arg: "generator returned by factory"}
		}
		l.inner = inner
	}
	return l.inner.Next()
}

// Lazy defers building the inner generator until the first pull and then reuses it for every later pull.  A
// factory error is returned from that pull and the factory is consulted again on the next one.
func Lazy[T any](factory func() (Generator[T], error)) Generator[T] {
	RequireArg(factory != nil, "Lazy", "factory")
	return &lazy[T]{factory: factory}
}

// Must is a fixture helper for constructors returning an error.
func Must[T any](g Generator[T], err error) Generator[T] {
	if err != nil {
		panic(err)
	}
	return g
}
