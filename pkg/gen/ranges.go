package gen

import (
	"math"

	"github.com/meschbach/fakegen/pkg/random"
	"golang.org/x/exp/constraints"
)

type intRange[T constraints.Integer] struct {
	source *random.Source
	min    T
	span   uint64
}

func (i *intRange[T]) Next() (T, error) {
	// conversions through uint64 are modular, so this holds for signed and unsigned T alike
	return T(uint64(i.min) + i.source.Uint64n(i.span)), nil
}

// IntRange draws uniformly from [min,max).  min >= max is rejected.
func IntRange[T constraints.Integer](source *random.Source, min, max T) (Generator[T], error) {
	RequireArg(source != nil, "IntRange", "source")
	if min >= max {
		return nil, &RangeError[T]{Op: "IntRange", Min: min, Max: max}
	}
	return &intRange[T]{source: source, min: min, span: uint64(max) - uint64(min)}, nil
}

type floatRange[T constraints.Float] struct {
	source *random.Source
	min    T
	max    T
	below  T
	width  T
}

func (f *floatRange[T]) Next() (T, error) {
	value := f.min + T(f.source.Float64())*f.width
	// rounding may land on max for wide magnitudes or float32
	if value >= f.max {
		value = f.below
	}
	return value, nil
}

// FloatRange draws uniformly from [min,max).  Unlike IntRange an empty range min == max is accepted and yields min
// on every pull; only min > max is rejected.
func FloatRange[T constraints.Float](source *random.Source, min, max T) (Generator[T], error) {
	RequireArg(source != nil, "FloatRange", "source")
	if min > max {
		return nil, &RangeError[T]{Op: "FloatRange", Min: min, Max: max}
	}
	if min == max {
		return Constant(min), nil
	}
	return &floatRange[T]{source: source, min: min, max: max, below: below(max, min), width: max - min}, nil
}

// below is the largest value of T under max, moving towards min.
func below[T constraints.Float](max, min T) T {
	next := T(math.Nextafter(float64(max), float64(min)))
	if next >= max {
		// T is float32 based; the float64 neighbour rounded back to max
		next = T(math.Nextafter32(float32(max), float32(min)))
	}
	return next
}
