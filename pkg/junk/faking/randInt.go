package faking

import (
	"github.com/go-faker/faker/v4"
	"github.com/meschbach/fakegen/pkg/gen"
)

// intSpan bounds the values handed out by NewUniqueInts.
const intSpan = 10000

// RandIntRange draws one value in [min,max] from faker's global source.  It is not reproducible by seed.
func RandIntRange(min, max int) (int, error) {
	values, err := faker.RandomInt(min, max, 1)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// Ints is RandIntRange as a generator.
func Ints(min, max int) gen.Generator[int] {
	return gen.FuncE[int](func() (int, error) {
		return RandIntRange(min, max)
	})
}
