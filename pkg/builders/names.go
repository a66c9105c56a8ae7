package builders

import (
	"github.com/meschbach/fakegen/pkg/catalog"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/random"
)

// Choose draws entries of names uniformly at random.
func Choose[T any](source *random.Source, names catalog.List[T]) (gen.Generator[T], error) {
	gen.RequireArg(source != nil, "Choose", "source")
	if names.Empty() {
		return nil, gen.ErrEmptySequence
	}
	if names.Len() == 1 {
		return gen.Constant(names.At(0)), nil
	}
	indexes, err := gen.IntRange(source, 0, names.Len())
	if err != nil {
		return nil, err
	}
	return gen.Select(indexes, names.At), nil
}

// NamePairs zips a random first name with a random last name.
func NamePairs(source *random.Source, firsts, lasts catalog.List[string]) (gen.Generator[[2]string], error) {
	first, err := Choose(source, firsts)
	if err != nil {
		return nil, err
	}
	last, err := Choose(source, lasts)
	if err != nil {
		return nil, err
	}
	return gen.Zip(first, last, func(f, l string) [2]string {
		return [2]string{f, l}
	}), nil
}
