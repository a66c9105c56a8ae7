package faking

import "github.com/meschbach/fakegen/pkg/catalog"

// Sample draws up to count distinct values from domain.  It stops early, keeping what it has, once the domain runs
// dry so small faker vocabularies still produce a usable catalog.
func Sample[T comparable](domain *UniqueDomain[T], count int) catalog.List[T] {
	out := make([]T, 0, count)
	for len(out) < count {
		value, err := domain.Next()
		if err != nil {
			break
		}
		out = append(out, value)
	}
	return catalog.Of(out...)
}

// FirstNames samples a catalog of first names from faker.
func FirstNames(count int) catalog.List[string] {
	return Sample(NewUniqueFirstNames(), count)
}

func LastNames(count int) catalog.List[string] {
	return Sample(NewUniqueLastNames(), count)
}

func Domains(count int) catalog.List[string] {
	return Sample(NewUniqueDomainNames(), count)
}

// Words samples a catalog of lorem words, used as username stems.
func Words(count int) catalog.List[string] {
	return Sample(NewUniqueWords(), count)
}
