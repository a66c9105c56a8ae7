package faking

import (
	"github.com/go-faker/faker/v4"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/unique"
)

// uniqueDomainRetries mirrors how sparse faker's vocabularies are; a few draws are usually enough.
const uniqueDomainRetries = 64

// UniqueDomain draws from a producer until a value not yet produced by this domain comes up.
type UniqueDomain[T comparable] struct {
	history *unique.Engine[T]
	source  gen.Generator[T]
}

func NewUniqueDomain[T comparable](produce func() T) *UniqueDomain[T] {
	return NewUniqueDomainOf(gen.Func(produce))
}

func NewUniqueDomainOf[T comparable](source gen.Generator[T]) *UniqueDomain[T] {
	return &UniqueDomain[T]{
		history: unique.New[T](unique.WithLimit(uniqueDomainRetries)),
		source:  source,
	}
}

// Next returns a novel value or unique.ErrExhausted once the retries are spent.  Producer errors end the attempt.
func (u *UniqueDomain[T]) Next() (T, error) {
	return u.history.Regenerate(u.source.Next)
}

func (u *UniqueDomain[T]) MustNext() T {
	value, err := u.Next()
	if err != nil {
		panic(err)
	}
	return value
}

func NewUniqueWords() *UniqueDomain[string] {
	return NewUniqueDomain(func() string {
		return faker.Word()
	})
}

func NewUniqueFirstNames() *UniqueDomain[string] {
	return NewUniqueDomain(func() string {
		return faker.FirstName()
	})
}

func NewUniqueLastNames() *UniqueDomain[string] {
	return NewUniqueDomain(func() string {
		return faker.LastName()
	})
}

func NewUniqueDomainNames() *UniqueDomain[string] {
	return NewUniqueDomain(func() string {
		return faker.DomainName()
	})
}

func NewUniqueInts() *UniqueDomain[int] {
	return NewUniqueDomainOf(Ints(-intSpan, intSpan))
}
