package gen

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	g := Select(Incrementer(1), func(i int) int { return i * i })
	assert.Equal(t, []int{1, 4, 9, 16}, collect(t, g, 4))
}

func TestWhere(t *testing.T) {
	t.Run("Given a sparse predicate", func(t *testing.T) {
		g := Where(Incrementer(0), func(i int) bool { return i%7 == 0 }, 0)
		assert.Equal(t, []int{0, 7, 14}, collect(t, g, 3))
	})

	t.Run("Given a predicate which never holds", func(t *testing.T) {
		calls := 0
		g := Where(Incrementer(0), func(int) bool {
			calls++
			return false
		}, 250)
		_, err := g.Next()
		require.ErrorIs(t, err, ErrPredicateUnsatisfied)
		assert.Equal(t, 250, calls, "predicate must be consulted exactly limit times")

		var unsatisfied *UnsatisfiedError
		require.True(t, errors.As(err, &unsatisfied))
		assert.Equal(t, 250, unsatisfied.Attempts)
	})

	t.Run("Given the default limit", func(t *testing.T) {
		calls := 0
		g := Where(Constant(1), func(int) bool {
			calls++
			return false
		}, -1)
		_, err := g.Next()
		assert.ErrorIs(t, err, ErrPredicateUnsatisfied)
		assert.Equal(t, DefaultWhereAttempts, calls)
	})

	t.Run("Upstream errors propagate", func(t *testing.T) {
		g := Where(Incrementer[uint8](255), func(v uint8) bool { return v == 0 }, 10)
		_, err := g.Next()
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestSelectMany(t *testing.T) {
	t.Run("Flattens generators", func(t *testing.T) {
		g := SelectMany(Incrementer(1), func(i int) Generator[string] {
			return Constant(strings.Repeat("x", i))
		})
		assert.Equal(t, []string{"x", "xx", "xxx"}, collect(t, g, 3))
	})

	t.Run("Keeps the outer value with a result selector", func(t *testing.T) {
		word := faker.Word()
		g := SelectManyWith(Constant(word), func(string) Generator[int] {
			return Incrementer(0)
		}, func(w string, i int) string {
			return w + ":" + string(rune('0'+i))
		})
		// each pull builds a fresh inner generator
		assert.Equal(t, []string{word + ":0", word + ":0"}, collect(t, g, 2))
	})

	t.Run("Given a selector returning nil", func(t *testing.T) {
		g := SelectMany(Constant(1), func(int) Generator[int] { return nil })
		_, err := g.Next()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestZip(t *testing.T) {
	t.Run("Pulls first then second", func(t *testing.T) {
		var order []string
		first := Do(Incrementer(0), func(int) error {
			order = append(order, "first")
			return nil
		})
		second := Do(Decrementer(0), func(int) error {
			order = append(order, "second")
			return nil
		})
		g := Zip(first, second, func(a, b int) int { return a - b })
		assert.Equal(t, []int{0, 2, 4}, collect(t, g, 3))
		assert.Equal(t, []string{"first", "second", "first", "second", "first", "second"}, order)
	})

	t.Run("Given a nil side", func(t *testing.T) {
		assert.Panics(t, func() {
			Zip[int, int, int](Constant(1), nil, func(a, b int) int { return a + b })
		})
	})
}

func TestDo(t *testing.T) {
	t.Run("Passes values through", func(t *testing.T) {
		var seen []int
		g := Do(Incrementer(3), func(v int) error {
			seen = append(seen, v)
			return nil
		})
		assert.Equal(t, []int{3, 4}, collect(t, g, 2))
		assert.Equal(t, []int{3, 4}, seen)
	})

	t.Run("Action errors propagate", func(t *testing.T) {
		problem := errors.New(faker.Sentence())
		g := Do(Constant(1), func(int) error { return problem })
		_, err := g.Next()
		assert.ErrorIs(t, err, problem)
	})
}

func TestTerminals(t *testing.T) {
	t.Run("Take yields exactly n values", func(t *testing.T) {
		seq, err := Take(Incrementer(10), 3)
		require.NoError(t, err)
		var got []int
		for v, err := range seq {
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int{10, 11, 12}, got)
	})

	t.Run("Take zero is an empty sequence", func(t *testing.T) {
		seq, err := Take(Incrementer(0), 0)
		require.NoError(t, err)
		count := 0
		for range seq {
			count++
		}
		assert.Zero(t, count)
	})

	t.Run("Take stops on the first error", func(t *testing.T) {
		seq, err := Take(Incrementer[int8](126), 5)
		require.NoError(t, err)
		var errs []error
		values := 0
		for _, err := range seq {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			values++
		}
		assert.Equal(t, 2, values)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrOverflow)
	})

	t.Run("Negative counts are rejected", func(t *testing.T) {
		_, err := Take(Constant(1), -1)
		assert.ErrorIs(t, err, ErrInvalidCount)
		_, err = ToList(Constant(1), -1)
		assert.ErrorIs(t, err, ErrInvalidCount)
		_, err = ToArray(Constant(1), -1)
		assert.ErrorIs(t, err, ErrInvalidCount)
		_, err = Release(Constant(1), -1)
		assert.ErrorIs(t, err, ErrInvalidCount)
	})

	t.Run("Zero counts produce empty containers", func(t *testing.T) {
		list, err := ToList(Constant(1), 0)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)

		array, err := ToArray(Constant(1), 0)
		require.NoError(t, err)
		assert.NotNil(t, array)
		assert.Empty(t, array)
	})

	t.Run("ToArray is sized exactly", func(t *testing.T) {
		array, err := ToArray(Incrementer(0), 4)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, array)
		assert.Equal(t, 4, cap(array))
	})

	t.Run("Release discards values and returns the same generator", func(t *testing.T) {
		source := Incrementer(0)
		released, err := Release(source, 5)
		require.NoError(t, err)
		assert.Same(t, source, released)
		assert.Equal(t, []int{5, 6}, collect(t, released, 2))

		released, err = Release(source, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{7}, collect(t, released, 1))
	})
}
