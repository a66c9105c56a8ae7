package builders

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/random"
	"github.com/meschbach/fakegen/pkg/unique"
)

// MaxDigits keeps every bounded number within int64.
const MaxDigits = 18

var ErrInvalidLength = errors.New("invalid digit length")

type LengthError struct {
	Length int
}

func (l *LengthError) Error() string {
	return fmt.Sprintf("length %d outside 1..%d", l.Length, MaxDigits)
}

func (l *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// Numbers draws integers with an exact number of decimal digits: min = 10^(length-1), max = min*10-1, both
// inclusive.
type Numbers struct {
	source  *random.Source
	min     int64
	max     int64
	history *unique.Engine[int64]
}

func NewNumbers(source *random.Source, length int) (*Numbers, error) {
	if source == nil {
		return nil, &gen.ArgumentError{Op: "NewNumbers", Arg: "source"}
	}
	if length < 1 || length > MaxDigits {
		return nil, &LengthError{Length: length}
	}
	min := int64(1)
	for i := 1; i < length; i++ {
		min *= 10
	}
	max := min*10 - 1
	return &Numbers{
		source:  source,
		min:     min,
		max:     max,
		history: unique.New[int64](unique.WithLimit(int(max - min + 1))),
	}, nil
}

func (n *Numbers) Bounds() (min, max int64) {
	return n.min, n.max
}

func (n *Numbers) candidate() int64 {
	return n.min + int64(n.source.Uint64n(uint64(n.max-n.min+1)))
}

func (n *Numbers) Next() int64 {
	return n.candidate()
}

// NextUnique starts from a random candidate and steps upwards on collision, wrapping from max to min.  Once every
// value of the range was handed out it fails with unique.ErrExhausted.
func (n *Numbers) NextUnique() (int64, error) {
	return n.history.MutateWithin(n.candidate(), unique.IncrementWrap(n.min, n.max), int(n.max-n.min+1))
}

func (n *Numbers) Generator(distinct bool) gen.Generator[int64] {
	if distinct {
		return gen.FuncE[int64](n.NextUnique)
	}
	return gen.Func(n.Next)
}

// Phone renders bounded numbers as phone numbers, optionally behind a country calling code.
type Phone struct {
	numbers     *Numbers
	callingCode string
}

func NewPhone(source *random.Source, length int, callingCode string) (*Phone, error) {
	numbers, err := NewNumbers(source, length)
	if err != nil {
		return nil, err
	}
	return &Phone{numbers: numbers, callingCode: callingCode}, nil
}

func (p *Phone) format(number int64) string {
	digits := strconv.FormatInt(number, 10)
	if p.callingCode == "" {
		return digits
	}
	return "+" + p.callingCode + " " + digits
}

func (p *Phone) Next() string {
	return p.format(p.numbers.Next())
}

func (p *Phone) NextUnique() (string, error) {
	number, err := p.numbers.NextUnique()
	if err != nil {
		return "", err
	}
	return p.format(number), nil
}

func (p *Phone) Generator(distinct bool) gen.Generator[string] {
	return gen.Select(p.numbers.Generator(distinct), p.format)
}
