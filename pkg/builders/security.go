package builders

import (
	"fmt"
	"strconv"
	"time"

	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/random"
	"github.com/meschbach/fakegen/pkg/unique"
)

const (
	controlMin = 1000
	controlMax = 9999
)

// SecurityNumbers builds social security style numbers: a yymmdd birth date prefix followed by a four digit
// control number.
type SecurityNumbers struct {
	source  *random.Source
	history *unique.Engine[string]
}

func NewSecurityNumbers(source *random.Source) (*SecurityNumbers, error) {
	if source == nil {
		return nil, &gen.ArgumentError{Op: "NewSecurityNumbers", Arg: "source"}
	}
	return &SecurityNumbers{
		source:  source,
		history: unique.New[string](),
	}, nil
}

func datePrefix(birth time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", birth.Year()%100, int(birth.Month()), birth.Day())
}

func (s *SecurityNumbers) control() int {
	return controlMin + s.source.Intn(controlMax-controlMin+1)
}

func (s *SecurityNumbers) Next(birth time.Time) string {
	return datePrefix(birth) + strconv.Itoa(s.control())
}

// controlDigits is the width of the control number at the end of a security number.
const controlDigits = 4

// nextControl steps the trailing control number of a security number up, wrapping from 9999 to 1000.
func nextControl(candidate string) string {
	split := len(candidate) - controlDigits
	control, err := strconv.Atoi(candidate[split:])
	if err != nil {
		control = controlMax
	}
	return candidate[:split] + strconv.Itoa(unique.IncrementWrap(controlMin, controlMax)(control))
}

// NextUnique only varies the control number: on collision it steps up, wrapping from 9999 to 1000.  When every
// control number of the date was handed out it fails with unique.ErrExhausted.
func (s *SecurityNumbers) NextUnique(birth time.Time) (string, error) {
	return s.history.MutateWithin(datePrefix(birth)+strconv.Itoa(s.control()), nextControl, controlMax-controlMin+1)
}

func (s *SecurityNumbers) Generator(births gen.Generator[time.Time], distinct bool) gen.Generator[string] {
	gen.RequireArg(births != nil, "SecurityNumbers.Generator", "births")
	return gen.FuncE[string](func() (string, error) {
		birth, err := births.Next()
		if err != nil {
			return "", err
		}
		if distinct {
			return s.NextUnique(birth)
		}
		return s.Next(birth), nil
	})
}

// BirthDates draws calendar days uniformly from [from,to).  Days are counted in from's location.
func BirthDates(source *random.Source, from, to time.Time) (gen.Generator[time.Time], error) {
	gen.RequireArg(source != nil, "BirthDates", "source")
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	days := int(to.Sub(start).Hours() / 24)
	offsets, err := gen.IntRange(source, 0, days)
	if err != nil {
		return nil, err
	}
	return gen.Select(offsets, func(offset int) time.Time {
		return start.AddDate(0, 0, offset)
	}), nil
}
