package unique

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// IncrementWrap steps a bounded integer up by one, moving from max back to min.  Both bounds are inclusive.
func IncrementWrap[T constraints.Integer](min, max T) Mutator[T] {
	return func(candidate T) T {
		if candidate >= max || candidate < min {
			return min
		}
		return candidate + 1
	}
}

// DigitSuffix treats the trailing decimal digits of a token as a counter: "doe" becomes "doe0", "doe0" becomes
// "doe1" and "doe9" rolls over to "doe10".
func DigitSuffix(candidate string) string {
	base := strings.TrimRightFunc(candidate, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	digits := candidate[len(base):]
	if digits == "" {
		return candidate + "0"
	}
	return base + incrementDecimal(digits)
}

func incrementDecimal(digits string) string {
	// digit by digit so leading zeros survive, "007" goes to "008"
	out := []byte(digits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < '9' {
			out[i]++
			return string(out)
		}
		out[i] = '0'
	}
	return "1" + string(out)
}
