package builders

import (
	"slices"
	"strings"

	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/random"
	"github.com/meschbach/fakegen/pkg/unique"
)

// DefaultMailRounds caps how many suffix widenings a unique address may go through.
const DefaultMailRounds = 1000

// Separators joins the two name tokens of an address, tried in this order in unique mode.
var Separators = []string{".", "_", "-"}

// Mail builds addresses of the shape first[sep]second@domain.
type Mail struct {
	source    *random.Source
	domains   []string
	cursor    *gen.CircularSequence[string]
	history   *unique.Engine[string]
	maxRounds int
}

type MailOption func(*Mail)

// WithMailRounds sets the number of suffix widenings after which NextUnique gives up.
func WithMailRounds(rounds int) MailOption {
	return func(m *Mail) {
		if rounds > 0 {
			m.maxRounds = rounds
		}
	}
}

func NewMail(source *random.Source, domains []string, opts ...MailOption) (*Mail, error) {
	if source == nil {
		return nil, &gen.ArgumentError{Op: "NewMail", Arg: "source"}
	}
	cursor, err := gen.Circular(domains)
	if err != nil {
		return nil, err
	}
	m := &Mail{
		source:    source,
		domains:   slices.Clone(domains),
		cursor:    cursor,
		history:   unique.New[string](),
		maxRounds: DefaultMailRounds,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func address(first, sep, second, domain string) string {
	if second == "" {
		return strings.ToLower(first + "@" + domain)
	}
	return strings.ToLower(first + sep + second + "@" + domain)
}

// Next picks a random separator and domain.  Repeats are possible.
func (m *Mail) Next(first, second string) string {
	sep := random.Pick(m.source, Separators)
	domain := random.Pick(m.source, m.domains)
	return address(first, sep, second, domain)
}

// NextUnique walks the domains round robin, crossed with every separator.  Once a full round of combinations is
// taken the second token (the first when there is no second) gets a counting digit suffix and the round starts
// over.  After the configured number of rounds it fails with unique.ErrExhausted.
func (m *Mail) NextUnique(first, second string) (string, error) {
	separators := Separators
	if second == "" {
		separators = Separators[:1]
	}
	for round := 0; round < m.maxRounds; round++ {
		for range m.cursor.Len() {
			domain, _ := m.cursor.Next()
			for _, sep := range separators {
				candidate := address(first, sep, second, domain)
				if m.history.Claim(candidate) {
					return candidate, nil
				}
			}
		}
		if second == "" {
			first = unique.DigitSuffix(first)
		} else {
			second = unique.DigitSuffix(second)
		}
	}
	return "", &unique.ExhaustedError{Op: "mail", Attempts: m.maxRounds * m.cursor.Len() * len(separators)}
}

// Produced reports how many unique addresses have been handed out.
func (m *Mail) Produced() int {
	return m.history.Len()
}

// Generator pulls a name pair from names for every address.
func (m *Mail) Generator(names gen.Generator[[2]string], distinct bool) gen.Generator[string] {
	gen.RequireArg(names != nil, "Mail.Generator", "names")
	return gen.FuncE[string](func() (string, error) {
		pair, err := names.Next()
		if err != nil {
			return "", err
		}
		if distinct {
			return m.NextUnique(pair[0], pair[1])
		}
		return m.Next(pair[0], pair[1]), nil
	})
}
