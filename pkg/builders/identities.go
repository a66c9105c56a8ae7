package builders

import (
	"strings"

	"github.com/google/uuid"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/random"
	"github.com/meschbach/fakegen/pkg/unique"
)

// UUIDs derives version 4 UUIDs from the session source so a seed reproduces them.
func UUIDs(source *random.Source) gen.Generator[uuid.UUID] {
	gen.RequireArg(source != nil, "UUIDs", "source")
	return gen.FuncE[uuid.UUID](func() (uuid.UUID, error) {
		return uuid.NewRandomFromReader(source)
	})
}

// Usernames lower cases a name token and, with probability digitChance, appends two random digits.
type Usernames struct {
	source      *random.Source
	digitChance float64
	history     *unique.Engine[string]
}

func NewUsernames(source *random.Source, digitChance float64) (*Usernames, error) {
	if source == nil {
		return nil, &gen.ArgumentError{Op: "NewUsernames", Arg: "source"}
	}
	return &Usernames{
		source:      source,
		digitChance: digitChance,
		history:     unique.New[string](),
	}, nil
}

func (u *Usernames) Next(name string) string {
	out := strings.ToLower(name)
	if u.source.Float64() < u.digitChance {
		out += string(rune('0'+u.source.Intn(10))) + string(rune('0'+u.source.Intn(10)))
	}
	return out
}

// NextUnique counts a digit suffix up until the name is free.
func (u *Usernames) NextUnique(name string) (string, error) {
	return u.history.Mutate(u.Next(name), unique.DigitSuffix)
}

func (u *Usernames) Generator(names gen.Generator[string], distinct bool) gen.Generator[string] {
	gen.RequireArg(names != nil, "Usernames.Generator", "names")
	return gen.FuncE[string](func() (string, error) {
		name, err := names.Next()
		if err != nil {
			return "", err
		}
		if distinct {
			return u.NextUnique(name)
		}
		return u.Next(name), nil
	})
}
