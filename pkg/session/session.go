package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/meschbach/fakegen/pkg/builders"
	"github.com/meschbach/fakegen/pkg/catalog"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/random"
)

// Session hands a single random source to every builder it creates, so one seed reproduces a whole run.  Builders
// are created on first use and kept, which keeps their uniqueness history for the lifetime of the session.
type Session struct {
	config      Config
	source      *random.Source
	names       catalog.List[catalog.Record]
	domains     catalog.List[string]
	callingCode string

	mail      *builders.Mail
	phone     *builders.Phone
	security  *builders.SecurityNumbers
	usernames *builders.Usernames
}

func newSession(cfg Config, names catalog.List[catalog.Record], domains catalog.List[string], callingCode string) (*Session, error) {
	if _, err := domains.Cycle(); err != nil {
		return nil, err
	}
	return &Session{
		config:      cfg,
		source:      random.New(cfg.Seed),
		names:       names,
		domains:     domains,
		callingCode: callingCode,
	}, nil
}

func (s *Session) Source() *random.Source {
	return s.source
}

func (s *Session) Config() Config {
	return s.config
}

// Names draws name tokens from the session catalog, keeping only records matching every predicate.  Sparse
// predicates are retried up to the configured WhereAttempts per value.
func (s *Session) Names(predicates ...catalog.Predicate[catalog.Record]) (gen.Generator[string], error) {
	records, err := builders.Choose(s.source, s.names)
	if err != nil {
		return nil, err
	}
	matching := gen.Where(records, catalog.And(predicates...), s.config.WhereAttempts)
	return gen.FuncE[string](func() (string, error) {
		record, err := matching.Next()
		if err != nil {
			return "", err
		}
		return record.Field("name")
	}), nil
}

// NamePairs draws first names of any gender and last names of the session catalog.
func (s *Session) NamePairs() (gen.Generator[[2]string], error) {
	firsts, err := catalog.Strings(s.names.Where(catalog.Not(catalog.Kind("last"))), "name")
	if err != nil {
		return nil, err
	}
	lasts, err := catalog.Strings(s.names.Where(catalog.Kind("last")), "name")
	if err != nil {
		return nil, err
	}
	return builders.NamePairs(s.source, firsts, lasts)
}

func (s *Session) Mail() (*builders.Mail, error) {
	if s.mail == nil {
		m, err := builders.NewMail(s.source, s.domains.Items(), builders.WithMailRounds(s.config.MailRounds))
		if err != nil {
			return nil, err
		}
		s.mail = m
	}
	return s.mail, nil
}

// Mails pairs catalog names with the session mail builder.
func (s *Session) Mails(distinct bool) (gen.Generator[string], error) {
	names, err := s.NamePairs()
	if err != nil {
		return nil, err
	}
	m, err := s.Mail()
	if err != nil {
		return nil, err
	}
	return m.Generator(names, distinct), nil
}

func (s *Session) Phone() (*builders.Phone, error) {
	if s.phone == nil {
		p, err := builders.NewPhone(s.source, s.config.PhoneLength, s.callingCode)
		if err != nil {
			return nil, err
		}
		s.phone = p
	}
	return s.phone, nil
}

func (s *Session) SecurityNumbers() (*builders.SecurityNumbers, error) {
	if s.security == nil {
		sn, err := builders.NewSecurityNumbers(s.source)
		if err != nil {
			return nil, err
		}
		s.security = sn
	}
	return s.security, nil
}

// SecurityNumbersBetween draws birth dates in [from,to) and renders them as security numbers.
func (s *Session) SecurityNumbersBetween(from, to time.Time, distinct bool) (gen.Generator[string], error) {
	births, err := builders.BirthDates(s.source, from, to)
	if err != nil {
		return nil, err
	}
	sn, err := s.SecurityNumbers()
	if err != nil {
		return nil, err
	}
	return sn.Generator(births, distinct), nil
}

func (s *Session) Usernames() (*builders.Usernames, error) {
	if s.usernames == nil {
		u, err := builders.NewUsernames(s.source, 0.5)
		if err != nil {
			return nil, err
		}
		s.usernames = u
	}
	return s.usernames, nil
}

func (s *Session) UUIDs() gen.Generator[string] {
	return gen.Select(builders.UUIDs(s.source), uuid.UUID.String)
}
