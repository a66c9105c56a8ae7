package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meschbach/fakegen/pkg/catalog"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type sessionSuite struct {
	suite.Suite
	config *Config
}

func (s *sessionSuite) SetupTest() {
	s.config = NewConfig()
	s.config.Seed = 99
}

func (s *sessionSuite) session() *Session {
	out, err := s.config.SessionFromConfig()
	s.Require().NoError(err)
	return out
}

func (s *sessionSuite) TestSameSeedSameRun() {
	run := func() []string {
		sess := s.session()
		mails, err := sess.Mails(true)
		s.Require().NoError(err)
		phone, err := sess.Phone()
		s.Require().NoError(err)
		rows := gen.Zip(mails, phone.Generator(true), func(m, p string) string { return m + ";" + p })
		rows = gen.Zip(rows, sess.UUIDs(), func(r, id string) string { return r + ";" + id })
		out, err := gen.ToList(rows, 40)
		s.Require().NoError(err)
		return out
	}
	s.Equal(run(), run())
}

func (s *sessionSuite) TestOriginRestrictsNamesAndCallingCode() {
	s.config.Origin = "NO"
	sess := s.session()

	names, err := sess.Names(catalog.Kind("male"))
	s.Require().NoError(err)
	out, err := gen.ToList(names, 30)
	s.Require().NoError(err)
	for _, name := range out {
		s.Contains([]string{"Olav", "Haakon"}, name)
	}

	phone, err := sess.Phone()
	s.Require().NoError(err)
	s.Regexp(`^\+47 `, phone.Next())
}

func (s *sessionSuite) TestUnsatisfiableNameFilter() {
	s.config.WhereAttempts = 50
	sess := s.session()
	names, err := sess.Names(catalog.Kind("dragon"))
	s.Require().NoError(err)
	_, err = names.Next()
	s.ErrorIs(err, gen.ErrPredicateUnsatisfied)
}

func (s *sessionSuite) TestUnknownOrigin() {
	s.config.Origin = "ZZ"
	_, err := s.config.SessionFromConfig()
	s.ErrorIs(err, catalog.ErrUnknownOrigin)
}

func (s *sessionSuite) TestBuildersAreKept() {
	sess := s.session()
	first, err := sess.Mail()
	s.Require().NoError(err)
	second, err := sess.Mail()
	s.Require().NoError(err)
	s.Same(first, second)

	sn, err := sess.SecurityNumbers()
	s.Require().NoError(err)
	again, err := sess.SecurityNumbers()
	s.Require().NoError(err)
	s.Same(sn, again)

	u, err := sess.Usernames()
	s.Require().NoError(err)
	name, err := u.NextUnique("Kim")
	s.Require().NoError(err)
	s.Regexp(`^kim`, name)
}

func (s *sessionSuite) TestSecurityNumbersBetween() {
	sess := s.session()
	from := time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC)
	numbers, err := sess.SecurityNumbersBetween(from, from.AddDate(0, 0, 1), true)
	s.Require().NoError(err)
	out, err := gen.ToList(numbers, 25)
	s.Require().NoError(err)
	for _, n := range out {
		s.Regexp(`^900601[0-9]{4}$`, n)
	}
}

func (s *sessionSuite) TestNamesFile() {
	fileName := filepath.Join(s.T().TempDir(), "names.json")
	s.Require().NoError(os.WriteFile(fileName, []byte(`[
		{"name":"Kaisa","origin":"FI","type":"female"},
		{"name":"Virtanen","origin":"FI","type":"last"}
	]`), 0o600))
	s.config.NamesFile = fileName
	s.config.Domains = []string{"corp.test"}
	sess := s.session()

	mails, err := sess.Mails(false)
	s.Require().NoError(err)
	mail, err := mails.Next()
	s.Require().NoError(err)
	s.Regexp(`^kaisa[._-]virtanen@corp\.test$`, mail)
}

func TestSession(t *testing.T) {
	suite.Run(t, new(sessionSuite))
}

func TestConfig(t *testing.T) {
	t.Run("Given defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, 9, cfg.PhoneLength)
		assert.Equal(t, gen.DefaultWhereAttempts, cfg.WhereAttempts)
	})

	t.Run("Given environment overrides", func(t *testing.T) {
		t.Setenv("TEST_FAKEGEN_SEED", "1234")
		t.Setenv("TEST_FAKEGEN_DOMAINS", "a.test,b.test")
		t.Setenv("TEST_FAKEGEN_ORIGIN", "SE")
		t.Setenv("TEST_FAKEGEN_PHONE_LENGTH", "6")
		cfg, err := NewConfig().LoadEnvWithPrefix("TEST_")
		require.NoError(t, err)
		assert.Equal(t, int64(1234), cfg.Seed)
		assert.Equal(t, []string{"a.test", "b.test"}, cfg.Domains)
		assert.Equal(t, "SE", cfg.Origin)
		assert.Equal(t, 6, cfg.PhoneLength)
	})

	t.Run("Given a malformed number", func(t *testing.T) {
		t.Setenv("BAD_FAKEGEN_SEED", "twelve")
		_, err := NewConfig().LoadEnvWithPrefix("BAD_")
		var envError *EnvError
		require.ErrorAs(t, err, &envError)
		assert.Equal(t, "BAD_FAKEGEN_SEED", envError.Key)
	})

	t.Run("Given a config file", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "fakegen.json")
		require.NoError(t, os.WriteFile(fileName, []byte(`{"seed": 7, "mail-rounds": 3, "calling-code": "1"}`), 0o600))
		cfg := NewConfig()
		require.NoError(t, cfg.LoadFile(fileName))
		assert.Equal(t, int64(7), cfg.Seed)
		assert.Equal(t, 3, cfg.MailRounds)
		assert.Equal(t, "1", cfg.CallingCode)
		assert.Equal(t, 9, cfg.PhoneLength, "values absent from the file keep their defaults")
	})
}
