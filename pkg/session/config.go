package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meschbach/fakegen/pkg/catalog"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/go-junk-bucket/pkg"
	"github.com/meschbach/go-junk-bucket/pkg/files"
)

type Config struct {
	//Seed drives every random decision of a session.  Equal seeds reproduce equal output.
	Seed int64 `json:"seed"`

	//Domains used for mail addresses.  Empty selects the bundled documentation domains.
	Domains []string `json:"domains"`

	//Origin restricts name catalogs and the phone calling code, e.g. "SE".  Empty means any origin.
	Origin string `json:"origin"`

	//PhoneLength is the number of digits of a phone number, excluding the calling code.
	PhoneLength int `json:"phone-length"`

	//CallingCode overrides the calling code derived from Origin.
	CallingCode string `json:"calling-code"`

	//WhereAttempts bounds catalog filtering pipelines.
	WhereAttempts int `json:"where-attempts"`

	//MailRounds bounds the digit suffix widening of unique mail addresses.
	MailRounds int `json:"mail-rounds"`

	//NamesFile optionally replaces the bundled name catalog with a JSON array of records.
	NamesFile string `json:"names-file"`
}

func NewConfig() *Config {
	return &Config{
		Seed:          1,
		PhoneLength:   9,
		WhereAttempts: gen.DefaultWhereAttempts,
		MailRounds:    1000,
	}
}

func (c *Config) LoadFile(fileName string) error {
	return files.ParseJSONFile(fileName, c)
}

func (c *Config) LoadEnv() (*Config, error) {
	return c.LoadEnvWithPrefix("")
}

func (c *Config) LoadEnvWithPrefix(prefix string) (*Config, error) {
	var err error
	if c.Seed, err = envInt64(prefix+"FAKEGEN_SEED", c.Seed); err != nil {
		return c, err
	}
	if c.PhoneLength, err = envInt(prefix+"FAKEGEN_PHONE_LENGTH", c.PhoneLength); err != nil {
		return c, err
	}
	if c.WhereAttempts, err = envInt(prefix+"FAKEGEN_WHERE_ATTEMPTS", c.WhereAttempts); err != nil {
		return c, err
	}
	if c.MailRounds, err = envInt(prefix+"FAKEGEN_MAIL_ROUNDS", c.MailRounds); err != nil {
		return c, err
	}
	c.Origin = pkg.EnvOrDefault(prefix+"FAKEGEN_ORIGIN", c.Origin)
	c.CallingCode = pkg.EnvOrDefault(prefix+"FAKEGEN_CALLING_CODE", c.CallingCode)
	c.NamesFile = pkg.EnvOrDefault(prefix+"FAKEGEN_NAMES_FILE", c.NamesFile)
	if domains := pkg.EnvOrDefault(prefix+"FAKEGEN_DOMAINS", ""); domains != "" {
		c.Domains = strings.Split(domains, ",")
	}
	return c, nil
}

type EnvError struct {
	Key   string
	Value string
	Cause error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment %s=%q: %s", e.Key, e.Value, e.Cause.Error())
}

func (e *EnvError) Unwrap() error {
	return e.Cause
}

func envInt64(key string, defaultValue int64) (int64, error) {
	raw := pkg.EnvOrDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue, &EnvError{Key: key, Value: raw, Cause: err}
	}
	return value, nil
}

func envInt(key string, defaultValue int) (int, error) {
	value, err := envInt64(key, int64(defaultValue))
	return int(value), err
}

// SessionFromConfig resolves catalogs and builds a session.
func (c *Config) SessionFromConfig() (*Session, error) {
	names := catalog.Names()
	if c.NamesFile != "" {
		var err error
		if names, err = catalog.LoadRecords(c.NamesFile); err != nil {
			return nil, err
		}
	}
	if c.Origin != "" {
		names = names.Where(catalog.Origin(c.Origin))
	}

	domains := catalog.Domains()
	if len(c.Domains) > 0 {
		domains = catalog.Of(c.Domains...)
	}

	callingCode := c.CallingCode
	if callingCode == "" && c.Origin != "" {
		code, err := catalog.CallingCode(c.Origin)
		if err != nil {
			return nil, &UnknownOriginError{Origin: c.Origin}
		}
		callingCode = code
	}

	return newSession(*c, names, domains, callingCode)
}

type UnknownOriginError struct {
	Origin string
}

func (u *UnknownOriginError) Error() string {
	return fmt.Sprintf("Unknown origin %q", u.Origin)
}

func (u *UnknownOriginError) Unwrap() error {
	return catalog.ErrUnknownOrigin
}
