package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/meschbach/fakegen/internal/emit"
	"github.com/meschbach/fakegen/pkg/builders"
	"github.com/meschbach/fakegen/pkg/catalog"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/junk/faking"
	"github.com/meschbach/fakegen/pkg/session"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// fakerCatalogSize is how many faker values back each --faker catalog.
const fakerCatalogSize = 64

func mailCommand(a *app) *cobra.Command {
	var distinct, useFaker bool
	var origin string
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Generates mail addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			if origin != "" {
				cfg.Origin = origin
			}
			sess, err := cfg.SessionFromConfig()
			if err != nil {
				return err
			}
			var rows gen.Generator[string]
			if useFaker {
				rows, err = fakerMails(sess, distinct)
			} else {
				rows, err = sess.Mails(distinct)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, "mail", rows)
		},
	}
	cmd.Flags().BoolVarP(&distinct, "unique", "u", false, "Never repeat an address")
	cmd.Flags().StringVar(&origin, "origin", "", "Restrict names to an origin, e.g. SE")
	cmd.Flags().BoolVar(&useFaker, "faker", false, "Draw names and domains from faker catalogs seeded by --seed")
	return cmd
}

// fakerMails builds catalogs from faker, seeded like the session, and draws from them with the session source.
func fakerMails(sess *session.Session, distinct bool) (gen.Generator[string], error) {
	faking.Seed(sess.Config().Seed)
	names, err := builders.NamePairs(sess.Source(), faking.FirstNames(fakerCatalogSize), faking.LastNames(fakerCatalogSize))
	if err != nil {
		return nil, err
	}
	mail, err := builders.NewMail(sess.Source(), faking.Domains(fakerCatalogSize/8).Items(), builders.WithMailRounds(sess.Config().MailRounds))
	if err != nil {
		return nil, err
	}
	return mail.Generator(names, distinct), nil
}

func phoneCommand(a *app) *cobra.Command {
	var distinct bool
	var length int
	var callingCode string
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Generates phone numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("length") {
				cfg.PhoneLength = length
			}
			if callingCode != "" {
				cfg.CallingCode = callingCode
			}
			sess, err := cfg.SessionFromConfig()
			if err != nil {
				return err
			}
			phone, err := sess.Phone()
			if err != nil {
				return err
			}
			return a.emit(cmd, "phone", phone.Generator(distinct))
		},
	}
	cmd.Flags().BoolVarP(&distinct, "unique", "u", false, "Never repeat a number")
	cmd.Flags().IntVarP(&length, "length", "l", 9, "Digits excluding the calling code")
	cmd.Flags().StringVar(&callingCode, "calling-code", "", "Calling code prefix, e.g. 46")
	return cmd
}

func ssnCommand(a *app) *cobra.Command {
	var distinct bool
	var from, to string
	cmd := &cobra.Command{
		Use:   "ssn",
		Short: "Generates security numbers for birth dates in [from,to)",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseBirthRange(from, to)
			if err != nil {
				return err
			}
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			sess, err := cfg.SessionFromConfig()
			if err != nil {
				return err
			}
			rows, err := sess.SecurityNumbersBetween(start, end, distinct)
			if err != nil {
				return err
			}
			return a.emit(cmd, "ssn", rows)
		},
	}
	cmd.Flags().BoolVarP(&distinct, "unique", "u", false, "Never repeat a number")
	cmd.Flags().StringVar(&from, "from", "1950-01-01", "Earliest birth date")
	cmd.Flags().StringVar(&to, "to", "2005-12-31", "Birth dates stop before this date")
	return cmd
}

func parseBirthRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	return start, end, nil
}

func uuidCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Generates version 4 UUIDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			sess, err := cfg.SessionFromConfig()
			if err != nil {
				return err
			}
			return a.emit(cmd, "uuid", sess.UUIDs())
		},
	}
}

func namesCommand(a *app) *cobra.Command {
	var origin, kind, prefix string
	var usernames, distinct, useFaker bool
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Draws names from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			if origin != "" {
				cfg.Origin = origin
			}
			sess, err := cfg.SessionFromConfig()
			if err != nil {
				return err
			}
			var rows gen.Generator[string]
			if useFaker {
				rows, err = fakerWords(sess, prefix)
			} else {
				rows, err = namesPipeline(sess, kind, prefix)
			}
			if err != nil {
				return err
			}
			if usernames {
				u, err := sess.Usernames()
				if err != nil {
					return err
				}
				rows = u.Generator(rows, distinct)
			}
			return a.emit(cmd, "names", rows)
		},
	}
	cmd.Flags().StringVar(&origin, "origin", "", "Restrict names to an origin, e.g. SE")
	cmd.Flags().StringVar(&kind, "type", "", "Restrict names to female, male or last")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Keep names starting with this prefix")
	cmd.Flags().BoolVar(&usernames, "usernames", false, "Render names as usernames")
	cmd.Flags().BoolVarP(&distinct, "unique", "u", false, "Never repeat a username")
	cmd.Flags().BoolVar(&useFaker, "faker", false, "Draw from a faker word catalog seeded by --seed instead of names")
	return cmd
}

// fakerWords draws from a seeded faker word catalog.  Origin and type do not apply to words.
func fakerWords(sess *session.Session, prefix string) (gen.Generator[string], error) {
	faking.Seed(sess.Config().Seed)
	words, err := builders.Choose(sess.Source(), faking.Words(fakerCatalogSize))
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		words = gen.Where(words, catalog.StartsWith(prefix), sess.Config().WhereAttempts)
	}
	return words, nil
}

func namesPipeline(sess *session.Session, kind, prefix string) (gen.Generator[string], error) {
	var predicates []catalog.Predicate[catalog.Record]
	if kind != "" {
		predicates = append(predicates, catalog.Kind(kind))
	}
	names, err := sess.Names(predicates...)
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		names = gen.Where(names, catalog.StartsWith(prefix), sess.Config().WhereAttempts)
	}
	return names, nil
}

func batchCommand(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Writes mail, phone, ssn and uuid fixtures concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), *cfg, dir, a.count, a.logger)
		},
	}
	cmd.Flags().StringVarP(&dir, "out", "o", "fixtures", "Directory receiving the fixture files")
	return cmd
}

// batchJobs gives every file its own session seeded seed+i; sessions are never shared between goroutines.
func batchJobs(base session.Config) []emit.Job {
	birthsFrom := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	birthsTo := time.Date(2006, time.January, 1, 0, 0, 0, 0, time.UTC)
	builds := []struct {
		name  string
		build func(*session.Session) (gen.Generator[string], error)
	}{
		{"mail", func(s *session.Session) (gen.Generator[string], error) { return s.Mails(true) }},
		{"phone", func(s *session.Session) (gen.Generator[string], error) {
			p, err := s.Phone()
			if err != nil {
				return nil, err
			}
			return p.Generator(true), nil
		}},
		{"ssn", func(s *session.Session) (gen.Generator[string], error) {
			return s.SecurityNumbersBetween(birthsFrom, birthsTo, true)
		}},
		{"uuid", func(s *session.Session) (gen.Generator[string], error) { return s.UUIDs(), nil }},
	}

	jobs := make([]emit.Job, 0, len(builds))
	for i, b := range builds {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		jobs = append(jobs, emit.Job{
			Name: b.name,
			Build: func() (gen.Generator[string], error) {
				sess, err := cfg.SessionFromConfig()
				if err != nil {
					return nil, err
				}
				return b.build(sess)
			},
		})
	}
	return jobs
}

func runBatch(ctx context.Context, cfg session.Config, dir string, count int, logger emit.Logger) error {
	if err := emit.Batch(ctx, dir, count, batchJobs(cfg), logger); err != nil {
		return err
	}
	logger.Printf("fixtures written to %s\n", filepath.Clean(dir))
	return nil
}
