package main

import (
	"io"
	"os"

	"github.com/meschbach/fakegen/internal/emit"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/meschbach/fakegen/pkg/session"
	"github.com/spf13/cobra"
)

// app carries the root flags shared by every subcommand.
type app struct {
	seed       int64
	configFile string
	quiet      bool
	progress   bool
	count      int
	out        io.Writer
	logger     *statusLogger
}

// config layers defaults, the optional config file, the environment and finally explicit flags.
func (a *app) config(cmd *cobra.Command) (*session.Config, error) {
	cfg := session.NewConfig()
	if a.configFile != "" {
		if err := cfg.LoadFile(a.configFile); err != nil {
			return nil, err
		}
	}
	if _, err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}
	return cfg, nil
}

func (a *app) emit(cmd *cobra.Command, name string, rows gen.Generator[string]) error {
	opts := emit.Options{Name: name, Count: a.count, Logger: a.logger}
	if a.progress && !a.quiet {
		opts.Progress = os.Stderr
	}
	_, err := emit.Rows(cmd.Context(), a.out, rows, opts)
	return err
}
