package main

import (
	"fmt"
	"os"
)

type statusLogger struct {
	quiet bool
}

func (s *statusLogger) Printf(format string, v ...interface{}) {
	if s.quiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}

func (s *statusLogger) Verbose() bool {
	return !s.quiet
}
