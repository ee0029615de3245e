package bvfa

import (
	"fmt"
	"io"
)

var defaultConfig = config{
	dotName: "bvfa",
}

type config struct {
	traceLogger io.Writer
	dotName     string
}

// Option functions optionally alter how an Automaton operates.
type Option = func(*config)

// WithTraceLogs logs debugging information about constructions (intersection,
// determinization, and so on) to the provided writer. Disabled by default.
// Automata built into a receiver keep the receiver's trace logger.
func WithTraceLogs(out io.Writer) Option {
	return func(cfg *config) {
		cfg.traceLogger = out
	}
}

// WithDotName sets the graph name used by WriteDot. The default is "bvfa".
func WithDotName(name string) Option {
	return func(cfg *config) {
		cfg.dotName = name
	}
}

func (a *Automaton) logf(f string, v ...any) {
	if a.cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(a.cfg.traceLogger, f, v...)
}
