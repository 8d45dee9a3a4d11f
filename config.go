package xonshlex

import (
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

// Option configures a Scanner at construction time.
type Option func(*Scanner) error

// WithExtraShellCommands adds words to the shell-command dictionary (§6) on
// top of the fixed built-in set. Built-in entries are never removed.
func WithExtraShellCommands(words ...string) Option {
	return func(s *Scanner) error {
		for _, w := range words {
			if w == "" {
				return trace.BadParameter("xonshlex: empty shell command in dictionary overlay")
			}
		}
		s.extraShellCommands = append(s.extraShellCommands, words...)
		return nil
	}
}

// WithExtraKeywords adds words to the reserved-keyword dictionary (§6) on
// top of the fixed built-in set. Built-in entries are never removed.
func WithExtraKeywords(words ...string) Option {
	return func(s *Scanner) error {
		for _, w := range words {
			if w == "" {
				return trace.BadParameter("xonshlex: empty keyword in dictionary overlay")
			}
		}
		s.extraKeywords = append(s.extraKeywords, words...)
		return nil
	}
}

// WithLogger attaches a structured logger the Diagnostics component uses to
// report indent/dedent transitions and line-class predictor decisions. A nil
// logger (the default) disables all diagnostic output; this never affects
// token output, only observability.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Scanner) error {
		s.logger = logger
		return nil
	}
}

// WithState seeds the scanner with a previously deserialized state, for
// resuming a parse session (see state.go, Deserialize).
func WithState(state *State) Option {
	return func(s *Scanner) error {
		if state == nil {
			return trace.BadParameter("xonshlex: nil state passed to WithState")
		}
		s.state = state
		return nil
	}
}
