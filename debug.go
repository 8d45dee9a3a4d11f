package xonshlex

import "github.com/sirupsen/logrus"

// Diagnostics is opt-in, read-only instrumentation (SPEC_FULL §4A.2): when a
// Scanner has a logger attached, indent/dedent transitions and line-class
// predictor verdicts are reported at Debug level. Nothing here affects
// control flow — unset the logger and the scanner behaves identically.

func (s *Scanner) logIndent(phase string, tt TokenType) {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"phase": phase,
		"token": tt.String(),
	}).Debug("xonshlex: token emitted")
}

func (s *Scanner) logPredict(tt TokenType) {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"token": tt.String(),
	}).Debug("xonshlex: line-class predictor verdict")
}

func (s *Scanner) logDebug(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("xonshlex: " + msg)
}
