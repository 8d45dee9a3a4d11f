// errors.go: caret-snippet rendering for the debug command.
//
// The scanner core itself never returns an error (spec §7: it communicates
// purely by emitting a token, emitting nothing, or emitting a token whose
// grammar reduction will fail). This file exists for cmd/xonshlexdump, which
// drives the scanner stand-alone with no grammar behind it and therefore has
// to surface the one condition a real grammar would otherwise diagnose:
// reaching end-of-input with a string (triple-quoted or not) still open.
package xonshlex

import (
	"fmt"
	"strings"

	"github.com/gravitational/trace"
)

// UnterminatedStringError reports a string delimiter that was still open
// when the debug command ran out of input to feed the scanner.
type UnterminatedStringError struct {
	Line, Col int
	Delim     Delimiter
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string literal at %d:%d", e.Line, e.Col)
}

// WrapWithSource renders err as a caret-annotated snippet of src, in the
// same labeled form as the teacher's pretty-printer, if err is a
// *UnterminatedStringError. Any other error is wrapped with trace so the
// command line still reports a stack-aware error, but without a snippet.
func WrapWithSource(err error, srcName, src string) error {
	if e, ok := err.(*UnterminatedStringError); ok {
		return trace.Wrap(fmt.Errorf("%s", prettyErrorStringLabeled(src, "UNTERMINATED STRING", srcName, e.Line, e.Col, e.Error())))
	}
	return trace.Wrap(err)
}

// prettyErrorStringLabeled builds a Python-like snippet with a header and a
// caret, showing at most one previous and one next line. Coordinates are
// 1-based; line is clamped to the source bounds, col only to a minimum of 1.
func prettyErrorStringLabeled(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
