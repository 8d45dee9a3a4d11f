package xonshlex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Most tests start their input with the newline that would already be sitting
// at the lookahead position when a real host invokes the scanner between
// statements — scanIndentNewline decides INDENT/DEDENT/NEWLINE from a single
// pass that begins by consuming that newline and any leading whitespace of
// the following line.

func TestScanIndentNewline_EmitsIndent(t *testing.T) {
	lx := NewRuneLexer("\n    pass\n")
	lx.BeginToken()
	st := NewState()
	valid := ValidSymbols(0).With(INDENT, NEWLINE)

	tt, ok, firstCommentIndent := scanIndentNewline(lx, valid, st, false, false)
	require.True(t, ok)
	require.Equal(t, INDENT, tt)
	require.Equal(t, -1, firstCommentIndent)
	require.Equal(t, uint16(4), st.currentIndent())
}

func TestScanIndentNewline_EmitsDedent(t *testing.T) {
	lx := NewRuneLexer("\npass\n")
	lx.BeginToken()
	st := NewState()
	st.pushIndent(4)
	valid := ValidSymbols(0).With(DEDENT, NEWLINE)

	tt, ok, _ := scanIndentNewline(lx, valid, st, false, false)
	require.True(t, ok)
	require.Equal(t, DEDENT, tt)
	require.Equal(t, uint16(0), st.currentIndent())
}

func TestScanIndentNewline_EmitsNewline(t *testing.T) {
	lx := NewRuneLexer("\npass\n")
	lx.BeginToken()
	st := NewState()
	valid := ValidSymbols(0).With(NEWLINE)

	tt, ok, _ := scanIndentNewline(lx, valid, st, false, false)
	require.True(t, ok)
	require.Equal(t, NEWLINE, tt)
}

func TestScanIndentNewline_TrailingCommentYieldsNothing(t *testing.T) {
	// Invoked right after "x = 1", at the space preceding the comment: no
	// end-of-line has been seen yet this invocation, so the '#' is a
	// trailing comment on the current expression and the engine yields.
	lx := NewRuneLexer(" # trailing\n")
	lx.BeginToken()
	st := NewState()
	valid := ValidSymbols(0).With(NEWLINE, DEDENT)

	_, ok, _ := scanIndentNewline(lx, valid, st, false, false)
	require.False(t, ok)
}

func TestScanIndentNewline_LineContinuationYieldsNoTokenAndConsumesNewline(t *testing.T) {
	lx := NewRuneLexer("\\\nrest")
	lx.BeginToken()
	st := NewState()
	valid := ValidSymbols(0).With(NEWLINE)

	_, ok, _ := scanIndentNewline(lx, valid, st, false, false)
	require.False(t, ok)
	require.Equal(t, 'r', lx.Lookahead())
}

func TestScanIndentNewline_ErrorRecoverySuppressesEmission(t *testing.T) {
	lx := NewRuneLexer("\npass\n")
	lx.BeginToken()
	st := NewState()
	valid := ValidSymbols(0).With(NEWLINE, STRING_CONTENT, INDENT)

	_, ok, _ := scanIndentNewline(lx, valid, st, true, false)
	require.False(t, ok)
}

func TestScanIndentNewline_InsideInterpolatedSuppressesDedent(t *testing.T) {
	lx := NewRuneLexer("\npass\n")
	lx.BeginToken()
	st := NewState()
	st.pushIndent(4)
	st.InsideInterpolated = true
	valid := ValidSymbols(0).With(DEDENT, NEWLINE)

	tt, ok, _ := scanIndentNewline(lx, valid, st, false, false)
	require.True(t, ok)
	require.Equal(t, NEWLINE, tt)
	require.Equal(t, uint16(4), st.currentIndent())
}

func TestScanIndentNewline_CommentAtBlockLevelDelaysDedent(t *testing.T) {
	// A comment indented to match the still-open block must be fully
	// consumed before a dedent fires: the same-indentation comment here
	// suppresses the dedent this invocation in favor of NEWLINE, leaving
	// the block still open for a later invocation to close.
	lx := NewRuneLexer("\n    # still inside\npass\n")
	lx.BeginToken()
	st := NewState()
	st.pushIndent(4)
	valid := ValidSymbols(0).With(DEDENT, NEWLINE)

	tt, ok, _ := scanIndentNewline(lx, valid, st, false, false)
	require.True(t, ok)
	require.Equal(t, NEWLINE, tt)
	require.Equal(t, uint16(4), st.currentIndent())
}
