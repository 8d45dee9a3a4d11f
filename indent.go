package xonshlex

// scanIndentNewline implements the Indent/Newline engine (spec §4.1). It
// consumes a run of vertical and horizontal whitespace, line continuations,
// and possibly a trailing comment, then decides among INDENT, DEDENT, and
// NEWLINE depending on the accumulated indent width and the grammar-valid
// set. It is only reached once the interpolation/string-content phases have
// both declined to run (see Scan's dispatch order).
//
// firstCommentIndent is returned alongside the token decision because later
// dispatcher steps (line-class prediction, path-prefix, string-start) must
// not run at all once a comment line (one following an end-of-line) has been
// consumed this invocation, even when this engine itself produced no token.
func scanIndentNewline(io LexerIO, valid ValidSymbols, st *State, errorRecovery, withinBrackets bool) (tt TokenType, ok bool, firstCommentIndent int) {
	// Discard whatever the interpolation/string-content phases peeked
	// without committing; everything from here on is tracked via Skip,
	// which commits immediately regardless of this invocation's outcome.
	io.MarkEnd()

	foundEOL := false
	var indentLength uint16
	firstCommentIndent = -1

	for {
		switch {
		case io.Lookahead() == '\n':
			foundEOL = true
			indentLength = 0
			io.Skip()
		case io.Lookahead() == ' ':
			indentLength++
			io.Skip()
		case io.Lookahead() == '\r' || io.Lookahead() == '\f':
			indentLength = 0
			io.Skip()
		case io.Lookahead() == '\t':
			indentLength += 8
			io.Skip()
		case io.Lookahead() == '#' && valid.Any(INDENT, DEDENT, NEWLINE, EXCEPT):
			// A comment seen before any end-of-line is a trailing comment on
			// the current expression; yield without emitting indent/dedent.
			if !foundEOL {
				return 0, false, firstCommentIndent
			}
			if firstCommentIndent == -1 {
				firstCommentIndent = int(indentLength)
			}
			for io.Lookahead() != 0 && io.Lookahead() != '\n' {
				io.Skip()
			}
			io.Skip()
			indentLength = 0
		case io.Lookahead() == '\\':
			io.Skip()
			if io.Lookahead() == '\r' {
				io.Skip()
			}
			if io.Lookahead() == '\n' || io.IsEOF() {
				io.Skip()
			} else {
				return 0, false, firstCommentIndent
			}
		case io.IsEOF():
			indentLength = 0
			foundEOL = true
			goto done
		default:
			goto done
		}
	}
done:

	if foundEOL {
		if len(st.Indents) > 0 {
			current := st.currentIndent()

			if valid.Valid(INDENT) && indentLength > current {
				st.pushIndent(indentLength)
				return INDENT, true, firstCommentIndent
			}

			la := io.Lookahead()
			nextIsStringStart := la == '"' || la == '\'' || la == '`'

			dedentAllowed := valid.Valid(DEDENT) ||
				(!valid.Valid(NEWLINE) && !(valid.Valid(STRING_START) && nextIsStringStart) && !withinBrackets)

			if dedentAllowed && indentLength < current && !st.InsideInterpolated &&
				firstCommentIndent < int(current) {
				st.popIndent()
				return DEDENT, true, firstCommentIndent
			}
		}

		if valid.Valid(NEWLINE) && !errorRecovery {
			return NEWLINE, true, firstCommentIndent
		}
	}

	return 0, false, firstCommentIndent
}
