package xonshlex

// scanBraceEscape implements the interpolation brace-escape rule (spec
// §4.2, "Brace escape inside interpolated string"): at the top of a fresh
// invocation, a doubled `{{` or `}}` inside a format string is consumed and
// reported as ESCAPE_INTERPOLATION. An unmatched single brace is left alone
// (false, no commit) so the grammar can open or close an interpolation hole.
//
// The caller must have already established that the top delimiter is a
// format string and the lookahead is `{` or `}` before calling this; it
// always advances at least once, which the returned advanced flag reports.
// On an unmatched result Scan yields no token rather than going on to
// string content.
func scanBraceEscape(io LexerIO) (tt TokenType, matched, advanced bool) {
	la := io.Lookahead()
	isLeftBrace := la == '{'
	io.Advance()
	if (io.Lookahead() == '{' && isLeftBrace) || (io.Lookahead() == '}' && !isLeftBrace) {
		io.Advance()
		io.MarkEnd()
		return ESCAPE_INTERPOLATION, true, true
	}
	return 0, false, true
}

// scanStringContent implements the String engine's content phase (spec
// §4.2, "String content"). hadLeadingAdvance records whether one character
// was already peeked this invocation before content scanning began, which
// counts toward has_content the same way the C scanner's advanced_once
// does. Scan always passes false, since it yields after an unmatched brace.
func scanStringContent(io LexerIO, st *State, hadLeadingAdvance bool) (TokenType, bool) {
	delim, ok := st.topDelimiter()
	if !ok {
		return 0, false
	}
	endChar := delim.EndCharacter()
	hasContent := hadLeadingAdvance

	for !io.IsEOF() {
		la := io.Lookahead()

		if (hadLeadingAdvance || la == '{' || la == '}') && delim.IsFormat() {
			io.MarkEnd()
			return STRING_CONTENT, hasContent
		}

		if la == '\\' {
			switch {
			case delim.IsRaw():
				io.Advance()
				if io.Lookahead() == endChar || io.Lookahead() == '\\' {
					io.Advance()
				}
				if io.Lookahead() == '\r' {
					io.Advance()
					if io.Lookahead() == '\n' {
						io.Advance()
					}
				} else if io.Lookahead() == '\n' {
					io.Advance()
				}
				hadLeadingAdvance = false
				continue
			case delim.IsBytes():
				io.MarkEnd()
				io.Advance()
				if io.Lookahead() == 'N' || io.Lookahead() == 'u' || io.Lookahead() == 'U' {
					// \N{...}, \uXXXX, \UXXXXXXXX are not escapes inside a
					// bytes literal, but the original scanner does not
					// special-case what follows either: it falls straight
					// through to the loop's unconditional tail below, which
					// blindly consumes one more character as content —
					// including the delimiter's own end character or a
					// newline, if that's what comes next.
					io.Advance()
					hadLeadingAdvance = false
					break
				}
				return STRING_CONTENT, hasContent
			default:
				io.MarkEnd()
				return STRING_CONTENT, hasContent
			}
		} else if la == endChar {
			if delim.IsTriple() {
				io.MarkEnd()
				io.Advance()
				if io.Lookahead() == endChar {
					io.Advance()
					if io.Lookahead() == endChar {
						if hasContent {
							// Content ends before the closing quotes; the
							// boundary was marked at the first of them.
							return STRING_CONTENT, true
						}
						io.Advance()
						io.MarkEnd()
						st.popDelimiter()
						return STRING_END, true
					}
					io.MarkEnd()
					return STRING_CONTENT, true
				}
				io.MarkEnd()
				return STRING_CONTENT, true
			}
			if hasContent {
				io.MarkEnd()
				return STRING_CONTENT, true
			}
			io.Advance()
			io.MarkEnd()
			st.popDelimiter()
			return STRING_END, true
		} else if la == '\n' && hasContent && !delim.IsTriple() {
			// Unterminated non-triple string at newline: yield, let the
			// grammar surface the syntax error (spec §7).
			return 0, false
		}

		io.Advance()
		hasContent = true
		hadLeadingAdvance = false
	}

	return 0, false
}

// scanStringStartFlags consumes a run of prefix characters ({f,F,r,R,b,B,u,U})
// followed by a quote, building the Delimiter as it goes. It is shared by
// the generic string-start dispatch step and by the line-class predictor's
// already-detected-prefix path (predict.go), which pre-fills the flags from
// the identifier it already scanned and calls in here only to consume the
// quote run.
func scanStringStartFlags(io LexerIO, consumePrefix bool) (Delimiter, bool) {
	delim := newDelimiter()

	if consumePrefix {
		for {
			la := io.Lookahead()
			switch {
			case la == 'f' || la == 'F':
				delim = delim.setFormat()
			case la == 'r' || la == 'R':
				delim = delim.setRaw()
			case la == 'b' || la == 'B':
				delim = delim.setBytes()
			case la == 'u' || la == 'U':
				// no flag
			default:
				goto quote
			}
			io.Advance()
		}
	}
quote:

	switch io.Lookahead() {
	case '`':
		// All backtick forms belong to the grammar (regex/glob literals);
		// the scanner never emits STRING_START for them.
		return delim, false
	case '\'':
		delim = delim.setEndCharacter('\'')
		io.Advance()
		io.MarkEnd()
		if io.Lookahead() == '\'' {
			io.Advance()
			if io.Lookahead() == '\'' {
				io.Advance()
				io.MarkEnd()
				delim = delim.setTriple()
			}
		}
	case '"':
		delim = delim.setEndCharacter('"')
		io.Advance()
		io.MarkEnd()
		if io.Lookahead() == '"' {
			io.Advance()
			if io.Lookahead() == '"' {
				io.Advance()
				io.MarkEnd()
				delim = delim.setTriple()
			}
		}
	default:
		return delim, false
	}

	if delim.EndCharacter() == 0 {
		return delim, false
	}
	return delim, true
}
