package xonshlex

// scanOperator implements the Operator Disambiguator (spec §4.3): `&`/`&&`
// and `|`/`||` disambiguation, run before the line-class predictor whenever
// any of LOGICAL_AND, LOGICAL_OR, BACKGROUND_AMP is grammar-valid.
func scanOperator(io LexerIO, valid ValidSymbols) (TokenType, bool) {
	if !valid.Any(LOGICAL_AND, LOGICAL_OR, BACKGROUND_AMP) {
		return 0, false
	}

	if io.Lookahead() == '&' {
		io.Advance()
		if io.Lookahead() == '&' {
			if valid.Valid(LOGICAL_AND) {
				io.Advance()
				io.MarkEnd()
				return LOGICAL_AND, true
			}
			// Leave && alone for Python's bitwise-and parse if LOGICAL_AND
			// isn't currently valid.
			return 0, false
		}
		if valid.Valid(BACKGROUND_AMP) {
			io.MarkEnd()
			return BACKGROUND_AMP, true
		}
		return 0, false
	}

	if io.Lookahead() == '|' && valid.Valid(LOGICAL_OR) {
		io.Advance()
		if io.Lookahead() == '|' {
			io.Advance()
			io.MarkEnd()
			return LOGICAL_OR, true
		}
		// A single | is never emitted here; the grammar owns it.
		return 0, false
	}

	return 0, false
}

// scanKeywordOperator implements the `and`/`or` keyword-operator matcher
// (spec §4.3): matched only when the grammar declares them valid (subprocess
// contexts), and only on a full word boundary.
func scanKeywordOperator(io LexerIO, valid ValidSymbols) (TokenType, bool) {
	if valid.Valid(KEYWORD_AND) && io.Lookahead() == 'a' {
		io.Advance()
		if io.Lookahead() == 'n' {
			io.Advance()
			if io.Lookahead() == 'd' {
				io.Advance()
				if !isIdentifierChar(io.Lookahead()) {
					io.MarkEnd()
					return KEYWORD_AND, true
				}
			}
		}
		return 0, false
	}

	if valid.Valid(KEYWORD_OR) && io.Lookahead() == 'o' {
		io.Advance()
		if io.Lookahead() == 'r' {
			io.Advance()
			if !isIdentifierChar(io.Lookahead()) {
				io.MarkEnd()
				return KEYWORD_OR, true
			}
		}
		return 0, false
	}

	return 0, false
}
