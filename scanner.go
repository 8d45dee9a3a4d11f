package xonshlex

import (
	"github.com/sirupsen/logrus"
)

// Scanner is the external lexical scanner: one instance owned by exactly
// one parse session (spec §5), driven by repeated calls to Scan.
type Scanner struct {
	state *State

	keywords dictionarySet
	shellCmd dictionarySet

	extraKeywords      []string
	extraShellCommands []string

	logger *logrus.Logger
}

// NewScanner builds a Scanner with its dictionaries frozen from the
// built-in sets plus any overlay options, and a fresh State unless
// WithState supplied one.
func NewScanner(opts ...Option) (*Scanner, error) {
	s := &Scanner{}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.state == nil {
		s.state = NewState()
	}
	s.keywords = newDictionarySet(reservedKeywords, s.extraKeywords)
	s.shellCmd = newDictionarySet(shellCommands, s.extraShellCommands)
	return s, nil
}

// Serialize exposes the underlying State's byte encoding (spec §6).
func (s *Scanner) Serialize() []byte { return s.state.Serialize() }

// Deserialize restores the underlying State from a previously serialized
// buffer, as the host does on resumption or error recovery (spec §3).
func (s *Scanner) Deserialize(buf []byte) { s.state = Deserialize(buf) }

// InsideString reports whether a string literal is currently open. A host
// that has no grammar of its own (cmd/xonshlexdump) uses this to decide
// whether STRING_CONTENT or the line-start symbols belong in the next Scan
// call's valid set.
func (s *Scanner) InsideString() bool { return len(s.state.Delimiters) > 0 }

// TopDelimiter returns the innermost open string delimiter, if any.
func (s *Scanner) TopDelimiter() (Delimiter, bool) { return s.state.topDelimiter() }

// Scan is the top-level dispatcher (spec §4.5). Given the grammar-valid set
// for this position, it runs the engines in priority order and emits at
// most one token. The caller must have already positioned io's lookahead at
// the byte following the previously emitted token (the LexerIO contract).
func (s *Scanner) Scan(io LexerIO, valid ValidSymbols) (TokenType, bool) {
	errorRecovery := valid.Valid(STRING_CONTENT) && valid.Valid(INDENT)
	withinBrackets := valid.Any(CLOSE_BRACE, CLOSE_PAREN, CLOSE_BRACKET)

	if valid.Valid(ESCAPE_INTERPOLATION) && len(s.state.Delimiters) > 0 && !errorRecovery {
		la := io.Lookahead()
		if top, ok := s.state.topDelimiter(); ok && top.IsFormat() && (la == '{' || la == '}') {
			tt, matched, _ := scanBraceEscape(io)
			if matched {
				s.logIndent("escape-interpolation", tt)
				return tt, true
			}
			// An unmatched single brace yields no token, leaving the grammar
			// to open or close an interpolation hole.
			return 0, false
		}
	}

	if valid.Valid(STRING_CONTENT) && len(s.state.Delimiters) > 0 && !errorRecovery {
		if tt, ok := scanStringContent(io, s.state, false); ok {
			s.logDebug("string-content emitted")
			return tt, true
		}
	}

	if tt, ok, firstCommentIndent := scanIndentNewline(io, valid, s.state, errorRecovery, withinBrackets); ok {
		s.logIndent("indent-newline", tt)
		return tt, ok
	} else if firstCommentIndent != -1 {
		// A comment line (one following an end-of-line) was consumed this
		// invocation; nothing past this point may run (matches the host
		// scanner's check_subprocess / PATH_PREFIX / STRING_START guards,
		// which all require first_comment_indent_length == -1).
		return 0, false
	}

	if tt, ok := scanOperator(io, valid); ok {
		return tt, true
	}

	if tt, ok := scanKeywordOperator(io, valid); ok {
		return tt, true
	}

	looksLikeString := io.Lookahead() == '"' || io.Lookahead() == '\''
	checkSubprocess := valid.Any(SUBPROCESS_START, SUBPROCESS_MACRO_START, BLOCK_MACRO_START, PATH_PREFIX) &&
		!withinBrackets && !errorRecovery && io.Lookahead() != '#' && !looksLikeString

	if checkSubprocess {
		if tt, ok := runLineClassPredictor(io, valid, s.state, s.keywords, s.shellCmd); ok {
			s.logPredict(tt)
			return tt, true
		}
	}

	if tt, ok := runPathPrefixDirect(io, valid); ok {
		return tt, true
	}

	if valid.Valid(STRING_START) {
		if delim, ok := scanStringStartFlags(io, true); ok {
			s.state.pushDelimiter(delim)
			return STRING_START, true
		}
	}

	return 0, false
}
