package xonshlex

// State is the scanner's persisted, per-parse-session state: the indent
// stack, the active string delimiter stack, and whether the top of that
// stack is an interpolated (format) string. It is created once per parse
// session, serialized at checkpoints, and restored on resumption or error
// recovery (spec's lifecycle for the scanner's state).
type State struct {
	// Indents is the non-empty stack of column widths currently open, bottom
	// element always 0, monotone non-decreasing bottom-to-top.
	Indents []uint16
	// Delimiters is the stack of active string delimiters; depth > 1 only
	// arises when an interpolated string's expression hole itself opens a
	// nested string.
	Delimiters []Delimiter
	// InsideInterpolated mirrors the format flag of the top of Delimiters;
	// consulted by the dedent rule to suppress block termination inside a
	// multi-line f-string.
	InsideInterpolated bool
}

// NewState returns a fresh state with the indent stack seeded with its
// mandatory 0 bottom element and no active delimiters.
func NewState() *State {
	return &State{Indents: []uint16{0}}
}

func (s *State) currentIndent() uint16 {
	return s.Indents[len(s.Indents)-1]
}

func (s *State) pushIndent(width uint16) {
	s.Indents = append(s.Indents, width)
}

func (s *State) popIndent() {
	if len(s.Indents) > 1 {
		s.Indents = s.Indents[:len(s.Indents)-1]
	}
}

func (s *State) topDelimiter() (Delimiter, bool) {
	if len(s.Delimiters) == 0 {
		return 0, false
	}
	return s.Delimiters[len(s.Delimiters)-1], true
}

func (s *State) pushDelimiter(d Delimiter) {
	s.Delimiters = append(s.Delimiters, d)
	s.InsideInterpolated = d.IsFormat()
}

// popDelimiter pops exactly one delimiter and recomputes InsideInterpolated
// from the new top, per the "successful STRING_END" invariant.
func (s *State) popDelimiter() {
	if len(s.Delimiters) == 0 {
		return
	}
	s.Delimiters = s.Delimiters[:len(s.Delimiters)-1]
	if top, ok := s.topDelimiter(); ok {
		s.InsideInterpolated = top.IsFormat()
	} else {
		s.InsideInterpolated = false
	}
}

// Serialize encodes the state into the compact byte buffer format: byte 0 is
// the inside-interpolated flag, byte 1 is the saturated delimiter count,
// the next delimiter-count bytes are the delimiter flag bytes bottom-to-top,
// and the remaining bytes are the indent stack (skipping the implicit 0
// bottom), each clamped to a single byte.
func (s *State) Serialize() []byte {
	buf := make([]byte, 0, 2+len(s.Delimiters)+len(s.Indents)-1)

	if s.InsideInterpolated {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	delimiterCount := len(s.Delimiters)
	if delimiterCount > 255 {
		delimiterCount = 255
	}
	buf = append(buf, byte(delimiterCount))
	for i := 0; i < delimiterCount; i++ {
		buf = append(buf, byte(s.Delimiters[i]))
	}

	for i := 1; i < len(s.Indents); i++ {
		width := s.Indents[i]
		if width > 255 {
			width = 255
		}
		buf = append(buf, byte(width))
	}

	return buf
}

// Deserialize restores the state from a buffer previously produced by
// Serialize. An empty buffer yields a fresh state (0 bottom, no delimiters,
// not inside an interpolated string) — the same thing NewState produces.
func Deserialize(buf []byte) *State {
	s := &State{Indents: []uint16{0}}
	if len(buf) == 0 {
		return s
	}

	pos := 0
	s.InsideInterpolated = buf[pos] != 0
	pos++

	delimiterCount := int(buf[pos])
	pos++

	if delimiterCount > 0 {
		s.Delimiters = make([]Delimiter, delimiterCount)
		for i := 0; i < delimiterCount && pos < len(buf); i++ {
			s.Delimiters[i] = Delimiter(buf[pos])
			pos++
		}
	}

	for ; pos < len(buf); pos++ {
		s.Indents = append(s.Indents, uint16(buf[pos]))
	}

	return s
}
