package reader

// scanner walks a byte buffer. It never reads past len(src).
type scanner struct {
	src []byte
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

// skipLayout skips whitespace and ; comments running to end of line.
func (s *scanner) skipLayout() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case isSpace(c):
			s.pos++
		case c == ';':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

// lineIndent reports whether pos is the first non-blank byte of its line and,
// if so, its column counted in bytes.
func (s *scanner) lineIndent(pos int) (int, bool) {
	i := pos
	for i > 0 && (s.src[i-1] == ' ' || s.src[i-1] == '\t' || s.src[i-1] == '\r') {
		i--
	}
	if i > 0 && s.src[i-1] != '\n' {
		return 0, false
	}
	return pos - i, true
}

// scanAtom consumes a maximal run of atom characters and returns it.
func (s *scanner) scanAtom() []byte {
	start := s.pos
	for s.pos < len(s.src) && !isDelimiter(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isDelimiter reports whether c ends an atom.
func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', ';', '"':
		return true
	}
	return isSpace(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
