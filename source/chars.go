package source

// Character classes. All of them accept EOF and return false for it.

func IsDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func IsLetter(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsNameStart(c int) bool {
	return IsLetter(c) || c == '_'
}

func IsNameContinue(c int) bool {
	return IsLetter(c) || IsDigit(c) || c == '_'
}

// IsScalarValue reports whether c is a Unicode code point outside of the surrogate range.
func IsScalarValue(c int) bool {
	return (c >= 0 && c <= 0xd7ff) || (c >= 0xe000 && c <= 0x10ffff)
}

func IsLeadingSurrogate(c int) bool {
	return c >= 0xd800 && c <= 0xdbff
}

func IsTrailingSurrogate(c int) bool {
	return c >= 0xdc00 && c <= 0xdfff
}

func readHexDigit(c int) int {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return -1
	}
}

// read16BitHexCode returns the value of 4 hex digits at pos or -1.
func (s *Source) read16BitHexCode(pos int) int {
	result := 0
	for i := 0; i < 4; i++ {
		d := readHexDigit(s.ByteAt(pos + i))
		if d < 0 {
			return -1
		}
		result = result<<4 | d
	}
	return result
}
