package source

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ReadDigits skips a run of ASCII digits starting at start and returns the position after it.
// first is the character at start, it must be a digit.
func (s *Source) ReadDigits(start int, first int) (int, error) {
	if !IsDigit(first) {
		return start, s.SyntaxError(start, ErrInvalidNumber,
			"Invalid number, expected digit but got: %s.", s.PrintCodePointAt(start))
	}

	pos := start + 1
	for IsDigit(s.ByteAt(pos)) {
		pos++
	}
	return pos, nil
}

// ReadEscapedCharacter decodes two-character escape sequence at pos.
// Returns decoded character and sequence size.
func (s *Source) ReadEscapedCharacter(pos int) (rune, int, error) {
	switch s.ByteAt(pos + 1) {
	case '"':
		return '"', 2, nil
	case '\\':
		return '\\', 2, nil
	case '/':
		return '/', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 't':
		return '\t', 2, nil
	}

	return 0, 0, s.SyntaxError(pos, ErrInvalidEscape,
		"Invalid character escape sequence: \"%s\".", s.Slice(pos, pos+2))
}

// ReadEscapedUnicodeFixedWidth decodes \uXXXX sequence at pos.
// A leading surrogate must be followed by \uXXXX trailing surrogate,
// the pair is decoded as a single character of size 12.
func (s *Source) ReadEscapedUnicodeFixedWidth(pos int) (rune, int, error) {
	code := s.read16BitHexCode(pos + 2)
	if IsScalarValue(code) {
		return rune(code), 6, nil
	}

	if IsLeadingSurrogate(code) && s.ByteAt(pos+6) == '\\' && s.ByteAt(pos+7) == 'u' {
		trailing := s.read16BitHexCode(pos + 8)
		if IsTrailingSurrogate(trailing) {
			return utf16.DecodeRune(rune(code), rune(trailing)), 12, nil
		}
	}

	return 0, 0, s.SyntaxError(pos, ErrInvalidUnicodeEscape,
		"Invalid Unicode escape sequence: \"%s\".", s.Slice(pos, pos+6))
}

// max size of \u{...} sequence is 12 bytes: \u{ + 8 hex digits + }
const maxVariableEscapeSize = 12

// ReadEscapedUnicodeVariableWidth decodes \u{...} sequence at pos.
// At least 2 hex digits are required.
func (s *Source) ReadEscapedUnicodeVariableWidth(pos int) (rune, int, error) {
	point := 0
	size := 3
	for size < maxVariableEscapeSize {
		c := s.ByteAt(pos + size)
		size++
		if c == '}' {
			if size < 6 || !IsScalarValue(point) {
				break
			}
			return rune(point), size, nil
		}

		d := readHexDigit(c)
		if d < 0 {
			break
		}
		point = point*16 + d
	}

	return 0, 0, s.SyntaxError(pos, ErrInvalidUnicodeEscape,
		"Invalid Unicode escape sequence: \"%s\".", s.Slice(pos, pos+size))
}

// PrintCodePointAt renders the character at pos for error messages.
func (s *Source) PrintCodePointAt(pos int) string {
	r, size := s.At(pos)
	switch {
	case r == EOF:
		return EOFMarker
	case IsInvalid(r, size):
		return fmt.Sprintf("U+%04X", utf8.RuneError)
	case r == '"':
		return `'"'`
	case r >= 0x20 && r <= 0x7e:
		return `"` + string(r) + `"`
	}

	return fmt.Sprintf("U+%04X", r)
}
