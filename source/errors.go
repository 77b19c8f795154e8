package source

import (
	"fmt"
	"unicode/utf8"

	"github.com/ava12/sdl"
)

// Error codes used by source and tokenizers:
const (
	// ErrInvalidNumber indicates malformed numeric literal.
	ErrInvalidNumber = sdl.LexicalErrors + iota
	// ErrInvalidEscape indicates unknown single character escape sequence.
	ErrInvalidEscape
	// ErrInvalidUnicodeEscape indicates malformed \uXXXX or \u{...} escape sequence.
	ErrInvalidUnicodeEscape
	// ErrUnterminatedString indicates a string literal not closed before line break or end of source.
	ErrUnterminatedString
	// ErrInvalidStringChar indicates malformed UTF-8 inside a string literal.
	ErrInvalidStringChar
)

const snippetRadius = 10

// Snippet returns up to 10 characters of source on each side of pos.
func (s *Source) Snippet(pos int) string {
	body := s.body
	pos = min(max(pos, 0), len(body))
	for pos > 0 && pos < len(body) && !utf8.RuneStart(body[pos]) {
		pos--
	}

	from, to := pos, pos
	for i := 0; i < snippetRadius && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(body[:from])
		from -= size
	}
	for i := 0; i < snippetRadius && to < len(body); i++ {
		_, size := utf8.DecodeRuneInString(body[to:])
		to += size
	}
	return body[from:to]
}

// SyntaxError creates an error pointing at pos.
// params will be added to message using fmt.Sprintf function.
func (s *Source) SyntaxError(pos, code int, msg string, params ...any) *sdl.Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	e := sdl.FormatErrorPos(NewPos(s, pos), code, "Syntax Error: %s", msg)
	e.Offset = pos
	e.Snippet = s.Snippet(pos)
	return e
}
