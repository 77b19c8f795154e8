// Package lexer defines lexical analyzer.
package lexer

import (
	"unicode/utf8"

	"github.com/ava12/sdl"
	"github.com/ava12/sdl/source"
)

// Error codes used by lexer:
const (
	// ErrUnexpectedChar indicates that no tokenizer accepts a well-formed character at current position.
	// Error message contains the character.
	ErrUnexpectedChar = sdl.LexicalErrors + 10 + iota

	// ErrInvalidChar indicates malformed UTF-8 at current position.
	ErrInvalidChar
)

// Tokenizer tries to fetch a token starting at pos, r is the character at pos.
// Returns nil, nil if the character does not start a token this tokenizer handles.
// Returns an error if the token is malformed.
type Tokenizer = func(l *Lexer, pos int, r rune) (*Token, error)

// Lexer builds a chain of tokens on demand.
// Each character starting a token maps to a list of tokenizers, they are tried in registration order.
// Tab, space, byte order mark, and line breaks are skipped.
// Lexer is not safe for concurrent use.
type Lexer struct {
	src        *source.Source
	last       *Token
	token      *Token
	line       int
	lineStart  int
	tokenizers map[rune][]Tokenizer
}

// New creates a Lexer with no tokenizers registered, see also NewDefault.
// Both current and last tokens are set to start of file token.
func New(src *source.Source) *Lexer {
	sof := NewToken(SOF, 0, 0, 0, 0, "")
	return &Lexer{
		src:        src,
		last:       sof,
		token:      sof,
		line:       1,
		tokenizers: make(map[rune][]Tokenizer),
	}
}

func (l *Lexer) Source() *source.Source {
	return l.src
}

// Token returns current token.
func (l *Lexer) Token() *Token {
	return l.token
}

// LastToken returns the token that was current before the last Advance call.
func (l *Lexer) LastToken() *Token {
	return l.last
}

// Line returns 1-based number of the line being scanned.
func (l *Lexer) Line() int {
	return l.line
}

// LineStart returns offset of the first character of the line being scanned.
func (l *Lexer) LineStart() int {
	return l.lineStart
}

// Register appends t to the tokenizers for character r.
// Tokenizers must be registered before the first Lookahead or Advance call.
func (l *Lexer) Register(r rune, t Tokenizer) {
	l.tokenizers[r] = append(l.tokenizers[r], t)
}

// MakeToken creates a token on the line being scanned.
func (l *Lexer) MakeToken(kind Kind, start, end int, value string) *Token {
	col := 1 + utf8.RuneCountInString(l.src.Slice(l.lineStart, start))
	return NewToken(kind, start, end, l.line, col, value)
}

// Tokenize returns the first token fetched by tokenizers registered for r.
// Returns nil, nil if all of them decline.
func (l *Lexer) Tokenize(pos int, r rune) (*Token, error) {
	for _, t := range l.tokenizers[r] {
		token, e := t(l, pos, r)
		if e != nil || token != nil {
			return token, e
		}
	}
	return nil, nil
}

// ScanFrom fetches the next token starting at or after start.
// Returns end of file token if there is nothing but whitespace left.
// Line state is not changed if there is an error.
func (l *Lexer) ScanFrom(start int) (*Token, error) {
	line, lineStart := l.line, l.lineStart
	token, e := l.scan(start)
	if e != nil {
		l.line, l.lineStart = line, lineStart
	}
	return token, e
}

func (l *Lexer) scan(start int) (*Token, error) {
	src := l.src
	pos := start
	for pos < src.Len() {
		r, size := src.At(pos)
		switch r {
		case 0xfeff, '\t', ' ':
			pos += size
			continue

		case '\n', '\r':
			pos++
			if r == '\r' && src.ByteAt(pos) == '\n' {
				pos++
			}
			l.line++
			l.lineStart = pos
			continue
		}

		if source.IsInvalid(r, size) {
			return nil, src.SyntaxError(pos, ErrInvalidChar, "Invalid character: %s.", src.PrintCodePointAt(pos))
		}

		token, e := l.Tokenize(pos, r)
		if token != nil || e != nil {
			return token, e
		}

		if r == '\'' {
			return nil, src.SyntaxError(pos, ErrUnexpectedChar,
				"Unexpected single quote character ('), did you mean to use a double quote (\")?")
		}
		return nil, src.SyntaxError(pos, ErrUnexpectedChar, "Unexpected character: %s.", src.PrintCodePointAt(pos))
	}

	return l.MakeToken(EOF, src.Len(), src.Len(), ""), nil
}

// Lookahead returns the token next to current one skipping comments, current token is not changed.
// Tokens are scanned only once, repeated calls return the same token.
// Returns current token if it is end of file.
func (l *Lexer) Lookahead() (*Token, error) {
	token := l.token
	if token.kind == EOF {
		return token, nil
	}

	for {
		if token.next != nil {
			token = token.next
		} else {
			next, e := l.ScanFrom(token.end)
			if e != nil {
				return nil, e
			}

			token.next = next
			next.prev = token
			token = next
		}

		if token.kind != Comment {
			return token, nil
		}
	}
}

// Advance makes the next significant token current and returns it.
// Current and last tokens are not changed if there is an error.
func (l *Lexer) Advance() (*Token, error) {
	token, e := l.Lookahead()
	if e != nil {
		return nil, e
	}

	l.last = l.token
	l.token = token
	return token, nil
}
