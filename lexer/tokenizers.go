package lexer

import (
	"strings"

	"github.com/ava12/sdl/source"
)

// ReadName fetches a name token: a letter or underscore followed by letters, digits, and underscores.
func ReadName(l *Lexer, start int, _ rune) (*Token, error) {
	src := l.src
	pos := start + 1
	for source.IsNameContinue(src.ByteAt(pos)) {
		pos++
	}

	return l.MakeToken(Name, start, pos, src.Slice(start, pos)), nil
}

// ReadNumber fetches a number token: optional minus, integer part without leading zeroes,
// optional fraction, and optional exponent. Token value is the literal text.
// A number must not be followed by a dot or a name start character.
func ReadNumber(l *Lexer, start int, first rune) (*Token, error) {
	src := l.src
	pos := start
	code := int(first)
	var e error

	if code == '-' {
		pos++
		code = src.ByteAt(pos)
	}

	if code == '0' {
		pos++
		code = src.ByteAt(pos)
		if source.IsDigit(code) {
			return nil, src.SyntaxError(pos, source.ErrInvalidNumber,
				"Invalid number, unexpected digit after 0: %s.", src.PrintCodePointAt(pos))
		}
	} else {
		pos, e = src.ReadDigits(pos, code)
		if e != nil {
			return nil, e
		}
		code = src.ByteAt(pos)
	}

	if code == '.' {
		pos++
		pos, e = src.ReadDigits(pos, src.ByteAt(pos))
		if e != nil {
			return nil, e
		}
		code = src.ByteAt(pos)
	}

	if code == 'e' || code == 'E' {
		pos++
		code = src.ByteAt(pos)
		if code == '+' || code == '-' {
			pos++
			code = src.ByteAt(pos)
		}
		pos, e = src.ReadDigits(pos, code)
		if e != nil {
			return nil, e
		}
		code = src.ByteAt(pos)
	}

	if code == '.' || source.IsNameStart(code) {
		return nil, src.SyntaxError(pos, source.ErrInvalidNumber,
			"Invalid number, expected digit but got: %s.", src.PrintCodePointAt(pos))
	}

	return l.MakeToken(Number, start, pos, src.Slice(start, pos)), nil
}

// ReadString fetches a string literal enclosed in quote characters.
// Backquoted literals produce StringExpr tokens, other ones produce String tokens.
// Token value contains decoded text.
func ReadString(l *Lexer, start int, quote rune) (*Token, error) {
	src := l.src
	pos := start + 1
	chunkStart := pos
	var value strings.Builder

	for pos < src.Len() {
		r, size := src.At(pos)

		if r == quote {
			value.WriteString(src.Slice(chunkStart, pos))
			kind := String
			if quote == '`' {
				kind = StringExpr
			}
			return l.MakeToken(kind, start, pos+1, value.String()), nil
		}

		if r == '\\' {
			value.WriteString(src.Slice(chunkStart, pos))
			var (
				char rune
				e    error
			)
			switch {
			case src.ByteAt(pos+1) != 'u':
				char, size, e = src.ReadEscapedCharacter(pos)
			case src.ByteAt(pos+2) == '{':
				char, size, e = src.ReadEscapedUnicodeVariableWidth(pos)
			default:
				char, size, e = src.ReadEscapedUnicodeFixedWidth(pos)
			}
			if e != nil {
				return nil, e
			}

			value.WriteRune(char)
			pos += size
			chunkStart = pos
			continue
		}

		if r == '\n' || r == '\r' {
			break
		}

		if source.IsInvalid(r, size) {
			return nil, src.SyntaxError(pos, source.ErrInvalidStringChar,
				"Invalid character within String: %s.", src.PrintCodePointAt(pos))
		}

		pos += size
	}

	return nil, src.SyntaxError(pos, source.ErrUnterminatedString, "Unterminated string.")
}

// ReadComment fetches a comment token up to the end of line.
// Comment starts with "#" or "//", token value contains the text after the marker.
// Declines a single slash. Malformed UTF-8 ends the comment.
func ReadComment(l *Lexer, start int, r rune) (*Token, error) {
	src := l.src
	pos := start + 1
	if r == '/' {
		if src.ByteAt(pos) != '/' {
			return nil, nil
		}
		pos++
	}
	textStart := pos

	for {
		c, size := src.At(pos)
		if c == source.EOF || c == '\n' || c == '\r' || source.IsInvalid(c, size) {
			break
		}
		pos += size
	}

	return l.MakeToken(Comment, start, pos, src.Slice(textStart, pos)), nil
}

// Punctuator returns a tokenizer fetching single character token of given kind.
func Punctuator(kind Kind) Tokenizer {
	return func(l *Lexer, pos int, _ rune) (*Token, error) {
		return l.MakeToken(kind, pos, pos+1, ""), nil
	}
}

// ReadDot fetches either "..." or "." token.
func ReadDot(l *Lexer, pos int, _ rune) (*Token, error) {
	if l.src.ByteAt(pos+1) == '.' && l.src.ByteAt(pos+2) == '.' {
		return l.MakeToken(Spread, pos, pos+3, ""), nil
	}

	return l.MakeToken(Dot, pos, pos+1, ""), nil
}

var punctuators = map[rune]Kind{
	'!': Bang,
	'$': Dollar,
	'&': Amp,
	'(': ParenL,
	')': ParenR,
	',': Comma,
	':': Colon,
	';': Semicolon,
	'=': Equals,
	'@': At,
	'[': BracketL,
	']': BracketR,
	'{': BraceL,
	'|': Pipe,
	'}': BraceR,
	'?': QuestionMark,
}

// RegisterDefaults registers tokenizers for names, numbers, strings, comments, and punctuation.
func RegisterDefaults(l *Lexer) *Lexer {
	l.Register('#', ReadComment)
	l.Register('/', ReadComment)

	l.Register('"', ReadString)
	l.Register('\'', ReadString)
	l.Register('`', ReadString)

	l.Register('-', ReadNumber)
	for r := '0'; r <= '9'; r++ {
		l.Register(r, ReadNumber)
	}

	l.Register('_', ReadName)
	for r := 'a'; r <= 'z'; r++ {
		l.Register(r, ReadName)
		l.Register(r-'a'+'A', ReadName)
	}

	for r, kind := range punctuators {
		l.Register(r, Punctuator(kind))
	}
	l.Register('.', ReadDot)

	return l
}

// NewDefault creates a Lexer with default tokenizers registered.
func NewDefault(src *source.Source) *Lexer {
	return RegisterDefaults(New(src))
}
