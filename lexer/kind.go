package lexer

import "github.com/ava12/sdl/source"

// Kind is a lexical category of a token.
type Kind int

const (
	SOF Kind = iota
	EOF
	Bang
	Dollar
	Amp
	ParenL
	ParenR
	Spread
	Dot
	Comma
	Colon
	Semicolon
	Equals
	At
	BracketL
	BracketR
	BraceL
	Pipe
	BraceR
	QuestionMark
	Name
	Number
	String
	StringExpr
	Comment

	kindCount
)

var kindNames = [kindCount]string{
	SOF:          "<SOF>",
	EOF:          source.EOFMarker,
	Bang:         "!",
	Dollar:       "$",
	Amp:          "&",
	ParenL:       "(",
	ParenR:       ")",
	Spread:       "...",
	Dot:          ".",
	Comma:        ",",
	Colon:        ":",
	Semicolon:    ";",
	Equals:       "=",
	At:           "@",
	BracketL:     "[",
	BracketR:     "]",
	BraceL:       "{",
	Pipe:         "|",
	BraceR:       "}",
	QuestionMark: "?",
	Name:         "Name",
	Number:       "Number",
	String:       "String",
	StringExpr:   "StringExpression",
	Comment:      "Comment",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "<unknown>"
	}

	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsPunctuator reports whether tokens of this kind are fixed punctuation.
func (k Kind) IsPunctuator() bool {
	return k >= Bang && k <= QuestionMark
}

// HasValue reports whether tokens of this kind carry a value.
func (k Kind) HasValue() bool {
	return k >= Name && k <= Comment
}

// Description returns kind name suitable for error messages, punctuators are quoted.
func (k Kind) Description() string {
	if k.IsPunctuator() {
		return `"` + k.String() + `"`
	}

	return k.String()
}
