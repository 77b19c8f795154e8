package lexer

import (
	"encoding/json"
	"strconv"
)

// Token is an immutable lexical unit.
// Tokens fetched by a Lexer form a doubly linked chain, links are set once,
// when the neighbouring token is scanned for the first time.
type Token struct {
	kind       Kind
	start, end int
	line, col  int
	value      string
	prev, next *Token
}

// NewToken creates a detached token.
func NewToken(kind Kind, start, end, line, col int, value string) *Token {
	return &Token{kind: kind, start: start, end: end, line: line, col: col, value: value}
}

func (t *Token) Kind() Kind {
	return t.kind
}

// Start returns byte offset of the first character of the token.
func (t *Token) Start() int {
	return t.start
}

// End returns byte offset next to the last character of the token.
func (t *Token) End() int {
	return t.end
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// Value returns decoded value for name, number, string, string expression, and comment tokens.
func (t *Token) Value() string {
	return t.value
}

// Prev returns previous token in the chain or nil.
func (t *Token) Prev() *Token {
	return t.prev
}

// Next returns next token in the chain or nil if it is not scanned yet.
func (t *Token) Next() *Token {
	return t.next
}

// Description returns token description suitable for error messages.
func (t *Token) Description() string {
	if t.kind.HasValue() {
		return t.kind.Description() + " " + strconv.Quote(t.value)
	}

	return t.kind.Description()
}

func (t *Token) String() string {
	return t.Description()
}

type tokenJSON struct {
	Kind   Kind    `json:"kind"`
	Value  *string `json:"value,omitempty"`
	Line   int     `json:"line"`
	Column int     `json:"column"`
}

func (t *Token) MarshalJSON() ([]byte, error) {
	tj := tokenJSON{Kind: t.kind, Line: t.line, Column: t.col}
	if t.kind.HasValue() {
		tj.Value = &t.value
	}
	return json.Marshal(tj)
}
