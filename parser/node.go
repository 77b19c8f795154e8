package parser

import (
	"encoding/json"

	"github.com/ava12/sdl/lexer"
	"github.com/ava12/sdl/source"
)

// Node is a syntax tree element. Parser knows nothing about node contents except the kind.
type Node interface {
	Kind() string
}

// Locatable is a node that can hold its source location.
type Locatable interface {
	Node
	Location() *Location
	SetLocation(loc *Location)
}

// BaseNode is meant to be embedded into grammar specific nodes.
type BaseNode struct {
	NodeKind string    `json:"kind"`
	Loc      *Location `json:"loc,omitempty"`
}

func (n *BaseNode) Kind() string {
	return n.NodeKind
}

func (n *BaseNode) Location() *Location {
	return n.Loc
}

func (n *BaseNode) SetLocation(loc *Location) {
	n.Loc = loc
}

// Location is a span of tokens from StartToken to EndToken, both included.
type Location struct {
	StartToken *lexer.Token
	EndToken   *lexer.Token
	Source     *source.Source
}

func NewLocation(start, end *lexer.Token, src *source.Source) *Location {
	return &Location{StartToken: start, EndToken: end, Source: src}
}

// Start returns byte offset of the first character.
func (l *Location) Start() int {
	return l.StartToken.Start()
}

// End returns byte offset next to the last character.
func (l *Location) End() int {
	return l.EndToken.End()
}

// StartLineCol returns line and column of the first character, adjusted by source offset.
func (l *Location) StartLineCol() source.LineCol {
	line, col := l.Source.LineCol(l.Start())
	return source.LineCol{Line: line, Column: col}
}

// EndLineCol returns line and column next to the last character, adjusted by source offset.
func (l *Location) EndLineCol() source.LineCol {
	line, col := l.Source.LineCol(l.End())
	return source.LineCol{Line: line, Column: col}
}

type locationJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (l *Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{l.Start(), l.End()})
}
