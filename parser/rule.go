package parser

import "github.com/ava12/sdl/lexer"

// Trigger is the token that must be current for a rule to be dispatched.
// Empty Keyword matches any token of the Kind.
type Trigger struct {
	Kind    lexer.Kind
	Keyword string
}

// OnKeyword returns a trigger matching a name token with exact text.
func OnKeyword(keyword string) *Trigger {
	return &Trigger{Kind: lexer.Name, Keyword: keyword}
}

// OnKind returns a trigger matching any token of given kind.
func OnKind(kind lexer.Kind) *Trigger {
	return &Trigger{Kind: kind}
}

// NodeParser is a grammar rule.
//
// Parse returns nil, nil if current token does not start a construct handled by the rule,
// nothing must be consumed in this case. A non-nil error means the construct is malformed,
// it aborts parsing. Parse must return untyped nil rather than a typed nil pointer.
//
// Rules with nil Trigger are never dispatched, but can be called explicitly.
type NodeParser interface {
	Kind() string
	Trigger() *Trigger
	Parse(p *Parser) (Node, error)
}

// Rule is a NodeParser built from a function.
type Rule struct {
	Name      string
	On        *Trigger
	ParseFunc func(p *Parser) (Node, error)
}

func (r *Rule) Kind() string {
	return r.Name
}

func (r *Rule) Trigger() *Trigger {
	return r.On
}

func (r *Rule) Parse(p *Parser) (Node, error) {
	return r.ParseFunc(p)
}
