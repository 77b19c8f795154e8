// Package parser defines extensible recursive descent parser.
// Grammar rules are registered at runtime and dispatched by the current token.
package parser

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/ava12/sdl/lexer"
)

// Options control parsing.
type Options struct {
	// EnableLocation makes AttachLocation store token spans in nodes.
	EnableLocation bool

	// MaxTokens limits the number of significant tokens, 0 means no limit.
	MaxTokens int

	// Logger receives debug traces of rule registration and dispatch, nil discards them.
	Logger *slog.Logger
}

type bucketKey struct {
	kind    lexer.Kind
	keyword string
}

// Parser holds a lexer and a registry of grammar rules.
// Rules must be registered before parsing starts.
// Parser is not safe for concurrent use.
type Parser struct {
	lexer      *lexer.Lexer
	options    Options
	logger     *slog.Logger
	tokenCount int
	rules      map[bucketKey][]NodeParser
}

func New(l *lexer.Lexer, opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Parser{
		lexer:   l,
		options: opts,
		logger:  logger,
		rules:   make(map[bucketKey][]NodeParser),
	}
}

func (p *Parser) Lexer() *lexer.Lexer {
	return p.lexer
}

func (p *Parser) Options() Options {
	return p.options
}

// Token returns current token.
func (p *Parser) Token() *lexer.Token {
	return p.lexer.Token()
}

// TokenCount returns the number of significant tokens consumed so far.
func (p *Parser) TokenCount() int {
	return p.tokenCount
}

// Register appends rules to dispatch lists of their triggers.
// Rules without trigger are ignored.
func (p *Parser) Register(rules ...NodeParser) {
	for _, rule := range rules {
		t := rule.Trigger()
		if t == nil {
			p.logger.Debug("rule has no trigger", "rule", rule.Kind())
			continue
		}

		key := bucketKey{t.Kind, t.Keyword}
		p.rules[key] = append(p.rules[key], rule)
		p.logger.Debug("rule registered", "rule", rule.Kind(), "kind", t.Kind, "keyword", t.Keyword)
	}
}

// Dispatch tries rules triggered by token kind and value, then rules triggered by token kind only.
// Rules are tried in registration order, the first matching one wins.
// Returns nil, nil if no rule matches.
// The token need not be current, e.g. a rule may dispatch on a lookahead token.
func (p *Parser) Dispatch(token *lexer.Token) (Node, error) {
	keys := make([]bucketKey, 0, 2)
	if token.Value() != "" {
		keys = append(keys, bucketKey{token.Kind(), token.Value()})
	}
	keys = append(keys, bucketKey{token.Kind(), ""})

	for _, key := range keys {
		for _, rule := range p.rules[key] {
			p.logger.Debug("trying rule", "rule", rule.Kind(), "token", token.Description(), "line", token.Line(), "col", token.Col())
			node, e := rule.Parse(p)
			if e != nil {
				return nil, e
			}

			if node != nil {
				return node, nil
			}
		}
	}

	p.logger.Debug("no rule matched", "token", token.Description())
	return nil, nil
}

// ParseOptional applies rule to current token, returns nil, nil if it does not match.
func (p *Parser) ParseOptional(rule NodeParser) (Node, error) {
	return rule.Parse(p)
}

// ParseRequired applies rule to current token, returns ErrExpectedNode if it does not match.
func (p *Parser) ParseRequired(rule NodeParser) (Node, error) {
	token := p.Token()
	node, e := rule.Parse(p)
	if e != nil {
		return nil, e
	}

	if node == nil {
		return nil, p.errorAt(token, ErrExpectedNode, "Expected %s, found %s.", rule.Kind(), token.Description())
	}

	return node, nil
}

// OneOrMore consumes open token, then one or more rule matches, then close token.
func (p *Parser) OneOrMore(open lexer.Kind, rule NodeParser, close lexer.Kind) ([]Node, error) {
	_, e := p.ExpectToken(open)
	if e != nil {
		return nil, e
	}

	var nodes []Node
	for {
		node, e := p.ParseRequired(rule)
		if e != nil {
			return nil, e
		}

		nodes = append(nodes, node)
		found, e := p.ExpectOptionalToken(close)
		if e != nil || found {
			return nodes, e
		}
	}
}

// ZeroOrMore consumes open token, then rule matches until close token is found and consumed.
func (p *Parser) ZeroOrMore(open lexer.Kind, rule NodeParser, close lexer.Kind) ([]Node, error) {
	_, e := p.ExpectToken(open)
	if e != nil {
		return nil, e
	}

	return p.untilClose(rule, close)
}

// OptionalWrapped is the same as ZeroOrMore if current token is open token.
// Otherwise returns empty list and consumes nothing.
func (p *Parser) OptionalWrapped(open lexer.Kind, rule NodeParser, close lexer.Kind) ([]Node, error) {
	found, e := p.ExpectOptionalToken(open)
	if e != nil || !found {
		return []Node{}, e
	}

	return p.untilClose(rule, close)
}

func (p *Parser) untilClose(rule NodeParser, close lexer.Kind) ([]Node, error) {
	nodes := []Node{}
	for {
		found, e := p.ExpectOptionalToken(close)
		if e != nil || found {
			return nodes, e
		}

		node, e := p.ParseRequired(rule)
		if e != nil {
			return nil, e
		}

		nodes = append(nodes, node)
	}
}

// DelimitedList consumes optional leading delimiter, then rule matches separated by delimiters.
// At least one match is required.
func (p *Parser) DelimitedList(delim lexer.Kind, rule NodeParser) ([]Node, error) {
	_, e := p.ExpectOptionalToken(delim)
	if e != nil {
		return nil, e
	}

	var nodes []Node
	for {
		node, e := p.ParseRequired(rule)
		if e != nil {
			return nil, e
		}

		nodes = append(nodes, node)
		found, e := p.ExpectOptionalToken(delim)
		if e != nil || !found {
			return nodes, e
		}
	}
}

// Cast converts combinator results to concrete node type. Panics if a node is of another type.
func Cast[T Node](nodes []Node) []T {
	return lo.Map(nodes, func(n Node, _ int) T {
		return n.(T)
	})
}

// AttachLocation sets location of a Locatable node spanning from start to the last consumed token.
// Does nothing if location tracking is disabled.
func (p *Parser) AttachLocation(start *lexer.Token, n Node) {
	if !p.options.EnableLocation {
		return
	}

	if ln, ok := n.(Locatable); ok {
		ln.SetLocation(NewLocation(start, p.lexer.LastToken(), p.lexer.Source()))
	}
}

// Advance makes the next significant token current.
// Returns ErrTokenLimit when the number of consumed tokens exceeds Options.MaxTokens.
// End of file token is not counted.
func (p *Parser) Advance() error {
	token, e := p.lexer.Advance()
	if e != nil {
		return e
	}

	if token.Kind() == lexer.EOF {
		return nil
	}

	p.tokenCount++
	limit := p.options.MaxTokens
	if limit > 0 && p.tokenCount > limit {
		return p.errorAt(token, ErrTokenLimit, "Schema contains more than %d tokens.", limit)
	}

	return nil
}

// Peek reports whether current token is of given kind.
func (p *Parser) Peek(kind lexer.Kind) bool {
	return p.Token().Kind() == kind
}

// ExpectToken consumes and returns current token if it is of given kind, returns ErrExpectedToken otherwise.
func (p *Parser) ExpectToken(kind lexer.Kind) (*lexer.Token, error) {
	token := p.Token()
	if token.Kind() != kind {
		return nil, p.errorAt(token, ErrExpectedToken, "Expected %s, found %s.", kind.Description(), token.Description())
	}

	e := p.Advance()
	if e != nil {
		return nil, e
	}

	return token, nil
}

// ExpectOptionalToken consumes current token if it is of given kind and reports whether it did.
func (p *Parser) ExpectOptionalToken(kind lexer.Kind) (bool, error) {
	if !p.Peek(kind) {
		return false, nil
	}

	return true, p.Advance()
}

func (p *Parser) isKeyword(text string) bool {
	token := p.Token()
	return token.Kind() == lexer.Name && token.Value() == text
}

// ExpectKeyword consumes current token if it is a name with given text, returns ErrExpectedKeyword otherwise.
func (p *Parser) ExpectKeyword(text string) error {
	if !p.isKeyword(text) {
		token := p.Token()
		return p.errorAt(token, ErrExpectedKeyword, "Expected \"%s\", found %s.", text, token.Description())
	}

	return p.Advance()
}

// ExpectOptionalKeyword consumes current token if it is a name with given text and reports whether it did.
func (p *Parser) ExpectOptionalKeyword(text string) (bool, error) {
	if !p.isKeyword(text) {
		return false, nil
	}

	return true, p.Advance()
}

// Unexpected returns ErrUnexpectedToken error for given token, nil means current token.
func (p *Parser) Unexpected(token *lexer.Token) error {
	if token == nil {
		token = p.Token()
	}

	return p.errorAt(token, ErrUnexpectedToken, "Unexpected %s.", token.Description())
}

func (p *Parser) errorAt(token *lexer.Token, code int, msg string, params ...any) error {
	return p.lexer.Source().SyntaxError(token.Start(), code, msg, params...)
}
