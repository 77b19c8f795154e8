package parser

import "github.com/ava12/sdl/lexer"

const (
	SchemaKind     = "SCHEMA"
	DefinitionKind = "DEFINITION"
)

// Schema is the root node, it holds top level definitions in source order.
type Schema struct {
	BaseNode
	Definitions []Node `json:"definitions"`
}

// DefinitionRule dispatches a top level definition.
// A definition may start with a string description, in this case the token next to it is dispatched,
// the matching rule is responsible for consuming the description.
// Returns ErrUnexpectedToken if no rule matches.
var DefinitionRule NodeParser = &Rule{Name: DefinitionKind, ParseFunc: parseDefinition}

func parseDefinition(p *Parser) (Node, error) {
	token := p.Token()
	if token.Kind() == lexer.String {
		next, e := p.lexer.Lookahead()
		if e != nil {
			return nil, e
		}

		token = next
	}

	node, e := p.Dispatch(token)
	if e != nil {
		return nil, e
	}

	if node == nil {
		return nil, p.Unexpected(token)
	}

	return node, nil
}

// SchemaRule parses the whole source: start of file, any number of definitions, end of file.
var SchemaRule NodeParser = &Rule{Name: SchemaKind, ParseFunc: parseSchema}

func parseSchema(p *Parser) (Node, error) {
	start := p.Token()
	definitions, e := p.ZeroOrMore(lexer.SOF, DefinitionRule, lexer.EOF)
	if e != nil {
		return nil, e
	}

	schema := &Schema{BaseNode: BaseNode{NodeKind: SchemaKind}, Definitions: definitions}
	p.AttachLocation(start, schema)
	return schema, nil
}

// Parse parses the whole source using registered rules for definitions.
func (p *Parser) Parse() (*Schema, error) {
	node, e := p.ParseRequired(SchemaRule)
	if e != nil {
		return nil, e
	}

	p.logger.Debug("schema parsed", "definitions", len(node.(*Schema).Definitions), "tokens", p.tokenCount)
	return node.(*Schema), nil
}
