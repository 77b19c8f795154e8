package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"

	"github.com/ava12/sdl/config"
	"github.com/ava12/sdl/examples/schema"
	"github.com/ava12/sdl/internal/logs"
	"github.com/ava12/sdl/lexer"
	"github.com/ava12/sdl/parser"
	"github.com/ava12/sdl/source"
)

const stdinName = "-"

type command func(src *source.Source, s config.Settings, logger logs.Logger) (any, error)

type fileResult struct {
	File   string         `json:"file"`
	Tokens []tokenRecord  `json:"tokens,omitempty"`
	Schema *parser.Schema `json:"schema,omitempty"`
}

type tokenRecord struct {
	Kind   lexer.Kind `json:"kind"`
	Value  *string    `json:"value,omitempty"`
	Line   int        `json:"line"`
	Column int        `json:"column"`
	Start  int        `json:"start"`
	End    int        `json:"end"`
}

func run(cmd command, s config.Settings, logger logs.Logger, files []string, out io.Writer) error {
	results := make([]fileResult, 0, len(files))
	for _, name := range files {
		src, e := readSource(name)
		if e != nil {
			return e
		}

		logger.Debug("processing", "file", src.Name(), "bytes", src.Len())
		result, e := cmd(src, s, logger)
		if e != nil {
			return e
		}

		fr := fileResult{File: src.Name()}
		switch r := result.(type) {
		case []tokenRecord:
			fr.Tokens = r
		case *parser.Schema:
			fr.Schema = r
		}
		results = append(results, fr)
	}

	return encode(out, s.Format, results)
}

// runToFile writes results to named file, empty name means standard output.
func runToFile(cmd command, s config.Settings, logger logs.Logger, files []string, name string) error {
	if name == "" {
		return run(cmd, s, logger, files, os.Stdout)
	}

	out, e := os.Create(name)
	if e != nil {
		return e
	}

	e = run(cmd, s, logger, files, out)
	if ce := out.Close(); e == nil {
		e = ce
	}
	return e
}

func readSource(name string) (*source.Source, error) {
	var (
		content []byte
		e       error
	)
	if name == stdinName {
		content, e = io.ReadAll(os.Stdin)
		name = source.DefaultName
	} else {
		content, e = os.ReadFile(name)
	}
	if e != nil {
		return nil, e
	}

	return source.New(name, string(content)), nil
}

func dumpTokens(src *source.Source, s config.Settings, logger logs.Logger) (any, error) {
	p := parser.New(lexer.NewDefault(src), s.ParserOptions(logger))
	tokens := []*lexer.Token{}
	for {
		e := p.Advance()
		if e != nil {
			return nil, e
		}

		token := p.Token()
		tokens = append(tokens, token)
		if token.Kind() == lexer.EOF {
			break
		}
	}

	if s.WithComments {
		tokens = chain(tokens[len(tokens)-1])
	}

	return lo.Map(tokens, func(t *lexer.Token, _ int) tokenRecord {
		r := tokenRecord{Kind: t.Kind(), Line: t.Line(), Column: t.Col(), Start: t.Start(), End: t.End()}
		if t.Kind().HasValue() {
			r.Value = lo.ToPtr(t.Value())
		}
		return r
	}), nil
}

// chain returns all tokens up to last including comments, start of file token is excluded.
func chain(last *lexer.Token) []*lexer.Token {
	first := last
	for first.Prev() != nil {
		first = first.Prev()
	}

	var result []*lexer.Token
	for t := first.Next(); t != nil; t = t.Next() {
		result = append(result, t)
		if t == last {
			break
		}
	}
	return result
}

func dumpTrees(src *source.Source, s config.Settings, logger logs.Logger) (any, error) {
	return schema.Parse(src, s.ParserOptions(logger))
}

func encode(w io.Writer, format config.Format, v any) error {
	data, e := json.MarshalIndent(v, "", "  ")
	if e != nil {
		return e
	}

	if format != config.FormatYAML {
		_, e = w.Write(append(data, '\n'))
		return e
	}

	var doc yaml.Node
	e = yaml.Unmarshal(data, &doc)
	if e != nil {
		return e
	}

	resetStyle(&doc)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	e = enc.Encode(&doc)
	if e == nil {
		e = enc.Close()
	}
	return e
}

// resetStyle drops flow style and quotes inherited from JSON, strings that look like other types stay quoted.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
