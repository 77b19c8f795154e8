/*
Package sdl is an extensible lexer and parser engine for a schema description language.

Consists of subpackages:
  - source: defines source text, character classes and escape sequence decoding;
  - lexer: lazily built token stream driven by tokenizers registered per code point;
  - parser: extensible parser dispatching grammar rules by trigger token;
  - config: loads parser and tool settings from CUE files;
  - examples/schema: sample grammar built on top of the parser;
  - cmd/sdlx: console utility dumping tokens or syntax trees.

Typical usage is:

1. Create a source.Source and a lexer with default tokenizers (lexer.NewDefault).
Extra tokenizers may be registered for any code point.

2. Create a parser and register node parsers (grammar rules). A rule with a trigger
is attempted whenever the current token matches the trigger.

3. Call Parser.Parse to get the list of top-level definitions, or drive the parser
directly using its combinators.
*/
package sdl

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexicalErrors = 101 // used by source and lexer
	SyntaxErrors  = 201 // used by parser
	ParserErrors  = 301 // used by parser
	ConfigErrors  = 401 // used by config
)

// Error is the error type used by sdl subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int

	// Offset contains byte offset in source file, meaningful only if Line is not 0.
	Offset int

	// Snippet contains source text around Offset or empty string.
	Snippet string
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{Code: code, Message: msg, SourceName: name, Line: line, Col: col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// IsCode reports whether err is (or wraps) an *Error with given code.
func IsCode(err error, code int) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
