package parser

import "github.com/ava12/sdl"

// Error codes used by parser:
const (
	// ErrExpectedToken indicates that current token is not of expected kind.
	ErrExpectedToken = sdl.SyntaxErrors + iota

	// ErrExpectedKeyword indicates that current token is not the expected keyword.
	ErrExpectedKeyword

	// ErrExpectedNode indicates that a required rule does not match current token.
	ErrExpectedNode

	// ErrUnexpectedToken indicates that no registered rule matches the token.
	ErrUnexpectedToken
)

// ErrTokenLimit indicates that the source contains more tokens than Options.MaxTokens allows.
const ErrTokenLimit = sdl.ParserErrors
