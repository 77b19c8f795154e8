package config

import (
	_ "embed"
	"log/slog"

	"github.com/ava12/sdl"
	"github.com/ava12/sdl/parser"
)

//go:embed schema.cue
var schemaSrc string

// Format is the output format of syntax trees and token streams.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns ErrUnknownFormat for names other than json and yaml.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatJSON, FormatYAML:
		return f, nil
	}

	return "", sdl.FormatError(ErrUnknownFormat, "unknown output format %q", name)
}

// Settings is the complete configuration, fields missing in files get default values.
type Settings struct {
	EnableLocation bool
	MaxTokens      int
	WithComments   bool
	Format         Format
	LogLevel       string
}

func DefaultSettings() Settings {
	return Settings{Format: FormatJSON, LogLevel: "warn"}
}

// Load reads settings from configuration files.
func Load(loader Loader) (Settings, error) {
	s := DefaultSettings()
	var err error
	if s.EnableLocation, err = First(loader, "enable_location", s.EnableLocation); err != nil {
		return s, err
	}
	if s.MaxTokens, err = First(loader, "max_tokens", s.MaxTokens); err != nil {
		return s, err
	}
	if s.WithComments, err = First(loader, "comments", s.WithComments); err != nil {
		return s, err
	}
	if s.LogLevel, err = First(loader, "log_level", s.LogLevel); err != nil {
		return s, err
	}

	format, err := First(loader, "format", string(s.Format))
	if err != nil {
		return s, err
	}
	s.Format, err = ParseFormat(format)
	return s, err
}

// ParserOptions converts settings to parser options.
func (s Settings) ParserOptions(logger *slog.Logger) parser.Options {
	return parser.Options{
		EnableLocation: s.EnableLocation,
		MaxTokens:      s.MaxTokens,
		Logger:         logger,
	}
}
