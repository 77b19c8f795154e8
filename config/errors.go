package config

import (
	"errors"

	"github.com/ava12/sdl"
)

// Error codes used by config:
const (
	// ErrInvalidConfig indicates malformed configuration file or value not matching the schema.
	ErrInvalidConfig = sdl.ConfigErrors + iota

	// ErrUnknownFormat indicates unsupported output format name.
	ErrUnknownFormat
)

// ErrValueNotFound is returned by Loader.AssignFirst if no configuration file defines the path.
var ErrValueNotFound = errors.New("value not found")
