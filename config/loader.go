// Package config loads settings from CUE files validated by an embedded schema.
package config

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/ava12/sdl"
)

// Loader reads configuration files on first use.
// Values are looked up in files in the order they were given, the first file defining a path wins.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

// NewLoader creates a loader for given files, schemaSrc contains CUE field declarations.
// Empty schemaSrc disables validation, otherwise fields not declared in the schema are rejected.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()
			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({"+schemaSrc+"})", cue.Filename("schema.cue"))
				if err := schema.Err(); err != nil {
					return nil, sdl.FormatError(ErrInvalidConfig, "invalid config schema: %s", err)
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(content, cue.Filename(filePath))
				if err := value.Err(); err != nil {
					return nil, sdl.FormatError(ErrInvalidConfig, "invalid config file %s: %s", filePath, err)
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, sdl.FormatError(ErrInvalidConfig, "invalid config file %s: %s", filePath, err)
					}
				}

				ret = append(ret, rootInfo{value: value, path: filePath})
			}

			return
		}),
	}
}

// Paths returns names of loaded files.
func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}

	ret := make([]string, len(roots))
	for i, info := range roots {
		ret[i] = info.path
	}
	return ret, nil
}

// IterCueValues yields values defined for path, in file order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() && value.Err() == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

// AssignFirst decodes the first value defined for path into target.
// Returns ErrValueNotFound if no file defines it.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}

		if err := value.Decode(target); err != nil {
			return sdl.FormatError(ErrInvalidConfig, "invalid config value %s: %s", path, err)
		}
		return nil
	}

	return ErrValueNotFound
}
