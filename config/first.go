package config

import "errors"

// First returns the first value defined for path or def if no file defines it.
func First[T any](loader Loader, path string, def T) (T, error) {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return def, nil
		}
		return def, err
	}
	return value, nil
}
