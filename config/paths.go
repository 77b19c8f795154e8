package config

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/ava12/sdl/internal/logs"
)

// FileNames are configuration file names searched by Module.Loader.
var FileNames = []string{"sdl.cue", ".sdl.cue"}

// SearchPaths returns existing files with given names located in working directory,
// user configuration directory, and /etc, in that order.
func SearchPaths(fileNames []string) []string {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	candidates := lo.FlatMap(lo.Uniq(dirs), func(dir string, _ int) []string {
		return lo.Map(fileNames, func(name string, _ int) string {
			return filepath.Join(dir, name)
		})
	})

	return lo.Filter(candidates, func(path string, _ int) bool {
		info, err := os.Stat(path)
		return err == nil && !info.IsDir()
	})
}

// Loader searches FileNames and validates them against the embedded schema.
func (Module) Loader(
	logger logs.Logger,
) Loader {
	paths := SearchPaths(FileNames)
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}
	return NewLoader(paths, schemaSrc)
}
