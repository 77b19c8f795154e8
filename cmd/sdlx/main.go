/*
sdlx is a console utility dumping token streams and syntax trees of schema files.
Usage is

	sdlx [-f json|yaml] [-loc] [-max-tokens <n>] [-comments] [-o <name>] [-v] (tokens | parse) <file>...

tokens command outputs significant tokens of each file, -comments adds comment tokens;

parse command outputs syntax tree of each file, -loc adds token spans to tree nodes;

-f <format> defines output format, default is taken from configuration file or json;

-max-tokens <n> limits the number of significant tokens in a file, 0 means no limit;

-o <name> defines output file name, default is standard output;

-v enables debug logging;

<file> is a schema file name or - for standard input.

Defaults are read from sdl.cue or .sdl.cue files located in working directory,
user configuration directory, or /etc.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reusee/dscope"

	"github.com/ava12/sdl/config"
	"github.com/ava12/sdl/internal/logs"
)

type Module struct {
	dscope.Module
	Config config.Module
}

var (
	formatName, outFileName string
	enableLocation          bool
	maxTokens               int
	withComments, verbose   bool
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  sdlx [flags] (tokens | parse) <file>...")
		flag.PrintDefaults()
	}

	flag.StringVar(&formatName, "f", "", "output format: json or yaml")
	flag.BoolVar(&enableLocation, "loc", false, "add token spans to syntax tree nodes")
	flag.IntVar(&maxTokens, "max-tokens", 0, "maximal number of significant tokens in a file, 0 means no limit")
	flag.BoolVar(&withComments, "comments", false, "include comment tokens")
	flag.StringVar(&outFileName, "o", "", "output file name, default is standard output")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	var cmd command
	switch flag.Arg(0) {
	case "tokens":
		cmd = dumpTokens
	case "parse":
		cmd = dumpTrees
	default:
		flag.Usage()
		os.Exit(2)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	var e error
	dscope.New(new(Module)).Call(func(
		logger logs.Logger,
		loader config.Loader,
	) {
		var s config.Settings
		s, e = settings(loader, set)
		if e != nil {
			return
		}

		if paths, err := loader.Paths(); err == nil {
			logger.Debug("configuration loaded", "files", paths)
		}

		e = runToFile(cmd, s, logger, flag.Args()[1:], outFileName)
	})

	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(3)
	}
}

// settings merges configuration files with command line flags, flags take precedence.
func settings(loader config.Loader, set map[string]bool) (config.Settings, error) {
	s, e := config.Load(loader)
	if e != nil {
		return s, e
	}

	if set["f"] {
		s.Format, e = config.ParseFormat(formatName)
		if e != nil {
			return s, e
		}
	}
	if set["loc"] {
		s.EnableLocation = enableLocation
	}
	if set["max-tokens"] {
		s.MaxTokens = maxTokens
	}
	if set["comments"] {
		s.WithComments = withComments
	}
	if verbose {
		s.LogLevel = "debug"
	}

	return s, logs.SetLevel(s.LogLevel)
}
