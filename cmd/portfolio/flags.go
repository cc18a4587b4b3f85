package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI argument handling.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrInvalidFormat = errors.New("invalid output format")
)

// Output formats accepted by --format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	settings string
	root     string
	static   string
	format   string
	workers  int
	quiet    bool
	verbose  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.settings, "settings", "s", "", "settings file name or path")
	fs.StringVarP(&f.root, "root", "r", "", "content root directory (default \".\")")
	fs.StringVar(&f.static, "static", "", "image store directory (default <root>/static)")
	fs.StringVarP(&f.format, "format", "f", FormatJSON, "output format: json, yaml")
	fs.IntVarP(&f.workers, "workers", "w", 0, "sections loaded in parallel (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details")
}

// parseCommandFlags parses flags for command name and returns positional args.
// Environment variables fill in values the command line left empty.
func parseCommandFlags(name string, args []string, env *Environment, usage func(io.Writer)) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)
	fs.Usage = func() { usage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if err := validateFlags(f); err != nil {
		return nil, nil, err
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	applyEnvConfig(loadEnvConfig(env.Getenv), f)

	return f, fs.Args(), nil
}

// validateFlags rejects flag combinations that cannot be honored.
func validateFlags(f *commonFlags) error {
	switch f.format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q (must be json or yaml)", ErrInvalidFormat, f.format)
	}
	if f.workers < 0 {
		return fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, f.workers)
	}
	if f.quiet && f.verbose {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return nil
}
