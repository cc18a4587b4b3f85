package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/felipeqf/portfolio/internal/yamlutil"
)

// writeOutput encodes v to w in the requested format.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		data, err := yamlutil.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// newLogger builds the stderr logger for the pipeline's warnings.
func newLogger(w io.Writer, f *commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
