package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const envPrefix = "PORTFOLIO_"

// envConfig holds configuration from environment variables.
// Flags take precedence over every value here.
type envConfig struct {
	SettingsPath string // PORTFOLIO_SETTINGS: settings file name or path
	Root         string // PORTFOLIO_ROOT: content root directory
	StaticDir    string // PORTFOLIO_STATIC: image store directory
	Workers      int    // PORTFOLIO_WORKERS: concurrent section loads
}

// knownEnvVars lists valid PORTFOLIO_* environment variables.
var knownEnvVars = map[string]bool{
	"PORTFOLIO_SETTINGS": true,
	"PORTFOLIO_ROOT":     true,
	"PORTFOLIO_STATIC":   true,
	"PORTFOLIO_WORKERS":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		SettingsPath: getenv("PORTFOLIO_SETTINGS"),
		Root:         getenv("PORTFOLIO_ROOT"),
		StaticDir:    getenv("PORTFOLIO_STATIC"),
	}

	if workers := getenv("PORTFOLIO_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars reports unrecognized PORTFOLIO_* variables.
// Helps catch typos like PORTFOLIO_SETTING.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills flag values that were not set on the command line.
func applyEnvConfig(env *envConfig, f *commonFlags) {
	if f.settings == "" && env.SettingsPath != "" {
		f.settings = env.SettingsPath
	}
	if f.root == "" && env.Root != "" {
		f.root = env.Root
	}
	if f.static == "" && env.StaticDir != "" {
		f.static = env.StaticDir
	}
	if f.workers == 0 && env.Workers > 0 {
		f.workers = env.Workers
	}
}
