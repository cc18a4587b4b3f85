package main

import (
	"errors"
	"os"

	portfolio "github.com/felipeqf/portfolio"
	"github.com/felipeqf/portfolio/internal/assets"
	"github.com/felipeqf/portfolio/internal/config"
)

// Exit codes for the portfolio CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, settings, or arguments
	ExitIO      = 3 // Missing section or document, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O and not-found errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, portfolio.ErrSectionNotFound) ||
		errors.Is(err, portfolio.ErrItemNotFound) {
		return ExitIO
	}

	// Usage/settings/validation errors (exit 2)
	if errors.Is(err, config.ErrSettingsNotFound) ||
		errors.Is(err, config.ErrSettingsParse) ||
		errors.Is(err, config.ErrEmptySettingsName) ||
		errors.Is(err, portfolio.ErrInvalidSettings) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
