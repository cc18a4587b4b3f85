// Package config locates and decodes the site settings document.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	portfolio "github.com/felipeqf/portfolio"
	"github.com/felipeqf/portfolio/internal/fileutil"
	"github.com/felipeqf/portfolio/internal/yamlutil"
)

// Sentinel errors for settings operations.
var (
	ErrSettingsNotFound  = errors.New("settings file not found")
	ErrEmptySettingsName = errors.New("settings name cannot be empty")
	ErrSettingsParse     = errors.New("failed to parse settings")
)

// DefaultSettingsName is looked up when no settings file is given.
const DefaultSettingsName = "settings"

// appDirName is the directory under the user config dir searched for settings.
const appDirName = "portfolio"

// searchExtensions are tried in order when resolving a settings name.
var searchExtensions = []string{".json", ".yaml", ".yml"}

// LoadSettings loads site settings from a file path or settings name.
// If nameOrPath contains a path separator or an extension, it is treated
// as a file path. Otherwise it is a name searched in standard locations.
// Unknown keys in the document are ignored. The result is validated.
func LoadSettings(nameOrPath string) (*portfolio.Settings, error) {
	if nameOrPath == "" {
		return nil, ErrEmptySettingsName
	}

	var settingsPath string
	if isFilePath(nameOrPath) {
		settingsPath = nameOrPath
	} else {
		var err error
		settingsPath, err = ResolveSettingsPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(settingsPath) // #nosec G304 -- settings path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, settingsPath)
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	return ParseSettings(data)
}

// ParseSettings decodes a JSON or YAML settings document and validates it.
func ParseSettings(data []byte) (*portfolio.Settings, error) {
	var s portfolio.Settings
	if err := yamlutil.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || filepath.Ext(s) != ""
}

// ResolveSettingsPath searches for a settings file by name.
// Tries extensions in order: .json, .yaml, .yml
// Tries locations in order: current directory, <user config dir>/portfolio/
func ResolveSettingsPath(name string) (string, error) {
	tried := make([]string, 0, len(searchExtensions)*2)

	for _, ext := range searchExtensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range searchExtensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Tried: tried}
}

// NotFoundError lists the locations searched for a settings name.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrSettingsNotFound, strings.Join(e.Tried, ", "))
}

// Is makes errors.Is(err, ErrSettingsNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrSettingsNotFound
}
