// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForSettingsNotFound returns hints for settings file not found errors.
// Suggests --settings and, when one was searched, a user config location.
func ForSettingsNotFound(searchedPaths []string) string {
	hint := "use --settings /path/to/settings.json or set PORTFOLIO_SETTINGS"

	for _, p := range searchedPaths {
		if strings.Contains(p, "portfolio/settings.json") {
			hint += "; or create " + p
			break
		}
	}

	return format(hint)
}

// ForSectionNotFound lists the route types that do exist.
func ForSectionNotFound(available []string) string {
	if len(available) == 0 {
		return format("no section has a content path; check sections[].path in settings")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForItemNotFound suggests listing the section to see valid slugs.
func ForItemNotFound(routeType string) string {
	if routeType == "" {
		return ""
	}
	return format("run 'portfolio list " + routeType + "' to see available slugs")
}

// ForUnsafeSlug suggests renaming a document to a URL-safe slug.
func ForUnsafeSlug(suggested string) string {
	if suggested == "" {
		return ""
	}
	return format("rename the file to " + suggested + ".md")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForContentRoot returns hints when section directories are not found.
func ForContentRoot() string {
	return formatHints([]string{
		"section paths are resolved against --root",
		"set PORTFOLIO_ROOT to the site directory",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
