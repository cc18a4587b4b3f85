package assets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Theme names understood by StyleForTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Built-in styles for the light and dark themes.
const (
	LightStyle = "github"
	DarkStyle  = "monokai"
)

// StyleForTheme returns the chroma style name for a site theme.
// An empty theme is treated as light.
func StyleForTheme(theme string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "", ThemeLight:
		return LightStyle, nil
	case ThemeDark:
		return DarkStyle, nil
	}

	if err := ValidateAssetName(theme); err != nil {
		return "", err
	}
	if _, ok := styles.Registry[strings.ToLower(theme)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, theme)
	}
	return strings.ToLower(theme), nil
}

// HighlightCSS returns the stylesheet for chroma's CSS classes in style.
func HighlightCSS(style string) (string, error) {
	if err := ValidateAssetName(style); err != nil {
		return "", err
	}
	s, ok := styles.Registry[strings.ToLower(style)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, style)
	}

	var b strings.Builder
	formatter := html.New(html.WithClasses(true))
	if err := formatter.WriteCSS(&b, s); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", style, err)
	}
	return b.String(), nil
}

// StyleNames lists every registered highlight style, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
