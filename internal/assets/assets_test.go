package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{"simple name", "monokai", nil},
		{"name with hyphen", "solarized-dark", nil},
		{"name with underscore", "my_style", nil},
		{"mixed case", "GitHub", nil},

		// Invalid names
		{"empty name", "", ErrInvalidAssetName},
		{"forward slash", "../styles", ErrInvalidAssetName},
		{"backslash", `a\b`, ErrInvalidAssetName},
		{"dot", "style.css", ErrInvalidAssetName},
		{"space", "my style", ErrInvalidAssetName},
		{"null byte", "a\x00b", ErrInvalidAssetName},
		{"too long", strings.Repeat("a", maxAssetNameLength+1), ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestStyleForTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme   string
		want    string
		wantErr error
	}{
		{"", LightStyle, nil},
		{"light", LightStyle, nil},
		{"Dark", DarkStyle, nil},
		{" dark ", DarkStyle, nil},
		{"dracula", "dracula", nil},
		{"Monokai", "monokai", nil},
		{"no-such-style", "", ErrStyleNotFound},
		{"../etc", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			t.Parallel()

			got, err := StyleForTheme(tt.theme)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("StyleForTheme(%q) error = %v, want %v", tt.theme, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("StyleForTheme(%q) unexpected error: %v", tt.theme, err)
			}
			if got != tt.want {
				t.Errorf("StyleForTheme(%q) = %q, want %q", tt.theme, got, tt.want)
			}
		})
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	t.Run("writes class rules", func(t *testing.T) {
		t.Parallel()

		css, err := HighlightCSS(DarkStyle)
		if err != nil {
			t.Fatalf("HighlightCSS() error = %v", err)
		}
		if !strings.Contains(css, ".chroma") {
			t.Error("stylesheet should target .chroma")
		}
		// Keyword class.
		if !strings.Contains(css, ".k ") && !strings.Contains(css, ".k{") {
			t.Error("stylesheet should contain keyword rules")
		}
	})

	t.Run("styles differ", func(t *testing.T) {
		t.Parallel()

		light, err := HighlightCSS(LightStyle)
		if err != nil {
			t.Fatalf("HighlightCSS(light) error = %v", err)
		}
		dark, err := HighlightCSS(DarkStyle)
		if err != nil {
			t.Fatalf("HighlightCSS(dark) error = %v", err)
		}
		if light == dark {
			t.Error("light and dark stylesheets should differ")
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := HighlightCSS("no-such-style")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	if !slices.IsSorted(names) {
		t.Error("StyleNames() should be sorted")
	}
	for _, want := range []string{LightStyle, DarkStyle} {
		if !slices.Contains(names, want) {
			t.Errorf("StyleNames() missing %q", want)
		}
	}
}
