package pipeline

import (
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unix unchanged", "a\nb\n", "a\nb\n"},
		{"windows", "a\r\nb\r\n", "a\nb\n"},
		{"old mac", "a\rb\r", "a\nb\n"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeLineEndings(tt.in); got != tt.want {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsKnownLanguage(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"go", "python", "js", "plaintext", "bash"} {
		if !IsKnownLanguage(lang) {
			t.Errorf("IsKnownLanguage(%q) = false, want true", lang)
		}
	}
	for _, lang := range []string{"", "klingon", "not-a-language"} {
		if IsKnownLanguage(lang) {
			t.Errorf("IsKnownLanguage(%q) = true, want false", lang)
		}
	}
}
