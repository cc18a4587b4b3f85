package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds style names; the longest chroma name is far shorter.
const maxAssetNameLength = 64

// ValidateAssetName checks that a style or theme name is a bare identifier.
// Returns ErrInvalidAssetName if the name is empty, too long, or contains
// path separators, dots, whitespace or control characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidAssetName, len(name), maxAssetNameLength)
	}
	if strings.ContainsAny(name, "/\\. \t\n\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
