// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrSourceNotRegular       = errors.New("source is not a regular file")
)

// File permission constants.
const (
	DirPermissions  = 0o755 // rwxr-xr-x: served directories must be world-readable
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ValidateExtension checks that the extension is safe for use in file patterns.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ListFiles returns the names of regular files directly inside dir whose
// name ends in "."+extension. The walk is not recursive. Names are sorted
// so callers see the same order on every platform.
func ListFiles(dir, extension string) ([]string, error) {
	if err := ValidateExtension(extension); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	suffix := "." + extension
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFileAtomic copies src to dst by writing a temporary file next to dst
// and renaming it into place. Readers never observe a partially written dst.
// Concurrent callers copying the same bytes to the same dst race benignly:
// the last rename wins and every rename publishes a complete file.
func CopyFileAtomic(src, dst string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrSourceNotRegular, src)
	}

	in, err := os.Open(src) // #nosec G304 -- src comes from the content tree
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err = tmp.Chmod(FilePermissions); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("publishing %s: %w", dst, err)
	}
	return nil
}

// IsAbsoluteRef reports whether a content reference is already resolved:
// a rooted path ("/img.png", "//cdn/img.png") or anything carrying a URL
// scheme ("https:", "data:", "mailto:").
func IsAbsoluteRef(ref string) bool {
	if strings.HasPrefix(ref, "/") {
		return true
	}
	return hasScheme(ref)
}

// hasScheme checks for an RFC 3986 scheme prefix followed by ':'.
// Single letters are rejected so Windows drive paths are not mistaken
// for schemes.
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		case c == ':' && i > 1:
			return true
		default:
			return false
		}
	}
	return false
}
