package pipeline

import (
	"errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/felipeqf/portfolio/internal/fileutil"
)

// Image store layout.
const (
	imagesDir  = "images"
	contentDir = "content"
)

// ImageResolver maps image references found in content to the paths they
// are served from, copying the image into the static store on first use.
// It holds no mutable state and is safe for concurrent use.
type ImageResolver struct {
	staticDir string
	basePath  string
	logger    *slog.Logger
}

// NewImageResolver creates a resolver that publishes images under
// staticDir/content/<sectionType>/ and prefixes served paths with basePath.
func NewImageResolver(staticDir, basePath string, logger *slog.Logger) *ImageResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageResolver{
		staticDir: staticDir,
		basePath:  strings.TrimRight(basePath, "/"),
		logger:    logger,
	}
}

// Resolve returns the served path for reference.
//
//   - "" yields "".
//   - rooted paths and URLs are returned unchanged without touching the filesystem.
//   - anything else is read from sourceDir/images/ and copied to the static
//     store unless a file with the same name is already there.
//
// Failures are logged and answered with "/"+reference.
func (r *ImageResolver) Resolve(reference, sourceDir, sectionType string) string {
	if reference == "" {
		return ""
	}
	if fileutil.IsAbsoluteRef(reference) {
		return reference
	}

	rel := reference
	if !strings.HasPrefix(rel, imagesDir+"/") {
		rel = imagesDir + "/" + rel
	}
	name := path.Base(filepath.ToSlash(reference))

	src := filepath.Join(sourceDir, filepath.FromSlash(rel))
	dst := filepath.Join(r.StoreDir(sectionType), name)

	if err := r.publish(src, dst); err != nil {
		r.logger.Warn("images: could not process image",
			"image", reference, "source", src, "err", err)
		return "/" + reference
	}

	return r.basePath + "/" + contentDir + "/" + sectionType + "/" + name
}

// StoreDir is the directory images of sectionType are published to.
func (r *ImageResolver) StoreDir(sectionType string) string {
	return filepath.Join(r.staticDir, contentDir, sectionType)
}

// publish copies src to dst unless dst already exists.
func (r *ImageResolver) publish(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := fileutil.CopyFileAtomic(src, dst); err != nil {
		return err
	}
	r.logger.Debug("images: published", "source", src, "dest", dst)
	return nil
}
