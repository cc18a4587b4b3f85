package portfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/felipeqf/portfolio/internal/fileutil"
	"github.com/felipeqf/portfolio/internal/pipeline"
)

// Content document extension, without the dot.
const markdownExt = "md"

// defaultSectionType names images of a directory without a usable last segment.
const defaultSectionType = "default"

// SectionDir resolves a section path against the content root.
// Leading and trailing slashes are ignored, so "/content/projects/" and
// "content/projects" name the same directory.
func (s *Service) SectionDir(sec Section) string {
	p := strings.Trim(strings.TrimSpace(sec.Path), "/")
	return filepath.Join(s.root, filepath.FromSlash(p))
}

// SectionType is the last path segment of a content directory. Images of
// that directory are published under it.
func SectionType(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return defaultSectionType
	}
	return base
}

// LoadDirectory renders every markdown document directly inside dir and
// returns them sorted by CompareItems. A directory that cannot be read
// yields an empty slice; a document that cannot be read or rendered is
// skipped. Both are logged.
func (s *Service) LoadDirectory(dir string) []ContentItem {
	names, err := fileutil.ListFiles(dir, markdownExt)
	if err != nil {
		s.logger.Warn("loader: could not load files from directory", "dir", dir, "err", err)
		return []ContentItem{}
	}

	sectionType := SectionType(dir)
	items := make([]ContentItem, 0, len(names))
	for _, name := range names {
		item, err := s.loadDocument(dir, sectionType, name)
		if err != nil {
			s.logger.Warn("loader: skipping document", "file", filepath.Join(dir, name), "err", err)
			continue
		}
		items = append(items, item)
	}

	SortItems(items)
	return items
}

// loadDocument reads, parses and renders one markdown file.
func (s *Service) loadDocument(dir, sectionType, name string) (ContentItem, error) {
	path := filepath.Join(dir, name)
	raw, err := os.ReadFile(path) // #nosec G304 -- path is inside a configured content directory
	if err != nil {
		return ContentItem{}, err
	}

	fields, body := pipeline.ParseFrontMatter(string(raw))

	html, err := s.renderer.Render(body, dir, sectionType)
	if err != nil {
		return ContentItem{}, fmt.Errorf("rendering %s: %w", name, err)
	}

	meta := NormalizeMetadata(fields)
	meta.Image = s.images.Resolve(meta.Image, dir, sectionType)

	return ContentItem{
		Slug:       slugOf(name),
		Type:       sectionType,
		Metadata:   meta,
		HTML:       html,
		SourcePath: path,
	}, nil
}

// slugOf strips the markdown extension from a file name.
func slugOf(name string) string {
	return strings.TrimSuffix(name, "."+markdownExt)
}
