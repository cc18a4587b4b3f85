package portfolio

import (
	"fmt"
	"strings"
)

// LoadPage renders the document routeType/slug together with a reference
// to the next item of its section.
//
// Returns ErrSectionNotFound if no section has that route type, and
// ErrItemNotFound if the document does not exist, cannot be read, or slug
// is not a plain file name.
func (s *Service) LoadPage(routeType, slug string) (*Page, error) {
	sec, ok := s.FindSection(routeType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, routeType)
	}
	if !isPlainSlug(slug) {
		return nil, fmt.Errorf("%w: %q in %s", ErrItemNotFound, slug, routeType)
	}

	dir := s.SectionDir(sec)
	item, err := s.loadDocument(dir, SectionType(dir), slug+"."+markdownExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s: %w", ErrItemNotFound, slug, routeType, err)
	}

	page := &Page{ContentItem: item, RouteType: routeType}
	if next, ok := s.LoadNavigation(dir, routeType).FindNext(slug); ok {
		page.Next = &next
	}
	return page, nil
}

// isPlainSlug rejects slugs that could address files outside the section.
func isPlainSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, "/\\\x00")
}
