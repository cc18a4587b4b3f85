package portfolio

import (
	"github.com/goliatone/go-slug"

	"github.com/felipeqf/portfolio/internal/fileutil"
)

// Routes enumerates every page of the configured sections.
func (s *Service) Routes() []Route {
	return s.EnumerateRoutes(s.settings.Sections)
}

// EnumerateRoutes lists one route per markdown document of every section
// with a content directory. Sections whose directory is missing or
// unreadable are logged and contribute nothing.
func (s *Service) EnumerateRoutes(sections []Section) []Route {
	routes := []Route{}
	for _, sec := range sections {
		if !sec.HasContent() {
			continue
		}

		dir := s.SectionDir(sec)
		if !fileutil.DirExists(dir) {
			s.logger.Warn("routes: directory not found", "section", sec.Title, "dir", dir)
			continue
		}

		names, err := fileutil.ListFiles(dir, markdownExt)
		if err != nil {
			s.logger.Warn("routes: could not generate routes", "section", sec.Title, "err", err)
			continue
		}

		routeType := sec.RouteType()
		for _, name := range names {
			r := Route{Type: routeType, Slug: slugOf(name)}
			if !r.URLSafe() {
				s.logger.Debug("routes: slug is not URL-safe", "section", sec.Title, "slug", r.Slug)
			}
			routes = append(routes, r)
		}
	}
	return routes
}

// URLSafe reports whether the slug can be used in a URL as is.
// Unsafe slugs still route; they just need escaping.
func (r Route) URLSafe() bool {
	return slug.IsValid(r.Slug)
}

// SuggestedSlug is the normalized form of the slug, or "" if it cannot be
// normalized.
func (r Route) SuggestedSlug() string {
	s, err := slug.Normalize(r.Slug)
	if err != nil {
		return ""
	}
	return s
}

// UnsafeRoutes returns the routes whose slug is not URL-safe.
func UnsafeRoutes(routes []Route) []Route {
	var out []Route
	for _, r := range routes {
		if !r.URLSafe() {
			out = append(out, r)
		}
	}
	return out
}

// FindSectionByRouteType returns the first section with a content
// directory whose route type equals routeType.
func FindSectionByRouteType(sections []Section, routeType string) (Section, bool) {
	for _, sec := range sections {
		if sec.HasContent() && sec.RouteType() == routeType {
			return sec, true
		}
	}
	return Section{}, false
}

// FindSection is FindSectionByRouteType over the configured sections.
func (s *Service) FindSection(routeType string) (Section, bool) {
	return FindSectionByRouteType(s.settings.Sections, routeType)
}
