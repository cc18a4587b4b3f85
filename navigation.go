package portfolio

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/felipeqf/portfolio/internal/fileutil"
	"github.com/felipeqf/portfolio/internal/pipeline"
)

// NavigationItem is the part of a content item navigation needs.
type NavigationItem struct {
	Slug         string
	Title        string
	Date         string
	Skip         bool
	DisplayOrder DisplayOrder
}

// NavigationItemOf projects a content item for navigation.
func NavigationItemOf(item ContentItem) NavigationItem {
	return navigationItem(item.Slug, item.Metadata)
}

func navigationItem(slug string, meta Metadata) NavigationItem {
	return NavigationItem{
		Slug:         slug,
		Title:        meta.Title,
		Date:         meta.Date,
		Skip:         meta.Skip,
		DisplayOrder: meta.DisplayOrder,
	}
}

func compareNavigationItems(a, b NavigationItem) int {
	return compareOrderAndDate(a.DisplayOrder, b.DisplayOrder, a.Date, b.Date)
}

// NavigationIndex links each item of a section to the one after it.
// Items marked skip are left out of the cycle.
type NavigationIndex struct {
	routeType string
	all       []NavigationItem // every item, sorted
	cycle     []NavigationItem // non-skipped items, sorted
}

// NewNavigationIndex sorts items and builds the cycle. References it
// returns carry routeType as their Type.
func NewNavigationIndex(items []NavigationItem, routeType string) *NavigationIndex {
	all := slices.Clone(items)
	slices.SortStableFunc(all, compareNavigationItems)

	cycle := make([]NavigationItem, 0, len(all))
	for _, it := range all {
		if !it.Skip {
			cycle = append(cycle, it)
		}
	}

	return &NavigationIndex{routeType: routeType, all: all, cycle: cycle}
}

// Items returns the non-skipped items in navigation order.
func (n *NavigationIndex) Items() []NavigationItem {
	return slices.Clone(n.cycle)
}

// Successors maps every non-skipped slug to the next one, wrapping from
// the last item to the first. With fewer than two items the map is empty.
func (n *NavigationIndex) Successors() map[string]ContentReference {
	out := make(map[string]ContentReference, len(n.cycle))
	if len(n.cycle) < 2 {
		return out
	}
	for i, it := range n.cycle {
		out[it.Slug] = n.ref(n.cycle[(i+1)%len(n.cycle)])
	}
	return out
}

// FindNext returns the item after slug.
//
// slug is looked up among all items, skipped ones included; the answer is
// the first non-skipped item after slug's position, wrapping to the start.
// For a non-skipped slug this matches Successors. A skipped slug gets the
// successor it would have if it were in the cycle. Unknown slugs, and
// sections with fewer than two non-skipped items, have no next item.
func (n *NavigationIndex) FindNext(slug string) (ContentReference, bool) {
	idx := slices.IndexFunc(n.all, func(it NavigationItem) bool { return it.Slug == slug })
	if idx < 0 || len(n.cycle) < 2 {
		return ContentReference{}, false
	}
	for _, it := range n.all[idx+1:] {
		if !it.Skip {
			return n.ref(it), true
		}
	}
	return n.ref(n.cycle[0]), true
}

func (n *NavigationIndex) ref(it NavigationItem) ContentReference {
	return ContentReference{Slug: it.Slug, Title: it.Title, Type: n.routeType}
}

// BuildSuccessors links the non-skipped items, in the given order, into a
// single cycle and returns each slug's successor.
func BuildSuccessors(items []ContentItem, routeType string) map[string]ContentReference {
	nav := make([]NavigationItem, 0, len(items))
	for _, it := range items {
		if !it.Metadata.Skip {
			nav = append(nav, NavigationItemOf(it))
		}
	}
	idx := &NavigationIndex{routeType: routeType, all: nav, cycle: nav}
	return idx.Successors()
}

// LoadNavigation builds a NavigationIndex for dir from front matter alone;
// documents are not rendered and no images are copied. Unreadable
// directories and documents are logged and left out.
func (s *Service) LoadNavigation(dir, routeType string) *NavigationIndex {
	names, err := fileutil.ListFiles(dir, markdownExt)
	if err != nil {
		s.logger.Warn("navigation: could not list directory", "dir", dir, "err", err)
		return NewNavigationIndex(nil, routeType)
	}

	items := make([]NavigationItem, 0, len(names))
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- inside a configured content directory
		if err != nil {
			s.logger.Warn("navigation: skipping document", "file", filepath.Join(dir, name), "err", err)
			continue
		}
		fields, _ := pipeline.ParseFrontMatter(string(raw))
		items = append(items, navigationItem(slugOf(name), NormalizeMetadata(fields)))
	}

	return NewNavigationIndex(items, routeType)
}
