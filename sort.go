package portfolio

import (
	"cmp"
	"slices"
	"time"

	"github.com/felipeqf/portfolio/internal/dateutil"
)

// CompareItems orders content by display order ascending, then date
// descending. Unordered items come after every ordered one. An empty date
// counts as the Unix epoch; an unparsable date sorts after every valid
// date, and two unparsable dates compare equal.
func CompareItems(a, b ContentItem) int {
	return compareOrderAndDate(a.Metadata.DisplayOrder, b.Metadata.DisplayOrder, a.Metadata.Date, b.Metadata.Date)
}

// SortItems sorts items in place by CompareItems, keeping the relative
// order of items that compare equal.
func SortItems(items []ContentItem) {
	slices.SortStableFunc(items, CompareItems)
}

func compareOrderAndDate(orderA, orderB DisplayOrder, dateA, dateB string) int {
	if orderA != orderB {
		return cmp.Compare(orderA, orderB)
	}

	ta, okA := sortDate(dateA)
	tb, okB := sortDate(dateB)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return tb.Compare(ta)
}

// sortDate maps a metadata date to its sort instant.
func sortDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Unix(0, 0).UTC(), true
	}
	return dateutil.ParseContentDate(s)
}
