package portfolio_test

import (
	"fmt"

	"github.com/felipeqf/portfolio"
)

func ExampleRouteType() {
	fmt.Println(portfolio.RouteType("My  Side Projects"))
	// Output: my-side-projects
}

func ExampleSortItems() {
	items := []portfolio.ContentItem{
		{Slug: "older", Metadata: portfolio.Metadata{Date: "2023-01-01", DisplayOrder: portfolio.Unordered}},
		{Slug: "pinned", Metadata: portfolio.Metadata{DisplayOrder: 1}},
		{Slug: "newer", Metadata: portfolio.Metadata{Date: "2024-01-01", DisplayOrder: portfolio.Unordered}},
	}
	portfolio.SortItems(items)
	for _, it := range items {
		fmt.Println(it.Slug)
	}
	// Output:
	// pinned
	// newer
	// older
}

func ExampleNavigationIndex_FindNext() {
	idx := portfolio.NewNavigationIndex([]portfolio.NavigationItem{
		{Slug: "a", Title: "A", DisplayOrder: 1},
		{Slug: "draft", Title: "Draft", DisplayOrder: 2, Skip: true},
		{Slug: "b", Title: "B", DisplayOrder: 3},
	}, "projects")

	for _, slug := range []string{"a", "draft", "b"} {
		next, _ := idx.FindNext(slug)
		fmt.Printf("%s -> /%s/%s\n", slug, next.Type, next.Slug)
	}
	// Output:
	// a -> /projects/b
	// draft -> /projects/b
	// b -> /projects/a
}
