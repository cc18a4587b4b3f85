// Package portfolio turns per-section directories of markdown files into
// rendered content for a static portfolio site.
//
// # Quick Start
//
// Build a service from settings and load a page:
//
//	svc := portfolio.New(
//	    portfolio.WithSettings(portfolio.Settings{
//	        BasePath: "/portfolio",
//	        Theme:    "dark",
//	        Sections: []portfolio.Section{
//	            {Title: "My Projects", Path: "content/projects", Type: "grid"},
//	        },
//	    }),
//	    portfolio.WithContentRoot("/srv/site"),
//	)
//
//	page, err := svc.LoadPage("my-projects", "weather-station")
//	if errors.Is(err, portfolio.ErrItemNotFound) {
//	    // 404
//	}
//	fmt.Println(page.HTML, page.Next)
//
// # Content Pipeline
//
// Every document goes through the same stages:
//
//  1. Front matter extraction (YAML between --- delimiters)
//  2. Metadata defaults (title "Untitled", unordered display order, ...)
//  3. Markdown to HTML via Goldmark, with chroma highlighting for fenced
//     code and image references rewritten to served paths
//  4. Ordering by display_order, then date (newest first)
//
// Images referenced by a document are looked up in the images/ folder next
// to it and copied, once, to <static>/content/<section>/. The HTML points at
// <basePath>/content/<section>/<file>.
//
// # Routes and Navigation
//
// Each section's route type is its title lowercased with whitespace runs
// replaced by "-". Routes enumerates every (route type, slug) pair, and
// LoadPage attaches the next item of the section, wrapping from the last
// item to the first. Documents with skip: true are left out of navigation.
//
// # Errors
//
// Missing directories, unreadable documents, malformed front matter and
// failed image copies are logged and never returned. Only a directly
// requested page reports ErrSectionNotFound or ErrItemNotFound.
package portfolio
