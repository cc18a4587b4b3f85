package portfolio

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field length limits for settings.
const (
	MaxTitleLength = 100  // Section title
	MaxPathLength  = 4096 // Content directory path
	MaxThemeLength = 64   // Theme or highlight style name
)

// basePathPattern accepts "" or "/seg[/seg...]" without a trailing slash.
var basePathPattern = regexp.MustCompile(`^(/[^/\s]+)+$`)

// Settings is the site configuration the pipeline consumes.
// It is read once and treated as immutable.
type Settings struct {
	BasePath string    `yaml:"basePath" json:"basePath"` // Deployment subpath, e.g. "/portfolio" (empty = root)
	Theme    string    `yaml:"theme" json:"theme"`       // "light", "dark" or a chroma style name
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section is a named collection of content documents.
type Section struct {
	Title string `yaml:"title" json:"title"`
	Path  string `yaml:"path,omitempty" json:"path,omitempty"` // Content directory; empty = no documents
	Type  string `yaml:"type" json:"type"`                     // Layout hint for the page renderer
}

// HasContent reports whether the section points at a content directory.
func (s Section) HasContent() bool {
	return strings.TrimSpace(s.Path) != ""
}

// RouteType is the URL segment derived from the section title.
func (s Section) RouteType() string {
	return RouteType(s.Title)
}

// Validate checks section fields.
func (s Section) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title,
			validation.Required,
			validation.Length(1, MaxTitleLength),
			validation.By(func(value any) error {
				if strings.TrimSpace(value.(string)) == "" {
					return validation.NewError("validation_title_blank", "must contain a non-space character")
				}
				return nil
			}),
		),
		validation.Field(&s.Path,
			validation.Length(0, MaxPathLength),
			validation.By(func(value any) error {
				if strings.ContainsRune(value.(string), 0) {
					return validation.NewError("validation_path_nul", "must not contain NUL bytes")
				}
				return nil
			}),
		),
	)
}

// Validate checks that settings are usable by the pipeline.
// Duplicate route types are not an error; see Conflicts.
func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil settings", ErrInvalidSettings)
	}
	err := validation.ValidateStruct(s,
		validation.Field(&s.BasePath, validation.Match(basePathPattern).Error("must start with / and not end with /")),
		validation.Field(&s.Theme, validation.Length(0, MaxThemeLength)),
		validation.Field(&s.Sections),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// ContentSections returns the sections that have a content directory.
func (s Settings) ContentSections() []Section {
	out := make([]Section, 0, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.HasContent() {
			out = append(out, sec)
		}
	}
	return out
}

// Conflicts lists route types shared by more than one content section,
// in order of first appearance. Lookups resolve a conflict to the first
// section in settings order.
func (s Settings) Conflicts() []string {
	seen := make(map[string]int)
	var conflicts []string
	for _, sec := range s.ContentSections() {
		rt := sec.RouteType()
		seen[rt]++
		if seen[rt] == 2 {
			conflicts = append(conflicts, rt)
		}
	}
	return conflicts
}

// RouteType lowercases title and replaces each run of whitespace with "-".
// "My  Projects" becomes "my-projects".
func RouteType(title string) string {
	// Casers are stateful; one per call keeps RouteType goroutine-safe.
	lower := cases.Lower(language.Und).String(title)

	var b strings.Builder
	b.Grow(len(lower))
	inSpace := false
	for _, r := range lower {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayOrder is an explicit sort key. Unordered content carries +Inf.
type DisplayOrder float64

// Unordered is the DisplayOrder of content without an explicit order.
var Unordered = DisplayOrder(math.Inf(1))

// IsSet reports whether the order was given explicitly.
func (d DisplayOrder) IsSet() bool {
	return !math.IsInf(float64(d), 1)
}

// MarshalJSON writes unordered and other non-finite values as null; JSON
// has no infinity or NaN.
func (d DisplayOrder) MarshalJSON() ([]byte, error) {
	if f := float64(d); math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

// Metadata is the normalized front matter of a content document.
type Metadata struct {
	Title        string         `yaml:"title" json:"title"`
	Date         string         `yaml:"date" json:"date"`
	Link         string         `yaml:"link" json:"link"`
	Tags         []string       `yaml:"tags" json:"tags"`
	Description  string         `yaml:"description" json:"description"`
	Skip         bool           `yaml:"skip" json:"skip"`
	DisplayOrder DisplayOrder   `yaml:"display_order" json:"display_order"`
	Image        string         `yaml:"image" json:"image"`           // Served path once loaded
	Extra        map[string]any `yaml:"extra,omitempty" json:"extra,omitempty"` // Unrecognized front matter keys
}

// ContentItem is one rendered markdown document.
type ContentItem struct {
	Slug       string   `yaml:"slug" json:"slug"`
	Type       string   `yaml:"type" json:"type"` // Section type: last segment of the content directory
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	HTML       string   `yaml:"html" json:"html"`
	SourcePath string   `yaml:"sourcePath" json:"sourcePath"`
}

// ContentReference points at another content item, e.g. the next one.
type ContentReference struct {
	Slug  string `yaml:"slug" json:"slug"`
	Title string `yaml:"title" json:"title"`
	Type  string `yaml:"type" json:"type"` // Route type
}

// Route is one addressable page: /<Type>/<Slug>.
type Route struct {
	Type string `yaml:"type" json:"type"`
	Slug string `yaml:"slug" json:"slug"`
}

// Page is a fully resolved content item plus its navigation link.
type Page struct {
	ContentItem `yaml:",inline"`
	RouteType   string            `yaml:"routeType" json:"routeType"`
	Next        *ContentReference `yaml:"nextItem,omitempty" json:"nextItem,omitempty"`
}

// SectionContent is a section's listing: items in display order and tags
// by descending frequency.
type SectionContent struct {
	Content []ContentItem `yaml:"content" json:"content"`
	Tags    []string      `yaml:"tags" json:"tags"`
}
