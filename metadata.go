package portfolio

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/felipeqf/portfolio/internal/dateutil"
)

// Front matter keys with a dedicated Metadata field.
const (
	keyTitle        = "title"
	keyDate         = "date"
	keyLink         = "link"
	keyTags         = "tags"
	keyDescription  = "description"
	keySkip         = "skip"
	keyDisplayOrder = "display_order"
	keyImage        = "image"
)

// DefaultTitle is used when a document has no title field.
const DefaultTitle = "Untitled"

var knownKeys = map[string]struct{}{
	keyTitle: {}, keyDate: {}, keyLink: {}, keyTags: {}, keyDescription: {},
	keySkip: {}, keyDisplayOrder: {}, keyImage: {},
}

// NormalizeMetadata applies field defaults to decoded front matter.
// Image is left as the raw reference; the loader resolves it.
//
//   - title: absent or null gives "Untitled"; an explicit "" is kept.
//   - date, link, description, image: falsy values give "".
//   - tags: a list, or a comma separated string; empty entries are dropped.
//   - skip: any truthy value.
//   - display_order: finite numbers only; everything else is Unordered.
func NormalizeMetadata(fields map[string]any) Metadata {
	meta := Metadata{
		Title:        DefaultTitle,
		Tags:         []string{},
		DisplayOrder: Unordered,
	}

	if v, ok := fields[keyTitle]; ok && v != nil {
		meta.Title = stringValue(v)
	}
	meta.Date = dateValue(fields[keyDate])
	meta.Link = falsyString(fields[keyLink])
	meta.Description = falsyString(fields[keyDescription])
	meta.Image = falsyString(fields[keyImage])
	meta.Tags = tagsValue(fields[keyTags])
	meta.Skip = truthy(fields[keySkip])
	meta.DisplayOrder = orderValue(fields[keyDisplayOrder])

	for k, v := range fields {
		if _, known := knownKeys[k]; known {
			continue
		}
		if meta.Extra == nil {
			meta.Extra = make(map[string]any)
		}
		meta.Extra[k] = v
	}

	return meta
}

// stringValue renders a scalar front matter value as text.
func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return dateutil.FormatContentDate(x)
	default:
		return fmt.Sprint(x)
	}
}

// falsyString is stringValue with falsy values mapped to "".
func falsyString(v any) string {
	if !truthy(v) {
		return ""
	}
	return stringValue(v)
}

func dateValue(v any) string {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return dateutil.FormatContentDate(t)
	}
	return falsyString(v)
}

func tagsValue(v any) []string {
	tags := []string{}
	switch x := v.(type) {
	case []any:
		for _, t := range x {
			if t == nil {
				continue
			}
			if s := strings.TrimSpace(stringValue(t)); s != "" {
				tags = append(tags, s)
			}
		}
	case []string:
		for _, t := range x {
			if s := strings.TrimSpace(t); s != "" {
				tags = append(tags, s)
			}
		}
	case string:
		for _, t := range strings.Split(x, ",") {
			if s := strings.TrimSpace(t); s != "" {
				tags = append(tags, s)
			}
		}
	}
	return tags
}

func orderValue(v any) DisplayOrder {
	f, ok := number(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Unordered
	}
	return DisplayOrder(f)
}

// number converts any YAML numeric scalar to float64.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// truthy follows the usual scripting notion: false, 0, NaN, "" and null
// are falsy; everything else, including empty lists, is truthy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case time.Time:
		return true
	}
	if f, ok := number(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}
