package pipeline

import (
	"errors"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/felipeqf/portfolio/internal/yamlutil"
)

// errBadDestination reports a decoder misuse; it never escapes ParseFrontMatter.
var errBadDestination = errors.New("front matter destination must be *map[string]any")

// frontMatterFormats are the delimiters recognized at the top of a document.
// Both decode through yamlutil so front matter and settings share one YAML engine.
var frontMatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", decodeFrontMatter),
	frontmatter.NewFormat("---yaml", "---", decodeFrontMatter),
}

func decodeFrontMatter(data []byte, v any) error {
	dst, ok := v.(*map[string]any)
	if !ok {
		return errBadDestination
	}
	m, err := yamlutil.DecodeMap(data)
	if err != nil {
		return err
	}
	*dst = m
	return nil
}

// ParseFrontMatter splits raw into its front matter fields and body.
// A document without a front matter block, or with one that fails to
// decode, yields an empty map and the whole input as body.
func ParseFrontMatter(raw string) (map[string]any, string) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(raw), &meta, frontMatterFormats...)
	if err != nil {
		return map[string]any{}, raw
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, string(body)
}
