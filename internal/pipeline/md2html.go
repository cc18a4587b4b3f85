package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// imageScopeKey carries the per-render imageScope through goldmark's parser context.
var imageScopeKey = parser.NewContextKey()

// imageScope identifies where the images of one document live.
type imageScope struct {
	sourceDir   string
	sectionType string
}

// Resolver resolves image references for the renderer.
type Resolver interface {
	Resolve(reference, sourceDir, sectionType string) string
}

// Renderer converts markdown bodies to HTML fragments.
// A single Renderer may be used concurrently: the goldmark engine is built
// once, and each call carries its own image scope in a fresh parser context.
type Renderer struct {
	md goldmark.Markdown
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	style string
}

// WithHighlightStyle selects the chroma style name passed to the highlighter.
func WithHighlightStyle(style string) RendererOption {
	return func(c *rendererConfig) {
		if style != "" {
			c.style = style
		}
	}
}

// NewRenderer creates a Renderer with GFM extensions, syntax highlighting
// (with a plaintext fallback for unknown languages) and image rewriting
// through resolver.
func NewRenderer(resolver Resolver, opts ...RendererOption) *Renderer {
	cfg := rendererConfig{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&imageTransformer{resolver: resolver}, 100),
			),
		),
		goldmark.WithRendererOptions(
			// Content is written by the site owner; raw HTML passes through.
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newCodeBlockRenderer(
					highlighting.WithStyle(cfg.style),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true), // Styled by the theme stylesheet
					),
				), codeBlockPriority),
			),
		),
	)
	return &Renderer{md: md}
}

// Render converts a markdown body to an HTML fragment. Image references are
// resolved relative to sourceDir and published under sectionType.
func (r *Renderer) Render(body, sourceDir, sectionType string) (string, error) {
	content := NormalizeLineEndings(body)

	pc := parser.NewContext()
	pc.Set(imageScopeKey, imageScope{sourceDir: sourceDir, sectionType: sectionType})

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// imageTransformer rewrites image destinations through the resolver.
type imageTransformer struct {
	resolver Resolver
}

// Transform implements parser.ASTTransformer.
func (t *imageTransformer) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	if t.resolver == nil {
		return
	}
	scope, ok := pc.Get(imageScopeKey).(imageScope)
	if !ok {
		return
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		resolved := t.resolver.Resolve(string(img.Destination), scope.sourceDir, scope.sectionType)
		img.Destination = []byte(resolved)
		return ast.WalkContinue, nil
	})
}
