package pipeline

import (
	"bytes"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// codeBlockPriority places fenced code rendering ahead of goldmark's default
// HTML renderer (priority 1000).
const codeBlockPriority = 200

// codeBlockRenderer renders fenced code through goldmark-highlighting.
// Blocks whose language is missing or unknown to chroma are highlighted as
// PlaintextLanguage, so every fence comes out with the theme's class hooks.
// The fallback works on the parsed block, never on the markdown source, so
// fences nested in lists or quotes and code inside indented blocks are
// rendered as written.
type codeBlockRenderer struct {
	inner     renderer.NodeRenderer
	highlight renderer.NodeRendererFunc
}

// registerFunc adapts a function to renderer.NodeRendererFuncRegisterer.
type registerFunc func(ast.NodeKind, renderer.NodeRendererFunc)

func (f registerFunc) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	f(kind, fn)
}

func newCodeBlockRenderer(opts ...highlighting.Option) *codeBlockRenderer {
	r := &codeBlockRenderer{inner: highlighting.NewHTMLRenderer(opts...)}
	r.inner.RegisterFuncs(registerFunc(func(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
		if kind == ast.KindFencedCodeBlock {
			r.highlight = fn
		}
	}))
	return r
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

// SetOption forwards renderer options (e.g. html.WithUnsafe) to the highlighter.
func (r *codeBlockRenderer) SetOption(name renderer.OptionName, value any) {
	if so, ok := r.inner.(renderer.SetOptioner); ok {
		so.SetOption(name, value)
	}
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)
	if !entering {
		return r.highlight(w, source, node, entering)
	}
	if lang := n.Language(source); len(lang) > 0 && IsKnownLanguage(string(lang)) {
		return r.highlight(w, source, node, entering)
	}
	src, block := plaintextBlock(n, source)
	return r.highlight(w, src, block, entering)
}

// plaintextBlock copies n into a standalone source whose info string names
// PlaintextLanguage. Attributes after the original language are kept.
func plaintextBlock(n *ast.FencedCodeBlock, source []byte) ([]byte, *ast.FencedCodeBlock) {
	var info []byte
	if n.Info != nil {
		info = n.Info.Segment.Value(source)
	}
	rest := []byte{}
	if i := bytes.IndexAny(info, " {"); i >= 0 {
		rest = info[i:]
	}

	var buf bytes.Buffer
	buf.WriteString(PlaintextLanguage)
	buf.Write(rest)
	infoSeg := text.NewSegment(0, buf.Len())
	buf.WriteByte('\n')

	lines := text.NewSegments()
	for i := 0; i < n.Lines().Len(); i++ {
		start := buf.Len()
		buf.Write(n.Lines().At(i).Value(source))
		lines.Append(text.NewSegment(start, buf.Len()))
	}

	block := ast.NewFencedCodeBlock(ast.NewTextSegment(infoSeg))
	block.SetLines(lines)
	for _, attr := range n.Attributes() {
		block.SetAttribute(attr.Name, attr.Value)
	}
	return buf.Bytes(), block
}
