package layout

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
)

// legalParser reads inline markup only; block syntax such as headings or
// lists is kept as literal text.
var legalParser = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
	parser.WithInlineParsers(parser.DefaultInlineParsers()...),
)

// legalText strips inline Markdown from a legal note. strong reports whether
// the whole note is wrapped in strong emphasis.
func legalText(source string) (plain string, strong bool) {
	if !strings.ContainsAny(source, "*_`<[&\\") {
		return source, false
	}
	src := []byte(source)
	doc := legalParser.Parse(text.NewReader(src))

	var sb strings.Builder
	paragraphs := 0
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if paragraphs > 0 {
			sb.WriteByte('\n')
		}
		paragraphs++
		strong = paragraphs == 1 && isStrong(block)
		writeInline(&sb, block, src)
	}
	return sb.String(), strong
}

func isStrong(block ast.Node) bool {
	if block.ChildCount() != 1 {
		return false
	}
	em, ok := block.FirstChild().(*ast.Emphasis)
	return ok && em.Level == 2
}

func writeInline(sb *strings.Builder, block ast.Node, source []byte) {
	_ = ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			value := util.UnescapePunctuations(n.Segment.Value(source))
			sb.WriteString(html.UnescapeString(string(value)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(n.Value)
		case *ast.AutoLink:
			sb.Write(n.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			var raw []byte
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				raw = append(raw, seg.Value(source)...)
			}
			writeInlineHTML(sb, raw)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}
