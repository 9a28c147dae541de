package layout

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// writeInlineHTML keeps the text of an inline HTML fragment. Line break
// elements become newlines; every other tag is dropped.
func writeInlineHTML(sb *strings.Builder, raw []byte) {
	z := html.NewTokenizer(bytes.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				sb.WriteByte('\n')
			}
		}
	}
}
