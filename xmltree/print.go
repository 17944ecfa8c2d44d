// github.com/clipforge/svgmeta - RDF licensing metadata for SVG clip art
// Copyright (C) 2026  The svgmeta authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package xmltree

import "strings"

// escaper rewrites the five characters which must not appear literally in
// character data or attribute values.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape replaces <, >, &, ' and " with their entity references.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Encode renders the document as text: the verbatim preamble followed by
// the root element.  The output is newline-terminated.
func (d *Document) Encode() string {
	var b strings.Builder
	b.WriteString(d.Preamble)
	if d.Preamble != "" && !strings.HasSuffix(d.Preamble, "\n") {
		b.WriteByte('\n')
	}
	writeNode(&b, d.Root, 0)
	b.WriteByte('\n')
	return b.String()
}

// Encode renders the node and its subtree as indented text, newline
// terminated.
func (n *Node) Encode() string {
	var b strings.Builder
	writeNode(&b, n, 0)
	b.WriteByte('\n')
	return b.String()
}

const indentStep = "  "

func writeNode(b *strings.Builder, n *Node, depth int) {
	switch n.Type {
	case TextNode:
		b.WriteString(Escape(n.Data))
	case CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case ElementNode:
		writeElement(b, n, depth)
	}
}

func writeElement(b *strings.Builder, n *Node, depth int) {
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(Escape(a.Value))
		b.WriteByte('"')
	}

	if len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')

	// Elements with character data anywhere among their children are
	// printed inline, so that no whitespace is introduced into text.
	if hasText(n) {
		for _, c := range n.Children {
			writeNode(b, c, depth+1)
		}
	} else {
		for _, c := range n.Children {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(indentStep, depth+1))
			writeNode(b, c, depth+1)
		}
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indentStep, depth))
	}

	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

func hasText(n *Node) bool {
	for _, c := range n.Children {
		if c.Type == TextNode {
			return true
		}
	}
	return false
}
