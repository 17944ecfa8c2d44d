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

// Package xmltree parses XML documents into a simplified element tree and
// prints trees back to text.
//
// Unlike encoding/xml, the parser performs no namespace resolution: element
// and attribute names are kept exactly as written in the source, prefix and
// all.  The metadata dialects this package is used with are distinguished by
// their prefix spellings ("metadata" vs "svg:metadata", "rdf:RDF" vs "RDF"),
// and documents must be re-emitted with their original names intact.
//
// Any text before the root element (XML declaration, doctype, comments) is
// captured verbatim as the document preamble so that it survives a
// parse/print round trip.
package xmltree

import "strings"

// A NodeType distinguishes the kinds of tree nodes.
type NodeType int

const (
	// ElementNode is an element with a name, attributes and children.
	ElementNode NodeType = iota

	// TextNode is character data.  Data holds the decoded text.
	TextNode

	// CommentNode is a comment.  Data holds the text between the
	// "<!--" and "-->" markers.
	CommentNode
)

// A Node is one node of a parsed XML document.
type Node struct {
	Type NodeType

	// Name is the element name exactly as written in the source,
	// including any namespace prefix.  It is empty for text and
	// comment nodes.
	Name string

	// Data is the decoded character data of a text node, or the body
	// of a comment node.  It is empty for element nodes.
	Data string

	Attrs    []Attr
	Children []*Node
}

// An Attr is a single attribute of an element node.
type Attr struct {
	Name  string
	Value string
}

// A Document is a parsed XML document: the root element plus any text which
// preceded it in the source.
type Document struct {
	// Preamble is the verbatim source text before the root element:
	// XML declaration, processing instructions, doctype and comments.
	Preamble string

	Root *Node
}

// NewElement returns a new element node with the given name.
func NewElement(name string) *Node {
	return &Node{Type: ElementNode, Name: name}
}

// NewText returns a new text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// Text returns the concatenated character data of the node's direct
// children.  For a text node it returns the node's own data.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	for _, c := range n.Children {
		if c.Type == TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// Attr returns the value of the named attribute, or "" if the attribute is
// not present.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets the named attribute, replacing an existing value.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// FirstChild returns the first child element whose name matches one of the
// given names, or nil if there is none.  Names are compared literally,
// so callers list every accepted prefix spelling.
func (n *Node) FirstChild(names ...string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		for _, name := range names {
			if c.Name == name {
				return c
			}
		}
	}
	return nil
}

// AppendChild appends c to the node's children.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// AppendText appends a text node with the given data.
func (n *Node) AppendText(data string) {
	n.AppendChild(NewText(data))
}

// ReplaceChild replaces the first child element matching one of the given
// names with repl and reports whether a replacement took place.
func (n *Node) ReplaceChild(repl *Node, names ...string) bool {
	for i, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		for _, name := range names {
			if c.Name == name {
				n.Children[i] = repl
				return true
			}
		}
	}
	return false
}
