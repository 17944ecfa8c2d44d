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

package svgmeta

import "github.com/clipforge/svgmeta/xmltree"

// Embed serializes the record and splices the result into the retained
// source document, returning the complete document text with the captured
// preamble prepended.  Unrelated document content is preserved
// structurally; exact whitespace of re-serialized regions is not.
//
// Embed fails with [ErrNotRetained] unless the extraction call requested
// retention.
func (r *Record) Embed() (string, error) {
	if r.retained == nil {
		return "", ErrNotRetained
	}

	frag, err := xmltree.Parse([]byte(r.ToRDF()))
	if err != nil {
		// ToRDF output is always well-formed; this guards the printer
		// against regressions.
		return "", &ParseError{Err: err}
	}

	root := r.retained.Root
	for _, name := range rdfRootAliases {
		if root.Name == name {
			// Bare-RDF document: the fragment replaces it wholesale.
			doc := &xmltree.Document{Preamble: r.retained.Preamble, Root: frag.Root}
			return doc.Encode(), nil
		}
	}

	meta := root.FirstChild(metadataAliases...)
	if meta == nil {
		// Source had bare RDF (or none) under the root: wrap the
		// fragment in a metadata element, placed first.
		meta = xmltree.NewElement("metadata")
		meta.AppendChild(frag.Root)
		if !root.ReplaceChild(meta, rdfRootAliases...) {
			root.Children = append([]*xmltree.Node{meta}, root.Children...)
		}
		return r.retained.Encode(), nil
	}

	if !meta.ReplaceChild(frag.Root, rdfRootAliases...) {
		meta.AppendChild(frag.Root)
	}
	return r.retained.Encode(), nil
}
