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

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput indicates that extraction was called without a
	// source.
	ErrMissingInput = errors.New("svgmeta: no source given")

	// ErrFileNotFound indicates that the source path does not exist.
	ErrFileNotFound = errors.New("svgmeta: file not found")

	// ErrMissingRDFRoot indicates that the document contains no RDF
	// block, neither inside a <metadata> element nor at the root.
	ErrMissingRDFRoot = errors.New("svgmeta: no RDF block found")

	// ErrMissingMetadataWrapper indicates that strict validation is
	// enabled and the RDF block is not wrapped in a <metadata> element.
	ErrMissingMetadataWrapper = errors.New("svgmeta: RDF block not wrapped in a metadata element")

	// ErrMissingWork indicates that the RDF block contains no Work node.
	ErrMissingWork = errors.New("svgmeta: no Work node in RDF block")

	// ErrNotRetained indicates a splice request on a record whose source
	// document was not retained at extraction time.
	ErrNotRetained = errors.New("svgmeta: source document was not retained")
)

// A ParseError wraps a failure from the XML layer or from fetching the
// source document.
type ParseError struct {
	Source string // file path or URL, if known
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("svgmeta: parse %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("svgmeta: parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
