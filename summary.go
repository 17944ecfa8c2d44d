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
	"fmt"
	"strings"
)

// Summary returns the plain-text view of the record: one line each for
// title, author and license, then one continuation line per keyword.
func (r *Record) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Author: %s\n", r.Creator)
	fmt.Fprintf(&b, "License: %s\n", r.License)
	b.WriteString("Keywords:\n")
	for _, kw := range r.Keywords.Sorted() {
		fmt.Fprintf(&b, "   %s\n", kw)
	}
	return b.String()
}
