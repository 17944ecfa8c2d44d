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

// Equal reports whether two records describe the same work: identical
// creator, title and license.  Keyword sets and all other fields are
// excluded from the comparison.
func Equal(a, b *Record) bool {
	return a.Creator == b.Creator &&
		a.Title == b.Title &&
		a.License == b.License
}
