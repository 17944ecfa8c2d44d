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

// Package svgmeta reads, edits and writes the RDF metadata island embedded
// in SVG clip art files.
//
// # Records
//
// The main type in this package is the [Record] type, which holds the
// bibliographic and licensing metadata of one document: title, creator,
// owner, publisher, license, keywords, language and description.  A record
// is populated from a source document with [Record.Extract], which accepts
// a file path, a literal XML text, or an http URL; [Record.ExtractReader]
// reads from an open stream.
//
// Extraction tolerates the structural variation found in real-world SVG:
// the RDF block may be wrapped in a <metadata> element under several
// namespace-prefix spellings, or stand bare at the document root.  Setting
// [Record.StrictValidation] rejects documents without the <metadata>
// wrapper.  After extraction the creator, owner and publisher fields
// default to each other, since one party usually fills all three roles.
//
// # Serialization
//
// [Record.ToRDF] renders a record back into a self-contained RDF/XML
// fragment.  Known licenses (public domain and the Creative Commons 2.0
// family) gain their canonical permits/requires/prohibits rights block.
// When the source document was retained at extraction time, [Record.Embed]
// splices fresh RDF into it and re-emits the complete document, leaving
// unrelated content intact.
//
// The underlying prefix-preserving XML tree lives in the xmltree
// subpackage.
package svgmeta
