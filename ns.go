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

const (
	// RDFNamespace is the namespace for RDF.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// CCNamespace is the Creative Commons metadata namespace.  Work,
	// Agent and License nodes live here.
	CCNamespace = "http://web.resource.org/cc/"

	// DublinCoreNamespace is the namespace for the Dublin Core element
	// set.
	DublinCoreNamespace = "http://purl.org/dc/elements/1.1/"
)

// Accepted prefix spellings for the elements the locator and extractor look
// for.  SVG producers vary widely here, so each lookup lists every spelling
// seen in the wild.
var (
	metadataAliases = []string{"metadata", "svg:metadata"}
	rdfRootAliases  = []string{"rdf:RDF", "RDF"}
	workAliases     = []string{"cc:Work", "Work"}
	agentAliases    = []string{"cc:Agent", "Agent"}
	licenseAliases  = []string{"cc:license", "license"}
	bagAliases      = []string{"rdf:Bag", "Bag"}
	listItemAliases = []string{"rdf:li", "li"}
)
