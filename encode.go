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

// ToRDF renders the record as an RDF/XML fragment, newline-terminated.
// The fragment is self-contained: it can stand alone or be embedded in a
// host document's <metadata> element via [Record.Embed].
//
// Serialization never fails; unset fields serialize as empty elements.
// All interpolated text passes through the tree printer's escaping, so
// attacker-controlled field values cannot break out of their elements.
func (r *Record) ToRDF() string {
	return r.buildRDF().Encode()
}

// buildRDF builds the fragment as a tree.  Escaping is left to the
// printer, so it is structural rather than per-field.
func (r *Record) buildRDF() *xmltree.Node {
	rdf := xmltree.NewElement("rdf:RDF")
	rdf.SetAttr("xmlns", CCNamespace)
	rdf.SetAttr("xmlns:dc", DublinCoreNamespace)
	rdf.SetAttr("xmlns:rdf", RDFNamespace)

	work := xmltree.NewElement("Work")
	work.SetAttr("rdf:about", r.AboutURL)
	rdf.AppendChild(work)

	work.AppendChild(textElement("dc:title", r.Title))
	work.AppendChild(textElement("dc:description", r.Description))

	subject := xmltree.NewElement("dc:subject")
	bag := xmltree.NewElement("rdf:Bag")
	for _, kw := range r.Keywords.Sorted() {
		bag.AppendChild(textElement("rdf:li", kw))
	}
	subject.AppendChild(bag)
	work.AppendChild(subject)

	work.AppendChild(agentElement("dc:publisher", r.Publisher, r.PublisherURL))
	work.AppendChild(agentElement("dc:creator", r.Creator, r.CreatorURL))
	work.AppendChild(agentElement("dc:rights", r.Owner, r.OwnerURL))

	work.AppendChild(textElement("dc:date", r.Date))
	work.AppendChild(textElement("dc:format", "image/svg+xml"))
	work.AppendChild(resourceRef("dc:type", "http://purl.org/dc/dcmitype/StillImage"))

	licenseURI := NormalizeLicense(r.License)
	lic := resourceRef("license", licenseURI)
	if r.LicenseDate != "" {
		lic.AppendChild(textElement("dc:date", r.LicenseDate))
	}
	work.AppendChild(lic)
	work.AppendChild(textElement("dc:language", r.Language))

	if rights := rightsBlock(licenseURI); rights != nil {
		rdf.AppendChild(rights)
	}
	return rdf
}

func textElement(name, value string) *xmltree.Node {
	n := xmltree.NewElement(name)
	if value != "" {
		n.AppendText(value)
	}
	return n
}

// agentElement builds a creator/owner/publisher field with its Agent
// wrapper.  The rdf:about attribute appears only when the URL is set.
func agentElement(name, title, url string) *xmltree.Node {
	field := xmltree.NewElement(name)
	agent := xmltree.NewElement("Agent")
	if url != "" {
		agent.SetAttr("rdf:about", url)
	}
	agent.AppendChild(textElement("dc:title", title))
	field.AppendChild(agent)
	return field
}
