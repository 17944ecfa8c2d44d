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

// PublicDomainURI is the canonical URI for public domain dedications.  The
// literal label "Public Domain" is normalized to this URI before any
// license lookup.
const PublicDomainURI = "http://web.resource.org/cc/PublicDomain"

// NormalizeLicense maps the label "Public Domain" to its canonical URI.
// All other values are returned unchanged.
func NormalizeLicense(license string) string {
	if license == "Public Domain" {
		return PublicDomainURI
	}
	return license
}

// licenseRights is the fixed permits/requires/prohibits content of a known
// license.  The values are cc namespace resource URIs.
type licenseRights struct {
	permits   []string
	requires  []string
	prohibits []string
}

const (
	ccReproduction    = CCNamespace + "Reproduction"
	ccDistribution    = CCNamespace + "Distribution"
	ccDerivativeWorks = CCNamespace + "DerivativeWorks"
	ccNotice          = CCNamespace + "Notice"
	ccAttribution     = CCNamespace + "Attribution"
	ccShareAlike      = CCNamespace + "ShareAlike"
	ccCommercialUse   = CCNamespace + "CommercialUse"
)

// knownLicenses maps license URIs to their rights blocks.  Licenses not in
// this table serialize with a bare license reference and no rights block.
var knownLicenses = map[string]licenseRights{
	PublicDomainURI: {
		permits: []string{ccReproduction, ccDistribution, ccDerivativeWorks},
	},
	"http://creativecommons.org/licenses/by/2.0/": {
		permits:  []string{ccReproduction, ccDistribution, ccDerivativeWorks},
		requires: []string{ccNotice, ccAttribution},
	},
	"http://creativecommons.org/licenses/by-sa/2.0/": {
		permits:  []string{ccReproduction, ccDistribution, ccDerivativeWorks},
		requires: []string{ccNotice, ccAttribution, ccShareAlike},
	},
	"http://creativecommons.org/licenses/by-nd/2.0/": {
		permits:  []string{ccReproduction, ccDistribution},
		requires: []string{ccNotice, ccAttribution},
	},
	"http://creativecommons.org/licenses/by-nc/2.0/": {
		permits:   []string{ccReproduction, ccDistribution, ccDerivativeWorks},
		requires:  []string{ccNotice, ccAttribution},
		prohibits: []string{ccCommercialUse},
	},
	"http://creativecommons.org/licenses/by-nc-nd/2.0/": {
		permits:   []string{ccReproduction, ccDistribution},
		requires:  []string{ccNotice, ccAttribution},
		prohibits: []string{ccCommercialUse},
	},
	"http://creativecommons.org/licenses/by-nc-sa/2.0/": {
		permits:   []string{ccReproduction, ccDistribution, ccDerivativeWorks},
		requires:  []string{ccNotice, ccAttribution, ccShareAlike},
		prohibits: []string{ccCommercialUse},
	},
}

// rightsBlock builds the License element for a known license URI, or
// returns nil for licenses outside the table.
func rightsBlock(uri string) *xmltree.Node {
	rights, ok := knownLicenses[uri]
	if !ok {
		return nil
	}
	lic := xmltree.NewElement("License")
	lic.SetAttr("rdf:about", uri)
	for _, res := range rights.permits {
		lic.AppendChild(resourceRef("permits", res))
	}
	for _, res := range rights.requires {
		lic.AppendChild(resourceRef("requires", res))
	}
	for _, res := range rights.prohibits {
		lic.AppendChild(resourceRef("prohibits", res))
	}
	return lic
}

func resourceRef(name, uri string) *xmltree.Node {
	n := xmltree.NewElement(name)
	n.SetAttr("rdf:resource", uri)
	return n
}
