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
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/clipforge/svgmeta/xmltree"
)

// Extract populates the record from a source document.  The source is a
// literal XML text (recognized by an embedded newline), an http or ftp URL
// (recognized by its scheme prefix), or a filesystem path.
//
// Extraction is all-or-nothing: on failure the record's fields keep their
// previous values, ErrorMessage is set, and the error is returned.  With
// retain set, the parsed source tree and its pre-root preamble are kept for
// a later [Record.Embed].
func (r *Record) Extract(source string, retain bool) error {
	data, err := r.load(source)
	if err != nil {
		return r.fail(err)
	}
	return r.extract(data, retain)
}

// ExtractReader populates the record from an already-open input stream.
// It behaves like [Record.Extract].
func (r *Record) ExtractReader(src io.Reader, retain bool) error {
	if src == nil {
		return r.fail(ErrMissingInput)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return r.fail(&ParseError{Err: err})
	}
	return r.extract(data, retain)
}

// load resolves the source heuristically and returns the document bytes.
func (r *Record) load(source string) ([]byte, error) {
	switch {
	case source == "":
		return nil, ErrMissingInput
	case strings.ContainsRune(source, '\n'):
		return []byte(source), nil
	case strings.HasPrefix(source, "http"):
		resp, err := http.Get(source)
		if err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, &ParseError{Source: source, Err: fmt.Errorf("unexpected status %s", resp.Status)}
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		return data, nil
	case strings.HasPrefix(source, "ftp"):
		return nil, &ParseError{Source: source, Err: errors.New("ftp URLs are not supported")}
	default:
		data, err := os.ReadFile(source)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, source)
		}
		if err != nil {
			return nil, &ParseError{Source: source, Err: err}
		}
		return data, nil
	}
}

func (r *Record) extract(data []byte, retain bool) error {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return r.fail(&ParseError{Err: err})
	}

	// Extract into a fresh record first, so that a failure leaves the
	// receiver untouched.
	out := New()
	out.StrictValidation = r.StrictValidation
	if err := out.extractTree(doc); err != nil {
		return r.fail(err)
	}
	if retain {
		out.retained = doc
	}
	*r = *out
	return nil
}

func (r *Record) fail(err error) error {
	r.ErrorMessage = err.Error()
	return err
}

// locateRDF finds the RDF root node of a parsed document.  The RDF block
// may be wrapped in a <metadata> element under any of its accepted
// spellings, or stand bare at the document root.  In strict mode bare-RDF
// documents are rejected even though an RDF root exists.
func locateRDF(root *xmltree.Node, strict bool) (*xmltree.Node, error) {
	if meta := root.FirstChild(metadataAliases...); meta != nil {
		if rdf := meta.FirstChild(rdfRootAliases...); rdf != nil {
			return rdf, nil
		}
	}

	var rdf *xmltree.Node
	for _, name := range rdfRootAliases {
		if root.Name == name {
			rdf = root
			break
		}
	}
	if rdf == nil {
		rdf = root.FirstChild(rdfRootAliases...)
	}
	if rdf == nil {
		return nil, ErrMissingRDFRoot
	}
	if strict {
		return nil, ErrMissingMetadataWrapper
	}
	return rdf, nil
}

// extractTree populates the record from a parsed document tree.
func (r *Record) extractTree(doc *xmltree.Document) error {
	rdf, err := locateRDF(doc.Root, r.StrictValidation)
	if err != nil {
		return err
	}
	work := rdf.FirstChild(workAliases...)
	if work == nil {
		return ErrMissingWork
	}

	r.AboutURL = work.Attr("rdf:about")
	r.Title = content(work, "dc:title")
	r.Description = content(work, "dc:description")
	r.Date = content(work, "dc:date")

	r.Creator, r.CreatorURL = agentField(work, "dc:creator")
	r.Owner, r.OwnerURL = agentField(work, "dc:rights")
	r.Publisher, r.PublisherURL = agentField(work, "dc:publisher")

	if lic := work.FirstChild(licenseAliases...); lic != nil {
		r.License = lic.Attr("rdf:resource")
		r.LicenseDate = content(lic, "dc:date")
	}

	r.extractSubject(work)
	r.Language = normalizeLanguage(content(work, "dc:language"))
	r.applyAgentDefaults()
	return nil
}

// content returns the trimmed character data of the first matching child,
// or "" if there is none.  Leaf values appear either as bare text or as a
// wrapper element holding text plus attributes; Node.Text handles both.
func content(n *xmltree.Node, names ...string) string {
	return strings.TrimSpace(n.FirstChild(names...).Text())
}

// agentField reads a creator/owner/publisher field.  The party is usually
// wrapped in an Agent node carrying a title sub-field and an rdf:about URL;
// without a wrapper the field node itself is treated as the Agent.
func agentField(work *xmltree.Node, name string) (title, url string) {
	node := work.FirstChild(name)
	if node == nil {
		return "", ""
	}
	agent := node.FirstChild(agentAliases...)
	if agent == nil {
		agent = node
	}
	title = content(agent, "dc:title")
	if title == "" {
		title = strings.TrimSpace(agent.Text())
	}
	return title, agent.Attr("rdf:about")
}

// extractSubject decomposes the subject's keyword Bag into the keyword set.
// The Bag takes ownership of the data: Subject is cleared when list items
// are found.  Without a Bag the keyword set defaults to "unsorted" and
// Subject keeps its raw text.
func (r *Record) extractSubject(work *xmltree.Node) {
	subject := work.FirstChild("dc:subject")
	if bag := subject.FirstChild(bagAliases...); bag != nil {
		for _, li := range bag.Children {
			if li.Type != xmltree.ElementNode {
				continue
			}
			for _, name := range listItemAliases {
				if li.Name == name {
					r.Keywords.Add(strings.TrimSpace(li.Text()))
					break
				}
			}
		}
		if r.Keywords.Len() > 0 {
			r.Subject = ""
			return
		}
	}
	r.Subject = strings.TrimSpace(subject.Text())
	r.Keywords.Add("unsorted")
}

// normalizeLanguage validates a language tag, falling back to "en" for
// empty or unparseable values.  Valid tags are kept as written.
func normalizeLanguage(s string) string {
	if s == "" {
		return "en"
	}
	if _, err := language.Parse(s); err != nil {
		return "en"
	}
	return s
}

// applyAgentDefaults fills the creator/owner/publisher trio after
// extraction: a forward pass creator -> owner -> publisher, then a
// back-fill in the reverse direction.  One party is often simultaneously
// creator, rights-holder and publisher, so the three converge unless
// originally distinct.  URLs follow their owning field.
func (r *Record) applyAgentDefaults() {
	if r.Owner == "" {
		r.Owner, r.OwnerURL = r.Creator, r.CreatorURL
	}
	if r.Publisher == "" {
		r.Publisher, r.PublisherURL = r.Owner, r.OwnerURL
	}
	if r.Owner == "" {
		r.Owner, r.OwnerURL = r.Publisher, r.PublisherURL
	}
	if r.Creator == "" {
		r.Creator, r.CreatorURL = r.Owner, r.OwnerURL
	}
}
