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
	"sort"

	"golang.org/x/exp/maps"

	"github.com/clipforge/svgmeta/xmltree"
)

// A Record holds the bibliographic and licensing metadata of one SVG
// document.  A Record is created empty with [New], then either populated
// from a source document via [Record.Extract], or built up by assigning
// fields directly.
type Record struct {
	Title       string
	Description string

	// Subject is the raw text of the subject element.  It is cleared
	// when the subject decomposes into a keyword Bag; see Keywords.
	Subject string

	Creator      string
	CreatorURL   string
	Owner        string
	OwnerURL     string
	Publisher    string
	PublisherURL string

	// License is a license URI, or the literal label "Public Domain".
	License     string
	LicenseDate string

	// Language is never empty; it defaults to "en".
	Language string

	Date     string
	AboutURL string

	Keywords KeywordSet

	// ErrorMessage describes the most recent extraction failure.  It is
	// empty after a successful extraction.
	ErrorMessage string

	// StrictValidation requires the RDF block to be wrapped in a
	// <metadata> element; bare-RDF documents are rejected.
	StrictValidation bool

	retained *xmltree.Document
}

// New returns an empty record.
func New() *Record {
	return &Record{
		Language: "en",
		Keywords: make(KeywordSet),
	}
}

// Retained reports whether the record holds the parsed source document for
// later splicing.
func (r *Record) Retained() bool {
	return r.retained != nil
}

// A KeywordSet is a set of keyword strings.  Duplicates are collapsed and
// insertion order is not kept.
type KeywordSet map[string]struct{}

// NewKeywordSet returns a set holding the given words.
func NewKeywordSet(words ...string) KeywordSet {
	s := make(KeywordSet, len(words))
	s.Add(words...)
	return s
}

// Add inserts the given words into the set.
func (s KeywordSet) Add(words ...string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// Has reports whether the set contains word.
func (s KeywordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of keywords in the set.
func (s KeywordSet) Len() int {
	return len(s)
}

// Sorted returns the keywords in lexicographic order.
func (s KeywordSet) Sorted() []string {
	words := maps.Keys(s)
	sort.Strings(words)
	return words
}
