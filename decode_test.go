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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<!-- drawn by hand -->
<svg xmlns="http://www.w3.org/2000/svg" width="48" height="48">
  <metadata>
    <rdf:RDF xmlns="http://web.resource.org/cc/" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
      <Work rdf:about="https://clipart.example.org/lemon.svg">
        <dc:title>Lemon</dc:title>
        <dc:description>A ripe lemon.</dc:description>
        <dc:subject>
          <rdf:Bag>
            <rdf:li>Fruit</rdf:li>
            <rdf:li>Food</rdf:li>
          </rdf:Bag>
        </dc:subject>
        <dc:publisher>
          <Agent rdf:about="https://clipart.example.org/">
            <dc:title>Example Clip Art Library</dc:title>
          </Agent>
        </dc:publisher>
        <dc:creator>
          <Agent rdf:about="https://jo.example.net/">
            <dc:title>Jo Artist</dc:title>
          </Agent>
        </dc:creator>
        <dc:rights>
          <Agent>
            <dc:title>Jo Artist</dc:title>
          </Agent>
        </dc:rights>
        <dc:date>2026-01-15</dc:date>
        <license rdf:resource="http://creativecommons.org/licenses/by/2.0/">
          <dc:date>2026-01-15</dc:date>
        </license>
        <dc:language>en</dc:language>
      </Work>
    </rdf:RDF>
  </metadata>
  <path d="M 10 10 L 38 38" style="stroke:#ffd700"/>
</svg>
`

// workDoc wraps Work children in a minimal metadata-wrapped document.
func workDoc(inner string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg">
  <metadata>
    <rdf:RDF xmlns:cc="http://web.resource.org/cc/" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
      <cc:Work rdf:about="">` + inner + `</cc:Work>
    </rdf:RDF>
  </metadata>
</svg>
`
}

func TestExtract(t *testing.T) {
	r := New()
	if err := r.Extract(sampleSVG, false); err != nil {
		t.Fatal(err)
	}

	want := &Record{
		Title:        "Lemon",
		Description:  "A ripe lemon.",
		Creator:      "Jo Artist",
		CreatorURL:   "https://jo.example.net/",
		Owner:        "Jo Artist",
		OwnerURL:     "",
		Publisher:    "Example Clip Art Library",
		PublisherURL: "https://clipart.example.org/",
		License:      "http://creativecommons.org/licenses/by/2.0/",
		LicenseDate:  "2026-01-15",
		Language:     "en",
		Date:         "2026-01-15",
		AboutURL:     "https://clipart.example.org/lemon.svg",
		Keywords:     NewKeywordSet("Fruit", "Food"),
	}
	if d := cmp.Diff(want, r, cmpopts.IgnoreUnexported(Record{})); d != "" {
		t.Errorf("record mismatch (-want +got):\n%s", d)
	}
	if r.ErrorMessage != "" {
		t.Errorf("unexpected error message %q", r.ErrorMessage)
	}
	if r.Retained() {
		t.Error("document retained without request")
	}
}

func TestExtractVariants(t *testing.T) {
	type testCase struct {
		desc  string
		in    string
		check func(t *testing.T, r *Record)
	}
	testCases := []testCase{
		{
			desc: "prefixed metadata wrapper",
			in: `<svg xmlns:svg="http://www.w3.org/2000/svg">
  <svg:metadata>
    <RDF><Work><dc:title>Pear</dc:title></Work></RDF>
  </svg:metadata>
</svg>
`,
			check: func(t *testing.T, r *Record) {
				if r.Title != "Pear" {
					t.Errorf("got title %q, want %q", r.Title, "Pear")
				}
			},
		},
		{
			desc: "bare RDF at document root",
			in: `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <Work><dc:title>Plum</dc:title></Work>
</rdf:RDF>
`,
			check: func(t *testing.T, r *Record) {
				if r.Title != "Plum" {
					t.Errorf("got title %q, want %q", r.Title, "Plum")
				}
			},
		},
		{
			desc: "RDF directly under the root element",
			in: `<svg xmlns="http://www.w3.org/2000/svg">
  <rdf:RDF><cc:Work><dc:title>Fig</dc:title></cc:Work></rdf:RDF>
</svg>
`,
			check: func(t *testing.T, r *Record) {
				if r.Title != "Fig" {
					t.Errorf("got title %q, want %q", r.Title, "Fig")
				}
			},
		},
		{
			desc: "creator without Agent wrapper",
			in:   workDoc(`<dc:creator>Ann Example</dc:creator>`),
			check: func(t *testing.T, r *Record) {
				if r.Creator != "Ann Example" {
					t.Errorf("got creator %q, want %q", r.Creator, "Ann Example")
				}
			},
		},
		{
			desc: "creator defaults to owner and publisher",
			in: workDoc(`<dc:creator><cc:Agent rdf:about="https://ann.example.net/"><dc:title>Ann Example</dc:title></cc:Agent></dc:creator>`),
			check: func(t *testing.T, r *Record) {
				if r.Owner != "Ann Example" || r.Publisher != "Ann Example" {
					t.Errorf("owner/publisher not defaulted: %q, %q", r.Owner, r.Publisher)
				}
				if r.OwnerURL != "https://ann.example.net/" || r.PublisherURL != "https://ann.example.net/" {
					t.Errorf("owner/publisher URL not defaulted: %q, %q", r.OwnerURL, r.PublisherURL)
				}
			},
		},
		{
			desc: "publisher back-fills creator and owner",
			in: workDoc(`<dc:publisher><cc:Agent><dc:title>The Library</dc:title></cc:Agent></dc:publisher>`),
			check: func(t *testing.T, r *Record) {
				if r.Creator != "The Library" || r.Owner != "The Library" {
					t.Errorf("creator/owner not back-filled: %q, %q", r.Creator, r.Owner)
				}
			},
		},
		{
			desc: "single keyword Bag",
			in:   workDoc(`<dc:subject><rdf:Bag><rdf:li>Fruit</rdf:li></rdf:Bag></dc:subject>`),
			check: func(t *testing.T, r *Record) {
				if d := cmp.Diff(NewKeywordSet("Fruit"), r.Keywords); d != "" {
					t.Errorf("keywords mismatch (-want +got):\n%s", d)
				}
				if r.Subject != "" {
					t.Errorf("subject not cleared: %q", r.Subject)
				}
			},
		},
		{
			desc: "no Bag falls back to unsorted",
			in:   workDoc(`<dc:title>Untagged</dc:title>`),
			check: func(t *testing.T, r *Record) {
				if d := cmp.Diff(NewKeywordSet("unsorted"), r.Keywords); d != "" {
					t.Errorf("keywords mismatch (-want +got):\n%s", d)
				}
			},
		},
		{
			desc: "plain subject text is kept",
			in:   workDoc(`<dc:subject>miscellaneous</dc:subject>`),
			check: func(t *testing.T, r *Record) {
				if r.Subject != "miscellaneous" {
					t.Errorf("got subject %q, want %q", r.Subject, "miscellaneous")
				}
				if !r.Keywords.Has("unsorted") {
					t.Error("missing unsorted fallback keyword")
				}
			},
		},
		{
			desc: "missing language defaults to en",
			in:   workDoc(`<dc:title>Quiet</dc:title>`),
			check: func(t *testing.T, r *Record) {
				if r.Language != "en" {
					t.Errorf("got language %q, want %q", r.Language, "en")
				}
			},
		},
		{
			desc: "unparseable language defaults to en",
			in:   workDoc(`<dc:language>!!</dc:language>`),
			check: func(t *testing.T, r *Record) {
				if r.Language != "en" {
					t.Errorf("got language %q, want %q", r.Language, "en")
				}
			},
		},
		{
			desc: "valid language kept as written",
			in:   workDoc(`<dc:language>de-CH</dc:language>`),
			check: func(t *testing.T, r *Record) {
				if r.Language != "de-CH" {
					t.Errorf("got language %q, want %q", r.Language, "de-CH")
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			r := New()
			if err := r.Extract(tc.in, false); err != nil {
				t.Fatal(err)
			}
			tc.check(t, r)
		})
	}
}

func TestExtractErrors(t *testing.T) {
	type testCase struct {
		desc string
		in   string
		err  error
	}
	testCases := []testCase{
		{
			desc: "no RDF block",
			in:   "<svg>\n  <path d=\"M 0 0\"/>\n</svg>\n",
			err:  ErrMissingRDFRoot,
		},
		{
			desc: "empty metadata wrapper",
			in:   "<svg>\n  <metadata></metadata>\n</svg>\n",
			err:  ErrMissingRDFRoot,
		},
		{
			desc: "no Work node",
			in:   "<svg>\n  <metadata><rdf:RDF></rdf:RDF></metadata>\n</svg>\n",
			err:  ErrMissingWork,
		},
		{
			desc: "missing file",
			in:   "no-such-file.svg",
			err:  ErrFileNotFound,
		},
		{
			desc: "no source",
			in:   "",
			err:  ErrMissingInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			r := New()
			r.Title = "previous"
			r.Keywords.Add("old")

			err := r.Extract(tc.in, false)
			if !errors.Is(err, tc.err) {
				t.Fatalf("got error %v, want %v", err, tc.err)
			}
			if r.ErrorMessage == "" {
				t.Error("error message not recorded")
			}
			if r.Title != "previous" || !r.Keywords.Has("old") {
				t.Error("failed extraction modified record fields")
			}
		})
	}
}

func TestExtractMalformed(t *testing.T) {
	r := New()
	err := r.Extract("<svg>\n  <metadata>\n</svg>\n", false)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got error %v, want a ParseError", err)
	}
	if r.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}

func TestExtractStrict(t *testing.T) {
	bare := "<rdf:RDF>\n  <Work><dc:title>Plum</dc:title></Work>\n</rdf:RDF>\n"

	r := New()
	if err := r.Extract(bare, false); err != nil {
		t.Fatalf("lenient extraction failed: %v", err)
	}

	r = New()
	r.StrictValidation = true
	err := r.Extract(bare, false)
	if !errors.Is(err, ErrMissingMetadataWrapper) {
		t.Fatalf("got error %v, want ErrMissingMetadataWrapper", err)
	}

	// with the wrapper present, strict mode extracts normally
	r = New()
	r.StrictValidation = true
	if err := r.Extract(sampleSVG, false); err != nil {
		t.Fatalf("strict extraction of wrapped document failed: %v", err)
	}
	if !r.StrictValidation {
		t.Error("strict flag lost during extraction")
	}
}

func TestExtractReader(t *testing.T) {
	r := New()
	if err := r.ExtractReader(strings.NewReader(sampleSVG), false); err != nil {
		t.Fatal(err)
	}
	if r.Title != "Lemon" {
		t.Errorf("got title %q, want %q", r.Title, "Lemon")
	}

	r = New()
	if err := r.ExtractReader(nil, false); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("got error %v, want ErrMissingInput", err)
	}
}
