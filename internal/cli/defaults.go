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

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clipforge/svgmeta"
)

// Defaults holds field values applied to records during annotation.  A
// default never overrides a field the source document already has; explicit
// command line flags beat both.
type Defaults struct {
	Title     string   `yaml:"title"`
	Creator   string   `yaml:"creator"`
	Owner     string   `yaml:"owner"`
	Publisher string   `yaml:"publisher"`
	License   string   `yaml:"license"`
	Language  string   `yaml:"language"`
	Keywords  []string `yaml:"keywords"`
}

func loadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := &Defaults{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parse defaults %s: %w", path, err)
	}
	return d, nil
}

// Apply fills empty record fields from the defaults.  The keyword set is
// replaced only while it holds nothing but the extraction fallback.
func (d *Defaults) Apply(rec *svgmeta.Record) {
	if rec.Title == "" {
		rec.Title = d.Title
	}
	if rec.Creator == "" {
		rec.Creator = d.Creator
	}
	if rec.Owner == "" {
		rec.Owner = d.Owner
	}
	if rec.Publisher == "" {
		rec.Publisher = d.Publisher
	}
	if rec.License == "" {
		rec.License = d.License
	}
	if d.Language != "" && rec.Language == "en" {
		rec.Language = d.Language
	}
	if len(d.Keywords) > 0 && onlyFallback(rec.Keywords) {
		rec.Keywords = svgmeta.NewKeywordSet(d.Keywords...)
	}
}

func onlyFallback(s svgmeta.KeywordSet) bool {
	return s.Len() == 0 || (s.Len() == 1 && s.Has("unsorted"))
}
