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

	"github.com/spf13/cobra"

	"github.com/clipforge/svgmeta"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate FILE",
	Short: "Rewrite a file's metadata block with edited fields",
	Long: `Annotate extracts a file's metadata, applies defaults from an optional
YAML file and explicit flag values, then splices the regenerated RDF back
into the document.  Flag values override both the document and the
defaults file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := svgmeta.New()
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			rec.StrictValidation = true
		}
		if err := rec.Extract(args[0], true); err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("defaults"); path != "" {
			defaults, err := loadDefaults(path)
			if err != nil {
				return err
			}
			defaults.Apply(rec)
		}
		applyFlags(cmd, rec)

		out, err := rec.Embed()
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" || outPath == "-" {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}
		return os.WriteFile(outPath, []byte(out), 0o644)
	},
}

// applyFlags overrides record fields with explicitly set flag values.
func applyFlags(cmd *cobra.Command, rec *svgmeta.Record) {
	stringFields := map[string]*string{
		"title":     &rec.Title,
		"creator":   &rec.Creator,
		"owner":     &rec.Owner,
		"publisher": &rec.Publisher,
		"license":   &rec.License,
		"language":  &rec.Language,
	}
	for name, field := range stringFields {
		if cmd.Flags().Changed(name) {
			*field, _ = cmd.Flags().GetString(name)
		}
	}
	if cmd.Flags().Changed("keyword") {
		words, _ := cmd.Flags().GetStringArray("keyword")
		rec.Keywords = svgmeta.NewKeywordSet(words...)
	}
}

func init() {
	annotateCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	annotateCmd.Flags().String("defaults", "", "YAML file with default field values")
	annotateCmd.Flags().Bool("strict", false, "require the RDF block to be wrapped in a <metadata> element")
	annotateCmd.Flags().String("title", "", "set the title")
	annotateCmd.Flags().String("creator", "", "set the creator")
	annotateCmd.Flags().String("owner", "", "set the rights holder")
	annotateCmd.Flags().String("publisher", "", "set the publisher")
	annotateCmd.Flags().String("license", "", "set the license URI or \"Public Domain\"")
	annotateCmd.Flags().String("language", "", "set the language tag")
	annotateCmd.Flags().StringArray("keyword", nil, "replace the keyword set (repeatable)")
	rootCmd.AddCommand(annotateCmd)
}
