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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/clipforge/svgmeta"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check that files carry proper attribution and licensing data",
	Long: `Validate extracts the metadata of each file and checks that title,
creator and license are present.  Failures are logged and the remaining
files are still processed; the command exits non-zero if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		cachePath, _ := cmd.Flags().GetString("cache")

		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

		var cache *resultCache
		if cachePath != "" {
			var err error
			cache, err = openResultCache(cachePath)
			if err != nil {
				return err
			}
			defer cache.Close()
		}

		failed := 0
		for _, path := range args {
			if cache != nil && cache.Seen(path) {
				logger.Info("cached", "file", path)
				continue
			}
			if err := validateFile(path, strict); err != nil {
				logger.Error("invalid", "file", path, "err", err)
				failed++
				continue
			}
			logger.Info("ok", "file", path)
			if cache != nil {
				if err := cache.Mark(path); err != nil {
					logger.Warn("cache update failed", "file", path, "err", err)
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func validateFile(path string, strict bool) error {
	rec := svgmeta.New()
	rec.StrictValidation = strict
	if err := rec.Extract(path, false); err != nil {
		return err
	}
	var missing []string
	if rec.Title == "" {
		missing = append(missing, "title")
	}
	if rec.Creator == "" {
		missing = append(missing, "creator")
	}
	if rec.License == "" {
		missing = append(missing, "license")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %v", missing)
	}
	return nil
}

func init() {
	validateCmd.Flags().Bool("strict", false, "require the RDF block to be wrapped in a <metadata> element")
	validateCmd.Flags().String("cache", "", "bbolt cache file; unchanged files that already validated are skipped")
	rootCmd.AddCommand(validateCmd)
}
