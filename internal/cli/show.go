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

	"github.com/spf13/cobra"

	"github.com/clipforge/svgmeta"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print the metadata summary of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := svgmeta.New()
		if err := rec.Extract(args[0], false); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rec.Summary())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
