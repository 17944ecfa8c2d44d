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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipforge/svgmeta"
)

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Check two files for equivalent metadata",
	Long: `Compare extracts the metadata of both files and checks creator, title
and license for equality.  Keywords and other fields are ignored.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := svgmeta.New()
		if err := a.Extract(args[0], false); err != nil {
			return err
		}
		b := svgmeta.New()
		if err := b.Extract(args[1], false); err != nil {
			return err
		}
		if !svgmeta.Equal(a, b) {
			return errors.New("metadata differs")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
