package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/JPM1118/spritegen/internal/palette"
	"github.com/JPM1118/spritegen/internal/tui"
	"github.com/spf13/cobra"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in color palettes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOLORS\tSWATCH")
		fmt.Fprintln(w, "────\t──────\t──────")
		for _, name := range palette.Names() {
			p := palette.MustLookup(name)
			hexes := make([]string, len(p))
			for i, c := range p {
				hexes[i] = palette.Hex(c)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(hexes, " "), tui.Swatch(p))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}
