package cmd

import (
	"github.com/JPM1118/spritegen/internal/batch"
	"github.com/JPM1118/spritegen/internal/sprites"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of sprites (default command)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g := cfg.Generate

	opts := batch.Options{
		Kind:    sprites.Kind(g.Type),
		Palette: g.Palette,
		Size:    g.Size,
		Count:   g.Count,
		Scale:   g.Scale,
		Density: g.Density,
		OutDir:  g.Out,
	}
	_, err = batch.Run(opts, streamFor(g), cmd.OutOrStdout())
	return err
}
