package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/JPM1118/spritegen/internal/config"
	"github.com/JPM1118/spritegen/internal/sprites"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	flagType    string
	flagPalette string
	flagOut     string
	flagSize    int
	flagCount   int
	flagScale   int
	flagDensity float64
	flagSeed    int64
)

var rootCmd = &cobra.Command{
	Use:   "spritegen",
	Short: "Procedural pixel-art sprite generator",
	Long: `spritegen draws small pixel-art sprites (enemies, projectiles, icons)
from a seeded random stream and fixed color palettes, and writes them as PNGs.

Run without a subcommand to generate a batch.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	d := config.Defaults().Generate
	f := rootCmd.PersistentFlags()
	f.StringVarP(&flagType, "type", "t", d.Type, "sprite type: enemy, projectile or icon")
	f.IntVarP(&flagSize, "size", "s", d.Size, "sprite width and height in pixels")
	f.IntVarP(&flagCount, "count", "n", d.Count, "number of sprites to generate")
	f.StringVarP(&flagPalette, "palette", "p", d.Palette, "color palette (see 'spritegen palettes')")
	f.Int64Var(&flagSeed, "seed", 0, "random seed for reproducible output (default: random)")
	f.StringVarP(&flagOut, "out", "o", d.Out, "output directory, created if missing")
	f.IntVar(&flagScale, "scale", d.Scale, "nearest-neighbor upscale factor")
	f.Float64Var(&flagDensity, "density", d.Density, "enemy fill density between 0 and 1")
	f.StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/spritegen/config.yml)")
}

// usageError marks errors caused by bad flag or config values.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, "Run 'spritegen --help' for usage.")
		}
		return err
	}
	return nil
}

// resolveConfig loads the config file and overlays any flags the user set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFrom(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, usageError{err}
	}

	flags := cmd.Flags()
	g := &cfg.Generate
	if flags.Changed("type") {
		g.Type = flagType
	}
	if flags.Changed("size") {
		g.Size = flagSize
	}
	if flags.Changed("count") {
		g.Count = flagCount
	}
	if flags.Changed("palette") {
		g.Palette = flagPalette
	}
	if flags.Changed("out") {
		g.Out = flagOut
	}
	if flags.Changed("scale") {
		g.Scale = flagScale
	}
	if flags.Changed("density") {
		g.Density = flagDensity
	}
	if flags.Changed("seed") {
		seed := flagSeed
		g.Seed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, usageError{err}
	}
	return cfg, nil
}

// streamFor returns the run's random stream: seeded when a seed is set.
func streamFor(g config.GenerateConfig) sprites.Stream {
	if g.Seed != nil {
		return sprites.NewStream(*g.Seed)
	}
	return sprites.RandomStream()
}
