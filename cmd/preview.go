package cmd

import (
	"fmt"

	"github.com/JPM1118/spritegen/internal/notify"
	"github.com/JPM1118/spritegen/internal/sprites"
	"github.com/JPM1118/spritegen/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse generated sprites interactively in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g := cfg.Generate

	model := tui.NewPreview(tui.Settings{
		Kind:    sprites.Kind(g.Type),
		Palette: g.Palette,
		Size:    g.Size,
		Density: g.Density,
		Scale:   g.Scale,
		OutDir:  g.Out,
		MinSize: cfg.Preview.MinSize,
		MaxSize: cfg.Preview.MaxSize,
	}, streamFor(g), tui.WithNotifyBar(notify.NewBar(20)))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
