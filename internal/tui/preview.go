package tui

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JPM1118/spritegen/internal/batch"
	"github.com/JPM1118/spritegen/internal/notify"
	"github.com/JPM1118/spritegen/internal/palette"
	"github.com/JPM1118/spritegen/internal/sprites"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerLines = 3 // header + subheader + blank
	footerLines = 2 // notification bar + status bar
)

// Settings are the starting parameters of a preview session.
type Settings struct {
	Kind    sprites.Kind
	Palette string
	Size    int
	Density float64
	// Scale and OutDir apply to saved files only.
	Scale   int
	OutDir  string
	MinSize int
	MaxSize int
}

// Option configures a Preview.
type Option func(*Preview)

// WithNotifyBar sets the bar used for save and error events.
func WithNotifyBar(b *notify.Bar) Option {
	return func(p *Preview) { p.bar = b }
}

// WithClock overrides time.Now for notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Preview) { p.now = now }
}

// Preview is the Bubble Tea model for the interactive sprite preview.
type Preview struct {
	settings Settings
	rng      sprites.Stream
	img      *image.NRGBA
	// generated counts sprites drawn from rng this session.
	generated int
	saved     int
	width     int
	height    int
	bar       *notify.Bar
	now       func() time.Time
}

// NewPreview creates a preview and draws its first sprite from rng.
func NewPreview(s Settings, rng sprites.Stream, opts ...Option) Preview {
	if s.MinSize < 1 {
		s.MinSize = 1
	}
	if s.MaxSize < s.MinSize {
		s.MaxSize = s.MinSize
	}
	if s.Scale < 1 {
		s.Scale = 1
	}
	s.Size = clamp(s.Size, s.MinSize, s.MaxSize)

	p := Preview{
		settings: s,
		rng:      rng,
		bar:      notify.NewBar(20),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	p.regenerate()
	return p
}

// Image returns the sprite currently on screen.
func (p Preview) Image() *image.NRGBA {
	return p.img
}

// Settings returns the current generation settings.
func (p Preview) Settings() Settings {
	return p.settings
}

// Init implements tea.Model.
func (p Preview) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil
	}
	return p, nil
}

func (p Preview) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return p, tea.Quit

	case " ", "n":
		p.regenerate()

	case "t":
		p.settings.Kind = nextKind(p.settings.Kind)
		p.regenerate()

	case "p":
		p.settings.Palette = nextPalette(p.settings.Palette)
		p.regenerate()

	case "+", "=":
		if p.settings.Size < p.settings.MaxSize {
			p.settings.Size++
			p.regenerate()
		}

	case "-":
		if p.settings.Size > p.settings.MinSize {
			p.settings.Size--
			p.regenerate()
		}

	case "s":
		p.save()
	}
	return p, nil
}

func (p *Preview) regenerate() {
	pal, ok := palette.Lookup(p.settings.Palette)
	if !ok {
		p.bar.Errorf(p.now(), "%v", palette.Validate(p.settings.Palette))
		return
	}
	img, err := sprites.Generate(sprites.Params{
		Kind:    p.settings.Kind,
		Size:    p.settings.Size,
		Palette: pal,
		Density: p.settings.Density,
	}, p.rng)
	if err != nil {
		p.bar.Errorf(p.now(), "generate: %v", err)
		return
	}
	p.img = img
	p.generated++
}

func (p *Preview) save() {
	if p.img == nil {
		return
	}
	if err := os.MkdirAll(p.settings.OutDir, 0o755); err != nil {
		p.bar.Errorf(p.now(), "create output dir: %v", err)
		return
	}
	name, path, err := p.nextFreeName()
	if err != nil {
		p.bar.Errorf(p.now(), "%v", err)
		return
	}
	n, err := batch.Save(path, sprites.Upscale(p.img, p.settings.Scale))
	if err != nil {
		p.bar.Errorf(p.now(), "%v", err)
		return
	}
	p.saved++
	p.bar.Infof(p.now(), "saved %s (%.1fKB)", name, float64(n)/1024)
}

// nextFreeName returns the first batch-style file name in OutDir that does
// not exist yet, so saving never replaces an earlier sprite.
func (p Preview) nextFreeName() (string, string, error) {
	for i := 0; ; i++ {
		name := batch.FileName(p.settings.Kind, p.settings.Palette, i)
		path := filepath.Join(p.settings.OutDir, name)
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return name, path, nil
		}
		if err != nil {
			return "", "", fmt.Errorf("check %s: %w", path, err)
		}
	}
}

// View renders the preview.
func (p Preview) View() string {
	size := p.settings.Size
	needW := max(canvasWidth(size), 40)
	needH := size + headerLines + footerLines
	if p.width < needW || p.height < needH {
		return fmt.Sprintf("\n  Terminal too small (need %dx%d, got %dx%d)\n  Press - to shrink the sprite or q to quit.\n",
			needW, needH, p.width, p.height)
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("spritegen preview"))
	b.WriteString("\n")
	b.WriteString(p.renderSubheader())
	b.WriteString("\n\n")

	b.WriteString(p.renderCanvas())

	b.WriteString(p.renderNotificationBar())
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render("  n:next  t:type  p:palette  +/-:size  s:save  q:quit"))

	return b.String()
}

func (p Preview) renderSubheader() string {
	s := p.settings
	return kindStyle.Render(string(s.Kind)) + subheaderStyle.Render(fmt.Sprintf(
		"  palette=%s  %dx%d  #%d  saved=%d", s.Palette, s.Size, s.Size, p.generated, p.saved))
}

func (p Preview) renderCanvas() string {
	if p.img == nil {
		return "\n"
	}
	var b strings.Builder
	bounds := p.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b.WriteString(pixelCell(p.img.NRGBAAt(x, y), x, y))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (p Preview) renderNotificationBar() string {
	n, ok := p.bar.Latest()
	if ok && n.Level == notify.Error {
		return errorBarStyle.Render("  " + p.bar.Render(p.width-4, p.now()))
	}
	return notificationBarStyle.Render("  " + p.bar.Render(p.width-4, p.now()))
}

// Helpers

func nextKind(k sprites.Kind) sprites.Kind {
	kinds := sprites.Kinds()
	for i, kk := range kinds {
		if kk == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

func nextPalette(name string) string {
	names := palette.Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

var _ tea.Model = Preview{}

// canvasWidth is the rendered width of a sprite row in terminal columns.
func canvasWidth(size int) int {
	return lipgloss.Width(strings.Repeat("  ", size))
}
