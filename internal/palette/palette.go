package palette

import (
	"fmt"
	"image/color"
	"strings"
)

// Palette is a fixed ordered list of opaque colors. Entries are stored
// non-premultiplied so they can be written straight into an image.NRGBA.
type Palette []color.NRGBA

// Last returns the final entry, used as the icon border color.
func (p Palette) Last() color.NRGBA {
	return p[len(p)-1]
}

// WithoutLast returns every entry except the last one.
func (p Palette) WithoutLast() Palette {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Contains reports whether c matches one of the palette's RGB values.
// Alpha is ignored.
func (p Palette) Contains(c color.NRGBA) bool {
	for _, pc := range p {
		if pc.R == c.R && pc.G == c.G && pc.B == c.B {
			return true
		}
	}
	return false
}

// Named palettes, in the order they are listed to users.
const (
	Fire    = "fire"
	Ice     = "ice"
	Poison  = "poison"
	Dark    = "dark"
	Neutral = "neutral"
	Gold    = "gold"
)

var names = []string{Fire, Ice, Poison, Dark, Neutral, Gold}

var table = map[string]Palette{
	Fire:    {rgb(255, 80, 20), rgb(255, 160, 40), rgb(255, 220, 80), rgb(200, 40, 10)},
	Ice:     {rgb(60, 120, 255), rgb(120, 180, 255), rgb(200, 230, 255), rgb(40, 80, 200)},
	Poison:  {rgb(40, 200, 60), rgb(80, 255, 100), rgb(160, 255, 120), rgb(20, 140, 40)},
	Dark:    {rgb(80, 40, 120), rgb(140, 60, 180), rgb(180, 100, 220), rgb(60, 20, 80)},
	Neutral: {rgb(180, 180, 180), rgb(220, 220, 220), rgb(140, 140, 140), rgb(100, 100, 100)},
	Gold:    {rgb(255, 200, 40), rgb(255, 220, 100), rgb(200, 160, 20), rgb(180, 140, 10)},
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Names returns the palette names in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Lookup returns a copy of the named palette.
func Lookup(name string) (Palette, bool) {
	p, ok := table[name]
	if !ok {
		return nil, false
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out, true
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Palette {
	p, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("palette: unknown palette %q", name))
	}
	return p
}

// Validate returns an error listing the valid names if name is unknown.
func Validate(name string) error {
	if _, ok := table[name]; ok {
		return nil
	}
	return fmt.Errorf("invalid palette %q (choose from %s)", name, strings.Join(names, ", "))
}

// Hex formats c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
