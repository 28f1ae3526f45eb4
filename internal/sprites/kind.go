package sprites

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/JPM1118/spritegen/internal/palette"
)

// Kind selects a generator.
type Kind string

// Sprite kinds accepted by --type.
const (
	KindEnemy      Kind = "enemy"
	KindProjectile Kind = "projectile"
	KindIcon       Kind = "icon"
)

// Kinds lists every kind in display order.
func Kinds() []Kind {
	return []Kind{KindEnemy, KindProjectile, KindIcon}
}

// ParseKind validates s against the known kinds.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	names := make([]string, 0, 3)
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return "", fmt.Errorf("invalid type %q (choose from %s)", s, strings.Join(names, ", "))
}

var (
	ErrEmptyPalette    = errors.New("palette has no colors")
	ErrPaletteTooSmall = errors.New("icon palette needs at least 2 colors")
)

// DefaultDensity is the enemy coverage threshold when none is given.
const DefaultDensity = 0.4

// Params carries everything a single generation needs besides the stream.
type Params struct {
	Kind    Kind
	Size    int
	Palette palette.Palette
	// Density only applies to KindEnemy.
	Density float64
}

// Generate dispatches to the generator for p.Kind. Projectiles ignore rng.
func Generate(p Params, rng Stream) (*image.NRGBA, error) {
	switch p.Kind {
	case KindEnemy:
		return Symmetric(p.Size, p.Palette, p.Density, rng)
	case KindProjectile:
		return Projectile(p.Size, p.Palette)
	case KindIcon:
		return Icon(p.Size, p.Palette, rng)
	default:
		return nil, fmt.Errorf("unknown sprite kind %q", p.Kind)
	}
}

// newCanvas returns a fully transparent size×size buffer. Negative sizes
// produce an empty buffer.
func newCanvas(size int) *image.NRGBA {
	if size < 0 {
		size = 0
	}
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}
