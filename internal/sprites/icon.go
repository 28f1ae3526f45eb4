package sprites

import (
	"image"

	"github.com/JPM1118/spritegen/internal/palette"
)

// Icon generates a bordered square icon. The border uses the palette's last
// color; the interior, inset by two pixels, is a mirrored speckle drawn from
// the remaining colors with 50% coverage.
func Icon(size int, p palette.Palette, rng Stream) (*image.NRGBA, error) {
	if len(p) < 2 {
		return nil, ErrPaletteTooSmall
	}
	img := newCanvas(size)

	border := p.Last()
	for i := 0; i < size; i++ {
		img.SetNRGBA(i, 0, border)
		img.SetNRGBA(i, size-1, border)
		img.SetNRGBA(0, i, border)
		img.SetNRGBA(size-1, i, border)
	}

	fill := p.WithoutLast()
	for y := 2; y < size-2; y++ {
		for x := 2; x < size/2; x++ {
			if rng.Float64() >= 0.5 {
				continue
			}
			c := fill[rng.IntN(len(fill))]
			img.SetNRGBA(x, y, c)
			img.SetNRGBA(size-1-x, y, c)
		}
	}
	return img, nil
}
