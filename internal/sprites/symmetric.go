package sprites

import (
	"image"
	"math"

	"github.com/JPM1118/spritegen/internal/palette"
)

// Symmetric generates a left-right mirrored noise sprite. Each cell of the
// left half is filled with probability density·factor, where factor falls off
// by up to 30% with distance from the half's center column and again with
// distance from the vertical center.
func Symmetric(size int, p palette.Palette, density float64, rng Stream) (*image.NRGBA, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	img := newCanvas(size)

	halfW := (size + 1) / 2
	cx := float64(halfW) / 2
	cy := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < halfW; x++ {
			factor := 1 - math.Abs(float64(x)-cx)/cx*0.3
			factor *= 1 - math.Abs(float64(y)-cy)/cy*0.3

			if rng.Float64() >= density*factor {
				continue
			}
			c := p[rng.IntN(len(p))]
			img.SetNRGBA(x, y, c)
			if mx := size - 1 - x; mx != x {
				img.SetNRGBA(mx, y, c)
			}
		}
	}
	return img, nil
}
