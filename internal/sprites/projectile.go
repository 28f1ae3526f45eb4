package sprites

import (
	"image"
	"image/color"
	"math"

	"github.com/JPM1118/spritegen/internal/palette"
)

// Projectile generates a round sprite with a bright core in p[0], an outer
// ring in p[1], and an alpha falloff over the outer fifth of the radius. It
// consumes no randomness.
//
// Sizes of 2 or less leave no positive radius and yield a transparent buffer.
func Projectile(size int, p palette.Palette) (*image.NRGBA, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	img := newCanvas(size)

	center := float64(size) / 2
	radius := center - 1
	if radius <= 0 {
		return img, nil
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)-center, float64(y)-center)
			if dist > radius {
				continue
			}

			brightness := 1 - dist/radius*0.5
			src := p[1%len(p)]
			if dist < radius*0.5 {
				src = p[0]
			}

			img.SetNRGBA(x, y, color.NRGBA{
				R: shade(src.R, brightness),
				G: shade(src.G, brightness),
				B: shade(src.B, brightness),
				A: falloff(dist, radius),
			})
		}
	}
	return img, nil
}

func shade(c uint8, brightness float64) uint8 {
	return uint8(math.Min(255, math.Round(float64(c)*brightness)))
}

// falloff is opaque inside 0.8·radius and fades linearly to zero at radius.
func falloff(dist, radius float64) uint8 {
	if dist < radius*0.8 {
		return 255
	}
	a := int(255 * (1 - (dist-radius*0.8)/(radius*0.2)))
	return uint8(max(0, min(255, a)))
}
