package sprites

import (
	"bytes"
	"image/color"
	"math"
	"sort"
	"testing"

	"github.com/JPM1118/spritegen/internal/palette"
)

func TestProjectile_FireScenario(t *testing.T) {
	p := palette.MustLookup(palette.Fire)
	img, err := Projectile(16, p)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("bounds = %v, want 16x16", img.Bounds())
	}
	if got := img.NRGBAAt(8, 8); got != p[0] {
		t.Errorf("center = %v, want %v", got, p[0])
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner alpha = %d, want 0", got.A)
	}
}

func TestProjectile_OuterRingShade(t *testing.T) {
	p := palette.MustLookup(palette.Fire)
	img, err := Projectile(16, p)
	if err != nil {
		t.Fatal(err)
	}
	// dist 4 from center, radius 7: outer ring, still opaque.
	want := color.NRGBA{R: 182, G: 114, B: 29, A: 255}
	if got := img.NRGBAAt(12, 8); got != want {
		t.Errorf("(12,8) = %v, want %v", got, want)
	}
}

func TestProjectile_Falloff(t *testing.T) {
	for _, size := range []int{8, 16, 31, 64} {
		img, err := Projectile(size, palette.MustLookup(palette.Ice))
		if err != nil {
			t.Fatal(err)
		}
		center := float64(size) / 2
		radius := center - 1

		type sample struct {
			dist  float64
			alpha uint8
		}
		var band []sample
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dist := math.Hypot(float64(x)-center, float64(y)-center)
				a := img.NRGBAAt(x, y).A
				switch {
				case dist > radius:
					if a != 0 {
						t.Errorf("size %d (%d,%d): alpha %d outside radius", size, x, y, a)
					}
				case dist < radius*0.8:
					if a != 255 {
						t.Errorf("size %d (%d,%d): alpha %d inside core", size, x, y, a)
					}
				default:
					band = append(band, sample{dist, a})
				}
			}
		}

		sort.Slice(band, func(i, j int) bool { return band[i].dist < band[j].dist })
		for i := 1; i < len(band); i++ {
			if band[i].alpha > band[i-1].alpha {
				t.Errorf("size %d: alpha rises from %d to %d at dist %.3f",
					size, band[i-1].alpha, band[i].alpha, band[i].dist)
			}
		}
	}
}

func TestProjectile_Reproducible(t *testing.T) {
	p := palette.MustLookup(palette.Gold)
	a, _ := Projectile(24, p)
	b, _ := Projectile(24, p)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("projectile output should not vary between calls")
	}
}

func TestProjectile_SingleColorPalette(t *testing.T) {
	p := palette.Palette{{R: 10, G: 20, B: 30, A: 255}}
	img, err := Projectile(16, p)
	if err != nil {
		t.Fatal(err)
	}
	// Outer ring falls back to p[0] at reduced brightness.
	got := img.NRGBAAt(12, 8)
	if got.R != 7 || got.G != 14 || got.B != 21 {
		t.Errorf("(12,8) = %v, want shaded p[0]", got)
	}
}

func TestProjectile_TinySizesTransparent(t *testing.T) {
	for _, size := range []int{0, 1, 2} {
		img, err := Projectile(size, palette.MustLookup(palette.Fire))
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		for _, v := range img.Pix {
			if v != 0 {
				t.Fatalf("size %d should be fully transparent", size)
			}
		}
	}
}

func TestProjectile_EmptyPalette(t *testing.T) {
	if _, err := Projectile(16, palette.Palette{}); err != ErrEmptyPalette {
		t.Errorf("err = %v, want ErrEmptyPalette", err)
	}
}
