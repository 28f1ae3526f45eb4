package sprites

import "image"

// Upscale enlarges img by an integer factor with nearest-neighbor sampling,
// so every source pixel becomes a factor×factor block with its exact NRGBA
// value, including the RGB of fully transparent pixels. Factors below 2
// return img unchanged.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w*factor, h*factor))

	row := make([]byte, w*factor*4)
	for y := 0; y < h; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):][:w*4]
		for x := 0; x < w; x++ {
			px := src[x*4 : x*4+4]
			for k := 0; k < factor; k++ {
				copy(row[(x*factor+k)*4:], px)
			}
		}
		for k := 0; k < factor; k++ {
			copy(dst.Pix[(y*factor+k)*dst.Stride:], row)
		}
	}
	return dst
}
