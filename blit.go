package compositor

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// fillRGBA fills the whole image with a single color.
func fillRGBA(dst *image.RGBA, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// blit composites src over dst at (x, y) at 1:1 scale.
func blit(dst *image.RGBA, src image.Image, x, y int) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(image.Pt(x, y))
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

// blitScaled composites src over the destination rectangle, resampling with
// bilinear interpolation. ApproxBiLinear trades a little quality for speed,
// which is the right balance for per-frame presentation.
func blitScaled(dst *image.RGBA, src image.Image, r image.Rectangle) {
	draw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
}
