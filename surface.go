package compositor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Surface is a rendering surface the compositor composites frames onto.
//
// The compositor constructs one GraphicsContext per Surface. A surface may
// support CPU access (Pixels), GPU access, or both; software-only contexts
// require CPU access.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the pixel format of the surface.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, or nil for GPU-only
	// surfaces. For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapSurface is a CPU-backed surface using *image.RGBA.
//
// It is the surface type for software-only contexts and for GPU readback.
// The zero value is not usable; create one with NewPixmapSurface.
type PixmapSurface struct {
	img *image.RGBA
}

// NewPixmapSurface creates a CPU-backed surface of the given size.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewPixmapSurface(width, height int) (*PixmapSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &PixmapSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// NewPixmapSurfaceFromImage wraps an existing *image.RGBA as a surface.
// The image is used directly without copying.
func NewPixmapSurfaceFromImage(img *image.RGBA) *PixmapSurface {
	return &PixmapSurface{img: img}
}

// Width returns the surface width in pixels.
func (s *PixmapSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *PixmapSurface) Height() int {
	return s.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (s *PixmapSurface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (s *PixmapSurface) Pixels() []byte {
	return s.img.Pix
}

// Stride returns the number of bytes per row.
func (s *PixmapSurface) Stride() int {
	return s.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the surface.
func (s *PixmapSurface) Image() *image.RGBA {
	return s.img
}

// Clear fills the entire surface with the given color.
func (s *PixmapSurface) Clear(c color.Color) {
	fillRGBA(s.img, c)
}

// SetPixel sets a single pixel at the given coordinates.
func (s *PixmapSurface) SetPixel(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

// GetPixel returns the color at the given coordinates.
func (s *PixmapSurface) GetPixel(x, y int) color.Color {
	return s.img.At(x, y)
}

// Resize replaces the backing pixmap with one of the given dimensions.
// The contents are not preserved. Invalid dimensions leave the surface
// unchanged and return ErrInvalidDimensions.
func (s *PixmapSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// DrawImage composites src onto the surface at (x, y) without scaling.
func (s *PixmapSurface) DrawImage(src image.Image, x, y int) {
	blit(s.img, src, x, y)
}

// DrawImageScaled composites src onto the destination rectangle, scaling
// with bilinear interpolation. Used by the software presentation path to
// fit layer output to the surface size.
func (s *PixmapSurface) DrawImageScaled(src image.Image, dst image.Rectangle) {
	blitScaled(s.img, src, dst)
}

// Ensure PixmapSurface implements Surface.
var _ Surface = (*PixmapSurface)(nil)
