package texgen

import (
	"image"
	"image/color"
	"math"
)

// Texture is a fixed-size, row-major RGBA pixel buffer. All effects
// operate on it in place. The zero value is not usable; create
// textures with New.
//
// Texture implements image.Image and draw.Image, so standard library
// and x/image code can read from and draw into it directly.
type Texture struct {
	width  int
	height int
	pix    []Color
}

// New creates a texture of the given size with every pixel set to
// fill. It returns ErrInvalidSize if either dimension is not positive,
// and ErrTooLarge if width*height does not fit in an int.
func New(width, height int, fill Color) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if width > math.MaxInt/height {
		return nil, ErrTooLarge
	}
	t := &Texture{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	t.Fill(fill)
	return t, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Pix returns the underlying pixel slice, stored row-major with
// index = y*Width() + x. The slice is live: writes through it are
// visible to subsequent effects.
func (t *Texture) Pix() []Color { return t.pix }

// index converts pixel coordinates to a buffer offset. All pixel
// addressing goes through here; callers validate bounds first.
func (t *Texture) index(x, y int) int {
	return y*t.width + x
}

// SetPixel sets the pixel at (x, y) to c. Out-of-bounds coordinates
// are ignored.
func (t *Texture) SetPixel(x, y int, c Color) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.pix[t.index(x, y)] = c
}

// GetPixel returns the pixel at (x, y), or Transparent if the
// coordinates are out of bounds.
func (t *Texture) GetPixel(x, y int) Color {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Transparent
	}
	return t.pix[t.index(x, y)]
}

// Fill sets every pixel to c.
func (t *Texture) Fill(c Color) {
	for i := range t.pix {
		t.pix[i] = c
	}
}

// Clone returns a deep copy of the texture.
func (t *Texture) Clone() *Texture {
	pix := make([]Color, len(t.pix))
	copy(pix, t.pix)
	return &Texture{width: t.width, height: t.height, pix: pix}
}

// Blit copies src onto the texture with its top-left corner at (x, y).
// Pixels falling outside the destination are clipped. Alpha is copied
// verbatim with no compositing; use Blend for that. A nil src is a
// no-op.
func (t *Texture) Blit(src *Texture, x, y int) {
	if src == nil {
		return
	}
	if x >= t.width || y >= t.height || x <= -src.width || y <= -src.height {
		return
	}
	sx0, sy0 := 0, 0
	if x < 0 {
		sx0 = -x
	}
	if y < 0 {
		sy0 = -y
	}
	sx1, sy1 := src.width, src.height
	if sx1 > t.width-x {
		sx1 = t.width - x
	}
	if sy1 > t.height-y {
		sy1 = t.height - y
	}
	for sy := sy0; sy < sy1; sy++ {
		di := t.index(x+sx0, y+sy)
		si := src.index(sx0, sy)
		copy(t.pix[di:di+(sx1-sx0)], src.pix[si:si+(sx1-sx0)])
	}
}

// ColorModel implements the image.Image interface.
func (t *Texture) ColorModel() color.Model {
	return color.NRGBA64Model
}

// Bounds implements the image.Image interface.
func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.width, t.height)
}

// At implements the image.Image interface. Out-of-bounds coordinates
// return transparent, matching GetPixel.
func (t *Texture) At(x, y int) color.Color {
	return t.GetPixel(x, y).NRGBA64()
}

// Set implements the draw.Image interface.
func (t *Texture) Set(x, y int, c color.Color) {
	t.SetPixel(x, y, FromColor(c))
}
