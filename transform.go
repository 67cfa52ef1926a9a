package texgen

import (
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Flip reverses the row order in place, mirroring the texture across
// its horizontal axis. Flipping twice restores the original.
func (t *Texture) Flip() {
	for y := 0; y < t.height/2; y++ {
		top := t.pix[t.index(0, y) : t.index(0, y)+t.width]
		bot := t.pix[t.index(0, t.height-1-y) : t.index(0, t.height-1-y)+t.width]
		for x := range top {
			top[x], bot[x] = bot[x], top[x]
		}
	}
}

// Mirror reverses each row in place, mirroring the texture across its
// vertical axis. Mirroring twice restores the original.
func (t *Texture) Mirror() {
	for y := 0; y < t.height; y++ {
		row := t.pix[t.index(0, y) : t.index(0, y)+t.width]
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// Resize returns a new width by height texture containing this texture
// rescaled with bilinear interpolation. The receiver is not modified.
// Invalid dimensions return ErrInvalidSize or ErrTooLarge.
func (t *Texture) Resize(width, height int) (*Texture, error) {
	dst, err := New(width, height, Transparent)
	if err != nil {
		return nil, err
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), t, t.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Rotate rotates the texture in place by angle radians about its
// center. See RotateAbout.
func (t *Texture) Rotate(angle float64) {
	t.RotateAbout(angle, float64(t.width)/2, float64(t.height)/2)
}

// RotateAbout rotates the texture in place by angle radians about the
// pivot (px, py), given in pixel coordinates. Positive angles rotate
// clockwise in the y-down pixel frame. Pixels are resampled with
// bilinear interpolation; regions the rotated image does not cover
// become transparent.
func (t *Texture) RotateAbout(angle, px, py float64) {
	sin, cos := math.Sincos(angle)
	m := f64.Aff3{
		cos, -sin, px - cos*px + sin*py,
		sin, cos, py - sin*px - cos*py,
	}
	dst := &Texture{
		width:  t.width,
		height: t.height,
		pix:    make([]Color, len(t.pix)),
	}
	xdraw.BiLinear.Transform(dst, m, t, t.Bounds(), xdraw.Over, nil)
	copy(t.pix, dst.pix)
}
