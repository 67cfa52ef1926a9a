package texgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for texture construction and composition.
var (
	// ErrInvalidSize is returned when a texture dimension is zero or negative.
	ErrInvalidSize = errors.New("texgen: texture dimensions must be positive")

	// ErrTooLarge is returned when width*height does not fit in an int.
	ErrTooLarge = errors.New("texgen: texture too large")

	// ErrSizeMismatch is returned by Blend when the two textures differ in size.
	ErrSizeMismatch = errors.New("texgen: texture sizes do not match")

	// ErrNilTexture is returned when an operation requires a non-nil source texture.
	ErrNilTexture = errors.New("texgen: nil texture")

	// ErrFinalized is returned when a Builder is used after Build.
	ErrFinalized = errors.New("texgen: builder already finalized")
)

// RegionError reports a rectangle that falls outside a texture. It is
// produced only by builders in strict bounds mode; plain FillRect
// ignores out-of-range regions.
type RegionError struct {
	X, Y, W, H int
	TexW, TexH int
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("texgen: region %dx%d at (%d,%d) outside %dx%d texture",
		e.W, e.H, e.X, e.Y, e.TexW, e.TexH)
}
