package texgen

import (
	"fmt"
	"math/rand"
)

// Effect is a reusable texture operation. Implementations mutate the
// texture in place; effects that cannot fail return a nil error.
type Effect interface {
	// Name identifies the effect in logs and wrapped errors.
	Name() string
	// Apply runs the effect against t.
	Apply(t *Texture) error
}

// FillOp sets every pixel to Color.
type FillOp struct {
	Color Color
}

func (o FillOp) Name() string { return "fill" }

func (o FillOp) Apply(t *Texture) error {
	t.Fill(o.Color)
	return nil
}

// NoiseOp perturbs color channels with uniform noise. A nil Rand uses
// a fixed default stream, making the op deterministic across runs.
type NoiseOp struct {
	Intensity float64
	Rand      *rand.Rand
}

func (o NoiseOp) Name() string { return "noise" }

func (o NoiseOp) Apply(t *Texture) error {
	t.Noise(o.Rand, o.Intensity)
	return nil
}

// RectOp fills a rectangle. Out-of-bounds rectangles are ignored.
type RectOp struct {
	X, Y, W, H int
	Color      Color
}

func (o RectOp) Name() string { return "fill_rect" }

func (o RectOp) Apply(t *Texture) error {
	t.FillRect(o.X, o.Y, o.W, o.H, o.Color)
	return nil
}

// CircleOp fills a circle, clipped to the texture.
type CircleOp struct {
	X, Y, Radius int
	Color        Color
}

func (o CircleOp) Name() string { return "fill_circle" }

func (o CircleOp) Apply(t *Texture) error {
	t.FillCircle(o.X, o.Y, o.Radius, o.Color)
	return nil
}

// LineOp draws a line, clipped to the texture.
type LineOp struct {
	X0, Y0, X1, Y1 int
	Color          Color
}

func (o LineOp) Name() string { return "line" }

func (o LineOp) Apply(t *Texture) error {
	t.Line(o.X0, o.Y0, o.X1, o.Y1, o.Color)
	return nil
}

// FlipOp reverses the row order.
type FlipOp struct{}

func (FlipOp) Name() string { return "flip" }

func (FlipOp) Apply(t *Texture) error {
	t.Flip()
	return nil
}

// MirrorOp reverses each row.
type MirrorOp struct{}

func (MirrorOp) Name() string { return "mirror" }

func (MirrorOp) Apply(t *Texture) error {
	t.Mirror()
	return nil
}

// RotateOp rotates the texture about its center.
type RotateOp struct {
	Angle float64
}

func (o RotateOp) Name() string { return "rotate" }

func (o RotateOp) Apply(t *Texture) error {
	t.Rotate(o.Angle)
	return nil
}

// BlitOp copies a source texture at an offset, clipped to the bounds.
type BlitOp struct {
	Src  *Texture
	X, Y int
}

func (o BlitOp) Name() string { return "blit" }

func (o BlitOp) Apply(t *Texture) error {
	if o.Src == nil {
		return ErrNilTexture
	}
	t.Blit(o.Src, o.X, o.Y)
	return nil
}

// BlendOp composites a same-size source texture onto the target.
type BlendOp struct {
	Src  *Texture
	Mode BlendMode
}

func (o BlendOp) Name() string { return "blend" }

func (o BlendOp) Apply(t *Texture) error {
	return t.Blend(o.Src, o.Mode)
}

// GrungeOp layers dirt over the texture. See Texture.Grunge.
type GrungeOp struct {
	Intensity float64
}

func (o GrungeOp) Name() string { return "grunge" }

func (o GrungeOp) Apply(t *Texture) error {
	t.Grunge(o.Intensity)
	return nil
}

// SmearOp drags streaks across the texture. See Texture.Smear.
type SmearOp struct {
	Color Color
}

func (o SmearOp) Name() string { return "smear" }

func (o SmearOp) Apply(t *Texture) error {
	t.Smear(o.Color)
	return nil
}

// Pipeline is an ordered sequence of effects that can be applied to
// any number of textures. It implements Effect itself, so pipelines
// nest and compose.
type Pipeline []Effect

func (Pipeline) Name() string { return "pipeline" }

// Apply runs each effect in order, stopping at the first error. The
// returned error is wrapped with the failing effect's name. Nil
// effects are skipped.
func (p Pipeline) Apply(t *Texture) error {
	if t == nil {
		return ErrNilTexture
	}
	for _, e := range p {
		if e == nil {
			continue
		}
		Logger().Debug("texgen: applying effect", "effect", e.Name())
		if err := e.Apply(t); err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
	}
	return nil
}
