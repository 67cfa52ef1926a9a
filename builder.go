package texgen

import "math/rand"

// Builder accumulates effects against an owned texture and finalizes
// them with Build. Methods chain:
//
//	tex, err := texgen.NewBuilder(16, 16, texgen.Hex("#340f")).
//		Noise(0.1).
//		FillRect(0, 0, 16, 4, texgen.Hex("#468f")).
//		Build()
//
// The first error latches: every later effect is skipped and Build
// returns that error. A Builder is single-use. After Build it is
// finalized; further effects are ignored and a second Build returns
// ErrFinalized.
//
// A Builder and its texture are owned by one goroutine at a time.
type Builder struct {
	tex    *Texture
	rng    *rand.Rand
	strict bool
	steps  int
	err    error
}

// NewBuilder creates a builder over a fresh width by height texture
// with every pixel set to fill. Invalid dimensions latch the
// corresponding error, which Build reports.
func NewBuilder(width, height int, fill Color, opts ...BuilderOption) *Builder {
	o := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Builder{
		rng:    o.rng,
		strict: o.strict,
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(o.seed))
	}
	tex, err := New(width, height, fill)
	if err != nil {
		return b.fail(err)
	}
	b.tex = tex
	return b
}

// fail latches the first pipeline error.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
		Logger().Warn("texgen: pipeline aborted", "err", err)
	}
	return b
}

// Err returns the latched pipeline error, if any. It reports the same
// error Build will return, without finalizing the builder.
func (b *Builder) Err() error {
	return b.err
}

// Fill sets every pixel to c.
func (b *Builder) Fill(c Color) *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Fill(c)
	b.steps++
	return b
}

// Noise perturbs each color channel by intensity*(u-0.5) using the
// builder's random stream. The stream advances across calls, so
// successive Noise effects in one pipeline are decorrelated. See
// Texture.Noise.
func (b *Builder) Noise(intensity float64) *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Noise(b.rng, intensity)
	b.steps++
	return b
}

// FillRect fills the w by h rectangle at (x, y) with c. Out-of-bounds
// rectangles are silently ignored unless the builder was created with
// WithStrictBounds, in which case they latch a RegionError.
func (b *Builder) FillRect(x, y, w, h int, c Color) *Builder {
	if b.err != nil {
		return b
	}
	if b.strict && !b.tex.rectInBounds(x, y, w, h) {
		return b.fail(&RegionError{
			X: x, Y: y, W: w, H: h,
			TexW: b.tex.width, TexH: b.tex.height,
		})
	}
	b.tex.FillRect(x, y, w, h, c)
	b.steps++
	return b
}

// FillCircle fills the circle of radius r centered at (x, y) with c.
func (b *Builder) FillCircle(x, y, r int, c Color) *Builder {
	if b.err != nil {
		return b
	}
	b.tex.FillCircle(x, y, r, c)
	b.steps++
	return b
}

// Line draws a line from (x0, y0) to (x1, y1) with c.
func (b *Builder) Line(x0, y0, x1, y1 int, c Color) *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Line(x0, y0, x1, y1, c)
	b.steps++
	return b
}

// Flip reverses the row order.
func (b *Builder) Flip() *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Flip()
	b.steps++
	return b
}

// Mirror reverses each row.
func (b *Builder) Mirror() *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Mirror()
	b.steps++
	return b
}

// Grunge layers dirt over the texture. See Texture.Grunge.
func (b *Builder) Grunge(intensity float64) *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Grunge(intensity)
	b.steps++
	return b
}

// Smear drags streaks of c across the texture. See Texture.Smear.
func (b *Builder) Smear(c Color) *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Smear(c)
	b.steps++
	return b
}

// Blit copies src onto the texture at (x, y), clipped to the bounds.
// A nil src latches ErrNilTexture.
func (b *Builder) Blit(src *Texture, x, y int) *Builder {
	if b.err != nil {
		return b
	}
	if src == nil {
		return b.fail(ErrNilTexture)
	}
	b.tex.Blit(src, x, y)
	b.steps++
	return b
}

// Blend composites src onto the texture using mode. The sizes must
// match; a mismatch or nil src latches the corresponding error.
func (b *Builder) Blend(src *Texture, mode BlendMode) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.tex.Blend(src, mode); err != nil {
		return b.fail(err)
	}
	b.steps++
	return b
}

// Rotate rotates the texture by angle radians about its center.
func (b *Builder) Rotate(angle float64) *Builder {
	if b.err != nil {
		return b
	}
	b.tex.Rotate(angle)
	b.steps++
	return b
}

// Resize replaces the texture under construction with a bilinear
// rescale to width by height. Invalid dimensions latch an error.
func (b *Builder) Resize(width, height int) *Builder {
	if b.err != nil {
		return b
	}
	tex, err := b.tex.Resize(width, height)
	if err != nil {
		return b.fail(err)
	}
	b.tex = tex
	b.steps++
	return b
}

// Apply runs an arbitrary effect against the texture. A nil effect is
// ignored; an effect error latches and aborts the pipeline.
func (b *Builder) Apply(e Effect) *Builder {
	if b.err != nil || e == nil {
		return b
	}
	if err := e.Apply(b.tex); err != nil {
		return b.fail(err)
	}
	b.steps++
	return b
}

// Build finalizes the pipeline and transfers ownership of the texture
// to the caller. If any effect latched an error, Build returns it and
// the texture is discarded. The builder cannot be reused afterwards.
func (b *Builder) Build() (*Texture, error) {
	if b.err != nil {
		return nil, b.err
	}
	tex := b.tex
	b.tex = nil
	b.err = ErrFinalized
	Logger().Debug("texgen: texture built",
		"width", tex.width, "height", tex.height, "effects", b.steps)
	return tex, nil
}
