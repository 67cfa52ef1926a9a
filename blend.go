package texgen

// BlendMode selects how Blend composites a source pixel onto a
// destination pixel.
type BlendMode int

const (
	// BlendSourceOver is standard alpha compositing of source over
	// destination.
	BlendSourceOver BlendMode = iota
	// BlendAdditive sums the RGB channels and clamps to [0, 1].
	// Destination alpha is kept.
	BlendAdditive
	// BlendMultiply multiplies the RGB channels. The result is never
	// lighter than either input. Destination alpha is kept.
	BlendMultiply
	// BlendScreen inverts both inputs, multiplies, and inverts again.
	// The result is never darker than either input. Destination alpha
	// is kept.
	BlendScreen
)

// String returns the mode name used in logs.
func (m BlendMode) String() string {
	switch m {
	case BlendSourceOver:
		return "source-over"
	case BlendAdditive:
		return "additive"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Blend composites src onto the texture pixel by pixel using the given
// mode. The textures must have identical dimensions; otherwise
// ErrSizeMismatch is returned and the destination is untouched. A nil
// src returns ErrNilTexture. Unknown modes fall back to
// BlendSourceOver.
func (t *Texture) Blend(src *Texture, mode BlendMode) error {
	if src == nil {
		return ErrNilTexture
	}
	if src.width != t.width || src.height != t.height {
		return ErrSizeMismatch
	}
	for i := range t.pix {
		t.pix[i] = blendPixel(src.pix[i], t.pix[i], mode)
	}
	return nil
}

// blendPixel blends one source pixel onto one destination pixel.
func blendPixel(src, dst Color, mode BlendMode) Color {
	switch mode {
	case BlendAdditive:
		return Color{
			R: clamp01(dst.R + src.R),
			G: clamp01(dst.G + src.G),
			B: clamp01(dst.B + src.B),
			A: dst.A,
		}
	case BlendMultiply:
		return Color{
			R: dst.R * src.R,
			G: dst.G * src.G,
			B: dst.B * src.B,
			A: dst.A,
		}
	case BlendScreen:
		return Color{
			R: 1 - (1-dst.R)*(1-src.R),
			G: 1 - (1-dst.G)*(1-src.G),
			B: 1 - (1-dst.B)*(1-src.B),
			A: dst.A,
		}
	default:
		return sourceOver(src, dst)
	}
}

// sourceOver composites src over dst in premultiplied space.
func sourceOver(src, dst Color) Color {
	s := src.Premultiply()
	d := dst.Premultiply()
	inv := 1 - s.A
	return Color{
		R: s.R + d.R*inv,
		G: s.G + d.G*inv,
		B: s.B + d.B*inv,
		A: s.A + d.A*inv,
	}.Unpremultiply()
}
