package texgen

// Grunge layers dirt over the texture by biasing blue channels by
// intensity. No clamping is applied.
//
// TODO: extend the dirt pass to the full buffer with banded intensity
// falloff; it currently reaches only the first pixel.
func (t *Texture) Grunge(intensity float64) {
	if len(t.pix) == 0 {
		return
	}
	t.pix[0].B += intensity
}

// Smear drags streaks of c across the texture.
//
// TODO: implement the directional streak kernel; it currently stamps
// only the first pixel.
func (t *Texture) Smear(c Color) {
	if len(t.pix) == 0 {
		return
	}
	t.pix[0] = c
}
