package texgen

import "math/rand"

// defaultNoiseSeed seeds the stream used when Noise gets a nil rng and
// the stream a Builder creates when no seed is configured.
const defaultNoiseSeed = 1

// Noise perturbs every color channel by intensity*(u-0.5), where u is
// drawn uniformly from [0, 1). Each pixel's red, green, and blue
// channels are perturbed independently, in that order, and clamped to
// [0, 1]. Alpha is left untouched. Negative intensities mirror the
// perturbation and are allowed.
//
// The rng parameter controls reproducibility. A nil rng uses a fresh
// stream with a fixed default seed, so repeated nil calls on equal
// textures produce identical results. Pass a caller-owned *rand.Rand
// to decorrelate successive calls or to vary the pattern.
func (t *Texture) Noise(rng *rand.Rand, intensity float64) {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultNoiseSeed))
	}
	for i := range t.pix {
		p := &t.pix[i]
		p.R = clamp01(p.R + intensity*(rng.Float64()-0.5))
		p.G = clamp01(p.G + intensity*(rng.Float64()-0.5))
		p.B = clamp01(p.B + intensity*(rng.Float64()-0.5))
	}
}
