package texgen

import "math/rand"

// BuilderOption configures a Builder during creation.
//
// Example:
//
//	// Default: silent out-of-bounds rectangles, noise seed 1
//	b := texgen.NewBuilder(64, 64, texgen.Black)
//
//	// Reproducible variant textures
//	b := texgen.NewBuilder(64, 64, texgen.Black, texgen.WithSeed(42))
type BuilderOption func(*builderOptions)

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	seed   int64
	rng    *rand.Rand
	strict bool
}

// defaultBuilderOptions returns the default builder options.
func defaultBuilderOptions() builderOptions {
	return builderOptions{
		seed: defaultNoiseSeed,
	}
}

// WithSeed seeds the builder's noise stream. Two builders constructed
// with the same seed, dimensions, and effect chain produce identical
// textures. The default seed is 1.
func WithSeed(seed int64) BuilderOption {
	return func(o *builderOptions) {
		o.seed = seed
	}
}

// WithRand supplies the random stream used by Noise, overriding
// WithSeed. The builder assumes sole use of the stream for the
// lifetime of the pipeline.
//
// Example:
//
//	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
//	b := texgen.NewBuilder(64, 64, texgen.Black, texgen.WithRand(rng))
func WithRand(rng *rand.Rand) BuilderOption {
	return func(o *builderOptions) {
		o.rng = rng
	}
}

// WithStrictBounds makes out-of-bounds FillRect regions abort the
// pipeline with a RegionError instead of being silently ignored.
func WithStrictBounds() BuilderOption {
	return func(o *builderOptions) {
		o.strict = true
	}
}
