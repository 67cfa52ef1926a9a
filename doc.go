// Package texgen provides procedural 2D texture generation for Go.
//
// # Overview
//
// texgen builds small RGBA textures by applying a pipeline of effects
// (noise, rectangles, circles, flips, blends) to an in-memory pixel
// buffer. It is aimed at low-fi procedural art: game prototypes, tile
// sets, placeholder assets.
//
// # Quick Start
//
//	import "github.com/procpix/texgen"
//
//	// A 64x64 sky tile: flat blue with a little grain.
//	tex, err := texgen.NewBuilder(64, 64, texgen.Hex("#468f")).
//		Noise(0.08).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Texture implements image.Image, so it encodes directly.
//	png.Encode(w, tex)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Pixels are stored row-major: index = y*width + x.
//
// # Concurrency
//
// A Texture is owned by one goroutine at a time. Effects mutate the
// buffer in place with no internal locking; callers that share a
// finished texture across goroutines must treat it as read-only.
package texgen

// Version is the current version of the library.
const Version = "0.1.0"
