// Command texdemo generates the texgen showcase textures (sky, grass,
// water and a composed scene) and writes them out as PNG files.
package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/procpix/texgen"
)

var out = flag.String("out", ".", "output directory")
var size = flag.Int("size", 64, "texture size in pixels (square)")
var scale = flag.Int("scale", 4, "preview upscale factor (1 = raw pixels)")
var seed = flag.Int64("seed", 1, "noise seed")
var verbose = flag.Bool("verbose", false, "set debug logging")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	if !*verbose {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Fatal("create output directory", zap.Error(err))
	}

	for _, p := range []struct {
		name string
		gen  func(int, int64) (*texgen.Texture, error)
	}{
		{"sky", sky},
		{"grass", grass},
		{"grass-dark", grassDark},
		{"water", water},
		{"scene", scene},
	} {
		tex, err := p.gen(*size, *seed)
		if err != nil {
			logger.Fatal("generate texture", zap.String("name", p.name), zap.Error(err))
		}
		path := filepath.Join(*out, p.name+".png")
		if err := writePNG(path, tex, *scale); err != nil {
			logger.Fatal("write png", zap.String("path", path), zap.Error(err))
		}
		logger.Info("texture written",
			zap.String("path", path),
			zap.Int("width", tex.Width()),
			zap.Int("height", tex.Height()))
	}
}

func sky(size int, seed int64) (*texgen.Texture, error) {
	return texgen.NewBuilder(size, size, texgen.Hex("#468f"), texgen.WithSeed(seed)).
		Build()
}

func grass(size int, seed int64) (*texgen.Texture, error) {
	return texgen.NewBuilder(size, size, texgen.Hex("#340f"), texgen.WithSeed(seed)).
		Grunge(0.1).
		Build()
}

func grassDark(size int, seed int64) (*texgen.Texture, error) {
	return texgen.NewBuilder(size, size, texgen.Hex("#340f"), texgen.WithSeed(seed)).
		Grunge(0.1).
		Noise(1.5).
		Build()
}

func water(size int, seed int64) (*texgen.Texture, error) {
	return texgen.NewBuilder(size, size, texgen.Hex("#236f"), texgen.WithSeed(seed)).
		Noise(4.5).
		Noise(2.5).
		Build()
}

// scene composes the showcase tiles into one image: sky with a sun
// over a grass strip, water filling the lower quarter.
func scene(size int, seed int64) (*texgen.Texture, error) {
	w, err := water(size, seed)
	if err != nil {
		return nil, err
	}
	g, err := grassDark(size, seed)
	if err != nil {
		return nil, err
	}
	return texgen.NewBuilder(size, size, texgen.Hex("#468f"), texgen.WithSeed(seed)).
		Noise(0.08).
		FillCircle(size*3/4, size/4, size/8, texgen.Hex("#ffd27f")).
		Blit(g, 0, size/2).
		Blit(w, 0, size*3/4).
		Line(0, size/2, size-1, size/2, texgen.Hex("#230f")).
		Build()
}

// writePNG encodes tex at the given preview scale. Upscaling uses
// nearest-neighbor so the pixel grid stays crisp.
func writePNG(path string, tex *texgen.Texture, scale int) error {
	var img image.Image = tex
	if scale > 1 {
		img = imaging.Resize(tex, tex.Width()*scale, tex.Height()*scale, imaging.NearestNeighbor)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
