// Command texview opens a window showing a generated texture live.
// Space cycles through the presets, R regenerates with a fresh seed.
package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/procpix/texgen"
)

var size = flag.Int("size", 64, "texture size in pixels (square)")
var seed = flag.Int64("seed", 1, "initial noise seed")
var windowScale = flag.Int("window-scale", 8, "window pixels per texture pixel")

type preset struct {
	name string
	gen  func(size int, seed int64) (*texgen.Texture, error)
}

var presets = []preset{
	{"sky", func(size int, seed int64) (*texgen.Texture, error) {
		return texgen.NewBuilder(size, size, texgen.Hex("#468f"), texgen.WithSeed(seed)).
			Noise(0.08).
			Build()
	}},
	{"grass", func(size int, seed int64) (*texgen.Texture, error) {
		return texgen.NewBuilder(size, size, texgen.Hex("#340f"), texgen.WithSeed(seed)).
			Grunge(0.1).
			Build()
	}},
	{"grass-dark", func(size int, seed int64) (*texgen.Texture, error) {
		return texgen.NewBuilder(size, size, texgen.Hex("#340f"), texgen.WithSeed(seed)).
			Grunge(0.1).
			Noise(1.5).
			Build()
	}},
	{"water", func(size int, seed int64) (*texgen.Texture, error) {
		return texgen.NewBuilder(size, size, texgen.Hex("#236f"), texgen.WithSeed(seed)).
			Noise(4.5).
			Noise(2.5).
			Build()
	}},
}

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	g := &game{
		logger: logger,
		size:   *size,
		seed:   *seed,
	}
	if err := g.regenerate(); err != nil {
		logger.Fatal("generate texture", zap.Error(err))
	}

	ebiten.SetWindowSize(*size**windowScale, *size**windowScale)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("window closed", zap.Error(err))
	}
}

type game struct {
	logger *zap.Logger
	size   int
	seed   int64
	cur    int
	tex    *texgen.Texture
	img    *ebiten.Image
	pix    []byte
	dirty  bool
}

// regenerate rebuilds the current preset texture and marks the
// displayed image stale.
func (g *game) regenerate() error {
	p := presets[g.cur]
	tex, err := p.gen(g.size, g.seed)
	if err != nil {
		return fmt.Errorf("preset %s: %w", p.name, err)
	}
	g.tex = tex
	g.dirty = true
	ebiten.SetWindowTitle(fmt.Sprintf("texview - %s (seed %d)", p.name, g.seed))
	g.logger.Info("texture generated",
		zap.String("preset", p.name),
		zap.Int64("seed", g.seed))
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.cur = (g.cur + 1) % len(presets)
		return g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed = time.Now().UnixNano()
		return g.regenerate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.size, g.size)
		g.pix = make([]byte, 4*g.size*g.size)
	}
	if g.dirty {
		g.snapshot()
		g.img.WritePixels(g.pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}

// snapshot converts the texture to the premultiplied 8-bit RGBA layout
// WritePixels expects.
func (g *game) snapshot() {
	for i, c := range g.tex.Pix() {
		r, gr, b, a := c.RGBA()
		g.pix[4*i+0] = byte(r >> 8)
		g.pix[4*i+1] = byte(gr >> 8)
		g.pix[4*i+2] = byte(b >> 8)
		g.pix[4*i+3] = byte(a >> 8)
	}
}
