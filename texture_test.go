package texgen

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

// snapshot copies the pixel buffer for before/after comparisons.
func snapshot(t *Texture) []Color {
	s := make([]Color, len(t.Pix()))
	copy(s, t.Pix())
	return s
}

func TestNew(t *testing.T) {
	tex, err := New(4, 4, Red)
	if err != nil {
		t.Fatalf("New(4, 4) error: %v", err)
	}
	if tex.Width() != 4 || tex.Height() != 4 {
		t.Errorf("dimensions = %dx%d, want 4x4", tex.Width(), tex.Height())
	}
	if len(tex.Pix()) != 16 {
		t.Fatalf("len(Pix()) = %d, want 16", len(tex.Pix()))
	}
	for i, p := range tex.Pix() {
		if p != Red {
			t.Fatalf("pixel %d = %+v, want %+v", i, p, Red)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"negative width", -1, 4},
		{"negative height", 4, -2},
		{"both zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex, err := New(tt.w, tt.h, Red)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", tt.w, tt.h, err)
			}
			if tex != nil {
				t.Errorf("New(%d, %d) returned non-nil texture on error", tt.w, tt.h)
			}
		})
	}
}

func TestNewTooLarge(t *testing.T) {
	tex, err := New(math.MaxInt/2, 3, Red)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("New(MaxInt/2, 3) error = %v, want ErrTooLarge", err)
	}
	if tex != nil {
		t.Error("New returned non-nil texture on overflow")
	}
}

func TestSetGetPixel(t *testing.T) {
	tex, err := New(3, 3, Black)
	if err != nil {
		t.Fatal(err)
	}

	tex.SetPixel(1, 2, Red)
	if got := tex.GetPixel(1, 2); got != Red {
		t.Errorf("GetPixel(1, 2) = %+v, want %+v", got, Red)
	}
	if got := tex.Pix()[2*3+1]; got != Red {
		t.Errorf("row-major index 7 = %+v, want %+v", got, Red)
	}
	if got := tex.GetPixel(0, 0); got != Black {
		t.Errorf("GetPixel(0, 0) = %+v, want %+v", got, Black)
	}
}

func TestGetPixelOutOfBounds(t *testing.T) {
	tex, _ := New(3, 3, White)
	coords := []struct{ x, y int }{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}, {-5, -5}}
	for _, c := range coords {
		if got := tex.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want transparent", c.x, c.y, got)
		}
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	tex, _ := New(3, 3, Blue)
	before := snapshot(tex)

	coords := []struct{ x, y int }{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}, {-5, -5}}
	for _, c := range coords {
		tex.SetPixel(c.x, c.y, Red)
	}
	for i := range before {
		if tex.Pix()[i] != before[i] {
			t.Fatalf("pixel %d mutated by out-of-bounds SetPixel", i)
		}
	}
}

func TestFill(t *testing.T) {
	tex, _ := New(4, 2, Red)
	tex.Fill(Green)
	for i, p := range tex.Pix() {
		if p != Green {
			t.Fatalf("pixel %d = %+v after Fill, want %+v", i, p, Green)
		}
	}
}

func TestClone(t *testing.T) {
	tex, _ := New(3, 2, Red)
	clone := tex.Clone()

	if clone.Width() != tex.Width() || clone.Height() != tex.Height() {
		t.Fatalf("clone dimensions = %dx%d, want %dx%d",
			clone.Width(), clone.Height(), tex.Width(), tex.Height())
	}
	clone.SetPixel(0, 0, Green)
	if got := tex.GetPixel(0, 0); got != Red {
		t.Error("mutating a clone changed the original")
	}
	if got := clone.GetPixel(0, 0); got != Green {
		t.Errorf("clone pixel = %+v, want %+v", got, Green)
	}
}

func TestBlit(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		// isSrc reports whether destination pixel (px, py) should
		// show the source texture after the blit.
		isSrc func(px, py int) bool
	}{
		{"top left", 0, 0, func(px, py int) bool { return px < 2 && py < 2 }},
		{"offset", 1, 2, func(px, py int) bool { return px >= 1 && px < 3 && py >= 2 && py < 4 }},
		{"clipped bottom right", 3, 3, func(px, py int) bool { return px == 3 && py == 3 }},
		{"clipped top left", -1, -1, func(px, py int) bool { return px < 1 && py < 1 }},
		{"fully outside", 10, 10, func(px, py int) bool { return false }},
		{"fully negative", -5, -5, func(px, py int) bool { return false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, _ := New(4, 4, Black)
			src, _ := New(2, 2, Red)
			dst.Blit(src, tt.x, tt.y)
			for py := 0; py < 4; py++ {
				for px := 0; px < 4; px++ {
					want := Black
					if tt.isSrc(px, py) {
						want = Red
					}
					if got := dst.GetPixel(px, py); got != want {
						t.Errorf("pixel (%d,%d) = %+v, want %+v", px, py, got, want)
					}
				}
			}
		})
	}
}

func TestBlitNilSource(t *testing.T) {
	dst, _ := New(2, 2, Blue)
	before := snapshot(dst)
	dst.Blit(nil, 0, 0)
	for i := range before {
		if dst.Pix()[i] != before[i] {
			t.Fatal("nil-source blit mutated the destination")
		}
	}
}

func TestImageInterop(t *testing.T) {
	tex, _ := New(2, 2, Red)

	if got, want := tex.Bounds(), image.Rect(0, 0, 2, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if tex.ColorModel() != color.NRGBA64Model {
		t.Error("ColorModel() is not NRGBA64Model")
	}
	if got, want := tex.At(0, 0), (color.NRGBA64{R: 65535, A: 65535}); got != want {
		t.Errorf("At(0, 0) = %+v, want %+v", got, want)
	}
	if got, want := tex.At(-1, 0), (color.NRGBA64{}); got != want {
		t.Errorf("At(-1, 0) = %+v, want transparent", got)
	}

	// draw.Image roundtrip through the stdlib color type.
	tex.Set(1, 1, color.NRGBA64{G: 65535, A: 65535})
	if got := tex.GetPixel(1, 1); !colorsEqual(got, Green, 1e-4) {
		t.Errorf("GetPixel after Set = %+v, want green", got)
	}
}
