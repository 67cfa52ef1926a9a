package texgen

import (
	"math"
	"testing"
)

func TestGrunge(t *testing.T) {
	tex, err := New(3, 3, RGBA(0.2, 0.3, 0.4, 1))
	if err != nil {
		t.Fatal(err)
	}
	tex.Grunge(0.25)

	first := tex.GetPixel(0, 0)
	if math.Abs(first.B-0.65) > 1e-9 {
		t.Errorf("first pixel blue = %v, want 0.65", first.B)
	}
	if first.R != 0.2 || first.G != 0.3 || first.A != 1 {
		t.Errorf("grunge touched non-blue channels: %+v", first)
	}
	for i := 1; i < len(tex.Pix()); i++ {
		if tex.Pix()[i] != RGBA(0.2, 0.3, 0.4, 1) {
			t.Fatalf("pixel %d changed: %+v", i, tex.Pix()[i])
		}
	}
}

func TestGrungeNoClamp(t *testing.T) {
	tex, _ := New(2, 2, White)
	tex.Grunge(0.5)
	if got := tex.GetPixel(0, 0).B; got != 1.5 {
		t.Errorf("blue = %v, want unclamped 1.5", got)
	}
}

func TestSmear(t *testing.T) {
	tex, _ := New(3, 2, Blue)
	tex.Smear(Yellow)

	if got := tex.GetPixel(0, 0); got != Yellow {
		t.Errorf("first pixel = %+v, want yellow", got)
	}
	for i := 1; i < len(tex.Pix()); i++ {
		if tex.Pix()[i] != Blue {
			t.Fatalf("pixel %d changed: %+v", i, tex.Pix()[i])
		}
	}
}
