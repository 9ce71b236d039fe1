package gotext

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/fonttest"
)

func TestRasterizeGlyph_BilevelA(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	id := mustGlyph(t, f, 'A')
	const size = 32

	bounds, err := f.RasterBounds(id, size, fontkit.Point{}, fontkit.HintingNone(), fontkit.RasterizeBilevel)
	if err != nil {
		t.Fatal(err)
	}
	if bounds.Empty() || bounds.Dx() > size+2 || bounds.Dy() > size+2 {
		t.Fatalf("RasterBounds() = %v", bounds)
	}

	canvas := fontkit.NewCanvas(bounds.Size(), fontkit.FormatA8)
	origin := fontkit.Pt(float32(-bounds.Min.X), float32(-bounds.Min.Y))
	if err := f.RasterizeGlyph(canvas, id, size, origin, fontkit.HintingNone(), fontkit.RasterizeBilevel); err != nil {
		t.Fatal(err)
	}
	var lit bool
	for _, b := range canvas.Pixels {
		if b != 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("no pixel was set")
	}
}

func TestRasterBounds_SubpixelPadding(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	id := mustGlyph(t, f, 'H')

	gray, err := f.RasterBounds(id, 20, fontkit.Point{}, fontkit.HintingNone(), fontkit.RasterizeGrayscaleAA)
	if err != nil {
		t.Fatal(err)
	}
	bilevel, err := f.RasterBounds(id, 20, fontkit.Point{}, fontkit.HintingNone(), fontkit.RasterizeBilevel)
	if err != nil {
		t.Fatal(err)
	}
	// Subpixel textures pad one pixel on both sides for the filter.
	want := image.Rect(bilevel.Min.X-1, bilevel.Min.Y, bilevel.Max.X+1, bilevel.Max.Y)
	if gray != want {
		t.Errorf("grayscale bounds = %v, want %v", gray, want)
	}
}

func TestRasterizeGlyph_RGBA32(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	canvas := fontkit.NewCanvas(image.Pt(8, 8), fontkit.FormatRGBA32)
	err := f.RasterizeGlyph(canvas, mustGlyph(t, f, 'A'), 8, fontkit.Point{}, fontkit.HintingNone(), fontkit.RasterizeBilevel)
	if !errors.Is(err, fontkit.ErrUnimplemented) {
		t.Errorf("RasterizeGlyph(RGBA32) error = %v, want ErrUnimplemented", err)
	}
}
