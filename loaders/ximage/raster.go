package ximage

import (
	"fmt"
	"image"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/glyphrun"
)

// GlyphRunPath returns the path of glyph id at emSize pixels per em,
// y down, relative to the baseline origin.
func (f *Font) GlyphRunPath(id fontkit.GlyphID, emSize float32) ([]glyphrun.Segment, error) {
	x, err := f.checkGlyph(id)
	if err != nil {
		return nil, err
	}
	b := getBuffer()
	defer putBuffer(b)

	ppem := fixed.Int26_6(emSize * 64)
	segs, err := f.native.LoadGlyph(b, x, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("ximage: failed to load glyph %d: %w", id, err)
	}

	path := make([]glyphrun.Segment, 0, len(segs)+1)
	for _, seg := range segs {
		var op glyphrun.Op
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			op = glyphrun.OpMoveTo
		case sfnt.SegmentOpLineTo:
			op = glyphrun.OpLineTo
		case sfnt.SegmentOpQuadTo:
			op = glyphrun.OpQuadTo
		case sfnt.SegmentOpCubeTo:
			op = glyphrun.OpCubeTo
		default:
			continue
		}
		out := glyphrun.Segment{Op: op}
		for i, p := range seg.Args {
			out.Args[i] = fontkit.Point{X: pixels(p.X), Y: pixels(p.Y)}
		}
		path = append(path, out)
	}
	return path, nil
}

func pixels(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// RasterBounds returns the pixel rectangle RasterizeGlyph fills for the same
// arguments.
func (f *Font) RasterBounds(id fontkit.GlyphID, pointSize float32, origin fontkit.Point,
	hinting fontkit.HintingOptions, rasterization fontkit.RasterizationOptions) (image.Rectangle, error) {
	return glyphrun.Bounds(f.paths.Source(f), id, pointSize, origin, hinting, rasterization)
}

// RasterizeGlyph renders glyph id into canvas with its baseline origin at
// origin. The canvas format must be fontkit.FormatForRasterization of
// rasterization.
func (f *Font) RasterizeGlyph(canvas *fontkit.Canvas, id fontkit.GlyphID, pointSize float32, origin fontkit.Point,
	hinting fontkit.HintingOptions, rasterization fontkit.RasterizationOptions) error {
	return glyphrun.Render(canvas, f.paths.Source(f), id, pointSize, origin, hinting, rasterization)
}
