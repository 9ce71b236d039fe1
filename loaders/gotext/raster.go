package gotext

import (
	"image"

	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/glyphrun"
)

// GlyphRunPath returns the path of glyph id at emSize pixels per em,
// y down, relative to the baseline origin.
func (f *Font) GlyphRunPath(id fontkit.GlyphID, emSize float32) ([]glyphrun.Segment, error) {
	out, err := f.outline(f.face(), id)
	if err != nil {
		return nil, err
	}
	scale := emSize / float32(f.native.Font.Upem())

	path := make([]glyphrun.Segment, 0, len(out.Segments))
	for _, seg := range out.Segments {
		var op glyphrun.Op
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			op = glyphrun.OpMoveTo
		case ot.SegmentOpLineTo:
			op = glyphrun.OpLineTo
		case ot.SegmentOpQuadTo:
			op = glyphrun.OpQuadTo
		case ot.SegmentOpCubeTo:
			op = glyphrun.OpCubeTo
		default:
			continue
		}
		s := glyphrun.Segment{Op: op}
		for i, p := range seg.ArgsSlice() {
			s.Args[i] = fontkit.Point{X: p.X * scale, Y: -p.Y * scale}
		}
		path = append(path, s)
	}
	return path, nil
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
