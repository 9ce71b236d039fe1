package gotext

import (
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/fontkit"
)

func (f *Font) checkGlyph(id fontkit.GlyphID) error {
	if n := f.info.numGlyphs; n > 0 {
		if int64(id) >= int64(n) {
			return fmt.Errorf("gotext: glyph %d of %d: %w", id, n, fontkit.ErrGlyphNotFound)
		}
		return nil
	}
	// Without a loader the glyph count is unknown; a glyph exists when the
	// font has extents for it.
	if _, ok := f.face().GlyphExtents(font.GID(id)); !ok {
		return fmt.Errorf("gotext: glyph %d: %w", id, fontkit.ErrGlyphNotFound)
	}
	return nil
}

// GlyphForChar returns the glyph mapped to r.
func (f *Font) GlyphForChar(r rune) (fontkit.GlyphID, bool) {
	gid, ok := f.native.Font.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return fontkit.GlyphID(gid), true
}

// outline returns the design-unit, y-up outline of glyph id.
func (f *Font) outline(face *font.Face, id fontkit.GlyphID) (font.GlyphOutline, error) {
	if err := f.checkGlyph(id); err != nil {
		return font.GlyphOutline{}, err
	}
	out, ok := face.GlyphDataOutline(tables.GlyphID(id))
	if !ok {
		return font.GlyphOutline{}, fmt.Errorf("gotext: glyph %d has no outline: %w", id, fontkit.ErrGlyphNotFound)
	}
	return out, nil
}

// Outline sends the outline of glyph id to sink in design units. Hinting is
// ignored.
func (f *Font) Outline(id fontkit.GlyphID, _ fontkit.HintingOptions, sink fontkit.PathConsumer) error {
	out, err := f.outline(f.face(), id)
	if err != nil {
		return err
	}

	acc := fontkit.NewOutlineAccumulatorYUp()
	open := false
	for _, seg := range out.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				acc.Close()
			}
			acc.MoveTo(a[0].X, a[0].Y)
			open = true
		case ot.SegmentOpLineTo:
			acc.LineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			acc.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			acc.CubicTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	if open {
		acc.Close()
	}
	acc.Flush(sink)
	return nil
}

// designGlyphMetrics gathers the metrics of glyph id in design units. Fonts
// without vertical metrics get a vertical advance spanning ascender to
// descender with the vertical origin at the ascender.
func (f *Font) designGlyphMetrics(face *font.Face, id fontkit.GlyphID) (fontkit.DesignGlyphMetrics, error) {
	gid := font.GID(id)
	ext, ok := face.GlyphExtents(gid)
	if !ok {
		return fontkit.DesignGlyphMetrics{}, fmt.Errorf("gotext: glyph %d has no extents: %w", id, fontkit.ErrGlyphNotFound)
	}
	xMin, xMax := ext.XBearing, ext.XBearing+ext.Width
	yMax, yMin := ext.YBearing, ext.YBearing+ext.Height

	var advanceHeight, originY float32
	if face.HasVerticalMetrics() {
		advanceHeight = -face.VerticalAdvance(gid)
		_, originY = face.GlyphVOrigin(gid)
	} else {
		extents, _ := face.FontHExtents()
		advanceHeight = extents.Ascender - extents.Descender
		originY = extents.Ascender
	}

	aw := face.HorizontalAdvance(gid)
	return fontkit.DesignGlyphMetrics{
		AdvanceWidth:      aw,
		AdvanceHeight:     advanceHeight,
		LeftSideBearing:   xMin,
		RightSideBearing:  aw - xMax,
		TopSideBearing:    originY - yMax,
		BottomSideBearing: yMin - (originY - advanceHeight),
		VerticalOriginY:   originY,
	}, nil
}

// TypographicBounds returns the glyph box in design units.
func (f *Font) TypographicBounds(id fontkit.GlyphID) (fontkit.Rect, error) {
	if err := f.checkGlyph(id); err != nil {
		return fontkit.Rect{}, err
	}
	m, err := f.designGlyphMetrics(f.face(), id)
	if err != nil {
		return fontkit.Rect{}, err
	}
	return fontkit.TypographicBounds(m), nil
}

// Advance returns the horizontal advance in design units.
func (f *Font) Advance(id fontkit.GlyphID) (fontkit.Vector, error) {
	if err := f.checkGlyph(id); err != nil {
		return fontkit.Vector{}, err
	}
	return fontkit.Vector{X: f.face().HorizontalAdvance(font.GID(id))}, nil
}

// Origin returns the zero point.
func (f *Font) Origin(id fontkit.GlyphID) (fontkit.Point, error) {
	if err := f.checkGlyph(id); err != nil {
		return fontkit.Point{}, err
	}
	return fontkit.Point{}, nil
}

// Metrics returns the font-wide metrics in design units.
func (f *Font) Metrics() fontkit.Metrics {
	face := f.face()
	out := fontkit.Metrics{
		UnitsPerEm:         uint32(face.Upem()),
		UnderlinePosition:  face.LineMetric(font.UnderlinePosition),
		UnderlineThickness: face.LineMetric(font.UnderlineThickness),
		CapHeight:          face.LineMetric(font.CapHeight),
		XHeight:            face.LineMetric(font.XHeight),
	}
	if extents, ok := face.FontHExtents(); ok {
		out.Ascent = extents.Ascender
		out.Descent = fontkit.NormalizeDescent(extents.Descender)
		out.LineGap = extents.LineGap
	}

	head := f.info.head
	if head.XMax > head.XMin && head.YMax > head.YMin {
		out.BoundingBox = fontkit.Rect{
			Origin: fontkit.Point{X: float32(head.XMin), Y: float32(head.YMin)},
			Size:   fontkit.Vector{X: float32(head.XMax) - float32(head.XMin), Y: float32(head.YMax) - float32(head.YMin)},
		}
	}
	return out
}
