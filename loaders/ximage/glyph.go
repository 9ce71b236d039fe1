package ximage

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontkit"
)

// designPPEM makes sfnt report values whose raw 26.6 integer equals the
// value in design units.
func (f *Font) designPPEM() fixed.Int26_6 {
	return fixed.Int26_6(f.native.UnitsPerEm())
}

func (f *Font) checkGlyph(id fontkit.GlyphID) (sfnt.GlyphIndex, error) {
	if int64(id) >= int64(f.native.NumGlyphs()) {
		return 0, fmt.Errorf("ximage: glyph %d of %d: %w", id, f.native.NumGlyphs(), fontkit.ErrGlyphNotFound)
	}
	return sfnt.GlyphIndex(id), nil
}

// GlyphForChar returns the glyph mapped to r.
func (f *Font) GlyphForChar(r rune) (fontkit.GlyphID, bool) {
	b := getBuffer()
	defer putBuffer(b)
	x, err := f.native.GlyphIndex(b, r)
	if err != nil || x == 0 {
		return 0, false
	}
	return fontkit.GlyphID(x), true
}

// Outline sends the outline of glyph id to sink in design units. Hinting is
// ignored.
func (f *Font) Outline(id fontkit.GlyphID, _ fontkit.HintingOptions, sink fontkit.PathConsumer) error {
	x, err := f.checkGlyph(id)
	if err != nil {
		return err
	}
	b := getBuffer()
	defer putBuffer(b)

	segs, err := f.native.LoadGlyph(b, x, f.designPPEM(), nil)
	if err != nil {
		return fmt.Errorf("ximage: failed to load glyph %d: %w", id, err)
	}

	acc := fontkit.NewOutlineAccumulator()
	open := false
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				acc.Close()
			}
			acc.MoveTo(units(a[0].X), units(a[0].Y))
			open = true
		case sfnt.SegmentOpLineTo:
			acc.LineTo(units(a[0].X), units(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			acc.QuadTo(units(a[0].X), units(a[0].Y), units(a[1].X), units(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			acc.CubicTo(units(a[0].X), units(a[0].Y), units(a[1].X), units(a[1].Y), units(a[2].X), units(a[2].Y))
		}
	}
	if open {
		acc.Close()
	}
	acc.Flush(sink)
	return nil
}

func units(v fixed.Int26_6) float32 {
	return float32(int32(v))
}

// designGlyphMetrics gathers the metrics of glyph x in design units. The
// font has no vertical metrics through sfnt, so the vertical advance spans
// ascent to descent with the vertical origin at the ascent.
func (f *Font) designGlyphMetrics(x sfnt.GlyphIndex) (fontkit.DesignGlyphMetrics, error) {
	b := getBuffer()
	defer putBuffer(b)

	ppem := f.designPPEM()
	bounds, advance, err := f.native.GlyphBounds(b, x, ppem, font.HintingNone)
	if err != nil {
		return fontkit.DesignGlyphMetrics{}, err
	}
	m, err := f.native.Metrics(b, ppem, font.HintingNone)
	if err != nil {
		return fontkit.DesignGlyphMetrics{}, err
	}

	ascent, descent := units(m.Ascent), units(m.Descent)
	xMin, xMax := units(bounds.Min.X), units(bounds.Max.X)
	yMin, yMax := -units(bounds.Max.Y), -units(bounds.Min.Y)
	if bounds.Empty() {
		xMin, xMax, yMin, yMax = 0, 0, 0, 0
	}
	aw := units(advance)
	return fontkit.DesignGlyphMetrics{
		AdvanceWidth:      aw,
		AdvanceHeight:     ascent + descent,
		LeftSideBearing:   xMin,
		RightSideBearing:  aw - xMax,
		TopSideBearing:    ascent - yMax,
		BottomSideBearing: yMin + descent,
		VerticalOriginY:   ascent,
	}, nil
}

// TypographicBounds returns the glyph box in design units.
func (f *Font) TypographicBounds(id fontkit.GlyphID) (fontkit.Rect, error) {
	x, err := f.checkGlyph(id)
	if err != nil {
		return fontkit.Rect{}, err
	}
	m, err := f.designGlyphMetrics(x)
	if err != nil {
		return fontkit.Rect{}, fmt.Errorf("ximage: failed to measure glyph %d: %w", id, err)
	}
	return fontkit.TypographicBounds(m), nil
}

// Advance returns the horizontal advance in design units.
func (f *Font) Advance(id fontkit.GlyphID) (fontkit.Vector, error) {
	x, err := f.checkGlyph(id)
	if err != nil {
		return fontkit.Vector{}, err
	}
	b := getBuffer()
	defer putBuffer(b)
	adv, err := f.native.GlyphAdvance(b, x, f.designPPEM(), font.HintingNone)
	if err != nil {
		return fontkit.Vector{}, fmt.Errorf("ximage: failed to measure glyph %d: %w", id, err)
	}
	return fontkit.Vector{X: units(adv)}, nil
}

// Origin returns the zero point.
func (f *Font) Origin(id fontkit.GlyphID) (fontkit.Point, error) {
	if _, err := f.checkGlyph(id); err != nil {
		return fontkit.Point{}, err
	}
	return fontkit.Point{}, nil
}

// Metrics returns the font-wide metrics in design units.
func (f *Font) Metrics() fontkit.Metrics {
	b := getBuffer()
	defer putBuffer(b)

	ppem := f.designPPEM()
	out := fontkit.Metrics{UnitsPerEm: uint32(f.native.UnitsPerEm())}

	if m, err := f.native.Metrics(b, ppem, font.HintingNone); err == nil {
		out.Ascent = units(m.Ascent)
		out.Descent = fontkit.NormalizeDescent(units(m.Descent))
		out.LineGap = units(m.Height) - units(m.Ascent) - units(m.Descent)
		out.CapHeight = units(m.CapHeight)
		out.XHeight = units(m.XHeight)
	} else {
		fontkit.Logger().Warn("ximage: failed to read metrics", "err", err)
	}

	if post := f.native.PostTable(); post != nil {
		out.UnderlinePosition = float32(post.UnderlinePosition)
		out.UnderlineThickness = float32(post.UnderlineThickness)
	}

	if r, err := f.native.Bounds(b, ppem, font.HintingNone); err == nil {
		minX, maxX := units(r.Min.X), units(r.Max.X)
		minY, maxY := -units(r.Max.Y), -units(r.Min.Y)
		out.BoundingBox = fontkit.Rect{
			Origin: fontkit.Point{X: minX, Y: minY},
			Size:   fontkit.Vector{X: maxX - minX, Y: maxY - minY},
		}
	}
	return out
}
