package fontkit

import (
	"fmt"
	"image"
)

// GlyphID identifies a glyph within one font.
type GlyphID uint32

// Face is the engine-independent view of a single loaded font.
//
// Implementations are safe for concurrent use.
type Face interface {
	fmt.Stringer

	// PostScriptName returns the PostScript name, or the family name when
	// the font has none.
	PostScriptName() string
	// FullName returns the full name, or the family name when the font
	// has none.
	FullName() string
	// FamilyName returns the family name.
	FamilyName() string
	// IsMonospace reports whether every glyph has the same advance.
	IsMonospace() bool
	// Properties returns the style, weight and stretch.
	Properties() Properties

	// GlyphForChar returns the glyph mapped to r. The boolean is false when
	// the font has no mapping; glyph 0 is never reported as a mapping.
	GlyphForChar(r rune) (GlyphID, bool)
	// Outline sends the outline of glyph id to sink, in y-up design units.
	// Hinting does not affect the outline.
	Outline(id GlyphID, hinting HintingOptions, sink PathConsumer) error
	// TypographicBounds returns the glyph box in design units.
	TypographicBounds(id GlyphID) (Rect, error)
	// Advance returns the horizontal advance in design units.
	Advance(id GlyphID) (Vector, error)
	// Origin returns the glyph origin. It is always the zero point.
	Origin(id GlyphID) (Point, error)
	// Metrics returns the font-wide metrics in design units.
	Metrics() Metrics
	// FontData returns the bytes of the font file backing the face, if any.
	FontData() (*FontData, bool)

	// RasterBounds returns the pixel rectangle RasterizeGlyph would fill
	// for the same arguments, in canvas coordinates.
	RasterBounds(id GlyphID, pointSize float32, origin Point,
		hinting HintingOptions, rasterization RasterizationOptions) (image.Rectangle, error)
	// RasterizeGlyph renders glyph id with its baseline origin at origin
	// (canvas pixels, y down) and writes the result into canvas.
	RasterizeGlyph(canvas *Canvas, id GlyphID, pointSize float32, origin Point,
		hinting HintingOptions, rasterization RasterizationOptions) error
}

// Metrics are the font-wide metrics of a face in design units.
type Metrics struct {
	UnitsPerEm uint32
	Ascent     float32
	// Descent is at or below the baseline, so it is never positive.
	Descent            float32
	LineGap            float32
	UnderlinePosition  float32
	UnderlineThickness float32
	CapHeight          float32
	XHeight            float32
	// BoundingBox is the union of all glyph boxes, when the engine knows it.
	BoundingBox Rect
}

// NormalizeDescent returns d as a value at or below the baseline, for
// engines that report the descent as a positive distance.
func NormalizeDescent(d float32) float32 {
	if d > 0 {
		return -d
	}
	return d
}

// DesignGlyphMetrics are the per-glyph metrics of an engine in design
// units: advances, the four side bearings and the vertical origin.
type DesignGlyphMetrics struct {
	AdvanceWidth      float32
	AdvanceHeight     float32
	LeftSideBearing   float32
	RightSideBearing  float32
	TopSideBearing    float32
	BottomSideBearing float32
	VerticalOriginY   float32
}

// TypographicBounds derives the glyph box from design glyph metrics.
func TypographicBounds(m DesignGlyphMetrics) Rect {
	width := m.AdvanceWidth - (m.LeftSideBearing + m.RightSideBearing)
	height := m.AdvanceHeight - (m.TopSideBearing + m.BottomSideBearing)
	return Rect{
		Origin: Point{
			X: m.LeftSideBearing,
			Y: m.VerticalOriginY + m.BottomSideBearing - m.AdvanceHeight,
		},
		Size: Vector{X: width, Y: height},
	}
}

// TypeKind distinguishes single fonts from collections.
type TypeKind int

const (
	// KindSingle is a file holding one font.
	KindSingle TypeKind = iota
	// KindCollection is a file holding several fonts.
	KindCollection
)

// Type is the result of analyzing font data.
type Type struct {
	Kind TypeKind
	// NumFonts is 1 for single fonts and the font count for collections.
	NumFonts int
}

// SingleType returns the Type of a file holding one font.
func SingleType() Type {
	return Type{Kind: KindSingle, NumFonts: 1}
}

// CollectionType returns the Type of a collection holding n fonts.
func CollectionType(n int) Type {
	return Type{Kind: KindCollection, NumFonts: n}
}

func (t Type) String() string {
	if t.Kind == KindCollection {
		return fmt.Sprintf("Collection(%d)", t.NumFonts)
	}
	return "Single"
}
