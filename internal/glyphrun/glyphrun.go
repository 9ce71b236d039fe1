// Package glyphrun rasterizes single-glyph runs into coverage textures.
//
// It is the glyph-run analysis engine shared by the fontkit loaders: a
// loader describes a run (one glyph at an em size), picks a rendering mode,
// asks the analysis for the texture bounds of a texture type and then
// creates the texture. Coverage is computed with golang.org/x/image/vector.
package glyphrun

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/fontkit"
)

// RenderingMode selects how coverage is computed.
type RenderingMode int

const (
	// RenderingAliased produces bilevel coverage.
	RenderingAliased RenderingMode = iota
	// RenderingNatural produces antialiased coverage.
	RenderingNatural
)

// String returns the string representation of the rendering mode.
func (m RenderingMode) String() string {
	switch m {
	case RenderingAliased:
		return "Aliased"
	case RenderingNatural:
		return "Natural"
	default:
		return "Unknown"
	}
}

// MeasuringMode selects how glyph advances are measured.
// Single-glyph runs have no advances, so only natural measuring exists.
type MeasuringMode int

const (
	// MeasuringNatural uses unhinted design advances.
	MeasuringNatural MeasuringMode = iota
)

// TextureType is the layout of a texture produced by an Analysis.
type TextureType int

const (
	// TextureAliased1x1 has one byte per pixel, 0 or 255.
	TextureAliased1x1 TextureType = iota
	// TextureClearType3x1 has three bytes per pixel, one per horizontal
	// subpixel in red, green, blue order.
	TextureClearType3x1
)

// String returns the string representation of the texture type.
func (t TextureType) String() string {
	switch t {
	case TextureAliased1x1:
		return "Aliased1x1"
	case TextureClearType3x1:
		return "ClearType3x1"
	default:
		return "Unknown"
	}
}

// Format returns the canvas format matching the texture layout.
func (t TextureType) Format() fontkit.Format {
	if t == TextureAliased1x1 {
		return fontkit.FormatA8
	}
	return fontkit.FormatRGB24
}

// Op is the type of a Segment.
type Op uint8

const (
	OpMoveTo Op = iota // Args[0]
	OpLineTo           // Args[0]
	OpQuadTo           // control Args[0], end Args[1]
	OpCubeTo           // controls Args[0] and Args[1], end Args[2]
	OpClose
)

// Segment is one step of a glyph path in pixels, y down, relative to the
// baseline origin. Args holds the points used by Op, in order.
type Segment struct {
	Op   Op
	Args [3]fontkit.Point
}

// Source provides glyph paths for a run.
type Source interface {
	// GlyphRunPath returns the path of glyph id scaled to emSize pixels.
	GlyphRunPath(id fontkit.GlyphID, emSize float32) ([]Segment, error)
}

// Run is a single-glyph run. Advance and offset are always zero and the
// run is never sideways, so only the glyph and em size are carried.
type Run struct {
	Source Source
	Glyph  fontkit.GlyphID
	EmSize float32
	// BidiLevel is the bidirectional embedding level. Always 0 here.
	BidiLevel uint8
}

// Analysis is the result of analyzing a run at a baseline origin.
type Analysis struct {
	mode     RenderingMode
	segments []Segment
	// bounds of all points in pixels, y down, origin applied
	minX, minY, maxX, maxY float32
	empty                  bool
}

// NewAnalysis analyzes run with its baseline origin at (baselineX,
// baselineY) in pixels, y down.
func NewAnalysis(run Run, mode RenderingMode, measuring MeasuringMode, baselineX, baselineY float32) (*Analysis, error) {
	if run.Source == nil {
		return nil, fmt.Errorf("glyphrun: run has no source")
	}
	if measuring != MeasuringNatural {
		return nil, fmt.Errorf("glyphrun: unsupported measuring mode %d", measuring)
	}
	path, err := run.Source.GlyphRunPath(run.Glyph, run.EmSize)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		mode:     mode,
		segments: make([]Segment, len(path)),
		empty:    true,
		minX:     float32(math.Inf(1)),
		minY:     float32(math.Inf(1)),
		maxX:     float32(math.Inf(-1)),
		maxY:     float32(math.Inf(-1)),
	}
	for i, seg := range path {
		n := seg.Op.numArgs()
		for j := 0; j < n; j++ {
			p := fontkit.Point{X: seg.Args[j].X + baselineX, Y: seg.Args[j].Y + baselineY}
			seg.Args[j] = p
			a.minX = min(a.minX, p.X)
			a.minY = min(a.minY, p.Y)
			a.maxX = max(a.maxX, p.X)
			a.maxY = max(a.maxY, p.Y)
			a.empty = false
		}
		a.segments[i] = seg
	}
	return a, nil
}

func (op Op) numArgs() int {
	switch op {
	case OpMoveTo, OpLineTo:
		return 1
	case OpQuadTo:
		return 2
	case OpCubeTo:
		return 3
	default:
		return 0
	}
}

// TextureBounds returns the pixel rectangle covered by a texture of type t.
// A texture type that does not match the rendering mode yields an empty
// rectangle, as does a glyph without contours.
func (a *Analysis) TextureBounds(t TextureType) image.Rectangle {
	if a.empty || !a.supports(t) {
		return image.Rectangle{}
	}
	r := image.Rect(
		int(math.Floor(float64(a.minX))),
		int(math.Floor(float64(a.minY))),
		int(math.Ceil(float64(a.maxX))),
		int(math.Ceil(float64(a.maxY))),
	)
	if t == TextureClearType3x1 {
		// The subpixel filter spreads coverage into neighboring pixels.
		r.Min.X--
		r.Max.X++
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

func (a *Analysis) supports(t TextureType) bool {
	switch t {
	case TextureAliased1x1:
		return a.mode == RenderingAliased
	case TextureClearType3x1:
		return a.mode == RenderingNatural
	default:
		return false
	}
}

// CreateAlphaTexture renders the run into a tightly packed texture of type
// t covering bounds. Rows are bounds.Dx()*bytesPerPixel bytes apart.
func (a *Analysis) CreateAlphaTexture(t TextureType, bounds image.Rectangle) ([]byte, error) {
	if !a.supports(t) {
		return nil, fmt.Errorf("glyphrun: texture %s not available in %s mode", t, a.mode)
	}
	if bounds.Empty() {
		return nil, nil
	}
	switch t {
	case TextureAliased1x1:
		return a.aliased(bounds), nil
	default:
		return a.clearType(bounds), nil
	}
}
