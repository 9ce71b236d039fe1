package glyphrun

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/fontkit"
)

// RenderingModeFor maps rasterization options to a rendering mode. Both
// antialiased options use natural rendering.
func RenderingModeFor(r fontkit.RasterizationOptions) RenderingMode {
	if r == fontkit.RasterizeBilevel {
		return RenderingAliased
	}
	return RenderingNatural
}

// TextureTypeFor maps rasterization options to a texture type.
func TextureTypeFor(r fontkit.RasterizationOptions) TextureType {
	if r == fontkit.RasterizeBilevel {
		return TextureAliased1x1
	}
	return TextureClearType3x1
}

// SnapOrigin fits origin to the pixel grid in the axes hinting covers.
func SnapOrigin(origin fontkit.Point, hinting fontkit.HintingOptions) fontkit.Point {
	if hinting.SnapsX() {
		origin.X = float32(math.Round(float64(origin.X)))
	}
	if hinting.SnapsY() {
		origin.Y = float32(math.Round(float64(origin.Y)))
	}
	return origin
}

func analyze(src Source, id fontkit.GlyphID, pointSize float32, origin fontkit.Point,
	hinting fontkit.HintingOptions, rasterization fontkit.RasterizationOptions) (*Analysis, TextureType, image.Rectangle, error) {
	run := Run{Source: src, Glyph: id, EmSize: pointSize}
	origin = SnapOrigin(origin, hinting)
	a, err := NewAnalysis(run, RenderingModeFor(rasterization), MeasuringNatural, origin.X, origin.Y)
	if err != nil {
		return nil, 0, image.Rectangle{}, err
	}
	texture := TextureTypeFor(rasterization)
	return a, texture, a.TextureBounds(texture), nil
}

// Bounds returns the texture bounds Render would produce for the same
// arguments.
func Bounds(src Source, id fontkit.GlyphID, pointSize float32, origin fontkit.Point,
	hinting fontkit.HintingOptions, rasterization fontkit.RasterizationOptions) (image.Rectangle, error) {
	_, _, bounds, err := analyze(src, id, pointSize, origin, hinting, rasterization)
	return bounds, err
}

// Render rasterizes glyph id and blits the texture into canvas. The
// texture's top-left pixel lands on canvas pixel (0, 0) when the texture
// bounds start at the origin; callers place the glyph by choosing origin so
// that the bounds fall inside the canvas.
//
// RGBA32 canvases fail with fontkit.ErrUnimplemented. A canvas whose format
// differs from the texture format panics in Canvas.BlitFrom.
func Render(canvas *fontkit.Canvas, src Source, id fontkit.GlyphID, pointSize float32, origin fontkit.Point,
	hinting fontkit.HintingOptions, rasterization fontkit.RasterizationOptions) error {
	if canvas.Format == fontkit.FormatRGBA32 {
		return fmt.Errorf("glyphrun: rasterize into %s canvas: %w", canvas.Format, fontkit.ErrUnimplemented)
	}

	a, texture, bounds, err := analyze(src, id, pointSize, origin, hinting, rasterization)
	if err != nil {
		return err
	}
	if bounds.Empty() {
		return nil
	}

	pixels, err := a.CreateAlphaTexture(texture, bounds)
	if err != nil {
		return err
	}
	format := texture.Format()
	fontkit.Logger().Debug("glyphrun: texture created",
		"glyph", id, "texture", texture.String(), "bounds", bounds.String())

	canvas.BlitFrom(pixels, bounds.Size(), format.RowBytes(bounds.Dx()), format)
	return nil
}
