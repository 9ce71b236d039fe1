package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/gogpu/fontkit"
)

// render rasterizes glyph id into a canvas sized to its raster bounds, with
// the baseline origin placed so the bounds start at the top-left pixel.
func render(face fontkit.Face, id fontkit.GlyphID, size float32,
	hinting fontkit.HintingOptions, rasterization fontkit.RasterizationOptions) (*fontkit.Canvas, error) {
	bounds, err := face.RasterBounds(id, size, fontkit.Point{}, hinting, rasterization)
	if err != nil {
		return nil, err
	}
	canvas := fontkit.NewCanvas(bounds.Size(), fontkit.FormatForRasterization(rasterization))
	origin := fontkit.Pt(float32(-bounds.Min.X), float32(-bounds.Min.Y))
	if err := face.RasterizeGlyph(canvas, id, size, origin, hinting, rasterization); err != nil {
		return nil, err
	}
	return canvas, nil
}

// shade maps a coverage value to a block character.
func shade(v uint8) rune {
	switch {
	case v == 0:
		return ' '
	case v < 85:
		return '░'
	case v < 170:
		return '▒'
	case v < 255:
		return '▓'
	default:
		return '█'
	}
}

// painter decorates the shade of one subpixel channel (0 red, 1 green,
// 2 blue).
type painter func(channel int, s string) string

var channelColors = [3]color.Color{color.Red, color.Green, color.Blue}

func paintChannel(channel int, s string) string {
	return channelColors[channel].Sprint(s)
}

// shadeLines renders each canvas row as text. Subpixel output prints one
// character per red, green and blue subpixel, decorated by paint. Other
// output prints each pixel's shade twice so the glyph keeps its aspect
// ratio.
func shadeLines(c *fontkit.Canvas, rasterization fontkit.RasterizationOptions, paint painter) ([]string, error) {
	lines := make([]string, 0, c.Size.Y)
	for y := 0; y < c.Size.Y; y++ {
		var sb strings.Builder
		row := c.Row(y)
		for x := 0; x < c.Size.X; x++ {
			if rasterization == fontkit.RasterizeSubpixelAA && c.Format == fontkit.FormatRGB24 {
				for ch := 0; ch < 3; ch++ {
					sb.WriteString(paint(ch, string(shade(row[x*3+ch]))))
				}
				continue
			}
			v, err := c.Shade(x, y)
			if err != nil {
				return nil, err
			}
			r := shade(v)
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		lines = append(lines, sb.String())
	}
	return lines, nil
}

func newStderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
