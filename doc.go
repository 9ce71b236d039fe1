// Package fontkit is an engine-independent interface to fonts.
//
// A Face exposes glyph lookup, metrics, outline extraction and bitmap
// rasterization with the same conventions whatever engine backs it:
// outlines are reported as PathEvent values in y-up design units, and
// rasterized glyphs are written into a Canvas whose Format records the
// antialiasing layout (A8 for bilevel glyphs, RGB24 for antialiased ones).
//
// Engines live in the loaders directory:
//
//   - loaders/ximage is backed by golang.org/x/image/font/sfnt.
//   - loaders/gotext is backed by github.com/go-text/typesetting.
//
// Package loader selects one of them at build time. By default it is
// ximage; build with the fontkit_gotext tag to use gotext instead.
//
// # Quick start
//
//	f, err := loader.FromPath("Go-Regular.ttf", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, ok := f.GlyphForChar('A')
//	if !ok {
//	    log.Fatal("no glyph for 'A'")
//	}
//	bounds, _ := f.RasterBounds(id, 32, fontkit.Point{}, fontkit.HintingNone(), fontkit.RasterizeBilevel)
//	canvas := fontkit.NewCanvas(bounds.Size(), fontkit.FormatA8)
//	origin := fontkit.Pt(float32(-bounds.Min.X), float32(-bounds.Min.Y))
//	_ = f.RasterizeGlyph(canvas, id, 32, origin, fontkit.HintingNone(), fontkit.RasterizeBilevel)
//
// # Logging
//
// fontkit is silent by default. Call SetLogger to receive debug output.
package fontkit
