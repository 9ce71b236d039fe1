// Command render-glyph rasterizes one glyph of a font file and prints it to
// the terminal as block characters.
//
// Usage:
//
//	render-glyph [flags] [GLYPH] [SIZE]
//
// GLYPH defaults to A and SIZE, in pixels per em, to 32. Without -font the
// Go Regular font is used. Subpixel output colors the red, green and blue
// subpixel columns of each pixel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/gookit/color"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loader"
)

func main() {
	var (
		fontPath = flag.String("font", "", "font file to load (default Go Regular)")
		index    = flag.Int("index", 0, "font index within a collection")
		bilevel  = flag.Bool("bilevel", false, "use bilevel (black and white) rasterization")
		subpixel = flag.Bool("subpixel", false, "use subpixel (LCD) rasterization")
		_        = flag.Bool("grayscale", false, "use grayscale antialiasing (default)")
		hinting  = flag.String("hinting", "none", "hinting type: none, vertical or full")
		verbose  = flag.Bool("v", false, "log font loading to stderr")
	)
	flag.Parse()

	if *bilevel && *subpixel {
		log.Fatalf("-bilevel and -subpixel are mutually exclusive")
	}
	if *verbose {
		fontkit.SetLogger(newStderrLogger())
	}

	char, size, err := parseArgs(flag.Args())
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	hintingOptions, err := parseHinting(*hinting, size)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	rasterization := rasterizationFor(*bilevel, *subpixel)

	f, err := loadFont(*fontPath, *index)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	id, ok := f.GlyphForChar(char)
	if !ok {
		log.Fatalf("%s has no glyph for %q", f.FullName(), char)
	}

	canvas, err := render(f, id, size, hintingOptions, rasterization)
	if err != nil {
		log.Fatalf("Failed to rasterize: %v", err)
	}

	color.Enable = term.IsTerminal(int(os.Stdout.Fd()))
	lines, err := shadeLines(canvas, rasterization, paintChannel)
	if err != nil {
		log.Fatalf("Failed to print glyph: %v", err)
	}

	fmt.Printf("glyph %d:\n", id)
	for _, line := range lines {
		fmt.Println(line)
	}
}

func parseArgs(args []string) (rune, float32, error) {
	char, size := 'A', float32(32)
	if len(args) > 2 {
		return 0, 0, fmt.Errorf("expected at most GLYPH and SIZE, got %d arguments", len(args))
	}
	if len(args) > 0 {
		r, n := utf8.DecodeRuneInString(args[0])
		if r == utf8.RuneError || n == 0 {
			return 0, 0, fmt.Errorf("invalid glyph %q", args[0])
		}
		char = r
	}
	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 32)
		if err != nil || v <= 0 {
			return 0, 0, fmt.Errorf("invalid size %q", args[1])
		}
		size = float32(v)
	}
	return char, size, nil
}

func parseHinting(s string, size float32) (fontkit.HintingOptions, error) {
	switch s {
	case "", "none":
		return fontkit.HintingNone(), nil
	case "vertical":
		return fontkit.HintingVertical(size), nil
	case "full":
		return fontkit.HintingFull(size), nil
	default:
		return fontkit.HintingOptions{}, fmt.Errorf("unknown hinting %q", s)
	}
}

func rasterizationFor(bilevel, subpixel bool) fontkit.RasterizationOptions {
	switch {
	case bilevel:
		return fontkit.RasterizeBilevel
	case subpixel:
		return fontkit.RasterizeSubpixelAA
	default:
		return fontkit.RasterizeGrayscaleAA
	}
}

func loadFont(path string, index int) (*loader.Font, error) {
	if path == "" {
		return loader.FromBytes(goregular.TTF, index)
	}
	return loader.FromPath(path, index)
}
