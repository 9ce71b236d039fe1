package fontkit

import "fmt"

const unknownStr = "Unknown"

// RasterizationOptions selects the antialiasing mode of glyph rasterization.
type RasterizationOptions int

const (
	// RasterizeBilevel produces fully opaque or fully transparent pixels.
	RasterizeBilevel RasterizationOptions = iota
	// RasterizeGrayscaleAA produces antialiased coverage.
	RasterizeGrayscaleAA
	// RasterizeSubpixelAA produces per-subpixel (red, green, blue) coverage.
	RasterizeSubpixelAA
)

// String returns the string representation of the rasterization options.
func (r RasterizationOptions) String() string {
	switch r {
	case RasterizeBilevel:
		return "Bilevel"
	case RasterizeGrayscaleAA:
		return "GrayscaleAA"
	case RasterizeSubpixelAA:
		return "SubpixelAA"
	default:
		return unknownStr
	}
}

// HintingKind is the kind of grid fitting applied to a glyph.
type HintingKind int

const (
	// HintNone disables hinting.
	HintNone HintingKind = iota
	// HintVertical fits to the pixel grid vertically only.
	HintVertical
	// HintFull fits to the pixel grid in both axes.
	HintFull
)

// String returns the string representation of the hinting kind.
func (k HintingKind) String() string {
	switch k {
	case HintNone:
		return "None"
	case HintVertical:
		return "Vertical"
	case HintFull:
		return "Full"
	default:
		return unknownStr
	}
}

// HintingOptions describes the hinting applied to a glyph, together with
// the pixel size the glyph is hinted for.
type HintingOptions struct {
	Kind HintingKind
	size float32
}

// HintingNone returns options that disable hinting.
func HintingNone() HintingOptions {
	return HintingOptions{Kind: HintNone}
}

// HintingVertical returns options for vertical-only hinting at size.
// Rasterization snaps the baseline origin to whole pixels in y; size is
// carried along but does not change the result.
func HintingVertical(size float32) HintingOptions {
	return HintingOptions{Kind: HintVertical, size: size}
}

// HintingFull returns options for full hinting at size. Rasterization
// snaps the baseline origin to whole pixels in x and y; size is carried
// along but does not change the result.
func HintingFull(size float32) HintingOptions {
	return HintingOptions{Kind: HintFull, size: size}
}

// Size returns the pixel size the glyph is hinted for, or 0 for HintNone.
func (h HintingOptions) Size() float32 {
	if h.Kind == HintNone {
		return 0
	}
	return h.size
}

// SnapsX reports whether hinting fits the horizontal axis.
func (h HintingOptions) SnapsX() bool {
	return h.Kind == HintFull
}

// SnapsY reports whether hinting fits the vertical axis.
func (h HintingOptions) SnapsY() bool {
	return h.Kind == HintVertical || h.Kind == HintFull
}

func (h HintingOptions) String() string {
	if h.Kind == HintNone {
		return h.Kind.String()
	}
	return fmt.Sprintf("%s(%g)", h.Kind, h.size)
}
