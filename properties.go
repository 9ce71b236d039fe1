package fontkit

import "fmt"

// Style is the slant of a font.
type Style int

const (
	// StyleNormal is an upright face.
	StyleNormal Style = iota
	// StyleItalic is a cursive slanted face.
	StyleItalic
	// StyleOblique is a mechanically slanted face.
	StyleOblique
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	case StyleOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// Weight is the visual weight of a font, 100 (thin) to 900 (black).
type Weight float32

// Common weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Stretch is the width of a font relative to its normal width.
type Stretch float32

// Common stretches.
const (
	StretchUltraCondensed Stretch = 0.5
	StretchExtraCondensed Stretch = 0.625
	StretchCondensed      Stretch = 0.75
	StretchSemiCondensed  Stretch = 0.875
	StretchNormal         Stretch = 1.0
	StretchSemiExpanded   Stretch = 1.125
	StretchExpanded       Stretch = 1.25
	StretchExtraExpanded  Stretch = 1.5
	StretchUltraExpanded  Stretch = 2.0
)

// FontStretchMapping maps the nine width classes of the OpenType OS/2
// table (usWidthClass 1 to 9) to normalized stretch values.
var FontStretchMapping = [9]Stretch{
	StretchUltraCondensed,
	StretchExtraCondensed,
	StretchCondensed,
	StretchSemiCondensed,
	StretchNormal,
	StretchSemiExpanded,
	StretchExpanded,
	StretchExtraExpanded,
	StretchUltraExpanded,
}

// StretchFromWidthClass maps an OS/2 width class to a stretch value.
// Classes outside 1 to 9 map to StretchNormal.
func StretchFromWidthClass(class int) Stretch {
	if class < 1 || class > len(FontStretchMapping) {
		return StretchNormal
	}
	return FontStretchMapping[class-1]
}

// Properties describe the style, weight and stretch of a font.
type Properties struct {
	Style   Style
	Weight  Weight
	Stretch Stretch
}

// DefaultProperties returns upright, normal weight, normal width properties.
func DefaultProperties() Properties {
	return Properties{Style: StyleNormal, Weight: WeightNormal, Stretch: StretchNormal}
}

func (p Properties) String() string {
	return fmt.Sprintf("%s %g %g", p.Style, float32(p.Weight), float32(p.Stretch))
}
