package gotext

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/fontkit"
)

const (
	nameFull       tables.NameID = 4
	namePostScript tables.NameID = 6
)

// fsSelection bits of the OS/2 table.
const (
	fsItalic  = 1 << 0
	fsOblique = 1 << 9
)

// FamilyName returns the family name.
func (f *Font) FamilyName() string {
	return f.info.desc.Family
}

// PostScriptName returns the PostScript name, or the family name when the
// font has none.
func (f *Font) PostScriptName() string {
	if s := f.info.names.Name(namePostScript); s != "" {
		return s
	}
	return f.FamilyName()
}

// FullName returns the full name, or the family name when the font has
// none.
func (f *Font) FullName() string {
	if s := f.info.names.Name(nameFull); s != "" {
		return s
	}
	return f.FamilyName()
}

// IsMonospace reports whether the glyph advances are all alike.
func (f *Font) IsMonospace() bool {
	return f.native.Font.IsMonospace()
}

// Properties returns the style, weight and stretch. The OS/2 table wins
// when present; go-text's inferred aspect fills the rest.
func (f *Font) Properties() fontkit.Properties {
	aspect := f.info.desc.Aspect
	props := fontkit.Properties{
		Style:   fontkit.StyleNormal,
		Weight:  fontkit.Weight(aspect.Weight),
		Stretch: fontkit.Stretch(aspect.Stretch),
	}
	if aspect.Style == font.StyleItalic {
		props.Style = fontkit.StyleItalic
	}

	if os2 := f.info.os2; os2 != nil {
		switch {
		case os2.FsSelection&fsOblique != 0:
			props.Style = fontkit.StyleOblique
		case os2.FsSelection&fsItalic != 0:
			props.Style = fontkit.StyleItalic
		}
		if os2.USWeightClass != 0 {
			props.Weight = fontkit.Weight(os2.USWeightClass)
		}
		if os2.USWidthClass != 0 {
			props.Stretch = fontkit.StretchFromWidthClass(int(os2.USWidthClass))
		}
	}
	return props
}
