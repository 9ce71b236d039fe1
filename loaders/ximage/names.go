package ximage

import (
	"errors"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/fontkit"
)

// name returns the name table entry id, or "" if the font has none.
func (f *Font) name(id sfnt.NameID) string {
	b := getBuffer()
	defer putBuffer(b)
	s, err := f.native.Name(b, id)
	if err != nil {
		if !errors.Is(err, sfnt.ErrNotFound) {
			fontkit.Logger().Debug("ximage: bad name entry", "id", int(id), "err", err)
		}
		return ""
	}
	return s
}

// FamilyName returns the family name, preferring the typographic family.
func (f *Font) FamilyName() string {
	if s := f.name(sfnt.NameIDTypographicFamily); s != "" {
		return s
	}
	return f.name(sfnt.NameIDFamily)
}

// PostScriptName returns the PostScript name, or the family name when the
// font has none.
func (f *Font) PostScriptName() string {
	if s := f.name(sfnt.NameIDPostScript); s != "" {
		return s
	}
	return f.FamilyName()
}

// FullName returns the full name, or the family name when the font has
// none.
func (f *Font) FullName() string {
	if s := f.name(sfnt.NameIDFull); s != "" {
		return s
	}
	return f.FamilyName()
}

// IsMonospace reports the fixed pitch flag of the post table.
func (f *Font) IsMonospace() bool {
	post := f.native.PostTable()
	return post != nil && post.IsFixedPitch
}

// weightNames maps subfamily keywords to weights. Longer keywords come
// first so "ExtraBold" is not read as "Bold".
var weightNames = []struct {
	keyword string
	weight  fontkit.Weight
}{
	{"extralight", fontkit.WeightExtraLight},
	{"ultralight", fontkit.WeightExtraLight},
	{"extrabold", fontkit.WeightExtraBold},
	{"ultrabold", fontkit.WeightExtraBold},
	{"semibold", fontkit.WeightSemibold},
	{"demibold", fontkit.WeightSemibold},
	{"hairline", fontkit.WeightThin},
	{"thin", fontkit.WeightThin},
	{"light", fontkit.WeightLight},
	{"medium", fontkit.WeightMedium},
	{"black", fontkit.WeightBlack},
	{"heavy", fontkit.WeightBlack},
	{"bold", fontkit.WeightBold},
}

// widthNames maps subfamily keywords to OS/2 width classes.
var widthNames = []struct {
	keyword string
	class   int
}{
	{"ultracondensed", 1},
	{"extracondensed", 2},
	{"semicondensed", 4},
	{"condensed", 3},
	{"ultraexpanded", 9},
	{"extraexpanded", 8},
	{"semiexpanded", 6},
	{"expanded", 7},
}

// Properties returns the style, weight and stretch. The OS/2 table wins
// when present; the subfamily names and the italic angle of the post table
// fill the rest.
func (f *Font) Properties() fontkit.Properties {
	sub := f.name(sfnt.NameIDTypographicSubfamily)
	if sub == "" {
		sub = f.name(sfnt.NameIDSubfamily)
	}
	props := propertiesFromSubfamily(sub, f.native.PostTable())
	if os2 := f.os2(); os2 != nil {
		applyOS2(&props, os2)
	}
	return props
}

func propertiesFromSubfamily(sub string, post *sfnt.PostTable) fontkit.Properties {
	props := fontkit.DefaultProperties()
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(sub))

	switch {
	case strings.Contains(key, "oblique"):
		props.Style = fontkit.StyleOblique
	case strings.Contains(key, "italic"):
		props.Style = fontkit.StyleItalic
	case post != nil && post.ItalicAngle != 0:
		props.Style = fontkit.StyleOblique
	}

	for _, w := range weightNames {
		if strings.Contains(key, w.keyword) {
			props.Weight = w.weight
			break
		}
	}
	for _, w := range widthNames {
		if strings.Contains(key, w.keyword) {
			props.Stretch = fontkit.StretchFromWidthClass(w.class)
			break
		}
	}
	return props
}
