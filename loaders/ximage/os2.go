package ximage

import (
	"bytes"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/fontkit"
)

// sfnt does not expose the OS/2 table, so it is read with go-text's table
// parser from the same bytes.

var tagOS2 = ot.MustNewTag("OS/2")

// fsSelection bits of the OS/2 table.
const (
	fsItalic  = 1 << 0
	fsOblique = 1 << 9
)

// parseOS2 returns the OS/2 table of the font at index in data, or nil if
// it has none or it does not parse.
func parseOS2(data []byte, index int) *tables.Os2 {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil || index < 0 || index >= len(loaders) {
		return nil
	}
	raw, err := loaders[index].RawTable(tagOS2)
	if err != nil {
		return nil
	}
	os2, _, err := tables.ParseOs2(raw)
	if err != nil {
		fontkit.Logger().Debug("ximage: bad OS/2 table", "err", err)
		return nil
	}
	return &os2
}

// nativeOS2 reads the OS/2 table through the source bytes of the native
// handle. Collection members cannot write their source and get nil.
func (f *Font) nativeOS2() *tables.Os2 {
	b := getBuffer()
	defer putBuffer(b)

	var src bytes.Buffer
	if _, err := f.native.WriteSourceTo(b, &src); err != nil {
		return nil
	}
	return parseOS2(src.Bytes(), 0)
}

// applyOS2 overrides props with the style bits, weight class and width
// class of os2. Zero classes leave the inferred values alone.
func applyOS2(props *fontkit.Properties, os2 *tables.Os2) {
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
