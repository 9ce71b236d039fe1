// Package fonttest provides font fixtures for fontkit tests.
package fonttest

import (
	"encoding/binary"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Go font files, shipped as Go source so tests never depend on the system.
var (
	Regular = goregular.TTF
	Bold    = gobold.TTF
	Italic  = goitalic.TTF
	Mono    = gomono.TTF
)

// Collection packs single TrueType fonts into a TTC file. Table offsets of
// each font are rebased to the start of the collection.
func Collection(fonts ...[]byte) []byte {
	header := 12 + 4*len(fonts)
	out := make([]byte, header)
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))

	for i, f := range fonts {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		base := len(out)
		binary.BigEndian.PutUint32(out[12+4*i:], uint32(base))
		out = append(out, f...)

		numTables := int(binary.BigEndian.Uint16(f[4:]))
		for t := 0; t < numTables; t++ {
			entry := base + 12 + 16*t
			off := binary.BigEndian.Uint32(out[entry+8:])
			binary.BigEndian.PutUint32(out[entry+8:], off+uint32(base))
		}
	}
	return out
}
