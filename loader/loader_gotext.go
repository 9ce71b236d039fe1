//go:build fontkit_gotext

package loader

import (
	"io"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loaders/gotext"
)

// Name is the name of the default engine.
const Name = "gotext"

// Font is the default engine's face.
type Font = gotext.Font

// NativeFont is the default engine's native handle.
type NativeFont = gotext.NativeFont

// FromBytes loads the font at index from data with the default engine.
func FromBytes(data []byte, index int) (*Font, error) {
	return gotext.FromBytes(data, index)
}

// FromNativeFont wraps a native handle of the default engine.
func FromNativeFont(n NativeFont) *Font {
	return gotext.FromNativeFont(n)
}

// AnalyzeBytes reports whether data holds a single font or a collection.
func AnalyzeBytes(data []byte) (fontkit.Type, error) {
	return gotext.AnalyzeBytes(data)
}

func fromFile(r io.ReadSeeker, index int) (*Font, error) {
	return gotext.FromFile(r, index)
}
