package fontkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontkit and its loaders.
var (
	// ErrUnrecognizedFont is returned when data is not a font the engine can
	// parse, or when a collection index is out of range.
	ErrUnrecognizedFont = errors.New("fontkit: unrecognized font")

	// ErrGlyphNotFound is returned when a glyph ID is out of range for a font.
	ErrGlyphNotFound = errors.New("fontkit: glyph not found")

	// ErrUnimplemented is returned for operations a backend does not support,
	// such as rasterizing into an RGBA32 canvas.
	ErrUnimplemented = errors.New("fontkit: unimplemented")

	// ErrNoFontFile is returned by a FontFile fetch when the native handle has
	// no backing file. A CachedFontData never retries after seeing it.
	ErrNoFontFile = errors.New("fontkit: font has no backing file")

	// ErrEmptyFontData is returned when font data is empty. It wraps
	// ErrUnrecognizedFont.
	ErrEmptyFontData = fmt.Errorf("%w: empty font data", ErrUnrecognizedFont)
)

// FontIndexError is returned when a collection index is out of range.
type FontIndexError struct {
	Index int
	Count int
}

func (e *FontIndexError) Error() string {
	return fmt.Sprintf("fontkit: font index %d out of range [0, %d)", e.Index, e.Count)
}

// Unwrap allows errors.Is(err, ErrUnrecognizedFont).
func (e *FontIndexError) Unwrap() error {
	return ErrUnrecognizedFont
}
