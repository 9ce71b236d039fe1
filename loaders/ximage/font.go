// Package ximage is a fontkit loader backed by golang.org/x/image/font/sfnt.
//
// The sfnt engine reports outlines and bounds with the Y axis increasing
// down; Font converts everything to fontkit's y-up design units.
package ximage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/glyphrun"
)

// NativeFont is the engine handle wrapped by Font.
type NativeFont = *sfnt.Font

// Font is a fontkit.Face backed by an sfnt font.
//
// Font is safe for concurrent use.
type Font struct {
	native NativeFont
	data   *fontkit.CachedFontData
	paths  *glyphrun.PathCache
	// os2 parses the OS/2 table once; clones share it.
	os2 func() *tables.Os2
}

var _ fontkit.Face = (*Font)(nil)

var bufferPool = sync.Pool{
	New: func() any { return new(sfnt.Buffer) },
}

func getBuffer() *sfnt.Buffer  { return bufferPool.Get().(*sfnt.Buffer) }
func putBuffer(b *sfnt.Buffer) { bufferPool.Put(b) }

// FromBytes loads the font at index from data, which may hold a single
// font or a collection. Font keeps a reference to data; the caller must not
// modify it afterwards.
func FromBytes(data []byte, index int) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ximage: failed to parse font: %w", fontkit.ErrEmptyFontData)
	}
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("ximage: failed to parse font: %w: %w", fontkit.ErrUnrecognizedFont, err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, &fontkit.FontIndexError{Index: index, Count: c.NumFonts()}
	}
	native, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("ximage: failed to parse font %d: %w: %w", index, fontkit.ErrUnrecognizedFont, err)
	}

	f := newFont(native, fontkit.NewCachedFontData(data))
	f.os2 = sync.OnceValue(func() *tables.Os2 { return parseOS2(data, index) })
	fontkit.Logger().Debug("ximage: font loaded", "family", f.FamilyName(), "index", index)
	return f, nil
}

// FromFile loads the font at index from r. The whole stream is read from
// its start, whatever its current position.
func FromFile(r io.ReadSeeker, index int) (*Font, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, index)
}

// FromPath loads the font at index from the file at path.
func FromPath(path string, index int) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ximage: failed to read font file: %w", err)
	}
	return FromBytes(data, index)
}

// FromNativeFont wraps an already parsed sfnt font. Its bytes are fetched
// lazily by FontData.
func FromNativeFont(native NativeFont) *Font {
	return newFont(native, new(fontkit.CachedFontData))
}

func newFont(native NativeFont, data *fontkit.CachedFontData) *Font {
	f := &Font{native: native, data: data, paths: glyphrun.NewPathCache(glyphrun.DefaultPathCacheSize)}
	f.os2 = sync.OnceValue(f.nativeOS2)
	return f
}

// AnalyzeBytes reports whether data holds a single font or a collection.
func AnalyzeBytes(data []byte) (fontkit.Type, error) {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return fontkit.Type{}, fmt.Errorf("ximage: failed to analyze font: %w: %w", fontkit.ErrUnrecognizedFont, err)
	}
	if isCollection(data) {
		return fontkit.CollectionType(c.NumFonts()), nil
	}
	// A single font must also parse on its own.
	if _, err := c.Font(0); err != nil {
		return fontkit.Type{}, fmt.Errorf("ximage: failed to analyze font: %w: %w", fontkit.ErrUnrecognizedFont, err)
	}
	return fontkit.SingleType(), nil
}

// AnalyzeFile is AnalyzeBytes on the whole contents of r.
func AnalyzeFile(r io.ReadSeeker) (fontkit.Type, error) {
	data, err := readAll(r)
	if err != nil {
		return fontkit.Type{}, err
	}
	return AnalyzeBytes(data)
}

// AnalyzePath is AnalyzeBytes on the file at path.
func AnalyzePath(path string) (fontkit.Type, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fontkit.Type{}, fmt.Errorf("ximage: failed to read font file: %w", err)
	}
	return AnalyzeBytes(data)
}

func isCollection(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "ttcf"
}

func readAll(r io.ReadSeeker) ([]byte, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("ximage: failed to seek font file: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ximage: failed to read font file: %w", err)
	}
	return data, nil
}

// NativeFont returns the wrapped sfnt font.
func (f *Font) NativeFont() NativeFont {
	return f.native
}

// Clone returns a Font sharing the native handle with f. The clone starts
// with the bytes f has cached so far and caches independently afterwards.
func (f *Font) Clone() *Font {
	return &Font{native: f.native, data: f.data.Clone(), paths: f.paths, os2: f.os2}
}

// FontData returns the bytes of the font file. For fonts created with
// FromNativeFont they are fetched from the engine on first use; a font
// extracted from a collection has none.
func (f *Font) FontData() (*fontkit.FontData, bool) {
	return f.data.Get(f.fetchFontData)
}

func (f *Font) fetchFontData() ([]byte, error) {
	b := getBuffer()
	defer putBuffer(b)

	var out bytes.Buffer
	if _, err := f.native.WriteSourceTo(b, &out); err != nil {
		// Fonts taken out of a collection cannot be written back alone.
		return nil, errors.Join(fontkit.ErrNoFontFile, err)
	}
	return out.Bytes(), nil
}

// String returns the family name.
func (f *Font) String() string {
	return f.FamilyName()
}
