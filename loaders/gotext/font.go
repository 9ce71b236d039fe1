// Package gotext is a fontkit loader backed by github.com/go-text/typesetting.
//
// go-text fonts are safe for concurrent use but its faces are not, so Font
// keeps the shared *font.Font and builds a short-lived *font.Face for every
// call that needs one.
package gotext

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/glyphrun"
)

// NativeFont is the engine handle wrapped by Font.
type NativeFont struct {
	Font   *font.Font
	Loader *ot.Loader
	// File is the backing file of the font, if known.
	File fontkit.FontFile
}

// Font is a fontkit.Face backed by a go-text font.
//
// Font is safe for concurrent use.
type Font struct {
	native NativeFont
	info   *fontInfo
	data   *fontkit.CachedFontData
	paths  *glyphrun.PathCache
}

var _ fontkit.Face = (*Font)(nil)

// fontInfo holds the tables go-text parses but does not expose.
type fontInfo struct {
	numGlyphs int
	names     tables.Name
	os2       *tables.Os2
	head      tables.Head
	desc      font.Description
}

var (
	tagMaxp = ot.MustNewTag("maxp")
	tagName = ot.MustNewTag("name")
	tagOS2  = ot.MustNewTag("OS/2")
)

func loadInfo(n NativeFont) *fontInfo {
	info := &fontInfo{desc: n.Font.Describe()}
	if n.Loader == nil {
		return info
	}
	if raw, err := n.Loader.RawTable(tagMaxp); err == nil {
		if maxp, _, err := tables.ParseMaxp(raw); err == nil {
			info.numGlyphs = int(maxp.NumGlyphs)
		}
	}
	if raw, err := n.Loader.RawTable(tagName); err == nil {
		info.names, _, _ = tables.ParseName(raw)
	}
	if raw, err := n.Loader.RawTable(tagOS2); err == nil {
		if os2, _, err := tables.ParseOs2(raw); err == nil {
			info.os2 = &os2
		}
	}
	info.head, _, _ = font.LoadHeadTable(n.Loader, nil)
	return info
}

// FromBytes loads the font at index from data, which may hold a single
// font or a collection.
func FromBytes(data []byte, index int) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("gotext: failed to parse font: %w", fontkit.ErrEmptyFontData)
	}
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font: %w: %w", fontkit.ErrUnrecognizedFont, err)
	}
	if index < 0 || index >= len(loaders) {
		return nil, &fontkit.FontIndexError{Index: index, Count: len(loaders)}
	}
	ld := loaders[index]
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font %d: %w: %w", index, fontkit.ErrUnrecognizedFont, err)
	}

	f := newFont(NativeFont{Font: ft, Loader: ld, File: fontkit.BytesFile(data)}, fontkit.NewCachedFontData(data))
	fontkit.Logger().Debug("gotext: font loaded", "family", f.FamilyName(), "index", index)
	return f, nil
}

// FromFile loads the font at index from r, read from its start.
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
		return nil, fmt.Errorf("gotext: failed to read font file: %w", err)
	}
	return FromBytes(data, index)
}

// FromNativeFont wraps an already parsed go-text font. The loader is
// optional; without it names fall back to the family and glyph ranges are
// not checked up front. Font bytes are fetched lazily from n.File.
func FromNativeFont(n NativeFont) *Font {
	return newFont(n, new(fontkit.CachedFontData))
}

func newFont(n NativeFont, data *fontkit.CachedFontData) *Font {
	return &Font{native: n, info: loadInfo(n), data: data, paths: glyphrun.NewPathCache(glyphrun.DefaultPathCacheSize)}
}

// AnalyzeBytes reports whether data holds a single font or a collection.
func AnalyzeBytes(data []byte) (fontkit.Type, error) {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return fontkit.Type{}, fmt.Errorf("gotext: failed to analyze font: %w: %w", fontkit.ErrUnrecognizedFont, err)
	}
	if len(data) >= 4 && string(data[:4]) == "ttcf" {
		return fontkit.CollectionType(len(loaders)), nil
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
		return fontkit.Type{}, fmt.Errorf("gotext: failed to read font file: %w", err)
	}
	return AnalyzeBytes(data)
}

func readAll(r io.ReadSeeker) ([]byte, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("gotext: failed to seek font file: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to read font file: %w", err)
	}
	return data, nil
}

// NativeFont returns the wrapped go-text font.
func (f *Font) NativeFont() NativeFont {
	return f.native
}

// Clone returns a Font sharing the native font with f. The clone starts
// with the bytes f has cached so far and caches independently afterwards.
func (f *Font) Clone() *Font {
	return &Font{native: f.native, info: f.info, data: f.data.Clone(), paths: f.paths}
}

// FontData returns the bytes of the font file, read from the native
// handle's backing file on first use.
func (f *Font) FontData() (*fontkit.FontData, bool) {
	return f.data.Get(f.fetchFontData)
}

func (f *Font) fetchFontData() ([]byte, error) {
	if f.native.File == nil {
		return nil, fontkit.ErrNoFontFile
	}
	return f.native.File.FontFileBytes()
}

// face returns a fresh face; go-text faces must not be shared.
func (f *Font) face() *font.Face {
	return font.NewFace(f.native.Font)
}

// String returns the family name.
func (f *Font) String() string {
	return f.FamilyName()
}
