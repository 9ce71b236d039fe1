package gotext

import (
	"bytes"
	"errors"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/fonttest"
)

func mustLoad(t *testing.T, data []byte) *Font {
	t.Helper()
	f, err := FromBytes(data, 0)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	return f
}

func mustGlyph(t *testing.T, f *Font, r rune) fontkit.GlyphID {
	t.Helper()
	id, ok := f.GlyphForChar(r)
	if !ok {
		t.Fatalf("GlyphForChar(%q) not found", r)
	}
	return id
}

func mustNative(t *testing.T, data []byte) NativeFont {
	t.Helper()
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		t.Fatal(err)
	}
	return NativeFont{Font: ft, Loader: ld}
}

func TestFromBytes_Names(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		family     string
		full       string
		postscript string
	}{
		{"regular", fonttest.Regular, "Go", "Go Regular", "GoRegular"},
		{"bold", fonttest.Bold, "Go", "Go Bold", "Go-Bold"},
		{"mono", fonttest.Mono, "Go Mono", "Go Mono", "GoMono"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustLoad(t, tt.data)
			if got := f.FamilyName(); got != tt.family {
				t.Errorf("FamilyName() = %q, want %q", got, tt.family)
			}
			if got := f.FullName(); got != tt.full {
				t.Errorf("FullName() = %q, want %q", got, tt.full)
			}
			if got := f.PostScriptName(); got != tt.postscript {
				t.Errorf("PostScriptName() = %q, want %q", got, tt.postscript)
			}
		})
	}
}

func TestNames_FallBackToFamily(t *testing.T) {
	n := mustNative(t, fonttest.Regular)
	n.Loader = nil
	f := FromNativeFont(n)

	if got := f.PostScriptName(); got != "Go" {
		t.Errorf("PostScriptName() = %q, want family %q", got, "Go")
	}
	if got := f.FullName(); got != "Go" {
		t.Errorf("FullName() = %q, want family %q", got, "Go")
	}
}

func TestFromBytes_Errors(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		_, err := FromBytes(data, 0)
		if !errors.Is(err, fontkit.ErrEmptyFontData) {
			t.Errorf("FromBytes(%v) error = %v, want ErrEmptyFontData", data, err)
		}
		if !errors.Is(err, fontkit.ErrUnrecognizedFont) {
			t.Errorf("FromBytes(%v) error = %v, want ErrUnrecognizedFont", data, err)
		}
	}
	if _, err := FromBytes([]byte("definitely not a font file"), 0); !errors.Is(err, fontkit.ErrUnrecognizedFont) {
		t.Errorf("FromBytes(garbage) error = %v, want ErrUnrecognizedFont", err)
	}
	if _, err := FromBytes(fonttest.Regular, 3); !errors.Is(err, fontkit.ErrUnrecognizedFont) {
		t.Errorf("FromBytes(index 3) error = %v, want ErrUnrecognizedFont", err)
	}
}

func TestFromFile_SeeksToStart(t *testing.T) {
	r := bytes.NewReader(fonttest.Mono)
	if _, err := r.Seek(0, io.SeekEnd); err != nil {
		t.Fatal(err)
	}
	f, err := FromFile(r, 0)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if !f.IsMonospace() {
		t.Error("Go Mono should be monospace")
	}
}

func TestAnalyzeBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want fontkit.Type
	}{
		{"single", fonttest.Regular, fontkit.SingleType()},
		{"collection", fonttest.Collection(fonttest.Regular, fonttest.Bold, fonttest.Italic), fontkit.CollectionType(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnalyzeBytes(tt.data)
			if err != nil {
				t.Fatalf("AnalyzeBytes() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AnalyzeBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollection_Index(t *testing.T) {
	ttc := fonttest.Collection(fonttest.Regular, fonttest.Italic)
	f, err := FromBytes(ttc, 1)
	if err != nil {
		t.Fatalf("FromBytes(ttc, 1) error = %v", err)
	}
	if got := f.FullName(); got != "Go Italic" {
		t.Errorf("FullName() = %q, want %q", got, "Go Italic")
	}
	if got := f.Properties().Style; got != fontkit.StyleItalic {
		t.Errorf("Style = %v, want Italic", got)
	}
}

func TestProperties(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		style  fontkit.Style
		weight fontkit.Weight
	}{
		{"regular", fonttest.Regular, fontkit.StyleNormal, fontkit.WeightNormal},
		{"italic", fonttest.Italic, fontkit.StyleItalic, fontkit.WeightNormal},
		{"bold", fonttest.Bold, fontkit.StyleNormal, fontkit.WeightSemibold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := fontkit.Properties{Style: tt.style, Weight: tt.weight, Stretch: fontkit.StretchNormal}
			if got := mustLoad(t, tt.data).Properties(); got != want {
				t.Errorf("Properties() = %v, want %v", got, want)
			}
		})
	}
}

func TestGlyphForChar_Missing(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	if id, ok := f.GlyphForChar('\U0001F600'); ok {
		t.Errorf("GlyphForChar(U+1F600) = %d, true; want not found", id)
	}
}

func TestMetrics(t *testing.T) {
	m := mustLoad(t, fonttest.Regular).Metrics()
	if m.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d, want 2048", m.UnitsPerEm)
	}
	if m.Ascent != 1935 || m.Descent != -432 || m.LineGap != 0 {
		t.Errorf("ascent, descent, gap = %v, %v, %v; want 1935, -432, 0", m.Ascent, m.Descent, m.LineGap)
	}
	if m.Descent > 0 {
		t.Error("Descent must not be positive")
	}
	if m.UnderlinePosition != -275 || m.UnderlineThickness != 50 {
		t.Errorf("underline = (%v, %v), want (-275, 50)", m.UnderlinePosition, m.UnderlineThickness)
	}
	want := fontkit.Rect{Origin: fontkit.Pt(-440, -543), Size: fontkit.Vector{X: 2600, Y: 2834}}
	if m.BoundingBox != want {
		t.Errorf("BoundingBox = %v, want %v", m.BoundingBox, want)
	}
}

func TestOutline_YUp(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	var events fontkit.PathEvents
	if err := f.Outline(mustGlyph(t, f, 'A'), fontkit.HintingNone(), &events); err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if len(events) == 0 || events[0].Op != fontkit.PathMoveTo || events[len(events)-1].Op != fontkit.PathClose {
		t.Fatalf("Outline() = %v, want MoveTo ... Close", events)
	}
	maxY := float32(math.Inf(-1))
	for _, e := range events {
		if e.Op != fontkit.PathClose {
			maxY = max(maxY, e.To.Y)
		}
	}
	if maxY < 1000 {
		t.Errorf("outline top = %v, want near the cap height", maxY)
	}
}

func TestTypographicBounds(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	for _, r := range []rune{'A', 'g', 'x'} {
		t.Run(string(r), func(t *testing.T) {
			id := mustGlyph(t, f, r)
			bounds, err := f.TypographicBounds(id)
			if err != nil {
				t.Fatal(err)
			}
			var events fontkit.PathEvents
			if err := f.Outline(id, fontkit.HintingNone(), &events); err != nil {
				t.Fatal(err)
			}
			minY, maxY := float32(math.Inf(1)), float32(math.Inf(-1))
			for _, e := range events {
				if e.Op == fontkit.PathClose {
					continue
				}
				minY, maxY = min(minY, e.To.Y), max(maxY, e.To.Y)
			}
			if d := math.Abs(float64(bounds.MinY() - minY)); d > 1 {
				t.Errorf("bounds bottom = %v, outline bottom = %v", bounds.MinY(), minY)
			}
			if d := math.Abs(float64(bounds.MaxY() - maxY)); d > 1 {
				t.Errorf("bounds top = %v, outline top = %v", bounds.MaxY(), maxY)
			}

			adv, err := f.Advance(id)
			if err != nil {
				t.Fatal(err)
			}
			rsb := adv.X - bounds.MaxX()
			if got := adv.X - (bounds.MinX() + rsb); got != bounds.Size.X {
				t.Errorf("advance - (lsb + rsb) = %v, width = %v", got, bounds.Size.X)
			}
		})
	}
}

func TestGlyphOutOfRange(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	if _, err := f.TypographicBounds(5000); !errors.Is(err, fontkit.ErrGlyphNotFound) {
		t.Errorf("TypographicBounds() error = %v, want ErrGlyphNotFound", err)
	}
	if err := f.Outline(5000, fontkit.HintingNone(), &fontkit.PathEvents{}); !errors.Is(err, fontkit.ErrGlyphNotFound) {
		t.Errorf("Outline() error = %v, want ErrGlyphNotFound", err)
	}
}

func TestGlyphOutOfRange_WithoutLoader(t *testing.T) {
	n := mustNative(t, fonttest.Regular)
	n.Loader = nil
	f := FromNativeFont(n)

	if _, err := f.Advance(99999); !errors.Is(err, fontkit.ErrGlyphNotFound) {
		t.Errorf("Advance() error = %v, want ErrGlyphNotFound", err)
	}
	if _, err := f.Origin(99999); !errors.Is(err, fontkit.ErrGlyphNotFound) {
		t.Errorf("Origin() error = %v, want ErrGlyphNotFound", err)
	}
	if _, err := f.TypographicBounds(99999); !errors.Is(err, fontkit.ErrGlyphNotFound) {
		t.Errorf("TypographicBounds() error = %v, want ErrGlyphNotFound", err)
	}
	if err := f.Outline(99999, fontkit.HintingNone(), &fontkit.PathEvents{}); !errors.Is(err, fontkit.ErrGlyphNotFound) {
		t.Errorf("Outline() error = %v, want ErrGlyphNotFound", err)
	}

	for _, r := range []rune{'A', ' '} {
		id := mustGlyph(t, f, r)
		adv, err := f.Advance(id)
		if err != nil {
			t.Errorf("Advance(%q) error = %v", r, err)
		} else if adv.X <= 0 {
			t.Errorf("Advance(%q) = %v, want positive", r, adv)
		}
	}
}

func TestFontData(t *testing.T) {
	t.Run("no backing file", func(t *testing.T) {
		f := FromNativeFont(mustNative(t, fonttest.Regular))
		for i := 0; i < 2; i++ {
			if _, ok := f.FontData(); ok {
				t.Errorf("FontData() call %d present, want absent", i)
			}
		}
	})

	t.Run("lazy backing file", func(t *testing.T) {
		n := mustNative(t, fonttest.Regular)
		n.File = fontkit.BytesFile(fonttest.Regular)
		f := FromNativeFont(n)
		if _, ok := f.data.Peek(); ok {
			t.Fatal("font data fetched eagerly")
		}
		data, ok := f.FontData()
		if !ok || !bytes.Equal(data.Bytes(), fonttest.Regular) {
			t.Error("FontData() does not match the backing file")
		}
	})

	t.Run("concurrent", func(t *testing.T) {
		var fetches int
		var mu sync.Mutex
		n := mustNative(t, fonttest.Regular)
		n.File = countingFile{data: fonttest.Regular, count: func() { mu.Lock(); fetches++; mu.Unlock() }}
		f := FromNativeFont(n)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := f.FontData(); !ok {
					t.Error("FontData() absent")
				}
			}()
		}
		wg.Wait()
		if fetches != 1 {
			t.Errorf("backing file read %d times, want 1", fetches)
		}
	})
}

type countingFile struct {
	data  []byte
	count func()
}

func (c countingFile) FontFileBytes() ([]byte, error) {
	c.count()
	return c.data, nil
}

func TestClone(t *testing.T) {
	f := mustLoad(t, fonttest.Regular)
	c := f.Clone()
	if c.NativeFont().Font != f.NativeFont().Font {
		t.Error("Clone() should share the native font")
	}
	if c.data == f.data {
		t.Error("Clone() should own its cache slot")
	}
	if _, ok := c.FontData(); !ok {
		t.Error("clone should start with the cached bytes")
	}
}
