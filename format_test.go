package fontkit

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format   Format
		bpp      int
		channels int
		name     string
	}{
		{FormatA8, 1, 1, "A8"},
		{FormatRGB24, 3, 3, "RGB24"},
		{FormatRGBA32, 4, 4, "RGBA32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.format.IsValid() {
				t.Error("IsValid() = false")
			}
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.BitsPerPixel(); got != tt.bpp*8 {
				t.Errorf("BitsPerPixel() = %d, want %d", got, tt.bpp*8)
			}
			if got := tt.format.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.RowBytes(10); got != 10*tt.bpp {
				t.Errorf("RowBytes(10) = %d, want %d", got, 10*tt.bpp)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestFormat_Invalid(t *testing.T) {
	f := Format(42)
	if f.IsValid() {
		t.Error("IsValid() = true for unknown format")
	}
	if f.BytesPerPixel() != 0 || f.String() != "Unknown" {
		t.Errorf("unknown format: bpp %d, name %q", f.BytesPerPixel(), f)
	}
}

func TestFormatForRasterization(t *testing.T) {
	tests := []struct {
		r    RasterizationOptions
		want Format
	}{
		{RasterizeBilevel, FormatA8},
		{RasterizeGrayscaleAA, FormatRGB24},
		{RasterizeSubpixelAA, FormatRGB24},
	}
	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			if got := FormatForRasterization(tt.r); got != tt.want {
				t.Errorf("FormatForRasterization(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
