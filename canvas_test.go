package fontkit

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		name   string
		size   image.Point
		format Format
		stride int
	}{
		{"A8", image.Pt(5, 3), FormatA8, 5},
		{"RGB24", image.Pt(5, 3), FormatRGB24, 15},
		{"RGBA32", image.Pt(5, 3), FormatRGBA32, 20},
		{"empty", image.Pt(0, 0), FormatA8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.size, tt.format)
			if c.Stride != tt.stride {
				t.Errorf("Stride = %d, want %d", c.Stride, tt.stride)
			}
			if got, want := len(c.Pixels), tt.stride*tt.size.Y; got != want {
				t.Errorf("len(Pixels) = %d, want %d", got, want)
			}
			if c.Bounds() != (image.Rectangle{Max: tt.size}) {
				t.Errorf("Bounds() = %v", c.Bounds())
			}
			for i, b := range c.Pixels {
				if b != 0 {
					t.Fatalf("Pixels[%d] = %d, want 0", i, b)
				}
			}
		})
	}
}

func TestNewCanvasWithStride(t *testing.T) {
	c := NewCanvasWithStride(image.Pt(3, 2), FormatRGB24, 16)
	if c.Stride != 16 || len(c.Pixels) != 32 {
		t.Errorf("Stride = %d, len = %d; want 16, 32", c.Stride, len(c.Pixels))
	}
	if got := len(c.Row(1)); got != 9 {
		t.Errorf("len(Row(1)) = %d, want 9", got)
	}
}

func TestNewCanvasWithStride_Panics(t *testing.T) {
	tests := []struct {
		name   string
		size   image.Point
		format Format
		stride int
	}{
		{"stride too small", image.Pt(4, 1), FormatRGB24, 11},
		{"negative size", image.Pt(-1, 1), FormatA8, 0},
		{"invalid format", image.Pt(1, 1), Format(99), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewCanvasWithStride() did not panic")
				}
			}()
			NewCanvasWithStride(tt.size, tt.format, tt.stride)
		})
	}
}

func TestCanvas_PixelAndShade(t *testing.T) {
	c := NewCanvas(image.Pt(2, 2), FormatRGB24)
	copy(c.Pixel(1, 1), []byte{30, 60, 90})

	shade, err := c.Shade(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if shade != 60 {
		t.Errorf("Shade(1, 1) = %d, want 60", shade)
	}
	if c.Pixel(2, 0) != nil || c.Pixel(0, -1) != nil {
		t.Error("out of range Pixel() should be nil")
	}
	if _, err := c.Shade(5, 5); err == nil {
		t.Error("Shade() outside the canvas should fail")
	}

	a8 := NewCanvas(image.Pt(1, 1), FormatA8)
	a8.Pixels[0] = 200
	if shade, _ := a8.Shade(0, 0); shade != 200 {
		t.Errorf("A8 Shade() = %d, want 200", shade)
	}

	rgba := NewCanvas(image.Pt(1, 1), FormatRGBA32)
	if _, err := rgba.Shade(0, 0); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("RGBA32 Shade() error = %v, want ErrUnimplemented", err)
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvasWithStride(image.Pt(2, 2), FormatA8, 4)
	for i := range c.Pixels {
		c.Pixels[i] = 0xFF
	}
	c.Clear()
	if !bytes.Equal(c.Pixels, make([]byte, 8)) {
		t.Errorf("Clear() left %v", c.Pixels)
	}
}

func TestCanvas_BlitFrom(t *testing.T) {
	src := []byte{
		1, 2, 3, 0xEE,
		4, 5, 6, 0xEE,
		7, 8, 9, 0xEE,
	}

	tests := []struct {
		name string
		size image.Point
		src  []byte
		want []byte
	}{
		{
			name: "same size",
			size: image.Pt(3, 3),
			src:  src,
			want: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name: "smaller canvas clips",
			size: image.Pt(2, 2),
			src:  src,
			want: []byte{1, 2, 4, 5},
		},
		{
			name: "larger canvas keeps remainder",
			size: image.Pt(4, 4),
			src:  src,
			want: []byte{
				1, 2, 3, 0,
				4, 5, 6, 0,
				7, 8, 9, 0,
				0, 0, 0, 0,
			},
		},
		{
			name: "short source",
			size: image.Pt(3, 3),
			src:  src[:6],
			want: []byte{1, 2, 3, 4, 5, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.size, FormatA8)
			c.BlitFrom(tt.src, image.Pt(3, 3), 4, FormatA8)
			if !bytes.Equal(c.Pixels, tt.want) {
				t.Errorf("Pixels = %v, want %v", c.Pixels, tt.want)
			}
		})
	}
}

func TestCanvas_BlitFromPadding(t *testing.T) {
	c := NewCanvasWithStride(image.Pt(1, 2), FormatRGB24, 4)
	c.Pixels[3], c.Pixels[7] = 0x55, 0x55
	c.BlitFrom([]byte{1, 2, 3, 4, 5, 6}, image.Pt(1, 2), 3, FormatRGB24)

	want := []byte{1, 2, 3, 0x55, 4, 5, 6, 0x55}
	if !bytes.Equal(c.Pixels, want) {
		t.Errorf("Pixels = %v, want %v", c.Pixels, want)
	}
}

func TestCanvas_BlitFromFormatMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BlitFrom() with a different format did not panic")
		}
	}()
	c := NewCanvas(image.Pt(2, 2), FormatA8)
	c.BlitFrom(make([]byte, 12), image.Pt(2, 2), 6, FormatRGB24)
}
