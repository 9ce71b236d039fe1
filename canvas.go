package fontkit

import (
	"fmt"
	"image"
)

// Canvas is an in-memory pixel buffer that glyphs are rasterized into.
//
// Invariants: Stride >= Format.RowBytes(Size.X) and
// len(Pixels) >= Stride*Size.Y. Fields are exported so callers can hand the
// pixels to other code without copying; keep the invariants when editing.
type Canvas struct {
	// Pixels holds the rows of the canvas, Stride bytes apart.
	Pixels []byte
	// Size is the width and height in pixels.
	Size image.Point
	// Stride is the number of bytes between the starts of adjacent rows.
	Stride int
	// Format is the pixel layout.
	Format Format
}

// NewCanvas creates a zero-filled canvas with a tight stride.
func NewCanvas(size image.Point, format Format) *Canvas {
	return NewCanvasWithStride(size, format, format.RowBytes(max(size.X, 0)))
}

// NewCanvasWithStride creates a zero-filled canvas with a custom stride for
// alignment. Panics if stride is smaller than one row of pixels or if size
// is negative.
func NewCanvasWithStride(size image.Point, format Format, stride int) *Canvas {
	if size.X < 0 || size.Y < 0 {
		panic(fmt.Sprintf("fontkit: negative canvas size %v", size))
	}
	if !format.IsValid() {
		panic(fmt.Sprintf("fontkit: invalid canvas format %d", format))
	}
	if minStride := format.RowBytes(size.X); stride < minStride {
		panic(fmt.Sprintf("fontkit: stride %d too small for %d %s pixels", stride, size.X, format))
	}
	return &Canvas{
		Pixels: make([]byte, stride*size.Y),
		Size:   size,
		Stride: stride,
		Format: format,
	}
}

// Bounds returns the canvas rectangle anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rectangle{Max: c.Size}
}

// RowBytes returns the number of meaningful bytes in each row.
func (c *Canvas) RowBytes() int {
	return c.Format.RowBytes(c.Size.X)
}

// Row returns the visible bytes of row y, excluding stride padding.
// Returns nil if y is out of range.
func (c *Canvas) Row(y int) []byte {
	if y < 0 || y >= c.Size.Y {
		return nil
	}
	start := y * c.Stride
	return c.Pixels[start : start+c.RowBytes()]
}

// Pixel returns the bytes of the pixel at (x, y), or nil if out of range.
func (c *Canvas) Pixel(x, y int) []byte {
	if x < 0 || x >= c.Size.X {
		return nil
	}
	row := c.Row(y)
	if row == nil {
		return nil
	}
	bpp := c.Format.BytesPerPixel()
	return row[x*bpp : (x+1)*bpp]
}

// Shade returns the coverage of the pixel at (x, y): the byte itself for A8
// and the mean of the three subpixels for RGB24. RGBA32 is not supported.
func (c *Canvas) Shade(x, y int) (uint8, error) {
	if c.Format == FormatRGBA32 {
		return 0, fmt.Errorf("fontkit: shade of %s pixel: %w", c.Format, ErrUnimplemented)
	}
	px := c.Pixel(x, y)
	if px == nil {
		return 0, fmt.Errorf("fontkit: pixel (%d, %d) outside %v canvas", x, y, c.Size)
	}
	if c.Format == FormatA8 {
		return px[0], nil
	}
	return uint8((uint(px[0]) + uint(px[1]) + uint(px[2])) / 3), nil
}

// Clear zeroes every byte of the canvas, padding included.
func (c *Canvas) Clear() {
	clear(c.Pixels)
}

// BlitFrom copies src, a srcSize image with srcStride bytes per row, into the
// top-left corner of the canvas. Only stride conversion is performed: rows
// beyond the canvas height and bytes beyond the canvas row width are
// dropped, and a short source leaves the remainder of the canvas untouched.
//
// Panics if srcFormat differs from the canvas format.
func (c *Canvas) BlitFrom(src []byte, srcSize image.Point, srcStride int, srcFormat Format) {
	if srcFormat != c.Format {
		panic(fmt.Sprintf("fontkit: blit %s pixels into %s canvas", srcFormat, c.Format))
	}
	if srcSize.X <= 0 || srcSize.Y <= 0 {
		return
	}

	rowBytes := min(srcFormat.RowBytes(srcSize.X), c.RowBytes())
	rows := min(srcSize.Y, c.Size.Y)
	for y := 0; y < rows; y++ {
		srcStart := y * srcStride
		if srcStart >= len(src) {
			break
		}
		n := min(rowBytes, len(src)-srcStart)
		dstStart := y * c.Stride
		copy(c.Pixels[dstStart:dstStart+n], src[srcStart:srcStart+n])
	}
}
