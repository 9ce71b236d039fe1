package fontkit

// Format is the pixel layout of a Canvas.
type Format uint8

const (
	// FormatA8 is 8-bit coverage, one byte per pixel.
	FormatA8 Format = iota

	// FormatRGB24 is one coverage byte per red, green and blue subpixel.
	FormatRGB24

	// FormatRGBA32 is 32-bit RGBA. Rasterization into it is not implemented.
	FormatRGBA32

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of coverage channels.
	Channels int

	// HasAlpha indicates if the format carries a separate alpha channel.
	HasAlpha bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatA8: {
		BytesPerPixel: 1,
		Channels:      1,
	},
	FormatRGB24: {
		BytesPerPixel: 3,
		Channels:      3,
	},
	FormatRGBA32: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// BitsPerPixel returns the number of bits per pixel for this format.
func (f Format) BitsPerPixel() int {
	return f.BytesPerPixel() * 8
}

// Channels returns the number of channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatA8:
		return "A8"
	case FormatRGB24:
		return "RGB24"
	case FormatRGBA32:
		return "RGBA32"
	default:
		return unknownStr
	}
}

// FormatForRasterization returns the canvas format a backend produces for
// the given rasterization options: A8 for bilevel output and RGB24 for both
// antialiased modes.
func FormatForRasterization(r RasterizationOptions) Format {
	if r == RasterizeBilevel {
		return FormatA8
	}
	return FormatRGB24
}
