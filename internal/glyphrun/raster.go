package glyphrun

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// lcdFilter is the five-tap subpixel filter, weights summing to 256.
var lcdFilter = [5]uint32{0x08, 0x4D, 0x56, 0x4D, 0x08}

// coverage rasterizes the segments into an alpha mask of w by h pixels.
// Points are mapped through (x-biasX)*scaleX and y-biasY.
func (a *Analysis) coverage(w, h int, biasX, biasY, scaleX float32) *image.Alpha {
	var rast vector.Rasterizer
	rast.Reset(w, h)
	rast.DrawOp = draw.Src

	tx := func(x float32) float32 { return (x - biasX) * scaleX }
	ty := func(y float32) float32 { return y - biasY }

	open := false
	for _, seg := range a.segments {
		p := seg.Args
		switch seg.Op {
		case OpMoveTo:
			if open {
				rast.ClosePath()
			}
			rast.MoveTo(tx(p[0].X), ty(p[0].Y))
			open = true
		case OpLineTo:
			rast.LineTo(tx(p[0].X), ty(p[0].Y))
		case OpQuadTo:
			rast.QuadTo(tx(p[0].X), ty(p[0].Y), tx(p[1].X), ty(p[1].Y))
		case OpCubeTo:
			rast.CubeTo(tx(p[0].X), ty(p[0].Y), tx(p[1].X), ty(p[1].Y), tx(p[2].X), ty(p[2].Y))
		case OpClose:
			if open {
				rast.ClosePath()
				open = false
			}
		}
	}
	if open {
		rast.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (a *Analysis) aliased(bounds image.Rectangle) []byte {
	w, h := bounds.Dx(), bounds.Dy()
	mask := a.coverage(w, h, float32(bounds.Min.X), float32(bounds.Min.Y), 1)
	out := mask.Pix
	for i, c := range out {
		if c >= 0x80 {
			out[i] = 0xFF
		} else {
			out[i] = 0
		}
	}
	return out
}

func (a *Analysis) clearType(bounds image.Rectangle) []byte {
	w, h := bounds.Dx(), bounds.Dy()
	sw := w * 3
	mask := a.coverage(sw, h, float32(bounds.Min.X), float32(bounds.Min.Y), 3)

	out := make([]byte, sw*h)
	for y := 0; y < h; y++ {
		src := mask.Pix[y*mask.Stride : y*mask.Stride+sw]
		dst := out[y*sw : (y+1)*sw]
		for x := range dst {
			var sum uint32
			for k, weight := range lcdFilter {
				sx := x + k - 2
				if sx >= 0 && sx < sw {
					sum += weight * uint32(src[sx])
				}
			}
			dst[x] = uint8(min(sum>>8, 0xFF))
		}
	}
	return out
}
