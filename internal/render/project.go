// Package render projects and rasterizes vessel trees into a 2D pixel
// buffer for the optional viewer, independent of any particular
// windowing toolkit.
package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Projector maps a 3D position onto an integer pixel coordinate within a
// W x H buffer. It drops the Y axis and scales the X/Z plane so that
// [min, max] fills the buffer with a margin.
type Projector struct {
	W, H   int
	scale  float64
	offset r3.Vec
}

// NewProjector returns a Projector that fits [min, max]'s XZ extent into
// a w x h buffer, with pad pixels of margin on each side.
func NewProjector(w, h int, min, max r3.Vec, pad float64) Projector {
	dx := max.X - min.X
	dz := max.Z - min.Z
	if dx <= 0 {
		dx = 1
	}
	if dz <= 0 {
		dz = 1
	}
	sx := (float64(w) - 2*pad) / dx
	sz := (float64(h) - 2*pad) / dz
	scale := sx
	if sz < scale {
		scale = sz
	}
	offset := min
	if scale > 0 {
		offset = r3.Sub(min, r3.Vec{X: pad / scale, Z: pad / scale})
	}
	return Projector{W: w, H: h, scale: scale, offset: offset}
}

// Project maps pos to a pixel coordinate; values may lie outside [0,W)x[0,H).
func (p Projector) Project(pos r3.Vec) (x, y int) {
	x = int((pos.X - p.offset.X) * p.scale)
	y = int((pos.Z - p.offset.Z) * p.scale)
	return x, y
}

// Canvas is a simple RGBA pixel buffer, row-major, 4 bytes per pixel.
type Canvas struct {
	W, H int
	Pix  []byte
}

// NewCanvas returns a cleared w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h, Pix: make([]byte, w*h*4)}
}

// Clear fills the canvas with a solid color.
func (c *Canvas) Clear(col color.Color) {
	r, g, b, a := rgba8(col)
	for i := 0; i < len(c.Pix); i += 4 {
		c.Pix[i+0] = r
		c.Pix[i+1] = g
		c.Pix[i+2] = b
		c.Pix[i+3] = a
	}
}

// SetPixel writes a single pixel, ignoring out-of-bounds coordinates.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	r, g, b, a := rgba8(col)
	base := (y*c.W + x) * 4
	c.Pix[base+0] = r
	c.Pix[base+1] = g
	c.Pix[base+2] = b
	c.Pix[base+3] = a
}

// DrawLine rasterizes a line segment with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		c.SetPixel(x, y, col)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawDisc rasterizes a filled disc of the given pixel radius, used to
// make node radii visually legible at small render scales.
func (c *Canvas) DrawDisc(cx, cy, radius int, col color.Color) {
	if radius < 1 {
		c.SetPixel(cx, cy, col)
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.SetPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func rgba8(col color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := col.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}
