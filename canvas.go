package avagen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Point is a canvas coordinate in pixels.
type Point struct {
	X, Y float64
}

// Canvas is the transparent raster surface one render paints on.
// It is owned exclusively by the render that created it and every
// drawing routine mutates it in place.
type Canvas struct {
	dc   *gg.Context
	size int
}

// NewCanvas creates a square transparent canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{
		dc:   gg.NewContext(size, size),
		size: size,
	}
}

// NewCanvasForImage creates a canvas that paints over a copy of the
// given image.
func NewCanvasForImage(img image.Image) *Canvas {
	return &Canvas{
		dc:   gg.NewContextForImage(img),
		size: img.Bounds().Dx(),
	}
}

// Size returns the canvas side length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Center returns the canvas midpoint coordinate. Integer division keeps the
// geometry identical between one render and its fallback twin.
func (c *Canvas) Center() float64 {
	return float64(c.size / 2)
}

// FillCircle fills a circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
}

// FillEllipse fills an axis aligned ellipse centered at (cx, cy).
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.DrawEllipse(cx, cy, rx, ry)
	c.dc.Fill()
}

// StrokeCircle outlines a circle with the given stroke width.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Stroke()
}

// FillPolygon fills the closed polygon through the given points.
func (c *Canvas) FillPolygon(pts []Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c.dc.SetColor(col)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.Fill()
}

// StrokeLine strokes a straight segment.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.NRGBA) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// StrokePolyline strokes an open polyline through the given points.
func (c *Canvas) StrokePolyline(pts []Point, width float64, col color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.Stroke()
}

// Image snapshots the canvas as a straight-alpha image.
func (c *Canvas) Image() *image.NRGBA {
	return imaging.Clone(c.dc.Image())
}
