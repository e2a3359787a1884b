package avagen

import "image/color"

var eyeHighlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 0xff}

type eyeFn func(c *Canvas, leftX, rightX, y float64, eye, highlight color.NRGBA)

// eyeStyles is the closed dispatch table of the eye pair generators.
// An index without an entry falls back to round eyes.
var eyeStyles = map[int]eyeFn{
	0: drawEyesRound,
	1: drawEyesAlmond,
	2: drawEyesWide,
	3: drawEyesFocused,
	4: drawEyesArtistic,
}

// drawEyes paints the left/right eye pair symmetrically around the fixed
// eye line.
func drawEyes(c *Canvas, pal *Palette, style int) {
	center := c.Center()
	eyeY := center * 0.85
	eyeDistance := float64(c.size) * 0.15

	fn, ok := eyeStyles[style]
	if !ok {
		fn = drawEyesRound
	}
	fn(c, center-eyeDistance, center+eyeDistance, eyeY, pal.Dark, eyeHighlightColor)
}

func drawEyesRound(c *Canvas, leftX, rightX, y float64, eye, highlight color.NRGBA) {
	c.FillCircle(leftX, y, 12, eye)
	c.FillCircle(rightX, y, 12, eye)

	c.FillCircle(leftX, y-6, 4, highlight)
	c.FillCircle(rightX, y-6, 4, highlight)
}

func drawEyesAlmond(c *Canvas, leftX, rightX, y float64, eye, highlight color.NRGBA) {
	almond := func(x float64) []Point {
		return []Point{
			{X: x - 15, Y: y}, {X: x - 5, Y: y - 8}, {X: x + 5, Y: y - 8},
			{X: x + 15, Y: y}, {X: x + 5, Y: y + 8}, {X: x - 5, Y: y + 8},
		}
	}
	c.FillPolygon(almond(leftX), eye)
	c.FillPolygon(almond(rightX), eye)

	c.FillEllipse(leftX, y-3.5, 3, 1.5, highlight)
	c.FillEllipse(rightX, y-3.5, 3, 1.5, highlight)
}

func drawEyesWide(c *Canvas, leftX, rightX, y float64, eye, highlight color.NRGBA) {
	c.FillEllipse(leftX, y, 20, 8, eye)
	c.FillEllipse(rightX, y, 20, 8, eye)

	c.FillEllipse(leftX, y-1, 6, 3, highlight)
	c.FillEllipse(rightX, y-1, 6, 3, highlight)
}

func drawEyesFocused(c *Canvas, leftX, rightX, y float64, eye, highlight color.NRGBA) {
	left := []Point{
		{X: leftX - 12, Y: y - 5}, {X: leftX + 12, Y: y - 8},
		{X: leftX + 12, Y: y + 8}, {X: leftX - 12, Y: y + 5},
	}
	right := []Point{
		{X: rightX - 12, Y: y - 8}, {X: rightX + 12, Y: y - 5},
		{X: rightX + 12, Y: y + 5}, {X: rightX - 12, Y: y + 8},
	}
	c.FillPolygon(left, eye)
	c.FillPolygon(right, eye)

	c.FillEllipse(leftX, y-2, 2, 1, highlight)
	c.FillEllipse(rightX, y-2, 2, 1, highlight)
}

// drawEyesArtistic pairs a teardrop left eye with an angular right one.
func drawEyesArtistic(c *Canvas, leftX, rightX, y float64, eye, highlight color.NRGBA) {
	left := []Point{
		{X: leftX - 10, Y: y}, {X: leftX - 5, Y: y - 12}, {X: leftX + 8, Y: y - 5},
		{X: leftX + 8, Y: y + 5}, {X: leftX - 5, Y: y + 8},
	}
	right := []Point{
		{X: rightX - 8, Y: y - 8}, {X: rightX + 10, Y: y - 6},
		{X: rightX + 12, Y: y + 2}, {X: rightX - 6, Y: y + 8},
	}
	c.FillPolygon(left, eye)
	c.FillPolygon(right, eye)

	c.FillEllipse(leftX+1, y-4, 2, 2, highlight)
	c.FillPolygon([]Point{
		{X: rightX - 2, Y: y - 4}, {X: rightX + 4, Y: y - 3}, {X: rightX + 2, Y: y + 1},
	}, highlight)
}
