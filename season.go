package avagen

import "math"

type seasonFn func(c *Canvas, pal *Palette)

// seasonOverlays dispatches the season tag to its decorative overlay.
// An unrecognized season draws nothing.
var seasonOverlays = map[Season]seasonFn{
	SeasonSpring: drawSpringOverlay,
	SeasonSummer: drawSummerOverlay,
	SeasonAutumn: drawAutumnOverlay,
	SeasonWinter: drawWinterOverlay,
}

func drawSeason(c *Canvas, pal *Palette, season Season) {
	if fn, ok := seasonOverlays[season]; ok {
		fn(c, pal)
	}
}

// drawSpringOverlay paints small five-petal flower clusters in three corners.
func drawSpringOverlay(c *Canvas, pal *Palette) {
	size := float64(c.size)
	positions := []Point{
		{X: size * 0.1, Y: size * 0.1},
		{X: size * 0.9, Y: size * 0.1},
		{X: size * 0.9, Y: size * 0.9},
	}

	const petals = 5
	for _, pos := range positions {
		for i := 0; i < petals; i++ {
			angle := float64(i) / petals * 2 * math.Pi
			px := pos.X + 8*math.Cos(angle)
			py := pos.Y + 8*math.Sin(angle)
			c.FillCircle(px, py, 3, pal.Highlight)
		}
		c.FillCircle(pos.X, pos.Y, 2, pal.Accent)
	}
}

// drawSummerOverlay paints eight short sun rays radiating from the rim.
func drawSummerOverlay(c *Canvas, pal *Palette) {
	center := c.Center()
	size := float64(c.size)

	for i := 0; i < 8; i++ {
		angle := float64(i) / 8 * 2 * math.Pi
		startRadius := size * 0.45
		endRadius := size * 0.48

		x1 := center + startRadius*math.Cos(angle)
		y1 := center + startRadius*math.Sin(angle)
		x2 := center + endRadius*math.Cos(angle)
		y2 := center + endRadius*math.Sin(angle)

		c.StrokeLine(x1, y1, x2, y2, 2, pal.Highlight)
	}
}

// drawAutumnOverlay paints three falling leaf diamonds.
func drawAutumnOverlay(c *Canvas, pal *Palette) {
	size := float64(c.size)
	positions := []Point{
		{X: size * 0.2, Y: size * 0.3},
		{X: size * 0.8, Y: size * 0.7},
		{X: size * 0.1, Y: size * 0.8},
	}

	for _, pos := range positions {
		c.FillPolygon([]Point{
			{X: pos.X, Y: pos.Y - 8},
			{X: pos.X + 6, Y: pos.Y},
			{X: pos.X, Y: pos.Y + 8},
			{X: pos.X - 6, Y: pos.Y},
		}, pal.Secondary)
	}
}

// drawWinterOverlay paints three six-armed snowflake crosses.
func drawWinterOverlay(c *Canvas, pal *Palette) {
	size := float64(c.size)
	positions := []Point{
		{X: size * 0.15, Y: size * 0.2},
		{X: size * 0.85, Y: size * 0.3},
		{X: size * 0.2, Y: size * 0.8},
	}

	for _, pos := range positions {
		c.StrokeLine(pos.X-6, pos.Y, pos.X+6, pos.Y, 2, pal.Highlight)
		c.StrokeLine(pos.X, pos.Y-6, pos.X, pos.Y+6, 2, pal.Highlight)
		c.StrokeLine(pos.X-4, pos.Y-4, pos.X+4, pos.Y+4, 1, pal.Highlight)
		c.StrokeLine(pos.X-4, pos.Y+4, pos.X+4, pos.Y-4, 1, pal.Highlight)
	}
}
