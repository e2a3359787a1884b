package avagen

// mouthPoints returns the mood specific control points of the mouth,
// positioned relative to the canvas center and the mouth line.
// Unknown moods fall back to the confident shape.
func mouthPoints(mood Mood, center, mouthY float64) []Point {
	shapes := map[Mood][]Point{
		MoodConfident: {
			{X: center - 15, Y: mouthY}, {X: center, Y: mouthY + 8}, {X: center + 15, Y: mouthY},
		},
		MoodCalm: {
			{X: center - 12, Y: mouthY}, {X: center, Y: mouthY + 4}, {X: center + 12, Y: mouthY},
		},
		MoodFocused: {
			{X: center - 10, Y: mouthY}, {X: center + 10, Y: mouthY},
		},
		MoodCreative: {
			{X: center - 20, Y: mouthY}, {X: center - 5, Y: mouthY + 10},
			{X: center + 5, Y: mouthY - 2}, {X: center + 20, Y: mouthY + 5},
		},
		MoodDetermined: {
			{X: center - 18, Y: mouthY - 2}, {X: center, Y: mouthY + 6}, {X: center + 18, Y: mouthY - 2},
		},
	}

	if pts, ok := shapes[mood]; ok {
		return pts
	}
	return shapes[MoodConfident]
}

// drawMouth paints the mood conditioned mouth: two control points are a
// stroked straight line, more form a filled polygon through the points.
func drawMouth(c *Canvas, pal *Palette, mood Mood) {
	center := c.Center()
	mouthY := center * 1.2

	pts := mouthPoints(mood, center, mouthY)
	if len(pts) == 2 {
		c.StrokeLine(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, 3, pal.Accent)
		return
	}
	c.FillPolygon(pts, pal.Accent)
}
