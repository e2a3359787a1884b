package avagen

// faceAdjust shifts and scales the face ellipse for one mood.
type faceAdjust struct {
	scale   float64
	yOffset float64
}

// faceAdjustments is a total lookup: moods without an entry use the
// neutral adjustment.
var faceAdjustments = map[Mood]faceAdjust{
	MoodConfident:  {scale: 1.05, yOffset: -5},
	MoodCalm:       {scale: 0.95, yOffset: 0},
	MoodFocused:    {scale: 1.0, yOffset: -3},
	MoodCreative:   {scale: 1.03, yOffset: -2},
	MoodDetermined: {scale: 1.08, yOffset: -8},
}

// drawFace paints a soft gradient falloff ring followed by the solid face
// ellipse, sized and shifted by the mood adjustment.
func drawFace(c *Canvas, pal *Palette, mood Mood) {
	center := c.Center()
	faceRadius := float64(c.size) * 0.35

	adj, ok := faceAdjustments[mood]
	if !ok {
		adj = faceAdjust{scale: 1.0, yOffset: 0}
	}
	adjustedRadius := faceRadius * adj.scale
	yCenter := center + adj.yOffset

	for i := int(adjustedRadius); i > 0; i -= 2 {
		alpha := int(255 * (1 - float64(i)/adjustedRadius) * 0.3)
		c.FillCircle(center, yCenter, float64(i), withAlpha(pal.Light, uint8(255-alpha)))
	}

	c.FillCircle(center, yCenter, adjustedRadius, pal.Primary)
}
