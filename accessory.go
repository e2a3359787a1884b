package avagen

import "github.com/avagen/avagen/utils"

// drawAccessories paints each requested accessory. They are independent and
// any combination may be layered on top of the face.
func drawAccessories(c *Canvas, pal *Palette, accessories []Accessory) {
	if utils.Contains(accessories, AccessoryGlasses) {
		drawGlasses(c, pal)
	}
	if utils.Contains(accessories, AccessoryEarrings) {
		drawEarrings(c, pal)
	}
	if utils.Contains(accessories, AccessoryNecklace) {
		drawNecklace(c, pal)
	}
}

// drawGlasses outlines a lens over each eye joined by a bridge line.
func drawGlasses(c *Canvas, pal *Palette) {
	center := c.Center()
	eyeY := center * 0.85
	eyeDistance := float64(c.size) * 0.15
	const radius = 18

	c.StrokeCircle(center-eyeDistance, eyeY, radius, 3, pal.Dark)
	c.StrokeCircle(center+eyeDistance, eyeY, radius, 3, pal.Dark)

	c.StrokeLine(center-eyeDistance+radius, eyeY, center+eyeDistance-radius, eyeY, 2, pal.Dark)
}

func drawEarrings(c *Canvas, pal *Palette) {
	center := c.Center()
	earY := center
	earDistance := float64(c.size) * 0.25

	c.FillCircle(center-earDistance, earY, 4, pal.Accent)
	c.FillCircle(center+earDistance, earY, 4, pal.Accent)
}

// drawNecklace paints a slightly curved chain of dots with a pendant below
// its midpoint.
func drawNecklace(c *Canvas, pal *Palette) {
	center := c.Center()
	necklaceY := center * 1.45

	for i := -5; i <= 5; i++ {
		x := center + float64(i)*8
		y := necklaceY + float64(utils.Abs(i))*2
		c.FillCircle(x, y, 2, pal.Accent)
	}

	c.FillCircle(center, necklaceY+10, 6, pal.Accent)
}
