package avagen

import (
	"math"
	"math/rand"

	"github.com/avagen/avagen/utils"
)

type backgroundFn func(c *Canvas, pal *Palette, rng *rand.Rand)

// backgroundStyles dispatches the style tag to its background routine.
// Styles without an entry share the default gradient circle.
var backgroundStyles = map[Style]backgroundFn{
	StyleGeometric: drawGeometricBackground,
	StyleAbstract:  drawAbstractBackground,
}

func drawBackground(c *Canvas, pal *Palette, style Style, rng *rand.Rand) {
	if fn, ok := backgroundStyles[style]; ok {
		fn(c, pal, rng)
		return
	}
	drawGradientBackground(c, pal, rng)
}

// drawGradientBackground paints concentric semi-transparent rings of the
// primary color, fading out towards the center.
func drawGradientBackground(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()
	for i := c.size / 2; i > 0; i -= 5 {
		alpha := int(255 * (1 - float64(i)/center) * 0.1)
		c.FillCircle(center, center, float64(i), withAlpha(pal.Primary, uint8(alpha)))
	}
}

// drawGeometricBackground paints three rings of small hexagons around the
// center at decreasing alpha.
func drawGeometricBackground(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()

	for ring := 0; ring < 3; ring++ {
		radius := center*0.3 + float64(ring)*40
		hexSize := float64(20 - ring*3)
		alpha := utils.Max(20, 80-ring*20)

		for i := 0; i < 6; i++ {
			angle := float64(i) * math.Pi / 3
			x := center + radius*math.Cos(angle)
			y := center + radius*math.Sin(angle)

			pts := make([]Point, 0, 6)
			for j := 0; j < 6; j++ {
				hexAngle := float64(j) * math.Pi / 3
				pts = append(pts, Point{
					X: x + hexSize*math.Cos(hexAngle),
					Y: y + hexSize*math.Sin(hexAngle),
				})
			}
			c.FillPolygon(pts, withAlpha(pal.Accent, uint8(alpha)))
		}
	}
}

// drawAbstractBackground paints five noise-perturbed organic blobs of the
// secondary color. It consumes the shared random stream.
func drawAbstractBackground(c *Canvas, pal *Palette, rng *rand.Rand) {
	center := c.Center()
	const numPoints = 8

	for i := 0; i < 5; i++ {
		baseRadius := center * (0.6 + float64(i)*0.1)

		pts := make([]Point, 0, numPoints)
		for j := 0; j < numPoints; j++ {
			angle := float64(j) / numPoints * 2 * math.Pi
			noise := 0.7 + rng.Float64()*0.6
			radius := baseRadius * noise
			pts = append(pts, Point{
				X: center + radius*math.Cos(angle),
				Y: center + radius*math.Sin(angle),
			})
		}

		alpha := utils.Max(10, 60-i*10)
		c.FillPolygon(pts, withAlpha(pal.Secondary, uint8(alpha)))
	}
}
