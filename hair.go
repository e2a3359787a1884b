package avagen

import (
	"math"
	"math/rand"
)

type hairFn func(c *Canvas, pal *Palette, rng *rand.Rand)

// hairStyles is the closed dispatch table of the procedural hair
// generators. An index without an entry falls back to the classic cut.
var hairStyles = map[int]hairFn{
	0: drawHairClassic,
	1: drawHairPixie,
	2: drawHairBob,
	3: drawHairCurly,
	4: drawHairBraided,
	5: drawHairLong,
	6: drawHairAfro,
	7: drawHairUpdo,
	8: drawHairModern,
}

func drawHair(c *Canvas, pal *Palette, style int, rng *rand.Rand) {
	fn, ok := hairStyles[style]
	if !ok {
		fn = drawHairClassic
	}
	fn(c, pal, rng)
}

func drawHairClassic(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()
	hairRadius := float64(c.size) * 0.4
	c.FillEllipse(center, center*0.4, hairRadius, hairRadius*0.8, pal.Dark)
}

// drawHairPixie scatters short textured tufts within an annulus above the
// face center. It consumes the shared random stream.
func drawHairPixie(c *Canvas, pal *Palette, rng *rand.Rand) {
	center := c.Center()
	size := float64(c.size)

	for i := 0; i < 20; i++ {
		angle := rng.Float64() * 2 * math.Pi
		distance := size*0.25 + rng.Float64()*(size*0.35-size*0.25)
		x := center + distance*math.Cos(angle)
		y := center*0.6 + distance*math.Sin(angle)*0.7

		radius := 8 + rng.Float64()*7
		c.FillCircle(x, y, radius, pal.Dark)
	}
}

func drawHairBob(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()
	size := float64(c.size)

	pts := make([]Point, 0, 9)
	for i := -4; i <= 4; i++ {
		angle := math.Pi * float64(i) / 8
		radius := size * 0.38
		pts = append(pts, Point{
			X: center + radius*math.Cos(angle+math.Pi/2),
			Y: center*0.5 + radius*math.Sin(angle+math.Pi/2)*0.8,
		})
	}
	c.FillPolygon(pts, pal.Dark)

	for i := 0; i < 3; i++ {
		x := center - size*0.2 + float64(i)*size*0.2
		c.FillEllipse(x, center*0.4, 10, 5, pal.Highlight)
	}
}

func drawHairCurly(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()
	size := float64(c.size)

	curls := []Point{
		{X: center - size*0.25, Y: center * 0.4},
		{X: center + size*0.25, Y: center * 0.4},
		{X: center - size*0.15, Y: center * 0.3},
		{X: center + size*0.15, Y: center * 0.3},
		{X: center, Y: center * 0.25},
	}

	for _, curl := range curls {
		for _, radius := range []float64{25, 20, 15} {
			alpha := 255 - (25-int(radius))*8
			c.FillCircle(curl.X, curl.Y, radius, withAlpha(pal.Dark, uint8(alpha)))
		}
	}
}

func drawHairBraided(c *Canvas, pal *Palette, rng *rand.Rand) {
	drawHairClassic(c, pal, rng)

	center := c.Center()
	for i := 0; i < 3; i++ {
		y := center*0.5 + float64(i)*20
		x1 := center - 30 + float64(i%2)*20
		x2 := center + 30 - float64(i%2)*20
		c.StrokeLine(x1, y, x2, y, 3, pal.Highlight)
	}
}

// drawHairLong paints an extended hair polygon, longer in front, with wavy
// highlight strands flowing over it.
func drawHairLong(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()
	size := float64(c.size)

	pts := make([]Point, 0, 13)
	for i := -6; i <= 6; i++ {
		angle := math.Pi * float64(i) / 12
		radius := size * 0.35
		if math.Abs(angle) < math.Pi/3 {
			radius = size * 0.45
		}
		pts = append(pts, Point{
			X: center + radius*math.Cos(angle+math.Pi/2),
			Y: center*0.3 + radius*math.Sin(angle+math.Pi/2)*1.2,
		})
	}
	c.FillPolygon(pts, pal.Dark)

	for i := 0; i < 5; i++ {
		waveY := center*0.7 + float64(i)*15
		wave := make([]Point, 0, 10)
		for j := 0; j < 10; j++ {
			wave = append(wave, Point{
				X: center - size*0.3 + float64(j)*size*0.06,
				Y: waveY + 10*math.Sin(float64(j)*0.5+float64(i)),
			})
		}
		c.StrokePolyline(wave, 2, pal.Highlight)
	}
}

// drawHairAfro scatters overlapping circles across a disc above the face.
// It consumes the shared random stream.
func drawHairAfro(c *Canvas, pal *Palette, rng *rand.Rand) {
	center := c.Center()
	size := float64(c.size)
	afroRadius := size * 0.45

	for i := 0; i < 50; i++ {
		angle := rng.Float64() * 2 * math.Pi
		distance := rng.Float64() * afroRadius
		x := center + distance*math.Cos(angle)
		y := center*0.5 + distance*math.Sin(angle)*0.9

		radius := 12 + rng.Float64()*13
		c.FillCircle(x, y, radius, pal.Dark)
	}
}

func drawHairUpdo(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()
	size := float64(c.size)
	updoCenterY := center * 0.35

	c.FillEllipse(center, updoCenterY, size*0.25, size*0.15, pal.Dark)

	for i := 0; i < 3; i++ {
		x := center - 20 + float64(i)*20
		c.FillCircle(x, updoCenterY, 3, pal.Accent)
	}
}

func drawHairModern(c *Canvas, pal *Palette, _ *rand.Rand) {
	center := c.Center()
	size := float64(c.size)

	left := []Point{
		{X: center - size*0.4, Y: center * 0.6},
		{X: center - size*0.2, Y: center * 0.3},
		{X: center, Y: center * 0.25},
		{X: center - size*0.3, Y: center * 0.8},
	}
	right := []Point{
		{X: center, Y: center * 0.25},
		{X: center + size*0.3, Y: center * 0.3},
		{X: center + size*0.35, Y: center * 0.7},
		{X: center + size*0.2, Y: center * 0.8},
	}
	c.FillPolygon(left, pal.Dark)
	c.FillPolygon(right, pal.Dark)

	highlight := []Point{
		{X: center - size*0.1, Y: center * 0.3},
		{X: center + size*0.1, Y: center * 0.25},
		{X: center + size*0.15, Y: center * 0.4},
		{X: center - size*0.05, Y: center * 0.45},
	}
	c.FillPolygon(highlight, pal.Highlight)
}
