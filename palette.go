package avagen

import (
	"encoding/hex"
	"image/color"
	"strings"

	"github.com/pkg/errors"

	"github.com/avagen/avagen/utils"
)

// Palette is the named color set every drawing routine of one render works
// with. It is a pure function of the two input colors and the season and is
// derived once per render request.
type Palette struct {
	Primary    color.NRGBA
	Secondary  color.NRGBA
	Accent     color.NRGBA
	Light      color.NRGBA
	Dark       color.NRGBA
	Highlight  color.NRGBA
	Shadow     color.NRGBA
	Background color.NRGBA
}

// seasonBrightness maps a season to the brightness factor applied on the
// light tone. Unrecognized seasons resolve to the neutral factor.
var seasonBrightness = map[Season]float64{
	SeasonSpring: 1.1,
	SeasonSummer: 1.2,
	SeasonAutumn: 0.9,
	SeasonWinter: 0.85,
}

// DerivePalette derives the full color set from the primary and secondary
// hex colors adjusted by the seasonal brightness. A malformed hex string is
// reported as a ParseError.
func DerivePalette(primary, secondary string, season Season) (*Palette, error) {
	p, err := ParseHexColor(primary)
	if err != nil {
		return nil, err
	}
	s, err := ParseHexColor(secondary)
	if err != nil {
		return nil, err
	}

	brightness, ok := seasonBrightness[season]
	if !ok {
		brightness = 1.0
	}

	return &Palette{
		Primary:    p,
		Secondary:  s,
		Accent:     BlendColors(p, s, 0.3),
		Light:      ScaleColor(p, brightness),
		Dark:       ScaleColor(p, 0.7),
		Highlight:  ScaleColor(s, 1.3),
		Shadow:     color.NRGBA{R: 50, G: 50, B: 50, A: 0xff},
		Background: color.NRGBA{R: 240, G: 240, B: 245, A: 0xff},
	}, nil
}

// Colors returns the palette as a mapping from the semantic key to its color.
func (p *Palette) Colors() map[string]color.NRGBA {
	return map[string]color.NRGBA{
		"primary":    p.Primary,
		"secondary":  p.Secondary,
		"accent":     p.Accent,
		"light":      p.Light,
		"dark":       p.Dark,
		"highlight":  p.Highlight,
		"shadow":     p.Shadow,
		"background": p.Background,
	}
}

// ParseHexColor converts a six digit hex string, with or without the leading
// number sign, to an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 {
		return color.NRGBA{}, &ParseError{
			Input: s,
			Err:   errors.New("expected exactly six hex digits"),
		}
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, &ParseError{
			Input: s,
			Err:   errors.Wrap(err, "invalid hex digits"),
		}
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
}

// BlendColors linearly interpolates two colors channel-wise.
// A ratio of 0 returns the first color, a ratio of 1 the second one.
func BlendColors(a, b color.NRGBA, ratio float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, ratio),
		G: lerpChannel(a.G, b.G, ratio),
		B: lerpChannel(a.B, b.B, ratio),
		A: 0xff,
	}
}

// ScaleColor multiplies each channel by the given factor,
// clamping the result to the valid channel range.
func ScaleColor(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
		A: 0xff,
	}
}

func lerpChannel(a, b uint8, ratio float64) uint8 {
	return uint8(utils.Clamp(int(float64(a)*(1-ratio)+float64(b)*ratio), 0, 255))
}

func scaleChannel(c uint8, factor float64) uint8 {
	return uint8(utils.Clamp(int(float64(c)*factor), 0, 255))
}

// withAlpha replaces the alpha channel of an otherwise opaque palette color.
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
