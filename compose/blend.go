package compose

// Mode identifies a separable blend mode applied between the backdrop and
// the source colors before composition.
type Mode string

// The supported blend modes.
const (
	Darken   Mode = "darken"
	Lighten  Mode = "lighten"
	Multiply Mode = "multiply"
	Screen   Mode = "screen"
	Overlay  Mode = "overlay"
)

var supportedModes = []Mode{Darken, Lighten, Multiply, Screen, Overlay}

// blendChannel mixes one normalized backdrop and source channel pair.
func blendChannel(mode Mode, cb, cs float64) float64 {
	switch mode {
	case Darken:
		if cb < cs {
			return cb
		}
		return cs
	case Lighten:
		if cb > cs {
			return cb
		}
		return cs
	case Multiply:
		return cb * cs
	case Screen:
		return 1 - (1-cb)*(1-cs)
	case Overlay:
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	}
	return cs
}
