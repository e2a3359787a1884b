// Package compose implements the Porter-Duff composition operations and a
// small set of separable blend modes over straight-alpha images.
// The core image/draw package only covers source and source-over-destination;
// the render pipeline needs the remaining operators to combine the
// background and figure layers and to screen the orb glow over its core.
package compose

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/avagen/avagen/utils"
)

// Op identifies a Porter-Duff composition operator.
type Op string

// The supported composition operators.
const (
	Copy    Op = "copy"
	SrcOver Op = "src_over"
	DstOver Op = "dst_over"
	SrcIn   Op = "src_in"
	DstOut  Op = "dst_out"
	Xor     Op = "xor"
)

var supportedOps = []Op{Copy, SrcOver, DstOver, SrcIn, DstOut, Xor}

// Compositor combines a source layer with its backdrop using the active
// composition operator and, optionally, a separable blend mode.
type Compositor struct {
	op   Op
	mode Mode
}

// New returns a compositor for the given operator.
// An unsupported operator falls back to source-over.
func New(op Op) *Compositor {
	c := &Compositor{op: SrcOver}
	if utils.Contains(supportedOps, op) {
		c.op = op
	}
	return c
}

// Op returns the active composition operator.
func (c *Compositor) Op() Op {
	return c.op
}

// SetBlend activates a separable blend mode applied to the source colors
// before composition. An unsupported mode is rejected.
func (c *Compositor) SetBlend(mode Mode) error {
	if !utils.Contains(supportedModes, mode) {
		return errors.Errorf("blend mode %q is not supported", mode)
	}
	c.mode = mode
	return nil
}

// Compose combines the source layer with the backdrop and returns the
// result as a new image. Both layers must share the same dimensions; the
// inputs are left untouched.
func (c *Compositor) Compose(src, dst *image.NRGBA) *image.NRGBA {
	bounds := dst.Bounds()
	out := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			d := dst.NRGBAAt(x, y)

			rs, gs, bs, as := normalize(s)
			rd, gd, bd, ad := normalize(d)

			if c.mode != "" {
				rs = blendChannel(c.mode, rd, rs)
				gs = blendChannel(c.mode, gd, gs)
				bs = blendChannel(c.mode, bd, bs)
			}

			var cr, cg, cb, ca float64
			switch c.op {
			case Copy:
				cr, cg, cb, ca = rs, gs, bs, as
			case SrcOver:
				ca = as + ad*(1-as)
				cr = unpremul(rs*as+rd*ad*(1-as), ca)
				cg = unpremul(gs*as+gd*ad*(1-as), ca)
				cb = unpremul(bs*as+bd*ad*(1-as), ca)
			case DstOver:
				ca = ad + as*(1-ad)
				cr = unpremul(rd*ad+rs*as*(1-ad), ca)
				cg = unpremul(gd*ad+gs*as*(1-ad), ca)
				cb = unpremul(bd*ad+bs*as*(1-ad), ca)
			case SrcIn:
				ca = as * ad
				cr, cg, cb = rs, gs, bs
			case DstOut:
				ca = ad * (1 - as)
				cr, cg, cb = rd, gd, bd
			case Xor:
				ca = as*(1-ad) + ad*(1-as)
				cr = unpremul(rs*as*(1-ad)+rd*ad*(1-as), ca)
				cg = unpremul(gs*as*(1-ad)+gd*ad*(1-as), ca)
				cb = unpremul(bs*as*(1-ad)+bd*ad*(1-as), ca)
			}

			out.SetNRGBA(x, y, color.NRGBA{
				R: denormalize(cr),
				G: denormalize(cg),
				B: denormalize(cb),
				A: denormalize(ca),
			})
		}
	}
	return out
}

func normalize(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

func denormalize(v float64) uint8 {
	return uint8(utils.Clamp(int(v*255+0.5), 0, 255))
}

// unpremul converts a premultiplied channel back to its straight value.
func unpremul(c, a float64) float64 {
	if a == 0 {
		return 0
	}
	return c / a
}
