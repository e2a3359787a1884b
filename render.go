package avagen

import (
	"image"
	"math/rand"

	"github.com/avagen/avagen/compose"
)

// RenderedIcon is the outcome of one render call: the finished base image
// plus the two layers it was composited from. The layers are emitted as the
// adaptive-icon foreground and background drawables.
type RenderedIcon struct {
	Base       *image.NRGBA
	Foreground *image.NRGBA
	Background *image.NRGBA
}

// Render runs the full compositor pipeline for one request: palette
// derivation, the ordered layer table and the style/mood post-processing.
// The layers are painted back to front: background, face, hair, eyes,
// mouth, accessories, seasonal decoration. The figure layers are drawn on
// their own canvas and composited source-over onto the background layer,
// which yields the adaptive-icon drawables from the same render.
//
// Rendering is deterministic: the request seeds a private random stream
// which the randomized routines consume in layer order, so identical
// requests produce byte identical images.
func Render(req RenderRequest) (*RenderedIcon, error) {
	if req.Size <= 0 {
		req.Size = BaseSize
	}

	pal, err := DerivePalette(req.PrimaryColor, req.SecondaryColor, req.Season)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(req.Seed))

	background := NewCanvas(req.Size)
	drawBackground(background, pal, req.Style, rng)

	figure := NewCanvas(req.Size)
	drawFace(figure, pal, req.Mood)
	drawHair(figure, pal, req.HairStyle, rng)
	drawEyes(figure, pal, req.EyeStyle)
	drawMouth(figure, pal, req.Mood)
	drawAccessories(figure, pal, req.Accessories)
	drawSeason(figure, pal, req.Season)

	bgImg := background.Image()
	fgImg := figure.Image()

	base := compose.New(compose.SrcOver).Compose(fgImg, bgImg)
	base = ApplyEffects(base, req.Style, req.Mood)

	return &RenderedIcon{
		Base:       base,
		Foreground: fgImg,
		Background: bgImg,
	}, nil
}
