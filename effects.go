package avagen

import (
	"image"

	"github.com/disintegration/imaging"
)

// ApplyEffects runs the style conditioned filter followed by the mood
// conditioned one over the composited canvas. Both may apply; unrecognized
// tags are no-ops, never errors.
func ApplyEffects(img *image.NRGBA, style Style, mood Mood) *image.NRGBA {
	switch style {
	case StyleGeometric:
		img = imaging.Sharpen(img, 1.0)
	case StyleAbstract:
		img = imaging.Blur(img, 0.5)
	case StyleArtistic:
		img = imaging.AdjustContrast(img, 20)
	}

	switch mood {
	case MoodCreative:
		img = imaging.AdjustSaturation(img, 15)
	case MoodCalm:
		img = imaging.AdjustSaturation(img, -10)
	}

	return img
}
