package avagen

import (
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/avagen/avagen/compose"
)

// MoodGradients maps an orb mood to its start and end gradient colors.
// Unknown moods fall back to the calm gradient.
var MoodGradients = map[Mood][2]string{
	"calm":        {"#B0E0E6", "#D8BFD8"},
	"focused":     {"#00CED1", "#4682B4"},
	"energized":   {"#FFA500", "#FF4500"},
	"reflective":  {"#9370DB", "#4B0082"},
	"guarded":     {"#556B2F", "#2F4F4F"},
	"celebratory": {"#FFD700", "#FF69B4"},
	"hopeful":     {"#ADFF2F", "#40E0D0"},
	"melancholy":  {"#708090", "#2E2E2E"},
	"playful":     {"#FFB6C1", "#FFE4B5"},
	"resolute":    {"#8B0000", "#00008B"},
}

// DensitySizes maps the Android density buckets to the launcher icon size
// emitted into each.
var DensitySizes = map[string]int{
	"mipmap-mdpi":    48,
	"mipmap-hdpi":    72,
	"mipmap-xhdpi":   96,
	"mipmap-xxhdpi":  144,
	"mipmap-xxxhdpi": 192,
}

// OrbOptions tunes the mood orb render.
type OrbOptions struct {
	Size         int
	GlowStrength float64
	MistDensity  float64
	Seed         int64
}

// DefaultOrbOptions returns the options the launcher orbs are built with.
func DefaultOrbOptions() OrbOptions {
	return OrbOptions{
		Size:         BaseSize,
		GlowStrength: 0.6,
		MistDensity:  0.35,
		Seed:         42,
	}
}

// RenderMoodOrb renders a glowing mist orb for the given mood: a radial
// two-color gradient core, a glow ring layer screen-blended over it and a
// seeded white mist speckle on top. Like the avatar renderer it is
// deterministic for a fixed seed.
func RenderMoodOrb(mood Mood, opt OrbOptions) (*image.NRGBA, error) {
	gradient, ok := MoodGradients[mood]
	if !ok {
		gradient = MoodGradients["calm"]
	}
	start, err := ParseHexColor(gradient[0])
	if err != nil {
		return nil, err
	}
	end, err := ParseHexColor(gradient[1])
	if err != nil {
		return nil, err
	}

	if opt.Size <= 0 {
		opt.Size = BaseSize
	}
	size := opt.Size
	center := float64(size / 2)
	radius := int(float64(size) / 2.2)
	rng := rand.New(rand.NewSource(opt.Seed))

	// Radial gradient core.
	core := NewCanvas(size)
	for r := radius; r > 0; r-- {
		ratio := float64(r) / float64(radius)
		core.FillCircle(center, center, float64(r), BlendColors(end, start, ratio))
	}

	// Glow rings, screened over the core so they brighten it.
	glow := NewCanvas(size)
	for i := 0; i < 4; i++ {
		alpha := int(255 * opt.GlowStrength / float64(i+1))
		r := float64(radius + i*8)
		glow.StrokeCircle(center, center, r, float64(6+i*4), withAlpha(start, uint8(alpha)))
	}

	screen := compose.New(compose.SrcOver)
	if err := screen.SetBlend(compose.Screen); err != nil {
		return nil, err
	}
	orb := screen.Compose(glow.Image(), core.Image())

	// Mist overlay.
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 0xff}
	mist := NewCanvasForImage(orb)
	particles := int(float64(size) * opt.MistDensity)
	for i := 0; i < particles; i++ {
		px := float64(int(rng.Float64() * float64(size)))
		py := float64(int(rng.Float64() * float64(size)))
		alpha := int(255 * rng.Float64() * 0.15)
		mist.FillCircle(px+2, py+2, 2, withAlpha(white, uint8(alpha)))
	}

	return mist.Image(), nil
}

// WriteLauncherSet writes the orb as ic_launcher.png into every density
// bucket under the res directory, each a direct Lanczos resample of the
// given base orb. Density directories are created idempotently.
func WriteLauncherSet(resDir string, orb *image.NRGBA) ([]string, error) {
	var written []string

	for _, bucket := range DensityBuckets() {
		size := DensitySizes[bucket]
		dir := filepath.Join(resDir, bucket)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return written, &ResourceError{
				Path: dir,
				Err:  errors.Wrap(err, "unable to create the density directory"),
			}
		}

		icon := orb
		if orb.Bounds().Dx() != size {
			icon = imaging.Resize(orb, size, size, imaging.Lanczos)
		}

		path := filepath.Join(dir, "ic_launcher.png")
		if err := imaging.Save(icon, path); err != nil {
			return written, &ResourceError{
				Path: path,
				Err:  errors.Wrap(err, "unable to save the launcher icon"),
			}
		}
		written = append(written, path)
	}
	return written, nil
}

// DensityBuckets returns the density directory names in ascending icon
// size order, keeping the emission order stable.
func DensityBuckets() []string {
	return []string{"mipmap-mdpi", "mipmap-hdpi", "mipmap-xhdpi", "mipmap-xxhdpi", "mipmap-xxxhdpi"}
}
