package avagen

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// BaseSize is the side length of the base render every other size is
// resampled from.
const BaseSize = 512

// IconSizes are the emitted icon side lengths, matching the Android
// launcher densities plus the store size.
var IconSizes = []int{48, 72, 96, 144, 192, 512}

// IconSet maps a target pixel size to its finished image. The entry
// matching the base size is the untouched base render; every other entry
// is one direct Lanczos resample of it, never a chain, so all sizes stay
// visually consistent.
type IconSet map[int]*image.NRGBA

// NewIconSet derives the icon set from a single base render.
func NewIconSet(base *image.NRGBA) IconSet {
	set := make(IconSet, len(IconSizes))
	baseSize := base.Bounds().Dx()

	for _, size := range IconSizes {
		if size == baseSize {
			set[size] = base
			continue
		}
		set[size] = imaging.Resize(base, size, size, imaging.Lanczos)
	}
	return set
}

// Emitter writes finished renders into the output directory.
type Emitter struct {
	OutputDir string
}

// NewEmitter creates the output directory if absent and returns the
// emitter bound to it. Failures are reported as ResourceErrors.
func NewEmitter(dir string) (*Emitter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &ResourceError{
			Path: dir,
			Err:  errors.Wrap(err, "unable to create the output directory"),
		}
	}
	return &Emitter{OutputDir: dir}, nil
}

// Emit writes the complete asset family of one finished render: the icon
// set at every target size, the adaptive-icon foreground and background
// drawables at base resolution and the adaptive-icon manifest. The render
// already succeeded in memory, so a failure here never leaves a corrupt
// canvas behind, only fewer files. The written paths are returned.
func (e *Emitter) Emit(name string, icon *RenderedIcon) ([]string, error) {
	var written []string

	set := NewIconSet(icon.Base)
	for _, size := range IconSizes {
		fname := filepath.Join(e.OutputDir, fmt.Sprintf("%s_%dx%d.png", name, size, size))
		if err := e.save(set[size], fname); err != nil {
			return written, err
		}
		written = append(written, fname)
	}

	foreground := filepath.Join(e.OutputDir, fmt.Sprintf("%s_foreground.png", name))
	if err := e.save(icon.Foreground, foreground); err != nil {
		return written, err
	}
	written = append(written, foreground)

	background := filepath.Join(e.OutputDir, fmt.Sprintf("%s_background.png", name))
	if err := e.save(icon.Background, background); err != nil {
		return written, err
	}
	written = append(written, background)

	manifest := filepath.Join(e.OutputDir, fmt.Sprintf("ic_launcher_%s.xml", name))
	if err := os.WriteFile(manifest, []byte(AdaptiveIconXML(name)), 0644); err != nil {
		return written, &ResourceError{
			Path: manifest,
			Err:  errors.Wrap(err, "unable to write the adaptive-icon manifest"),
		}
	}
	written = append(written, manifest)

	return written, nil
}

func (e *Emitter) save(img *image.NRGBA, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return &ResourceError{
			Path: path,
			Err:  errors.Wrap(err, "unable to save the image"),
		}
	}
	return nil
}

// AdaptiveIconXML renders the adaptive-icon manifest referencing the
// foreground and background drawables emitted next to the icon set.
func AdaptiveIconXML(name string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<adaptive-icon xmlns:android="http://schemas.android.com/apk/res/android">
    <background android:drawable="@drawable/%s_background"/>
    <foreground android:drawable="@drawable/%s_foreground"/>
</adaptive-icon>
`, name, name)
}
