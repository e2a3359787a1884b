package avagen

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// iconProbe builds a synthetic base render with a radial tint so the
// resampled sizes carry recognizable content.
func iconProbe(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / size),
				G: uint8(y * 255 / size),
				B: 120,
				A: 0xff,
			})
		}
	}
	return img
}

func TestNewIconSet(t *testing.T) {
	base := iconProbe(BaseSize)
	set := NewIconSet(base)

	if len(set) != len(IconSizes) {
		t.Fatalf("Icon set expected to hold %d entries. Got %d", len(IconSizes), len(set))
	}

	for _, size := range IconSizes {
		img, ok := set[size]
		if !ok {
			t.Errorf("Icon set expected to hold the %d entry", size)
			continue
		}
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Errorf("Entry %d expected to be square of side %d. Got %v", size, size, img.Bounds())
		}
	}
}

func TestNewIconSet_BaseEntryUntouched(t *testing.T) {
	base := iconProbe(BaseSize)
	set := NewIconSet(base)

	if set[BaseSize] != base {
		t.Error("The base size entry expected to be the untouched base render")
	}
}

func TestNewIconSet_DirectResample(t *testing.T) {
	base := iconProbe(BaseSize)
	set := NewIconSet(base)

	// Every non-base size equals one direct resample of the base,
	// never a resample of another resampled entry.
	for _, size := range IconSizes {
		if size == BaseSize {
			continue
		}
		want := imaging.Resize(base, size, size, imaging.Lanczos)
		if !bytes.Equal(set[size].Pix, want.Pix) {
			t.Errorf("Entry %d expected to be a direct Lanczos resample of the base", size)
		}
	}
}

func TestEmitterEmit(t *testing.T) {
	dir := t.TempDir()
	emitter, err := NewEmitter(filepath.Join(dir, "generated"))
	if err != nil {
		t.Fatalf("NewEmitter returned error: %v", err)
	}

	icon := &RenderedIcon{
		Base:       iconProbe(BaseSize),
		Foreground: iconProbe(BaseSize),
		Background: iconProbe(BaseSize),
	}

	files, err := emitter.Emit("probe", icon)
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}

	// 6 icon sizes + 2 layer drawables + 1 manifest.
	if len(files) != len(IconSizes)+3 {
		t.Errorf("Emit expected to write %d files. Got %d", len(IconSizes)+3, len(files))
	}

	expected := []string{
		"probe_48x48.png", "probe_72x72.png", "probe_96x96.png",
		"probe_144x144.png", "probe_192x192.png", "probe_512x512.png",
		"probe_foreground.png", "probe_background.png", "ic_launcher_probe.xml",
	}
	for _, name := range expected {
		path := filepath.Join(emitter.OutputDir, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestEmitter_IdempotentDirectory(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewEmitter(dir); err != nil {
		t.Fatalf("NewEmitter returned error: %v", err)
	}
	// Creating the emitter again over an existing directory is not an error.
	if _, err := NewEmitter(dir); err != nil {
		t.Fatalf("NewEmitter on an existing directory returned error: %v", err)
	}
}

func TestEmitter_ResourceError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewEmitter(filepath.Join(blocker, "nested"))
	if err == nil {
		t.Fatal("NewEmitter expected to fail below a regular file")
	}
	var rerr *ResourceError
	if !errors.As(err, &rerr) {
		t.Errorf("Expected a ResourceError. Got %T", err)
	}
}

func TestAdaptiveIconXML(t *testing.T) {
	xml := AdaptiveIconXML("aurora")

	for _, want := range []string{
		`<adaptive-icon xmlns:android="http://schemas.android.com/apk/res/android">`,
		`@drawable/aurora_background`,
		`@drawable/aurora_foreground`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("Manifest expected to contain %q:\n%s", want, xml)
		}
	}
}
