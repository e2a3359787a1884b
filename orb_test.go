package avagen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMoodGradients(t *testing.T) {
	if len(MoodGradients) != 10 {
		t.Fatalf("Expected 10 mood gradients. Got %d", len(MoodGradients))
	}

	for mood, gradient := range MoodGradients {
		for _, hex := range gradient {
			if _, err := ParseHexColor(hex); err != nil {
				t.Errorf("Mood %q holds an unparseable gradient color %q: %v", mood, hex, err)
			}
		}
	}
}

func TestRenderMoodOrb_Determinism(t *testing.T) {
	opt := DefaultOrbOptions()
	opt.Size = 96

	a, err := RenderMoodOrb("focused", opt)
	if err != nil {
		t.Fatalf("RenderMoodOrb returned error: %v", err)
	}
	b, err := RenderMoodOrb("focused", opt)
	if err != nil {
		t.Fatalf("RenderMoodOrb returned error: %v", err)
	}

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Two orbs with the same options expected to be byte identical")
	}

	opt.Seed = 7
	c, err := RenderMoodOrb("focused", opt)
	if err != nil {
		t.Fatalf("RenderMoodOrb returned error: %v", err)
	}
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("Different seeds expected to scatter the mist differently")
	}
}

func TestRenderMoodOrb_UnknownMoodFallback(t *testing.T) {
	opt := DefaultOrbOptions()
	opt.Size = 96

	calm, err := RenderMoodOrb("calm", opt)
	if err != nil {
		t.Fatalf("RenderMoodOrb returned error: %v", err)
	}
	fallback, err := RenderMoodOrb("wistful", opt)
	if err != nil {
		t.Fatalf("RenderMoodOrb returned error: %v", err)
	}

	if !bytes.Equal(calm.Pix, fallback.Pix) {
		t.Error("Unknown mood expected to render the calm gradient")
	}
}

func TestWriteLauncherSet(t *testing.T) {
	opt := DefaultOrbOptions()
	opt.Size = 96
	orb, err := RenderMoodOrb("playful", opt)
	if err != nil {
		t.Fatalf("RenderMoodOrb returned error: %v", err)
	}

	resDir := filepath.Join(t.TempDir(), "res")
	files, err := WriteLauncherSet(resDir, orb)
	if err != nil {
		t.Fatalf("WriteLauncherSet returned error: %v", err)
	}
	if len(files) != len(DensitySizes) {
		t.Fatalf("Expected %d launcher icons. Got %d", len(DensitySizes), len(files))
	}

	for _, bucket := range DensityBuckets() {
		path := filepath.Join(resDir, bucket, "ic_launcher.png")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s to be written: %v", path, err)
		}
	}
}

func TestDensityBuckets(t *testing.T) {
	buckets := DensityBuckets()
	if len(buckets) != len(DensitySizes) {
		t.Fatalf("Expected %d buckets. Got %d", len(DensitySizes), len(buckets))
	}

	// Ascending icon size keeps the emission order stable.
	prev := 0
	for _, bucket := range buckets {
		size, ok := DensitySizes[bucket]
		if !ok {
			t.Errorf("Bucket %q missing from the density size table", bucket)
			continue
		}
		if size <= prev {
			t.Errorf("Bucket %q out of order: %d after %d", bucket, size, prev)
		}
		prev = size
	}
}
