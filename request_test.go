package avagen

import (
	"strings"
	"testing"
)

func TestDefaultRequest(t *testing.T) {
	req := DefaultRequest()

	if req.Size != BaseSize {
		t.Errorf("Default size expected to be %d. Got %d", BaseSize, req.Size)
	}
	if req.Style != StylePortrait {
		t.Errorf("Default style expected to be %q. Got %q", StylePortrait, req.Style)
	}
	if req.PrimaryColor != "#8b5cf6" || req.SecondaryColor != "#f59e0b" {
		t.Errorf("Unexpected default colors: %q, %q", req.PrimaryColor, req.SecondaryColor)
	}
	if req.Mood != MoodConfident || req.Season != SeasonSummer {
		t.Errorf("Unexpected default mood/season: %q, %q", req.Mood, req.Season)
	}
	if req.HairStyle != 2 || req.EyeStyle != 1 {
		t.Errorf("Unexpected default styles: %d, %d", req.HairStyle, req.EyeStyle)
	}
	if len(req.Accessories) != 0 {
		t.Errorf("Default accessories expected to be empty. Got %v", req.Accessories)
	}
	if req.Seed != 42 {
		t.Errorf("Default seed expected to be 42. Got %d", req.Seed)
	}
}

func TestFilterOptions(t *testing.T) {
	req := FilterOptions(map[string]any{
		"style":       "abstract",
		"mood":        "creative",
		"hair_style":  float64(6),
		"eye_style":   4,
		"accessories": []any{"glasses", "necklace"},
		"seed":        float64(99),
		// Foreign keys must be ignored, not rejected.
		"name":       "aurora",
		"dpi":        480,
		"extensions": []any{"webp"},
	})

	if req.Style != StyleAbstract {
		t.Errorf("Style expected to be %q. Got %q", StyleAbstract, req.Style)
	}
	if req.Mood != MoodCreative {
		t.Errorf("Mood expected to be %q. Got %q", MoodCreative, req.Mood)
	}
	if req.HairStyle != 6 || req.EyeStyle != 4 {
		t.Errorf("Hair/eye style expected to be 6/4. Got %d/%d", req.HairStyle, req.EyeStyle)
	}
	if req.Seed != 99 {
		t.Errorf("Seed expected to be 99. Got %d", req.Seed)
	}
	if !req.HasAccessory(AccessoryGlasses) || !req.HasAccessory(AccessoryNecklace) {
		t.Errorf("Accessories expected to hold glasses and necklace. Got %v", req.Accessories)
	}
	if req.HasAccessory(AccessoryEarrings) {
		t.Error("Earrings were not requested")
	}

	// Untouched options keep their defaults.
	if req.PrimaryColor != "#8b5cf6" || req.Season != SeasonSummer {
		t.Errorf("Unset options expected to keep defaults. Got %q, %q", req.PrimaryColor, req.Season)
	}
}

func TestLoadPresets(t *testing.T) {
	payload := `[
		{"name": "aurora", "mood": "calm", "unrelated_key": true},
		{"style": "geometric", "hair_style": 8}
	]`

	presets, err := LoadPresets(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("LoadPresets returned error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets. Got %d", len(presets))
	}

	if presets[0].Name != "aurora" {
		t.Errorf("First preset name expected to be aurora. Got %q", presets[0].Name)
	}
	if presets[0].Mood != MoodCalm {
		t.Errorf("First preset mood expected to be %q. Got %q", MoodCalm, presets[0].Mood)
	}

	if presets[1].Name != "icon_2" {
		t.Errorf("Unnamed preset expected a positional name. Got %q", presets[1].Name)
	}
	if presets[1].Style != StyleGeometric || presets[1].HairStyle != 8 {
		t.Errorf("Second preset expected geometric/8. Got %q/%d", presets[1].Style, presets[1].HairStyle)
	}
	if presets[1].Seed != 42 {
		t.Errorf("Second preset seed expected to keep the default. Got %d", presets[1].Seed)
	}
}

func TestLoadPresets_Malformed(t *testing.T) {
	if _, err := LoadPresets(strings.NewReader(`{"not": "a list"}`)); err == nil {
		t.Error("LoadPresets expected to fail on a non-list payload")
	}
}

func TestBuiltinPresets(t *testing.T) {
	presets := BuiltinPresets()
	if len(presets) != 5 {
		t.Fatalf("Expected 5 built-in presets. Got %d", len(presets))
	}

	seen := map[string]bool{}
	for _, p := range presets {
		if p.Name == "" {
			t.Error("Built-in preset with empty name")
		}
		if seen[p.Name] {
			t.Errorf("Duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true

		if _, err := DerivePalette(p.PrimaryColor, p.SecondaryColor, p.Season); err != nil {
			t.Errorf("Preset %q holds unparseable colors: %v", p.Name, err)
		}
	}
}
