package avagen

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Preset is a named render request, the unit of batch generation.
type Preset struct {
	Name string
	RenderRequest
}

// LoadPresets decodes a JSON preset list. Every entry starts from the
// default request; only the recognized option keys are applied and
// anything else is ignored, so foreign keys in a shared config file do not
// break generation. Entries without a name get a positional one.
func LoadPresets(r io.Reader) ([]Preset, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "unable to decode the preset file")
	}

	presets := make([]Preset, 0, len(raw))
	for i, entry := range raw {
		name, _ := entry["name"].(string)
		if name == "" {
			name = fmt.Sprintf("icon_%d", i+1)
		}
		presets = append(presets, Preset{
			Name:          name,
			RenderRequest: FilterOptions(entry),
		})
	}
	return presets, nil
}

// BuiltinPresets returns the default persona set generated when no preset
// file is supplied.
func BuiltinPresets() []Preset {
	aurora := DefaultRequest()
	aurora.Accessories = []Accessory{AccessoryEarrings}

	ember := DefaultRequest()
	ember.Style = StyleArtistic
	ember.PrimaryColor = "#d97706"
	ember.SecondaryColor = "#92400e"
	ember.Mood = MoodDetermined
	ember.Season = SeasonAutumn
	ember.HairStyle = 4
	ember.EyeStyle = 2
	ember.Seed = 123

	midnight := DefaultRequest()
	midnight.Style = StyleMinimal
	midnight.PrimaryColor = "#1f2937"
	midnight.SecondaryColor = "#6366f1"
	midnight.Mood = MoodFocused
	midnight.Season = SeasonWinter
	midnight.HairStyle = 1
	midnight.EyeStyle = 3
	midnight.Accessories = []Accessory{AccessoryGlasses}
	midnight.Seed = 456

	meadow := DefaultRequest()
	meadow.Style = StyleAbstract
	meadow.PrimaryColor = "#059669"
	meadow.SecondaryColor = "#10b981"
	meadow.Mood = MoodCalm
	meadow.Season = SeasonSpring
	meadow.HairStyle = 6
	meadow.EyeStyle = 0
	meadow.Accessories = []Accessory{AccessoryNecklace}
	meadow.Seed = 789

	prism := DefaultRequest()
	prism.Style = StyleGeometric
	prism.PrimaryColor = "#7c3aed"
	prism.SecondaryColor = "#fbbf24"
	prism.Mood = MoodCreative
	prism.HairStyle = 8
	prism.EyeStyle = 4
	prism.Accessories = []Accessory{AccessoryGlasses, AccessoryEarrings}
	prism.Seed = 999

	return []Preset{
		{Name: "aurora", RenderRequest: aurora},
		{Name: "ember", RenderRequest: ember},
		{Name: "midnight", RenderRequest: midnight},
		{Name: "meadow", RenderRequest: meadow},
		{Name: "prism", RenderRequest: prism},
	}
}
