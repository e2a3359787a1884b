package avagen

// Style selects the background treatment and the style conditioned filter.
type Style string

// The recognized render styles. Any other value falls back to the
// gradient-circle background with no style filter.
const (
	StylePortrait  Style = "portrait"
	StyleGeometric Style = "geometric"
	StyleAbstract  Style = "abstract"
	StyleArtistic  Style = "artistic"
	StyleMinimal   Style = "minimal"
)

// Mood conditions the face geometry, the mouth shape and the mood filter.
type Mood string

// The recognized avatar moods.
const (
	MoodConfident  Mood = "confident"
	MoodCalm       Mood = "calm"
	MoodFocused    Mood = "focused"
	MoodCreative   Mood = "creative"
	MoodDetermined Mood = "determined"
)

// Season selects the palette brightness and the decorative overlay.
type Season string

// The recognized seasons. Any other value keeps the neutral palette
// brightness and draws no decoration.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Accessory is an optional overlay drawn on top of the face.
type Accessory string

// The supported accessories. Any combination may be requested.
const (
	AccessoryGlasses  Accessory = "glasses"
	AccessoryEarrings Accessory = "earrings"
	AccessoryNecklace Accessory = "necklace"
)

// RenderRequest holds every parameter of one icon render. It is treated as
// an immutable value: the renderer never mutates it and no state survives
// the render call.
type RenderRequest struct {
	Size           int         `json:"size"`
	Style          Style       `json:"style"`
	PrimaryColor   string      `json:"primary_color"`
	SecondaryColor string      `json:"secondary_color"`
	Mood           Mood        `json:"mood"`
	Season         Season      `json:"season"`
	HairStyle      int         `json:"hair_style"`
	EyeStyle       int         `json:"eye_style"`
	Accessories    []Accessory `json:"accessories"`
	Seed           int64       `json:"seed"`
}

// DefaultRequest returns the request every unspecified option starts from.
func DefaultRequest() RenderRequest {
	return RenderRequest{
		Size:           BaseSize,
		Style:          StylePortrait,
		PrimaryColor:   "#8b5cf6",
		SecondaryColor: "#f59e0b",
		Mood:           MoodConfident,
		Season:         SeasonSummer,
		HairStyle:      2,
		EyeStyle:       1,
		Accessories:    nil,
		Seed:           42,
	}
}

// HasAccessory reports whether the given accessory was requested.
func (r RenderRequest) HasAccessory(a Accessory) bool {
	for _, acc := range r.Accessories {
		if acc == a {
			return true
		}
	}
	return false
}

// FilterOptions builds a request from a generic option map, starting from
// the defaults. Only the recognized option keys are consulted; anything
// else in the map is ignored rather than reported as an error.
func FilterOptions(opts map[string]any) RenderRequest {
	req := DefaultRequest()

	for key, val := range opts {
		switch key {
		case "size":
			if n, ok := toInt(val); ok && n > 0 {
				req.Size = n
			}
		case "style":
			if s, ok := val.(string); ok {
				req.Style = Style(s)
			}
		case "primary_color":
			if s, ok := val.(string); ok {
				req.PrimaryColor = s
			}
		case "secondary_color":
			if s, ok := val.(string); ok {
				req.SecondaryColor = s
			}
		case "mood":
			if s, ok := val.(string); ok {
				req.Mood = Mood(s)
			}
		case "season":
			if s, ok := val.(string); ok {
				req.Season = Season(s)
			}
		case "hair_style":
			if n, ok := toInt(val); ok {
				req.HairStyle = n
			}
		case "eye_style":
			if n, ok := toInt(val); ok {
				req.EyeStyle = n
			}
		case "accessories":
			req.Accessories = toAccessories(val)
		case "seed":
			if n, ok := toInt(val); ok {
				req.Seed = int64(n)
			}
		}
	}
	return req
}

// toInt accepts the numeric types a JSON decoder or a caller may supply.
func toInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toAccessories(val any) []Accessory {
	var out []Accessory
	switch list := val.(type) {
	case []Accessory:
		out = append(out, list...)
	case []string:
		for _, s := range list {
			out = append(out, Accessory(s))
		}
	case []any:
		for _, v := range list {
			if s, ok := v.(string); ok {
				out = append(out, Accessory(s))
			}
		}
	}
	return out
}
