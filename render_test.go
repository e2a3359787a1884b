package avagen

import (
	"bytes"
	"testing"

	"github.com/avagen/avagen/compose"
)

// testRequest keeps the render tests fast while exercising the full layer
// table; the geometry only needs a square canvas, not the full base size.
func testRequest() RenderRequest {
	req := DefaultRequest()
	req.Size = 128
	return req
}

func TestRender_Determinism(t *testing.T) {
	req := testRequest()
	req.Style = StyleAbstract // consumes the random stream
	req.HairStyle = 1         // pixie does too
	req.Accessories = []Accessory{AccessoryGlasses, AccessoryNecklace}

	a, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	b, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !bytes.Equal(a.Base.Pix, b.Base.Pix) {
		t.Error("Two renders of the same request expected to be byte identical")
	}
	if !bytes.Equal(a.Foreground.Pix, b.Foreground.Pix) {
		t.Error("Foreground layers expected to be byte identical")
	}
	if !bytes.Equal(a.Background.Pix, b.Background.Pix) {
		t.Error("Background layers expected to be byte identical")
	}
}

func TestRender_SeedChangesRandomizedStyles(t *testing.T) {
	req := testRequest()
	req.HairStyle = 6 // afro consumes the random stream

	a, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	req.Seed = 1234
	b, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if bytes.Equal(a.Base.Pix, b.Base.Pix) {
		t.Error("Different seeds expected to scatter the afro differently")
	}
}

func TestRender_HairFallback(t *testing.T) {
	req := testRequest()
	req.HairStyle = 0
	classic, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	req.HairStyle = 99
	fallback, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !bytes.Equal(classic.Base.Pix, fallback.Base.Pix) {
		t.Error("Out of range hair style expected to render identically to classic")
	}
}

func TestRender_EyeFallback(t *testing.T) {
	req := testRequest()
	req.EyeStyle = 0
	round, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	req.EyeStyle = -3
	fallback, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !bytes.Equal(round.Base.Pix, fallback.Base.Pix) {
		t.Error("Out of range eye style expected to render identically to round")
	}
}

func TestRender_UnknownTagsSucceed(t *testing.T) {
	req := testRequest()
	req.Style = Style("vaporwave")
	req.Mood = Mood("nostalgic")
	req.Season = Season("monsoon")

	icon, err := Render(req)
	if err != nil {
		t.Fatalf("Render with unknown tags expected to succeed. Got %v", err)
	}
	if icon.Base.Bounds().Dx() != req.Size || icon.Base.Bounds().Dy() != req.Size {
		t.Errorf("Base expected to be %dx%d. Got %v", req.Size, req.Size, icon.Base.Bounds())
	}

	// The unknown style falls back to the gradient background and no
	// style filter, so it must match the portrait render exactly.
	req2 := testRequest()
	req2.Mood = Mood("nostalgic")
	req2.Season = Season("monsoon")
	portrait, err := Render(req2)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.Equal(icon.Base.Pix, portrait.Base.Pix) {
		t.Error("Unknown style expected to render identically to the default background")
	}
}

func TestRender_Accessories(t *testing.T) {
	req := testRequest()
	bare, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	req.Accessories = []Accessory{AccessoryGlasses, AccessoryEarrings}
	decorated, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if bytes.Equal(bare.Base.Pix, decorated.Base.Pix) {
		t.Error("Accessories expected to change the rendered canvas")
	}

	req.Accessories = []Accessory{AccessoryGlasses}
	glassesOnly, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if bytes.Equal(glassesOnly.Base.Pix, decorated.Base.Pix) {
		t.Error("Earrings expected to add marks on top of the glasses render")
	}
	if bytes.Equal(glassesOnly.Base.Pix, bare.Base.Pix) {
		t.Error("Glasses expected to change the rendered canvas")
	}
}

func TestRender_LayerComposition(t *testing.T) {
	req := testRequest()
	req.Mood = MoodFocused // neither style nor mood filter applies

	icon, err := Render(req)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	combined := compose.New(compose.SrcOver).Compose(icon.Foreground, icon.Background)
	if !bytes.Equal(icon.Base.Pix, combined.Pix) {
		t.Error("Base expected to equal the figure layer composited over the background")
	}
}

func TestRender_BadColorAbortsSingleRender(t *testing.T) {
	req := testRequest()
	req.PrimaryColor = "not-a-color"

	if _, err := Render(req); err == nil {
		t.Fatal("Render expected to fail on a malformed color")
	}

	// A queued render with valid input is unaffected.
	if _, err := Render(testRequest()); err != nil {
		t.Fatalf("Subsequent render expected to succeed. Got %v", err)
	}
}
