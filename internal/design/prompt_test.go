package design

import (
	"strings"
	"testing"

	"kitchenvision/internal/domain"
)

func TestComposePromptClauseOrder(t *testing.T) {
	prefs := domain.Preferences{
		KitchenStyle:    "farmhouse",
		ColorPreference: "warm-wood",
		CookingHabits:   "daily cooking, entertainer",
		FamilySize:      "large family of six",
	}
	variation := BuildVariations(prefs)[0]

	prompt := ComposePrompt(variation, prefs, "kitchen.jpg")

	ordered := []string{
		"fully renovated Farmhouse kitchen",
		styleClauses["farmhouse"],
		"The color scheme features " + variation.ColorPalette,
		"optimized for serious everyday cooking",
		"made for entertaining guests",
		"suited to a large family",
		"Cabinetry: " + variation.CabinetStyle,
		"Storage solutions include",
		"magazine-quality interior photography",
	}
	last := -1
	for _, clause := range ordered {
		idx := strings.Index(prompt, clause)
		if idx < 0 {
			t.Fatalf("prompt missing clause %q:\n%s", clause, prompt)
		}
		if idx <= last {
			t.Fatalf("clause %q out of order (index %d after %d):\n%s", clause, idx, last, prompt)
		}
		last = idx
	}
}

func TestComposePromptTruncatesStorageToThree(t *testing.T) {
	prefs := domain.Preferences{KitchenStyle: "modern", StorageNeeds: "maximum-storage"}
	variation := BuildVariations(prefs)[1] // enhanced tier: 6 storage features

	if len(variation.StorageFeatures) < 4 {
		t.Fatalf("test setup: want >3 storage features, got %d", len(variation.StorageFeatures))
	}

	prompt := ComposePrompt(variation, prefs, "")
	wantJoined := strings.Join(variation.StorageFeatures[:3], ", ")
	if !strings.Contains(prompt, "Storage solutions include "+wantJoined+".") {
		t.Fatalf("prompt does not contain first three storage features joined: %s", prompt)
	}
	for _, extra := range variation.StorageFeatures[3:] {
		if strings.Contains(prompt, extra) {
			t.Fatalf("prompt contains storage feature beyond the first three: %q", extra)
		}
	}
}

func TestComposePromptUnknownStyleOmitsStyleClause(t *testing.T) {
	prefs := domain.Preferences{KitchenStyle: "brutalist"}
	variation := BuildVariations(prefs)[2]

	prompt := ComposePrompt(variation, prefs, "")
	if !strings.Contains(prompt, "fully renovated Brutalist kitchen") {
		t.Fatalf("prompt missing base sentence: %s", prompt)
	}
	for _, clause := range styleClauses {
		if strings.Contains(prompt, clause) {
			t.Fatalf("prompt for unknown style contains style clause %q", clause)
		}
	}
}
