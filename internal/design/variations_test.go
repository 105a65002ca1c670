package design

import (
	"reflect"
	"testing"

	"kitchenvision/internal/domain"
)

func basePreferences() domain.Preferences {
	return domain.Preferences{
		KitchenStyle:    "contemporary",
		ColorPreference: "light-neutral",
		BudgetRange:     "45k-60k",
		StorageNeeds:    "organized-storage",
		CookingHabits:   "daily cooking",
		FamilySize:      "3-4",
	}
}

func TestBuildVariationsTierOrder(t *testing.T) {
	variations := BuildVariations(basePreferences())
	if len(variations) != 3 {
		t.Fatalf("len(variations) = %d, want 3", len(variations))
	}
	wantComplexity := []string{domain.ComplexityHigh, domain.ComplexityPremium, domain.ComplexityStandard}
	for i, want := range wantComplexity {
		if variations[i].Complexity != want {
			t.Fatalf("variations[%d].Complexity = %q, want %q", i, variations[i].Complexity, want)
		}
	}
	wantTimeline := []string{"10-12 weeks", "12-14 weeks", "8-10 weeks"}
	for i, want := range wantTimeline {
		if variations[i].Timeline != want {
			t.Fatalf("variations[%d].Timeline = %q, want %q", i, variations[i].Timeline, want)
		}
	}
}

func TestBuildVariationsDeterministic(t *testing.T) {
	prefs := basePreferences()
	first := BuildVariations(prefs)
	second := BuildVariations(prefs)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("BuildVariations is not deterministic for identical preferences")
	}
}

func TestBuildVariationsUnknownKeysFallBack(t *testing.T) {
	prefs := basePreferences()
	prefs.KitchenStyle = "brutalist"
	prefs.ColorPreference = "chartreuse-everything"
	prefs.StorageNeeds = "no-storage-at-all"

	variations := BuildVariations(prefs)
	for i, v := range variations {
		if v.CabinetStyle != FallbackCabinetStyle {
			t.Fatalf("variations[%d].CabinetStyle = %q, want %q", i, v.CabinetStyle, FallbackCabinetStyle)
		}
		if v.ColorPalette != FallbackColorPalette {
			t.Fatalf("variations[%d].ColorPalette = %q, want %q", i, v.ColorPalette, FallbackColorPalette)
		}
	}
	if got := variations[0].StorageFeatures; !reflect.DeepEqual(got, fallbackStorageFeatures) {
		t.Fatalf("primary StorageFeatures = %v, want fallback %v", got, fallbackStorageFeatures)
	}
}

func TestEnhancedTierAppendsStorageExtras(t *testing.T) {
	variations := BuildVariations(basePreferences())
	primary, enhanced := variations[0], variations[1]

	if len(enhanced.StorageFeatures) != len(primary.StorageFeatures)+2 {
		t.Fatalf("enhanced storage len = %d, want %d", len(enhanced.StorageFeatures), len(primary.StorageFeatures)+2)
	}
	tail := enhanced.StorageFeatures[len(enhanced.StorageFeatures)-2:]
	if !reflect.DeepEqual(tail, enhancedStorageExtras) {
		t.Fatalf("enhanced storage tail = %v, want %v", tail, enhancedStorageExtras)
	}
}

func TestLayoutOptimizationDefault(t *testing.T) {
	prefs := basePreferences()
	prefs.CookingHabits = "occasional"
	prefs.StorageNeeds = "display-storage"

	got := layoutOptimization(prefs, TierValue)
	if !reflect.DeepEqual(got, defaultLayoutOptimization) {
		t.Fatalf("layoutOptimization = %v, want default %v", got, defaultLayoutOptimization)
	}
}

func TestLayoutOptimizationAccumulates(t *testing.T) {
	prefs := basePreferences()
	prefs.CookingHabits = "frequent entertainer"
	prefs.StorageNeeds = "maximum-storage"

	// frequent (2) + entertainer (2) + maximum (2) + enhanced tier (2).
	got := layoutOptimization(prefs, TierEnhanced)
	if len(got) != 8 {
		t.Fatalf("len(layoutOptimization) = %d, want 8: %v", len(got), got)
	}

	value := layoutOptimization(prefs, TierValue)
	if len(value) != 6 {
		t.Fatalf("len(layoutOptimization) on value tier = %d, want 6", len(value))
	}
}
