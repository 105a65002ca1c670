package design

import (
	"reflect"
	"testing"
)

func TestExtractSpaceAnalysisNoKeywordsReturnsDefaults(t *testing.T) {
	text := "Lorem ipsum dolor sit amet."
	got := ExtractSpaceAnalysis(text)

	if got.RoomDimensions != defaultRoomDimensions {
		t.Fatalf("RoomDimensions = %q, want default", got.RoomDimensions)
	}
	if got.LayoutType != defaultLayoutType {
		t.Fatalf("LayoutType = %q, want default", got.LayoutType)
	}
	if got.LightingSituation != defaultLighting {
		t.Fatalf("LightingSituation = %q, want default", got.LightingSituation)
	}
	for name, list := range map[string][]string{
		"ExistingFeatures":      got.ExistingFeatures,
		"Challenges":            got.Challenges,
		"Opportunities":         got.Opportunities,
		"ArchitecturalElements": got.ArchitecturalElements,
		"RecommendedStyles":     got.RecommendedStyles,
		"SpaceOptimization":     got.SpaceOptimization,
	} {
		if len(list) == 0 {
			t.Fatalf("%s is empty, want non-empty default", name)
		}
	}

	again := ExtractSpaceAnalysis(text)
	if !reflect.DeepEqual(got, again) {
		t.Fatal("extraction is not idempotent over the same text")
	}
}

func TestExtractSpaceAnalysisKeywordSignals(t *testing.T) {
	text := "A small kitchen with one window over the sink and limited storage along the back wall."
	got := ExtractSpaceAnalysis(text)

	if !contains(got.Challenges, "Limited space optimization") {
		t.Fatalf("Challenges = %v, want to contain %q", got.Challenges, "Limited space optimization")
	}
	if !contains(got.Challenges, "Insufficient storage") {
		t.Fatalf("Challenges = %v, want to contain %q", got.Challenges, "Insufficient storage")
	}
	if !contains(got.ExistingFeatures, "Natural lighting from windows") {
		t.Fatalf("ExistingFeatures = %v, want to contain %q", got.ExistingFeatures, "Natural lighting from windows")
	}
}

func TestExtractSpaceAnalysisLayoutAndDimensions(t *testing.T) {
	text := "Room dimensions: roughly 10 by 16 feet.\nClassic galley kitchen, bright with natural light."
	got := ExtractSpaceAnalysis(text)

	if got.LayoutType != "Galley layout with parallel work runs" {
		t.Fatalf("LayoutType = %q", got.LayoutType)
	}
	if got.RoomDimensions == defaultRoomDimensions {
		t.Fatalf("RoomDimensions fell back to default despite dimension line")
	}
	if got.LightingSituation != "Good natural light worth preserving in the new design" {
		t.Fatalf("LightingSituation = %q", got.LightingSituation)
	}
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
