package design

import (
	"strings"

	"kitchenvision/internal/domain"
)

// Defaults returned when the analysis text carries no recognizable signal for
// a field. Extraction never produces an empty field and never fails.
const (
	defaultRoomDimensions = "Approximately 12' x 14' based on visual proportions"
	defaultLayoutType     = "L-shaped layout with standard work zones"
	defaultLighting       = "Mixed natural and artificial lighting"
)

var (
	defaultExistingFeatures = []string{"Standard kitchen fixtures and finishes"}
	defaultChallenges       = []string{"General modernization needed"}
	defaultOpportunities    = []string{"Strong potential for a full aesthetic and functional refresh"}
	defaultArchitectural    = []string{"Conventional wall and ceiling construction"}
	defaultRecommendedStyle = []string{"Transitional", "Contemporary"}
	defaultSpaceOptimize    = []string{
		"Improve the work triangle between major appliances",
		"Extend cabinetry to maximize vertical storage",
	}
)

// ExtractSpaceAnalysis turns the vision capability's free-form analysis text
// into a structured summary using case-insensitive keyword scanning. Missing
// signals degrade to documented defaults, never to an error or an empty
// field, so repeated extraction over the same text is idempotent.
func ExtractSpaceAnalysis(text string) domain.SpaceAnalysis {
	lower := strings.ToLower(text)
	return domain.SpaceAnalysis{
		RoomDimensions:        extractDimensions(text),
		LayoutType:            extractLayout(lower),
		ExistingFeatures:      extractFeatures(lower),
		Challenges:            extractChallenges(lower),
		Opportunities:         extractOpportunities(lower),
		LightingSituation:     extractLighting(lower),
		ArchitecturalElements: extractArchitectural(lower),
		RecommendedStyles:     extractRecommendedStyles(lower),
		SpaceOptimization:     extractSpaceOptimization(lower),
	}
}

func extractDimensions(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "dimension") || strings.Contains(lower, "feet") || strings.Contains(lower, "sq ft") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed
			}
		}
	}
	return defaultRoomDimensions
}

func extractLayout(lower string) string {
	switch {
	case strings.Contains(lower, "galley"):
		return "Galley layout with parallel work runs"
	case strings.Contains(lower, "u-shaped"):
		return "U-shaped layout wrapping three walls"
	case strings.Contains(lower, "l-shaped"):
		return "L-shaped layout with an open corner"
	case strings.Contains(lower, "island"):
		return "Open layout anchored by a central island"
	case strings.Contains(lower, "open concept"), strings.Contains(lower, "open-concept"):
		return "Open-concept layout flowing into adjacent living space"
	}
	return defaultLayoutType
}

func extractFeatures(lower string) []string {
	var features []string
	if strings.Contains(lower, "window") {
		features = append(features, "Natural lighting from windows")
	}
	if strings.Contains(lower, "island") {
		features = append(features, "Existing kitchen island")
	}
	if strings.Contains(lower, "pantry") {
		features = append(features, "Dedicated pantry storage")
	}
	if strings.Contains(lower, "hardwood") || strings.Contains(lower, "wood floor") {
		features = append(features, "Hardwood flooring")
	}
	if strings.Contains(lower, "stainless") {
		features = append(features, "Stainless steel appliances")
	}
	if len(features) == 0 {
		features = append(features, defaultExistingFeatures...)
	}
	return features
}

func extractChallenges(lower string) []string {
	var challenges []string
	if strings.Contains(lower, "small") || strings.Contains(lower, "tight") || strings.Contains(lower, "cramped") {
		challenges = append(challenges, "Limited space optimization")
	}
	if strings.Contains(lower, "storage") {
		challenges = append(challenges, "Insufficient storage")
	}
	if strings.Contains(lower, "old") || strings.Contains(lower, "outdated") || strings.Contains(lower, "dated") {
		challenges = append(challenges, "Outdated finishes and fixtures")
	}
	if strings.Contains(lower, "dark") || strings.Contains(lower, "dim") {
		challenges = append(challenges, "Insufficient lighting")
	}
	if len(challenges) == 0 {
		challenges = append(challenges, defaultChallenges...)
	}
	return challenges
}

func extractOpportunities(lower string) []string {
	var opportunities []string
	if strings.Contains(lower, "ceiling") {
		opportunities = append(opportunities, "Vertical storage potential up to the ceiling")
	}
	if strings.Contains(lower, "window") {
		opportunities = append(opportunities, "Maximize daylight with lighter finishes near windows")
	}
	if strings.Contains(lower, "wall") {
		opportunities = append(opportunities, "Underused wall area for added cabinetry or shelving")
	}
	if strings.Contains(lower, "open") {
		opportunities = append(opportunities, "Potential to open the space toward adjacent rooms")
	}
	if len(opportunities) == 0 {
		opportunities = append(opportunities, defaultOpportunities...)
	}
	return opportunities
}

func extractLighting(lower string) string {
	switch {
	case strings.Contains(lower, "bright") || strings.Contains(lower, "well-lit") || strings.Contains(lower, "natural light"):
		return "Good natural light worth preserving in the new design"
	case strings.Contains(lower, "dark") || strings.Contains(lower, "dim"):
		return "Limited light; the redesign should layer ambient and task lighting"
	case strings.Contains(lower, "window"):
		return "Daylight available through existing windows"
	}
	return defaultLighting
}

func extractArchitectural(lower string) []string {
	var elements []string
	if strings.Contains(lower, "ceiling") {
		elements = append(elements, "Notable ceiling height or detail")
	}
	if strings.Contains(lower, "beam") {
		elements = append(elements, "Exposed or boxed beams")
	}
	if strings.Contains(lower, "brick") {
		elements = append(elements, "Exposed brick surfaces")
	}
	if strings.Contains(lower, "arch") {
		elements = append(elements, "Arched openings or doorways")
	}
	if len(elements) == 0 {
		elements = append(elements, defaultArchitectural...)
	}
	return elements
}

func extractRecommendedStyles(lower string) []string {
	var styles []string
	if strings.Contains(lower, "modern") || strings.Contains(lower, "sleek") {
		styles = append(styles, "Modern", "Contemporary")
	}
	if strings.Contains(lower, "classic") || strings.Contains(lower, "traditional") {
		styles = append(styles, "Traditional", "Transitional")
	}
	if strings.Contains(lower, "cozy") || strings.Contains(lower, "rustic") {
		styles = append(styles, "Farmhouse")
	}
	if len(styles) == 0 {
		styles = append(styles, defaultRecommendedStyle...)
	}
	return styles
}

func extractSpaceOptimization(lower string) []string {
	var ideas []string
	if strings.Contains(lower, "corner") {
		ideas = append(ideas, "Activate corner cabinets with carousel or pull-out units")
	}
	if strings.Contains(lower, "counter") {
		ideas = append(ideas, "Extend continuous counter runs for more usable prep space")
	}
	if strings.Contains(lower, "storage") {
		ideas = append(ideas, "Add full-height cabinetry to relieve storage pressure")
	}
	if len(ideas) == 0 {
		ideas = append(ideas, defaultSpaceOptimize...)
	}
	return ideas
}
