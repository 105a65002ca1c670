package design

import (
	"fmt"
	"strings"

	"kitchenvision/internal/domain"
)

// Tier identifies one of the three design variations produced per request.
type Tier string

const (
	TierPrimary  Tier = "primary"
	TierEnhanced Tier = "enhanced"
	TierValue    Tier = "value"
)

// tierOrder is part of the output contract: downstream cost and timeline
// defaults consume variations positionally.
var tierOrder = [3]Tier{TierPrimary, TierEnhanced, TierValue}

var tierComplexity = map[Tier]string{
	TierPrimary:  domain.ComplexityHigh,
	TierEnhanced: domain.ComplexityPremium,
	TierValue:    domain.ComplexityStandard,
}

var tierTimeline = map[Tier]string{
	TierPrimary:  "10-12 weeks",
	TierEnhanced: "12-14 weeks",
	TierValue:    "8-10 weeks",
}

// Fallbacks returned when a lookup key is not in its table.
const (
	FallbackCabinetStyle = "Custom cabinet style"
	FallbackColorPalette = "Custom color palette designed for your space"
)

var cabinetStyles = map[string]map[Tier]string{
	"contemporary": {
		TierPrimary:  "Flat-panel cabinets in matte lacquer with integrated pulls",
		TierEnhanced: "Custom flat-panel cabinetry with push-to-open doors and under-cabinet lighting",
		TierValue:    "Slab-front cabinets in a durable matte thermofoil finish",
	},
	"traditional": {
		TierPrimary:  "Raised-panel cabinets with crown moulding and furniture-style feet",
		TierEnhanced: "Custom raised-panel cabinetry with glazed finish and glass display uppers",
		TierValue:    "Classic raised-panel doors in a painted maple finish",
	},
	"transitional": {
		TierPrimary:  "Shaker cabinets with slim rails and brushed hardware",
		TierEnhanced: "Custom shaker cabinetry with inset doors and layered crown detail",
		TierValue:    "Shaker-style doors in a versatile painted finish",
	},
	"modern": {
		TierPrimary:  "Handleless high-gloss cabinets with aluminum channel pulls",
		TierEnhanced: "Custom handleless cabinetry with motorized lift-up uppers",
		TierValue:    "High-gloss slab doors with edge-profile pulls",
	},
	"farmhouse": {
		TierPrimary:  "Shaker cabinets with beadboard accents and cup pulls",
		TierEnhanced: "Custom farmhouse cabinetry with apron-front sink base and open shelving",
		TierValue:    "Painted shaker doors with classic bin pulls",
	},
	"scandinavian": {
		TierPrimary:  "Light oak flat-panel cabinets with minimalist edge pulls",
		TierEnhanced: "Custom white-oak cabinetry with integrated grip rails and matte white uppers",
		TierValue:    "Light wood-tone slab doors with simple round knobs",
	},
	"industrial": {
		TierPrimary:  "Metal-framed cabinets with reclaimed wood fronts",
		TierEnhanced: "Custom steel-and-walnut cabinetry with exposed fastener detail",
		TierValue:    "Dark slab doors with black metal hardware",
	},
}

var colorPalettes = map[string]map[Tier]string{
	"light-neutral": {
		TierPrimary:  "Warm whites and soft greys with natural stone accents",
		TierEnhanced: "Layered ivory, greige, and marble veining with brass highlights",
		TierValue:    "Crisp white uppers over light grey lowers",
	},
	"dark-dramatic": {
		TierPrimary:  "Charcoal cabinetry with black stone counters and smoked glass",
		TierEnhanced: "Deep graphite and espresso tones with dramatic veined quartz",
		TierValue:    "Dark grey cabinets balanced by lighter counters",
	},
	"warm-wood": {
		TierPrimary:  "Natural walnut tones with cream counters and bronze accents",
		TierEnhanced: "Rich wood grain paired with warm stone and aged brass detail",
		TierValue:    "Warm oak-look finishes with neutral laminate counters",
	},
	"two-tone": {
		TierPrimary:  "Navy island against white perimeter cabinetry",
		TierEnhanced: "Contrasting deep green island with ivory perimeter and mixed metals",
		TierValue:    "Grey lowers with white uppers for an easy two-tone look",
	},
	"bold-colors": {
		TierPrimary:  "Saturated teal cabinetry with brass hardware and warm counters",
		TierEnhanced: "Statement emerald and ochre pairing with patterned backsplash",
		TierValue:    "A single bold accent wall of color against neutral cabinetry",
	},
}

var tierKeyFeatures = map[Tier][]string{
	TierPrimary: {
		"Quartz countertops throughout",
		"Full-height tile backsplash",
		"Soft-close doors and drawers",
		"Under-cabinet task lighting",
		"Deep single-bowl undermount sink",
	},
	TierEnhanced: {
		"Premium quartz or natural stone countertops",
		"Designer backsplash with feature niche",
		"Integrated panel-ready appliances",
		"Layered lighting with dimmable scenes",
		"Oversized island with waterfall edge",
		"Built-in coffee and beverage station",
	},
	TierValue: {
		"Durable laminate or entry quartz countertops",
		"Subway tile backsplash",
		"Soft-close hinges",
		"Updated lighting fixtures",
	},
}

// fallbackStorageFeatures is returned for unrecognized storage keys.
var fallbackStorageFeatures = []string{
	"Adjustable shelving throughout",
	"Deep pot-and-pan drawers",
	"Pull-out waste and recycling center",
	"Dedicated utensil and cutlery organizers",
}

var storageFeatures = map[string][]string{
	"maximum-storage": {
		"Floor-to-ceiling pantry cabinets",
		"Corner carousel units in base cabinets",
		"Toe-kick storage drawers",
		"Vertical tray dividers above the fridge",
	},
	"organized-storage": {
		"Custom drawer inserts for every zone",
		"Pull-out spice and oil racks beside the range",
		"Labeled pantry pull-outs",
		"Charging drawer for small electronics",
	},
	"display-storage": {
		"Glass-front upper cabinets with interior lighting",
		"Open shelving for everyday dishware",
		"Plate rack above the prep zone",
		"Feature niche for cookbooks and decor",
	},
	"hidden-storage": {
		"Appliance garage with retractable door",
		"Panel-matched pantry wall",
		"Pocket doors concealing the coffee station",
		"Push-to-open uppers with no visible hardware",
	},
	"pantry-storage": {
		"Walk-in or cabinet-depth pantry with full extension shelves",
		"Bulk storage bins on heavy-duty glides",
		"Second-tier shelf risers for small goods",
		"Door-mounted racks for jars and wraps",
	},
}

// enhancedStorageExtras is appended to the chosen storage list on the
// enhanced tier only.
var enhancedStorageExtras = []string{
	"Motorized shelf lift for heavy small appliances",
	"Interior cabinet lighting that activates on open",
}

// defaultLayoutOptimization is used when no cooking-habit or storage
// condition fires.
var defaultLayoutOptimization = []string{
	"Balanced work triangle between sink, stove, and refrigerator",
	"Clear landing zones beside every appliance",
	"Unobstructed walkways of at least 42 inches",
}

var tierNames = map[Tier]string{
	TierPrimary:  "Signature %s Kitchen",
	TierEnhanced: "Elevated %s Kitchen",
	TierValue:    "Smart Value %s Kitchen",
}

var tierDescriptions = map[Tier]string{
	TierPrimary:  "A full redesign built around your stated style, balancing custom detail with proven materials.",
	TierEnhanced: "The premium expression of your style with custom cabinetry, upgraded surfaces, and layered lighting.",
	TierValue:    "A budget-conscious refresh that delivers your style's character with efficient material choices.",
}

var tierWhyThisWorks = map[Tier]string{
	TierPrimary:  "Matches your style and storage priorities while keeping the scope firmly inside your budget bracket.",
	TierEnhanced: "Invests where you will feel it daily: cabinetry, lighting, and work-zone flow tailored to how you cook.",
	TierValue:    "Concentrates spend on the highest-impact surfaces so the room reads fully renovated at the lowest cost.",
}

// BuildVariations turns a preference set into exactly three tiered design
// specifications, always ordered primary, enhanced, value. It is pure: the
// same preferences always yield the same variations.
func BuildVariations(p domain.Preferences) []domain.DesignVariation {
	out := make([]domain.DesignVariation, 0, len(tierOrder))
	for _, tier := range tierOrder {
		out = append(out, buildVariation(p, tier))
	}
	return out
}

func buildVariation(p domain.Preferences, tier Tier) domain.DesignVariation {
	style := strings.ToLower(strings.TrimSpace(p.KitchenStyle))
	return domain.DesignVariation{
		Name:               fmt.Sprintf(tierNames[tier], styleTitle(style)),
		Description:        tierDescriptions[tier],
		CabinetStyle:       lookupCabinetStyle(style, tier),
		ColorPalette:       lookupColorPalette(p.ColorPreference, tier),
		KeyFeatures:        append([]string(nil), tierKeyFeatures[tier]...),
		Timeline:           tierTimeline[tier],
		Complexity:         tierComplexity[tier],
		WhyThisWorks:       tierWhyThisWorks[tier],
		LayoutOptimization: layoutOptimization(p, tier),
		StorageFeatures:    lookupStorageFeatures(p.StorageNeeds, tier),
	}
}

func lookupCabinetStyle(style string, tier Tier) string {
	if byTier, ok := cabinetStyles[style]; ok {
		return byTier[tier]
	}
	return FallbackCabinetStyle
}

func lookupColorPalette(pref string, tier Tier) string {
	key := strings.ToLower(strings.TrimSpace(pref))
	if byTier, ok := colorPalettes[key]; ok {
		return byTier[tier]
	}
	return FallbackColorPalette
}

func lookupStorageFeatures(needs string, tier Tier) []string {
	key := strings.ToLower(strings.TrimSpace(needs))
	base, ok := storageFeatures[key]
	if !ok {
		base = fallbackStorageFeatures
	}
	out := append([]string(nil), base...)
	if tier == TierEnhanced {
		out = append(out, enhancedStorageExtras...)
	}
	return out
}

func layoutOptimization(p domain.Preferences, tier Tier) []string {
	var phrases []string
	habits := strings.ToLower(p.CookingHabits)
	if strings.Contains(habits, "daily") || strings.Contains(habits, "frequent") {
		phrases = append(phrases,
			"Tightened work triangle for heavy everyday cooking",
			"Dedicated prep zone with durable counter surface",
		)
	}
	if strings.Contains(habits, "entertainer") {
		phrases = append(phrases,
			"Open sightlines between the kitchen and gathering spaces",
			"Island seating so guests can gather while you cook",
		)
	}
	if strings.Contains(strings.ToLower(p.StorageNeeds), "maximum") {
		phrases = append(phrases,
			"Cabinetry carried to the ceiling on every available wall",
			"Toe-kick drawers reclaiming otherwise dead space",
		)
	}
	if tier == TierEnhanced {
		phrases = append(phrases,
			"Widened walkways sized for multiple cooks",
			"Task lighting layered over every work zone",
		)
	}
	if len(phrases) == 0 {
		phrases = append(phrases, defaultLayoutOptimization...)
	}
	return phrases
}

func styleTitle(style string) string {
	if style == "" {
		return "Custom"
	}
	return strings.ToUpper(style[:1]) + style[1:]
}
