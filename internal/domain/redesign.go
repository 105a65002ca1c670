package domain

// Preferences captures the homeowner's stated design preferences for a redesign
// request. Values arrive as free-form enum-ish strings from the intake form
// and are never mutated by the pipeline.
type Preferences struct {
	KitchenStyle    string `json:"kitchenStyle"`
	ColorPreference string `json:"colorPreference"`
	BudgetRange     string `json:"budgetRange"`
	StorageNeeds    string `json:"storageNeeds"`
	CookingHabits   string `json:"cookingHabits"`
	FamilySize      string `json:"familySize"`
}

// Contact is the lead-capture payload supplied alongside a generate request.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// SpaceAnalysis is the structured summary distilled from the vision
// capability's free-form analysis text. Every field is guaranteed non-empty:
// extraction degrades to documented defaults, never to missing data.
type SpaceAnalysis struct {
	RoomDimensions        string   `json:"roomDimensions"`
	LayoutType            string   `json:"layoutType"`
	ExistingFeatures      []string `json:"existingFeatures"`
	Challenges            []string `json:"challenges"`
	Opportunities         []string `json:"opportunities"`
	LightingSituation     string   `json:"lightingSituation"`
	ArchitecturalElements []string `json:"architecturalElements"`
	RecommendedStyles     []string `json:"recommendedStyles"`
	SpaceOptimization     []string `json:"spaceOptimization"`
}

// Complexity levels attached to design variations, in ascending build effort.
const (
	ComplexityStandard = "standard"
	ComplexityHigh     = "high"
	ComplexityPremium  = "premium"
)

// Image statuses recorded on a GeneratedDesign.
const (
	ImageStatusSuccess = "success"
	ImageStatusFailed  = "failed"
)

// DesignVariation is one tiered design specification produced from a
// preference set. Exactly three are built per request, in fixed tier order.
type DesignVariation struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	CabinetStyle       string   `json:"cabinetStyle"`
	ColorPalette       string   `json:"colorPalette"`
	KeyFeatures        []string `json:"keyFeatures"`
	Timeline           string   `json:"timeline"`
	Complexity         string   `json:"complexity"`
	WhyThisWorks       string   `json:"whyThisWorks"`
	LayoutOptimization []string `json:"layoutOptimization"`
	StorageFeatures    []string `json:"storageFeatures"`
}

// GeneratedDesign is a DesignVariation after the synthesis attempt, carrying
// cost and image metadata. Image fields are populated only on success.
type GeneratedDesign struct {
	DesignVariation
	EstimatedCost  string `json:"estimatedCost"`
	GeneratedImage string `json:"generatedImage,omitempty"`
	ImagePrompt    string `json:"imagePrompt,omitempty"`
	ImageStatus    string `json:"imageStatus"`
}

// GenerationStats aggregates per-item synthesis outcomes for one request.
// ImagesGenerated+ImagesFailed always equals the number of variations
// processed.
type GenerationStats struct {
	ImagesGenerated int `json:"imagesGenerated"`
	ImagesFailed    int `json:"imagesFailed"`
}
