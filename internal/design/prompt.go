package design

import (
	"fmt"
	"strings"

	"kitchenvision/internal/domain"
)

// styleClauses describe the look of each recognized kitchen style. An
// unrecognized style simply contributes no clause.
var styleClauses = map[string]string{
	"contemporary": "Clean lines, minimal ornamentation, and a sleek, current feel throughout.",
	"traditional":  "Classic detailing with moulding, warm finishes, and timeless character.",
	"transitional": "A balanced blend of classic warmth and contemporary simplicity.",
	"modern":       "Ultra-minimal surfaces, handleless cabinetry, and a strong architectural feel.",
	"farmhouse":    "Cozy rustic charm with shaker doors, an apron sink, and natural textures.",
	"scandinavian": "Bright, airy simplicity with pale woods and soft, functional minimalism.",
	"industrial":   "Raw textures, exposed metal accents, and a bold loft-inspired character.",
}

// Only the first three storage features are described in the synthesis prompt.
const maxStoragePromptItems = 3

// ComposePrompt builds the single natural-language instruction handed to the
// image-synthesis capability for one design variation. Clause order is part
// of the contract. The original photo reference is accepted for parity with
// the capability call but does not alter the text.
func ComposePrompt(v domain.DesignVariation, p domain.Preferences, imageRef string) string {
	_ = imageRef

	style := strings.ToLower(strings.TrimSpace(p.KitchenStyle))
	clauses := []string{
		fmt.Sprintf("Professional interior photograph of a fully renovated %s kitchen.", styleTitle(style)),
	}
	if clause, ok := styleClauses[style]; ok {
		clauses = append(clauses, clause)
	}
	clauses = append(clauses, fmt.Sprintf("The color scheme features %s.", v.ColorPalette))

	habits := strings.ToLower(p.CookingHabits)
	if strings.Contains(habits, "daily") || strings.Contains(habits, "frequent") {
		clauses = append(clauses, "The layout is optimized for serious everyday cooking with generous prep space.")
	}
	if strings.Contains(habits, "entertainer") {
		clauses = append(clauses, "An open, social layout with island seating made for entertaining guests.")
	}
	if strings.Contains(strings.ToLower(p.FamilySize), "large") {
		clauses = append(clauses, "Generous seating and circulation space suited to a large family.")
	}

	clauses = append(clauses, fmt.Sprintf("Cabinetry: %s, with premium hardware and soft-close doors.", v.CabinetStyle))

	storage := v.StorageFeatures
	if len(storage) > maxStoragePromptItems {
		storage = storage[:maxStoragePromptItems]
	}
	clauses = append(clauses, fmt.Sprintf("Storage solutions include %s.", strings.Join(storage, ", ")))

	clauses = append(clauses, "Photorealistic, magazine-quality interior photography with natural light, sharp focus, and high resolution.")

	return strings.Join(clauses, " ")
}
