package design

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"kitchenvision/internal/domain"
)

type costBracket struct {
	Min float64
	Max float64
}

var budgetBrackets = map[string]costBracket{
	"30k-45k":  {Min: 30000, Max: 45000},
	"45k-60k":  {Min: 45000, Max: 60000},
	"60k-80k":  {Min: 60000, Max: 80000},
	"80k-plus": {Min: 80000, Max: 120000},
}

// defaultBracket is applied when the budget range is unrecognized.
var defaultBracket = costBracket{Min: 35000, Max: 50000}

var complexityMultipliers = map[string]float64{
	domain.ComplexityStandard: 0.85,
	domain.ComplexityHigh:     1.00,
	domain.ComplexityPremium:  1.25,
}

var costPrinter = message.NewPrinter(language.English)

// EstimateCost renders a CAD cost range for the given budget bracket and
// complexity tier, e.g. "$75,000 - $100,000 CAD". Unknown budget ranges fall
// back to the default bracket and unknown complexities to a 1.00 multiplier.
func EstimateCost(budgetRange, complexity string) string {
	bracket, ok := budgetBrackets[budgetRange]
	if !ok {
		bracket = defaultBracket
	}
	mult, ok := complexityMultipliers[complexity]
	if !ok {
		mult = 1.00
	}
	low := int64(math.Round(bracket.Min * mult))
	high := int64(math.Round(bracket.Max * mult))
	return costPrinter.Sprintf("$%d - $%d CAD", low, high)
}
