package design

import (
	"context"

	"github.com/rs/zerolog"

	"kitchenvision/internal/domain"
)

// Synthesizer is the image-synthesis capability the orchestrator drives. It
// returns a URL for the rendered concept; an error or empty URL is a
// per-item failure.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string) (string, error)
}

// Orchestrator runs the end-to-end generation flow: build the tiered
// variations, then render each one through the synthesis capability with
// per-item failure isolation.
type Orchestrator struct {
	synth Synthesizer
	log   zerolog.Logger
}

func NewOrchestrator(synth Synthesizer, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{synth: synth, log: log}
}

// Generate produces exactly one GeneratedDesign per variation, in variation
// order, and stats whose counts sum to that length. Synthesis calls are made
// sequentially, one fully resolved before the next, to stay inside the
// capability's per-minute call budget. A failed item never aborts the batch
// and never surfaces as an error; it is recorded as data. Each variation is
// attempted exactly once.
func (o *Orchestrator) Generate(ctx context.Context, prefs domain.Preferences, imageRef string) ([]domain.GeneratedDesign, domain.GenerationStats) {
	variations := BuildVariations(prefs)
	designs := make([]domain.GeneratedDesign, 0, len(variations))

	for _, variation := range variations {
		designs = append(designs, o.renderOne(ctx, variation, prefs, imageRef))
	}
	return designs, reduceStats(designs)
}

func (o *Orchestrator) renderOne(ctx context.Context, v domain.DesignVariation, prefs domain.Preferences, imageRef string) domain.GeneratedDesign {
	design := domain.GeneratedDesign{
		DesignVariation: v,
		EstimatedCost:   EstimateCost(prefs.BudgetRange, v.Complexity),
	}

	prompt := ComposePrompt(v, prefs, imageRef)
	url, err := o.synth.Synthesize(ctx, prompt)
	if err != nil || url == "" {
		o.log.Warn().Err(err).Str("variation", v.Name).Msg("image synthesis failed")
		design.ImageStatus = domain.ImageStatusFailed
		return design
	}

	design.GeneratedImage = url
	design.ImagePrompt = prompt
	design.ImageStatus = domain.ImageStatusSuccess
	o.log.Debug().Str("variation", v.Name).Msg("image synthesis succeeded")
	return design
}

// reduceStats derives aggregate counts from the ordered result list.
func reduceStats(designs []domain.GeneratedDesign) domain.GenerationStats {
	var stats domain.GenerationStats
	for _, d := range designs {
		if d.ImageStatus == domain.ImageStatusSuccess {
			stats.ImagesGenerated++
		} else {
			stats.ImagesFailed++
		}
	}
	return stats
}
