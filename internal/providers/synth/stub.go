package synth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"kitchenvision/internal/design"
)

// Stub is a deterministic offline synthesizer used in local and CI
// environments where no Gemini key is configured. The returned URL is a
// stable function of the prompt.
type Stub struct {
	Delay time.Duration
}

func NewStub() *Stub {
	return &Stub{Delay: 250 * time.Millisecond}
}

func (s *Stub) Synthesize(ctx context.Context, prompt string) (string, error) {
	sum := sha256.Sum256([]byte(prompt))
	url := fmt.Sprintf("https://cdn.example.com/concepts/%s.png", hex.EncodeToString(sum[:8]))
	if s.Delay <= 0 {
		return url, nil
	}
	select {
	case <-time.After(s.Delay):
		return url, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

var _ design.Synthesizer = (*Stub)(nil)
