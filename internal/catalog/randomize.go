package catalog

import (
	"context"
	"math/rand"
	"time"

	"wallpaper-studio/internal/log"
)

// Randomizer picks a suggestion from the fixed example list.
type Randomizer struct {
	examples []Example
	rnd      *rand.Rand
}

func NewRandomizer() *Randomizer {
	rnd := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	return &Randomizer{examples: Examples, rnd: rnd}
}

func (r *Randomizer) Pick(ctx context.Context) Example {
	log := log.FromContextOrDiscard(ctx).WithGroup("randomizer")
	log.Debug("picking random example prompt")
	return r.examples[r.rnd.Intn(len(r.examples))]
}
