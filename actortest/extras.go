package actortest

import (
	"math/rand"
	"sync/atomic"

	"github.com/google/uuid"
)

// Extras is an in-memory implementation of the actorsdk.Extras contract.
// GUIDs are real v4 UUIDs, the sequence is a process-local counter, and the
// random source can be seeded for reproducible tests.
type Extras struct {
	rng *rand.Rand
	seq atomic.Uint64
}

// NewExtras returns a fake extras provider seeded for reproducibility.
func NewExtras(seed int64) *Extras {
	return &Extras{rng: rand.New(rand.NewSource(seed))}
}

func (e *Extras) GetRandom(min, max uint32) (uint32, error) {
	if min >= max {
		return min, nil
	}
	span := uint64(max) - uint64(min) + 1
	return min + uint32(e.rng.Uint64()%span), nil
}

func (e *Extras) GetGUID() (string, error) {
	return uuid.NewString(), nil
}

func (e *Extras) GetSequenceNumber() (uint64, error) {
	return e.seq.Add(1), nil
}
