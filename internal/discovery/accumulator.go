package discovery

import "github.com/JTanner04/InstagramSpots/internal/types"

// Accumulator collects search batches until a soft minimum is reached.
// The count is taken before deduplication, so a satisfied accumulator may
// still yield fewer unique places than its threshold.
type Accumulator struct {
	threshold int
	places    []types.Place
}

func NewAccumulator(threshold int) *Accumulator {
	return &Accumulator{threshold: threshold}
}

// Add appends a batch in order. Batches are never split, so the collected
// count may overshoot the threshold.
func (a *Accumulator) Add(batch []types.Place) {
	a.places = append(a.places, batch...)
}

// Satisfied reports whether enough raw candidates were collected to stop
// searching.
func (a *Accumulator) Satisfied() bool {
	return len(a.places) >= a.threshold
}

func (a *Accumulator) Len() int {
	return len(a.places)
}

// Places returns the collected candidates in insertion order.
func (a *Accumulator) Places() []types.Place {
	return a.places
}
