package discovery

import (
	"testing"

	"github.com/JTanner04/InstagramSpots/internal/types"
)

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator(3)
	if acc.Satisfied() {
		t.Fatal("empty accumulator reports satisfied")
	}

	acc.Add([]types.Place{{ID: "a"}, {ID: "b"}})
	if acc.Satisfied() {
		t.Errorf("Satisfied() = true with %d of 3", acc.Len())
	}

	acc.Add(nil)
	if acc.Len() != 2 {
		t.Errorf("Len() = %d after empty batch, want 2", acc.Len())
	}

	// Duplicates count towards the threshold and batches are not split
	acc.Add([]types.Place{{ID: "a"}, {ID: "c"}})
	if !acc.Satisfied() {
		t.Errorf("Satisfied() = false with %d of 3", acc.Len())
	}
	if acc.Len() != 4 {
		t.Errorf("Len() = %d, want 4", acc.Len())
	}

	var ids []string
	for _, p := range acc.Places() {
		ids = append(ids, p.ID)
	}
	if got := len(ids); got != 4 || ids[0] != "a" || ids[3] != "c" {
		t.Errorf("Places() order = %v", ids)
	}
}

func TestAccumulator_ZeroThreshold(t *testing.T) {
	if !NewAccumulator(0).Satisfied() {
		t.Error("accumulator with zero threshold should be satisfied immediately")
	}
}
