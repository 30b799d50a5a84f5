package asm

import "math/bits"

const (
	// DefaultShrinkBudget bounds the shrink loop's passes. Width updates
	// are not proven to converge monotonically, so the loop carries a
	// budget rather than trusting a fixed point to arrive.
	DefaultShrinkBudget = 100

	// UnboundedShrink removes the budget: shrink until a fixed point.
	UnboundedShrink = -1
)

// NeededBytes returns the minimum number of bytes that can hold x as an
// unsigned big-endian integer, at least 1.
func NeededBytes(x int) int {
	n := (bits.Len(uint(x)) + 7) / 8
	if n < 1 {
		return 1
	}
	return n
}

// refValue resolves a reference against computed mark offsets.
func refValue(ref Ref, offsets map[MarkID]int) int {
	switch r := ref.(type) {
	case MarkRef:
		return offsets[r.ID]
	case MarkDeltaRef:
		return offsets[r.End] - offsets[r.Start]
	default:
		panic("asm: unhandled ref kind")
	}
}

// ShrinkOnce recomputes mark offsets and narrows (or widens) every
// reference to the minimum width its resolved value needs, updating the
// stream in place. It reports whether any width changed.
func ShrinkOnce(steps []SolidStep) bool {
	offsets := MarkOffsets(steps)
	changed := false
	for i, step := range steps {
		ref, ok := step.(SizedRef)
		if !ok {
			continue
		}
		if req := NeededBytes(refValue(ref.Ref, offsets)); req != ref.Width {
			ref.Width = req
			steps[i] = ref
			changed = true
		}
	}
	return changed
}

// Shrink runs ShrinkOnce until a pass changes nothing or the budget is
// exhausted, mutating the stream in place and returning it. A budget of 0
// returns the stream untouched; a negative budget means unbounded. On
// budget exhaustion the stream is returned as-is: not necessarily
// minimal, but every width was valid for some offset computation.
func Shrink(steps []SolidStep, budget int) []SolidStep {
	for changed := true; changed && budget != 0; {
		if budget > 0 {
			budget--
		}
		changed = ShrinkOnce(steps)
	}
	return steps
}
