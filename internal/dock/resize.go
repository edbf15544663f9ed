package dock

import (
	"mtoohey.com/dock/internal/util"

	"golang.org/x/exp/slices"
)

// Resize moves delta ratio units from ratios[index+1] to ratios[index] and
// returns the result as a new slice. Only those two values change, their sum
// is conserved, and neither ends up below MinRatio. A negative delta moves
// mass the other way.
//
// Out of range indices, a zero delta, and pairs that are too small to hold two
// minimum shares return an unchanged copy.
func Resize(ratios []float64, index int, delta float64) []float64 {
	out := slices.Clone(ratios)
	if index < 0 || index+1 >= len(out) || delta == 0 {
		return out
	}

	a, b := out[index], out[index+1]
	pairSum := a + b
	if pairSum < 2*MinRatio {
		return out
	}

	// the shrinking side is clamped first, then the growing side takes
	// whatever is left of the pair; the outer Max only absorbs rounding
	if delta > 0 {
		b = util.Clamp(MinRatio, b-delta, pairSum-MinRatio)
		a = util.Max(pairSum-b, MinRatio)
	} else {
		a = util.Clamp(MinRatio, a+delta, pairSum-MinRatio)
		b = util.Max(pairSum-a, MinRatio)
	}

	out[index], out[index+1] = a, b
	return out
}
