package rhll

import "math"

// Protect rebuilds the protected snapshot from the primary registers and
// neutralizes a suspected soft error. A register corrupted to an
// abnormally small value inflates its 2^-v term in the estimator's sum
// and can drag the estimate into the linear-counting regime, so when the
// gap between the smallest and second-smallest register is at least
// threshold, the minimum is treated as implausible and overwritten with
// the second-smallest value. The primary registers are never touched.
func (s *Sketch) Protect(threshold uint8) {
	copy(s.protected, s.registers)

	min1 := uint8(math.MaxUint8)
	min2 := uint8(math.MaxUint8)
	var pos1, pos2 uint32

	// Strict less-than: ties keep the earliest-seen index.
	for i, v := range s.protected {
		if v < min1 {
			min2, pos2 = min1, pos1
			min1, pos1 = v, uint32(i)
		} else if v < min2 {
			min2, pos2 = v, uint32(i)
		}
	}

	if min2-min1 >= threshold {
		s.protected[pos1] = s.protected[pos2]
	}
}
