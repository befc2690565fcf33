package rhll

import "math"

const (
	pow2to32 = 4294967296.0
	// Above this the raw estimate approaches the 32-bit hash space and
	// collisions start hiding elements.
	largeRangeCutoff = pow2to32 / 30.0
)

// Estimate returns the estimated cardinality. With useProtected set it
// reads the protected snapshot instead of the primary registers; the
// snapshot reflects the stream as of the last Protect call.
func (s *Sketch) Estimate(useProtected bool) float64 {
	if useProtected {
		return s.estimate(s.protected)
	}
	return s.estimate(s.registers)
}

func (s *Sketch) estimate(registers []uint8) float64 {
	sum := 0.0
	for _, v := range registers {
		sum += 1.0 / float64(uint64(1)<<v)
	}
	e := s.alphaMM / sum

	if e <= 2.5*float64(s.m) {
		// Small range: linear counting over the still-empty registers
		// beats the raw harmonic-mean estimate.
		zeros := 0
		for _, v := range registers {
			if v == 0 {
				zeros++
			}
		}
		if zeros != 0 {
			e = float64(s.m) * math.Log(float64(s.m)/float64(zeros))
		}
	} else if e > largeRangeCutoff {
		e = -pow2to32 * math.Log(1.0-e/pow2to32)
	}
	return e
}
