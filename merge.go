package rhll

import (
	. "github.com/Zaire404/RHLL/error"
	"github.com/pkg/errors"
)

// Merge folds other into s, yielding the sketch of the union of both
// streams. Registers combine by elementwise maximum: ranks are ordinal
// magnitudes, so a bitwise OR (as in the C++ original) would turn e.g.
// 3 and 5 into the never-observed rank 7. Both sketches must have the
// same register count; other is never modified. On ErrRegisterCountMismatch
// s is unchanged.
func (s *Sketch) Merge(other *Sketch) error {
	if s.m != other.m {
		return errors.Wrapf(ErrRegisterCountMismatch, "%d != %d", s.m, other.m)
	}
	for i, v := range other.registers {
		if v > s.registers[i] {
			s.registers[i] = v
		}
	}
	return nil
}
