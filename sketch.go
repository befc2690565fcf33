// Package rhll implements a HyperLogLog cardinality sketch hardened
// against soft errors: alongside the primary register array it maintains
// a protected snapshot in which an implausibly low register, the usual
// signature of a bit flip, is detected and neutralized by the
// Remove-Minimum scheme (see Protect).
package rhll

import (
	"math/bits"

	. "github.com/Zaire404/RHLL/error"
	"github.com/Zaire404/RHLL/util"
	"github.com/pkg/errors"
)

const (
	minBitWidth = 4
	maxBitWidth = 30
)

// Sketch estimates the number of distinct elements fed to Add using
// 2^b one-byte registers. It is not safe for concurrent use.
type Sketch struct {
	b         uint8   // register index bit width
	m         uint32  // register count, 1 << b
	alphaMM   float64 // alpha(m) * m^2
	registers []uint8
	protected []uint8 // snapshot rebuilt by Protect, not a view
}

// New returns an empty sketch with 2^b registers.
// b must be in the range [4, 30].
func New(b uint8) (*Sketch, error) {
	if b < minBitWidth || b > maxBitWidth {
		return nil, errors.Wrapf(ErrInvalidBitWidth, "b=%d", b)
	}
	m := uint32(1) << b
	return &Sketch{
		b:         b,
		m:         m,
		alphaMM:   alpha(m) * float64(m) * float64(m),
		registers: make([]uint8, m),
		protected: make([]uint8, m),
	}, nil
}

// alpha is the bias correction constant for m registers, from the
// original HyperLogLog paper.
func alpha(m uint32) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	default:
		return 0.7213 / (1.0 + 1.079/float64(m))
	}
}

// Add feeds one element to the sketch. The top b bits of the hash select
// a register, which is raised to the rank of the remaining bits if that
// rank is larger. Registers never decrease through Add.
func (s *Sketch) Add(data []byte) {
	hash := util.Hash32(data)
	index := hash >> (32 - s.b)
	rank := rho(hash<<s.b, 32-s.b)
	if rank > s.registers[index] {
		s.registers[index] = rank
	}
}

// rho is 1 + the number of leading zero bits of w, capped at maxBits+1.
func rho(w uint32, maxBits uint8) uint8 {
	lz := uint8(bits.LeadingZeros32(w))
	if lz > maxBits {
		lz = maxBits
	}
	return lz + 1
}

// RegisterCount returns the number of registers.
func (s *Sketch) RegisterCount() uint32 {
	return s.m
}

// Reset zeroes the primary registers. The protected snapshot keeps its
// last contents until the next Protect.
func (s *Sketch) Reset() {
	for i := range s.registers {
		s.registers[i] = 0
	}
}

// Swap exchanges the full state of two sketches, shapes included.
func (s *Sketch) Swap(other *Sketch) {
	s.b, other.b = other.b, s.b
	s.m, other.m = other.m, s.m
	s.alphaMM, other.alphaMM = other.alphaMM, s.alphaMM
	s.registers, other.registers = other.registers, s.registers
	s.protected, other.protected = other.protected, s.protected
}
