package rhll

// Corruptor is the raw register access used for fault-injection
// experiments. It is deliberately separate from the normal sketch
// contract: production code should only go through Add and Protect.
type Corruptor interface {
	// Register returns the raw value of register i.
	Register(i uint32) uint8
	// FlipBit XORs the given bit of register i, simulating a soft
	// error. The stored value may increase or decrease.
	FlipBit(i uint32, bit uint8)
}

var _ Corruptor = (*Sketch)(nil)

func (s *Sketch) Register(i uint32) uint8 {
	return s.registers[i]
}

func (s *Sketch) FlipBit(i uint32, bit uint8) {
	s.registers[i] ^= 1 << bit
}
