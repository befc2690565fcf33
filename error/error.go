package error

import (
	"errors"
)

var (
	ErrInvalidBitWidth       = errors.New("bit width must be in the range [4, 30]")
	ErrRegisterCountMismatch = errors.New("number of registers doesn't match")
)
