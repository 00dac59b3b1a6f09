package bloom

import "errors"

const (
	// MaxBitsV1 is the largest bit array New will allocate unless overridden
	// with WithMaxBits.
	MaxBitsV1 uint64 = 1 << 32
)

var (
	ErrBadExpectedCount = errors.New("bloom: expected element count must be greater than zero")
	ErrBadProbability   = errors.New("bloom: false positive probability must be in the open interval (0, 1)")
	ErrBadK             = errors.New("bloom: derived hash function count is less than one")
	ErrBadMBits         = errors.New("bloom: derived bit array size is less than one")

	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)
