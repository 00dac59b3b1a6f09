package bloom

import (
	"fmt"
	"math"
)

// MBitsV1 returns -(n * ln(p)) / (ln(2))^2 before truncation.
//
// The caller is responsible for ensuring:
//   - n > 0
//   - 0 < p < 1
//
// CheckParams can be used to check these conditions.
func MBitsV1(n uint64, p float64) float64 {
	ln2 := math.Log(2)
	return -(float64(n) * math.Log(p)) / (ln2 * ln2)
}

// KV1 returns -ln(p) / ln(2) before truncation.
func KV1(p float64) float64 {
	return -math.Log(p) / math.Log(2)
}

// CheckParams validates the construction parameters.
func CheckParams(n uint64, p float64) error {
	if n == 0 {
		return ErrBadExpectedCount
	}
	// written so that NaN fails
	if !(p > 0 && p < 1) {
		return ErrBadProbability
	}
	return nil
}

// SizeV1 derives the bit array size and hash function count for n expected
// elements at false positive probability p.
//
// Both values are truncated toward zero. A derivation that yields zero bits or
// zero hash functions is an error, as is one needing more than maxBits bits.
func SizeV1(n uint64, p float64, maxBits uint64) (mBits uint64, k uint64, err error) {
	if err = CheckParams(n, p); err != nil {
		return 0, 0, fmt.Errorf("%w: n=%d p=%v", err, n, p)
	}

	kf := KV1(p)
	if kf < 1 {
		return 0, 0, fmt.Errorf("%w: n=%d p=%v k=%v", ErrBadK, n, p, kf)
	}

	mf := MBitsV1(n, p)
	if mf < 1 {
		return 0, 0, fmt.Errorf("%w: n=%d p=%v m=%v", ErrBadMBits, n, p, mf)
	}
	// Compare as float so the conversion below is always in range.
	if mf >= float64(maxBits)+1 {
		return 0, 0, fmt.Errorf("%w: n=%d p=%v m=%v max=%d", ErrMBitsOverflow, n, p, mf, maxBits)
	}

	return uint64(mf), uint64(kf), nil
}

// TheoreticalFalsePositiveRateV1 returns (1 - e^(-k*n/m))^k, the expected
// false positive rate of an m bit, k probe filter holding n elements.
func TheoreticalFalsePositiveRateV1(mBits uint64, k uint64, n uint64) float64 {
	if mBits == 0 {
		return 1
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(n)/float64(mBits)), kf)
}
