package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeV1(t *testing.T) {
	// m = -(n * ln(p) / (ln(2))^2) and k = -(ln(p)/ln(2)), both truncated.
	mBits, k, err := SizeV1(10, 0.2, MaxBitsV1)
	require.NoError(t, err)
	require.Equal(t, uint64(33), mBits)
	require.Equal(t, uint64(2), k)

	mBits, k, err = SizeV1(58110, 0.1, MaxBitsV1)
	require.NoError(t, err)
	require.Equal(t, uint64(278493), mBits)
	require.Equal(t, uint64(3), k)

	mBits, k, err = SizeV1(1000, 0.01, MaxBitsV1)
	require.NoError(t, err)
	require.Equal(t, uint64(9585), mBits)
	require.Equal(t, uint64(6), k)

	// smallest useful geometry
	mBits, k, err = SizeV1(1, 0.4, MaxBitsV1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), mBits)
	require.Equal(t, uint64(1), k)
}

func TestSizeV1_Truncates(t *testing.T) {
	require.InDelta(t, 33.498, MBitsV1(10, 0.2), 0.001)
	require.InDelta(t, 2.3219, KV1(0.2), 0.0001)
}

func TestCheckParams(t *testing.T) {
	require.NoError(t, CheckParams(1, 0.5))
	require.ErrorIs(t, CheckParams(0, 0.1), ErrBadExpectedCount)
	require.ErrorIs(t, CheckParams(10, 0), ErrBadProbability)
	require.ErrorIs(t, CheckParams(10, 1), ErrBadProbability)
	require.ErrorIs(t, CheckParams(10, -0.1), ErrBadProbability)
	require.ErrorIs(t, CheckParams(10, 1.5), ErrBadProbability)
	require.ErrorIs(t, CheckParams(10, math.NaN()), ErrBadProbability)
	require.ErrorIs(t, CheckParams(10, math.Inf(-1)), ErrBadProbability)
}

func TestSizeV1_Errors(t *testing.T) {
	_, _, err := SizeV1(0, 0.1, MaxBitsV1)
	require.ErrorIs(t, err, ErrBadExpectedCount)

	_, _, err = SizeV1(10, 1, MaxBitsV1)
	require.ErrorIs(t, err, ErrBadProbability)

	// -ln(0.6)/ln(2) is about 0.74, which truncates to zero probes.
	_, _, err = SizeV1(10, 0.6, MaxBitsV1)
	require.ErrorIs(t, err, ErrBadK)

	_, _, err = SizeV1(10, 0.99, MaxBitsV1)
	require.ErrorIs(t, err, ErrBadK)

	_, _, err = SizeV1(10, 0.2, 32)
	require.ErrorIs(t, err, ErrMBitsOverflow)

	// exactly at the limit is fine
	mBits, _, err := SizeV1(10, 0.2, 33)
	require.NoError(t, err)
	require.Equal(t, uint64(33), mBits)

	_, _, err = SizeV1(1<<40, 0.01, MaxBitsV1)
	require.ErrorIs(t, err, ErrMBitsOverflow)
}

func TestTheoreticalFalsePositiveRateV1(t *testing.T) {
	require.Equal(t, float64(0), TheoreticalFalsePositiveRateV1(33, 2, 0))
	require.InDelta(t, 0.1007, TheoreticalFalsePositiveRateV1(278493, 3, 58110), 0.0001)
	require.InDelta(t, 0.0194, TheoreticalFalsePositiveRateV1(278493, 3, 58110/2), 0.0001)
	require.Equal(t, float64(1), TheoreticalFalsePositiveRateV1(0, 3, 10))
}
