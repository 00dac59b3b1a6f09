package bloom

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/datatrails/go-datatrails-common/logger"
)

// Filter is a Bloom filter with a fixed geometry derived from the expected
// element count and the target false positive probability.
//
// It is not go routine safe.
type Filter struct {
	log logger.Logger

	expectedElements uint64
	probability      float64

	mBits uint64
	k     uint64

	bits      *bitset.BitSet
	nInserted uint64
}

// New creates an empty filter sized for n elements at false positive
// probability p.
//
// No filter is returned if the parameters are out of range or derive a
// degenerate geometry. See SizeV1.
func New(n uint64, p float64, opts ...Option) (*Filter, error) {
	o := NewOptions(opts...)

	mBits, k, err := SizeV1(n, p, o.MaxBits)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		log:              o.Log,
		expectedElements: n,
		probability:      p,
		mBits:            mBits,
		k:                k,
		bits:             bitset.New(uint(mBits)),
	}
	if f.log != nil {
		f.log.Infof("bloom: n=%d p=%v m=%d k=%d (%d bytes)", n, p, mBits, k, (mBits+7)/8)
	}
	return f, nil
}

// Insert adds element, hashed as its UTF-8 bytes.
func (f *Filter) Insert(element string) {
	f.InsertBytes([]byte(element))
}

// InsertBytes sets the k bits for elem and counts the insert. Inserting the
// same element again is counted again.
func (f *Filter) InsertBytes(elem []byte) {
	for seed := uint64(0); seed < f.k; seed++ {
		f.bits.Set(uint(indexV1(uint32(seed), elem, f.mBits)))
	}
	f.nInserted++
}

// Contains reports whether element may have been inserted.
//
// Returns false if element was definitely never inserted.
// Returns true if it was inserted, or if its bits were all set by others.
func (f *Filter) Contains(element string) bool {
	return f.ContainsBytes([]byte(element))
}

func (f *Filter) ContainsBytes(elem []byte) bool {
	for seed := uint64(0); seed < f.k; seed++ {
		if !f.bits.Test(uint(indexV1(uint32(seed), elem, f.mBits))) {
			return false
		}
	}
	return true
}

// getters, read only

func (f *Filter) ExpectedElements() uint64 { return f.expectedElements }

func (f *Filter) FalsePositiveProbability() float64 { return f.probability }

func (f *Filter) BitArraySize() uint64 { return f.mBits }

func (f *Filter) HashFunctionCount() uint64 { return f.k }

func (f *Filter) InsertedCount() uint64 { return f.nInserted }

// Bits returns a copy of the bit array, one bool per bit. Changing the result
// does not change the filter.
func (f *Filter) Bits() []bool {
	out := make([]bool, f.mBits)
	for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
		out[i] = true
	}
	return out
}

// SetBits returns the number of bits currently set.
func (f *Filter) SetBits() uint64 {
	return uint64(f.bits.Count())
}

// FillRatio returns the fraction of bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.SetBits()) / float64(f.mBits)
}

// EstimatedFalsePositiveRate is the probability that a query for an element
// that was never inserted finds all k of its bits set, given the current fill.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return math.Pow(f.FillRatio(), float64(f.k))
}

// TheoreticalFalsePositiveRate returns the expected false positive rate once
// n distinct elements have been inserted.
func (f *Filter) TheoreticalFalsePositiveRate(n uint64) float64 {
	return TheoreticalFalsePositiveRateV1(f.mBits, f.k, n)
}
