package bloom

import "github.com/spaolacci/murmur3"

// indexV1 returns the bit probed by hash function seed for elem.
//
// The low 64 bits of MurmurHash3 x64 128 (keyed by seed) are taken as a signed
// integer, reduced modulo mBits and then made non negative. Reducing first
// means the magnitude is already below mBits, so math.MinInt64 is never
// negated.
//
// mBits must be in [1, math.MaxInt64].
func indexV1(seed uint32, elem []byte, mBits uint64) uint64 {
	h1, _ := murmur3.Sum128WithSeed(elem, seed)
	return reduceV1(int64(h1), mBits)
}

func reduceV1(h int64, mBits uint64) uint64 {
	r := h % int64(mBits)
	if r < 0 {
		r = -r
	}
	return uint64(r)
}
