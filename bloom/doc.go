package bloom

/*

# Bloom filter sized from (n, p)

This package provides a single in-memory Bloom filter whose geometry is
derived from two caller supplied parameters:

- n, the number of elements the filter is expected to hold
- p, the false positive probability the caller is prepared to accept

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element was never
  inserted.
- If the filter says "maybe present", then the element may or may not have
  been inserted (false positives are possible).

Loading the filter with more than n elements degrades the real false positive
rate without bound. There is no delete, no resize and no reset; discard the
filter and build a new one.

## Sizing

Both constants are fixed at construction:

	m = -(n * ln(p)) / (ln(2))^2     bits in the filter
	k = -ln(p) / ln(2)               hash probes per element

The arithmetic is done in float64 and each result is truncated toward zero
exactly once, when it is converted to an integer. Because k is truncated
rather than rounded, a filter loaded to exactly n elements has an expected
false positive rate marginally above p (for p = 0.1 it is close to 0.1007).

## Indexing

Each of the k probes is MurmurHash3 x64 128 keyed by the probe number
(0..k-1) over the element bytes. Strings are hashed as their UTF-8 bytes.
The low 64 bits of the hash are reduced modulo m and then made non negative.
See indexV1.

## API versioning: why the `V1` suffix exists

The sizing and index helpers are suffixed with a version (`SizeV1`,
`indexV1`). The suffix means: **this function implements the version 1
derivation** i.e. the specific hash family, seed assignment, encoding and
reduction described above. Two processes that both use V1 agree on the bit
positions for any element.

## Concurrency

A Filter is not go routine safe. Insert and Contains must be serialized by
the caller, for example with a sync.Mutex around the filter.

*/
