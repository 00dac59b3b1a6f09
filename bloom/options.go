package bloom

import (
	"math"

	"github.com/datatrails/go-datatrails-common/logger"
)

type Options struct {
	// Log, if set, receives a single line describing the derived sizing when
	// the filter is created.
	Log logger.Logger

	// MaxBits bounds the size of the bit array. Defaults to MaxBitsV1.
	MaxBits uint64
}

type Option func(*Options)

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithMaxBits overrides MaxBitsV1. Values above math.MaxInt64 are clamped.
func WithMaxBits(maxBits uint64) Option {
	return func(o *Options) {
		o.MaxBits = min(maxBits, uint64(math.MaxInt64))
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{MaxBits: MaxBitsV1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
