package ring

import (
	"github.com/sirupsen/logrus"

	"github.com/Pro7ech/nttec/cache"
	"github.com/Pro7ech/nttec/utils/sampling"
)

// KernelMode selects the implementation of the batched buffer operations.
type KernelMode int

const (
	// KernelsAuto uses the unrolled kernels for uint16 and uint32 elements
	// if the CPU has a vector unit, and the generic kernels otherwise.
	KernelsAuto = KernelMode(iota)
	// KernelsGeneric always uses the scalar loops.
	KernelsGeneric
	// KernelsUnrolled uses the unrolled kernels whenever the element type has them.
	KernelsUnrolled
)

func (m KernelMode) String() string {
	switch m {
	case KernelsAuto:
		return "auto"
	case KernelsGeneric:
		return "generic"
	case KernelsUnrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// Option configures a [RingModN].
type Option func(*options)

type options struct {
	kernels KernelMode
	source  *sampling.Source
	store   cache.Store
	logger  logrus.FieldLogger
}

func newOptions(opts []Option) (o options) {
	o.logger = logrus.StandardLogger()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = sampling.NewSource(sampling.NewSeed())
	}
	return
}

// WithKernels sets the implementation of the batched buffer operations.
func WithKernels(mode KernelMode) Option {
	return func(o *options) {
		o.kernels = mode
	}
}

// WithSource sets the random source used by [RingModN.WeakRand].
// Defaults to a source seeded from crypto/rand.
func WithSource(source *sampling.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithOmegaStore sets the store consulted by [RingModN.ComputeOmegasCached].
// Without a store, tables of powers are always recomputed.
func WithOmegaStore(store cache.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger of the ring.
// Defaults to [logrus.StandardLogger].
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
