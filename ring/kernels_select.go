package ring

import (
	"github.com/klauspost/cpuid/v2"
	"github.com/sirupsen/logrus"
)

// HasVectorUnit returns true if the CPU reports a vector unit
// the unrolled kernels can be auto-vectorized for.
func HasVectorUnit() bool {
	return cpuid.CPU.Supports(cpuid.AVX2) || cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)
}

// selectKernels returns the [Kernels] implementation for the given mode and element type.
// The unrolled kernels only exist for uint16 and uint32 elements.
func selectKernels[T Element](mode KernelMode, card T, logger logrus.FieldLogger) (k Kernels[T]) {

	k = genericKernels[T]{card: card}

	if mode == KernelsGeneric || (mode == KernelsAuto && !HasVectorUnit()) {
		return
	}

	switch c := any(card).(type) {
	case uint16:
		k = any(newUnrolledKernels(c)).(Kernels[T])
	case uint32:
		k = any(newUnrolledKernels(c)).(Kernels[T])
	}

	logger.WithFields(logrus.Fields{
		"mode":    mode,
		"kernels": k.Name(),
		"cpu":     cpuid.CPU.BrandName,
	}).Debug("kernels selected")

	return
}

// Kernels returns the name of the batched buffer operations implementation of the ring.
func (r *RingModN[T]) Kernels() string {
	return r.kernels.Name()
}
