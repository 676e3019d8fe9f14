package fft

import (
	"fmt"
	"runtime"

	"github.com/Pro7ech/nttec/ring"
	"github.com/Pro7ech/nttec/utils/concurrency"
	"github.com/Pro7ech/nttec/utils/structs"
)

// ForwardAll evaluates outs[i] = FFT(ins[i]) for all i, running at most
// workers transforms at the same time. If workers < 1, it defaults to
// [runtime.NumCPU].
func ForwardAll[T ring.Element](tr BufferTransform[T], outs, ins []*structs.Buffers[T], workers int) error {
	return runAll(tr, outs, ins, workers, func(tr BufferTransform[T], out, in *structs.Buffers[T]) {
		tr.FFTBuffers(out, in)
	})
}

// InverseAll evaluates outs[i] = FFTInv(ins[i]) for all i, running at most
// workers transforms at the same time. If workers < 1, it defaults to
// [runtime.NumCPU].
func InverseAll[T ring.Element](tr BufferTransform[T], outs, ins []*structs.Buffers[T], workers int) error {
	return runAll(tr, outs, ins, workers, func(tr BufferTransform[T], out, in *structs.Buffers[T]) {
		tr.FFTInvBuffers(out, in)
	})
}

func runAll[T ring.Element](tr BufferTransform[T], outs, ins []*structs.Buffers[T], workers int, f func(tr BufferTransform[T], out, in *structs.Buffers[T])) error {

	if len(outs) != len(ins) {
		return fmt.Errorf("invalid planes: len(outs)=%d != len(ins)=%d", len(outs), len(ins))
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	resources := make([]BufferTransform[T], min(workers, max(len(ins), 1)))
	for i := range resources {
		resources[i] = tr
	}

	rm := concurrency.NewResourceManager(resources)

	for i := range ins {
		i := i
		rm.Run(func(tr BufferTransform[T]) (err error) {
			if ins[i].N() != tr.Len() || outs[i].N() != tr.Len() || ins[i].Size() != outs[i].Size() {
				return fmt.Errorf("invalid plane %d: out=[%d][%d] in=[%d][%d] n=%d", i, outs[i].N(), outs[i].Size(), ins[i].N(), ins[i].Size(), tr.Len())
			}
			f(tr, outs[i], ins[i])
			return
		})
	}

	return rm.Wait()
}
