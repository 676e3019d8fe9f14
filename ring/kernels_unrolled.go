package ring

import (
	"unsafe"
)

// narrow is the set of element types for which the unrolled kernels exist.
type narrow interface {
	uint16 | uint32
}

// unrolledKernels implements [Kernels] on blocks of 8 elements, each lane
// being computed on 64 bits so that no intermediate result can overflow.
type unrolledKernels[T narrow] struct {
	q uint64
}

func newUnrolledKernels[T narrow](card T) unrolledKernels[T] {
	return unrolledKernels[T]{q: uint64(card)}
}

// cred returns x mod q for x in [0, 2q).
func cred(x, q uint64) uint64 {
	if x >= q {
		return x - q
	}
	return x
}

func (k unrolledKernels[T]) Name() string {
	return "unrolled"
}

func (k unrolledKernels[T]) Neg(x []T) {

	N := len(x)
	q := k.q

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]T)(unsafe.Pointer(&x[j]))

		z[0] = T(cred(q-uint64(z[0]), q))
		z[1] = T(cred(q-uint64(z[1]), q))
		z[2] = T(cred(q-uint64(z[2]), q))
		z[3] = T(cred(q-uint64(z[3]), q))
		z[4] = T(cred(q-uint64(z[4]), q))
		z[5] = T(cred(q-uint64(z[5]), q))
		z[6] = T(cred(q-uint64(z[6]), q))
		z[7] = T(cred(q-uint64(z[7]), q))
	}

	for i := N - (N & 7); i < N; i++ {
		x[i] = T(cred(q-uint64(x[i]), q))
	}
}

func (k unrolledKernels[T]) MulCoef(a T, src, dst []T) {

	N := len(src)
	q := k.q
	c := uint64(a)

	dst = dst[:N]

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]T)(unsafe.Pointer(&src[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]T)(unsafe.Pointer(&dst[j]))

		z[0] = T(c * uint64(x[0]) % q)
		z[1] = T(c * uint64(x[1]) % q)
		z[2] = T(c * uint64(x[2]) % q)
		z[3] = T(c * uint64(x[3]) % q)
		z[4] = T(c * uint64(x[4]) % q)
		z[5] = T(c * uint64(x[5]) % q)
		z[6] = T(c * uint64(x[6]) % q)
		z[7] = T(c * uint64(x[7]) % q)
	}

	for i := N - (N & 7); i < N; i++ {
		dst[i] = T(c * uint64(src[i]) % q)
	}
}

func (k unrolledKernels[T]) Add(src, dst []T) {

	N := len(src)
	q := k.q

	dst = dst[:N]

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]T)(unsafe.Pointer(&src[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]T)(unsafe.Pointer(&dst[j]))

		z[0] = T(cred(uint64(x[0])+uint64(z[0]), q))
		z[1] = T(cred(uint64(x[1])+uint64(z[1]), q))
		z[2] = T(cred(uint64(x[2])+uint64(z[2]), q))
		z[3] = T(cred(uint64(x[3])+uint64(z[3]), q))
		z[4] = T(cred(uint64(x[4])+uint64(z[4]), q))
		z[5] = T(cred(uint64(x[5])+uint64(z[5]), q))
		z[6] = T(cred(uint64(x[6])+uint64(z[6]), q))
		z[7] = T(cred(uint64(x[7])+uint64(z[7]), q))
	}

	for i := N - (N & 7); i < N; i++ {
		dst[i] = T(cred(uint64(src[i])+uint64(dst[i]), q))
	}
}

func (k unrolledKernels[T]) Sub(a, b, res []T) {

	N := len(a)
	q := k.q

	b, res = b[:N], res[:N]

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]T)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]T)(unsafe.Pointer(&b[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]T)(unsafe.Pointer(&res[j]))

		z[0] = T(cred(uint64(x[0])+q-uint64(y[0]), q))
		z[1] = T(cred(uint64(x[1])+q-uint64(y[1]), q))
		z[2] = T(cred(uint64(x[2])+q-uint64(y[2]), q))
		z[3] = T(cred(uint64(x[3])+q-uint64(y[3]), q))
		z[4] = T(cred(uint64(x[4])+q-uint64(y[4]), q))
		z[5] = T(cred(uint64(x[5])+q-uint64(y[5]), q))
		z[6] = T(cred(uint64(x[6])+q-uint64(y[6]), q))
		z[7] = T(cred(uint64(x[7])+q-uint64(y[7]), q))
	}

	for i := N - (N & 7); i < N; i++ {
		res[i] = T(cred(uint64(a[i])+q-uint64(b[i]), q))
	}
}

func (k unrolledKernels[T]) ButterflyCT(c T, p, q []T) {

	N := len(p)
	m := k.q
	w := uint64(c)

	q = q[:N]

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]T)(unsafe.Pointer(&p[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]T)(unsafe.Pointer(&q[j]))

		for i := range x {
			a, b := uint64(x[i]), w*uint64(y[i])%m
			x[i] = T(cred(a+b, m))
			y[i] = T(cred(a+m-b, m))
		}
	}

	for i := N - (N & 7); i < N; i++ {
		a, b := uint64(p[i]), w*uint64(q[i])%m
		p[i] = T(cred(a+b, m))
		q[i] = T(cred(a+m-b, m))
	}
}

func (k unrolledKernels[T]) ButterflyGS(c T, p, q []T) {

	N := len(p)
	m := k.q
	w := uint64(c)

	q = q[:N]

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]T)(unsafe.Pointer(&p[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]T)(unsafe.Pointer(&q[j]))

		for i := range x {
			a, b := uint64(x[i]), uint64(y[i])
			x[i] = T(cred(a+b, m))
			y[i] = T(w * cred(a+m-b, m) % m)
		}
	}

	for i := N - (N & 7); i < N; i++ {
		a, b := uint64(p[i]), uint64(q[i])
		p[i] = T(cred(a+b, m))
		q[i] = T(w * cred(a+m-b, m) % m)
	}
}

func (k unrolledKernels[T]) HadamardMul(x, y []T) {

	N := len(x)
	q := k.q

	y = y[:N]

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]T)(unsafe.Pointer(&x[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		v := (*[8]T)(unsafe.Pointer(&y[j]))

		z[0] = T(uint64(z[0]) * uint64(v[0]) % q)
		z[1] = T(uint64(z[1]) * uint64(v[1]) % q)
		z[2] = T(uint64(z[2]) * uint64(v[2]) % q)
		z[3] = T(uint64(z[3]) * uint64(v[3]) % q)
		z[4] = T(uint64(z[4]) * uint64(v[4]) % q)
		z[5] = T(uint64(z[5]) * uint64(v[5]) % q)
		z[6] = T(uint64(z[6]) * uint64(v[6]) % q)
		z[7] = T(uint64(z[7]) * uint64(v[7]) % q)
	}

	for i := N - (N & 7); i < N; i++ {
		x[i] = T(uint64(x[i]) * uint64(y[i]) % q)
	}
}

func (k unrolledKernels[T]) HadamardMulDoubled(x, y []T) {
	half := len(x) / 2
	k.HadamardMul(x[:half], y)
	k.HadamardMul(x[half:2*half], y)
}

func (k unrolledKernels[T]) AddDoubled(x, y []T) {
	half := len(x) / 2
	k.Add(y[:half], x[:half])
	k.Add(y[:half], x[half:2*half])
}
