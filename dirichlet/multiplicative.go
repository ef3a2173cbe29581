package dirichlet

import "github.com/ntkit/numth/ring"

// CalcMultiplicative fills in every value of a multiplicative function f
// over [0, n) from its values at prime powers, in O(n log log n). f must
// already hold the correct value at every prime power and 1 everywhere
// else; primes must list every prime below n, ascending.
func CalcMultiplicative[T ring.Elem[T]](f []T, n int, primes []int64) {
	nn := int64(n)
	for _, p := range primes {
		if p >= nn {
			break
		}
		for qq := p; qq < nn; qq *= p {
			q := qq
			for l, idx := int64(2), 2*qq; idx < nn; idx, l = idx+q, l+1 {
				if l%p != 0 {
					f[idx] = f[idx].Mul(f[q])
				}
			}
		}
	}
}

// ConvolutionMultiplicative computes h = f * g over [0, n) in
// O(n log log n), where h is known to be multiplicative (f and g need not
// be).
func ConvolutionMultiplicative[T ring.Elem[T]](h []T, f, g Fn[T], n int, primes []int64) {
	e1, e0 := f(1).One(), f(1).Zero()
	for i := 1; i < n; i++ {
		h[i] = e1
	}
	nn := int64(n)
	for _, p := range primes {
		if p >= nn {
			break
		}
		var qs []int64
		var fq, gq []T
		for qq := int64(1); qq < nn; qq *= p {
			fq = append(fq, f(int(qq)))
			gq = append(gq, g(int(qq)))
			qs = append(qs, qq)
		}
		for k := range qs {
			hk := e0
			for j := 0; j <= k; j++ {
				hk = hk.Add(fq[k-j].Mul(gq[j]))
			}
			h[qs[k]] = hk
		}
	}
	CalcMultiplicative(h, n, primes)
}

// DivisionMultiplicative computes h = f * g^-1 over [0, n) in
// O(n log log n), where h is known to be multiplicative. g(1) must be
// invertible.
func DivisionMultiplicative[T ring.Elem[T]](h []T, f, g Fn[T], n int, primes []int64) {
	e1 := g(1).One()
	for i := 1; i < n; i++ {
		h[i] = e1
	}
	nn := int64(n)
	for _, p := range primes {
		if p >= nn {
			break
		}
		var qs []int64
		var gq []T
		for qq := int64(1); qq < nn; qq *= p {
			gq = append(gq, g(int(qq)))
			qs = append(qs, qq)
		}
		hq := make([]T, len(qs))
		hq[0] = e1
		for k := 1; k < len(qs); k++ {
			v := f(int(qs[k]))
			for j := 0; j < k; j++ {
				v = v.Sub(gq[k-j].Mul(hq[j]))
			}
			hq[k] = v
			h[qs[k]] = v
		}
	}
	CalcMultiplicative(h, n, primes)
}

// InverseMultiplicative computes f_inv = f^-1 over [0, n) in
// O(n log log n), where f_inv is known to be multiplicative.
func InverseMultiplicative[T ring.Elem[T]](fInv []T, f Fn[T], n int, primes []int64) {
	e1, e0 := f(1).One(), f(1).Zero()
	e := func(n int) T {
		if n == 1 {
			return e1
		}
		return e0
	}
	DivisionMultiplicative(fInv, e, f, n, primes)
}

// MoebiusTransformMultiplicative computes g(n) = sum_{d|n} mu(n/d) f(d) over
// [0, n) in O(n log log n), where g is known to be multiplicative.
func MoebiusTransformMultiplicative[T ring.Elem[T]](g []T, f Fn[T], n int, primes []int64) {
	e1 := f(1).One()
	one := func(int) T { return e1 }
	DivisionMultiplicative(g, f, one, n, primes)
}
