// Package sqfree counts square-free integers and evaluates the divisor
// power-sum sigma_k, both as dense sieves and as sublinear sqrt-map
// recursions built on dirichlet's multiplicative-function convolution.
package sqfree

import (
	"github.com/ntkit/numth/dirichlet"
	"github.com/ntkit/numth/intutil"
	"github.com/ntkit/numth/ring"
	"github.com/ntkit/numth/sqrtmap"
)

// SieveSquareFreeCount returns, for every 0 <= i < n, the count of
// square-free integers in [1, i], in O(n log log n): every multiple of p^2
// for a prime p with p^2 < n is marked non-square-free, then the indicator
// is prefix-summed. pa need only list primes up to sqrt(n).
func SieveSquareFreeCount[T ring.Elem[T]](n int, pa []int64, id T) []T {
	e0, e1 := id.Zero(), id
	sqfc := make([]T, n)
	for i := 1; i < n; i++ {
		sqfc[i] = e1
	}
	nn := int64(n)
	for _, p := range pa {
		p2 := p * p
		if p2 >= nn {
			break
		}
		for j := p2; j < nn; j += p2 {
			sqfc[j] = e0
		}
	}
	for i := 1; i < n; i++ {
		sqfc[i] = sqfc[i].Add(sqfc[i-1])
	}
	return sqfc
}

// SquareFreeCount evaluates the count of square-free integers in [1, n] in
// O(n^(2/3)): every non-square-free i <= n has a unique largest square
// divisor m^2, so n minus the square-free count is sum over m>1 of the
// count of i <= n divisible by m^2 and by no larger square, which this
// recursion accumulates by inclusion-exclusion over m in increasing order.
func SquareFreeCount[T ring.Elem[T]](n int64, tbl *sqrtmap.Map[T], id T) T {
	e0 := id.Zero()
	if n < 1 {
		return e0
	}
	if tbl.Contains(n) {
		return tbl.Get(n)
	}
	r := id.FromInt(n)
	q := intutil.Icbrt(n)
	if q < 1 {
		q = 1
	}
	for m := int64(1); m < q; m++ {
		weight := id.FromInt(intutil.Isqrt(n/m) - intutil.Isqrt(n/(m+1)))
		r = r.Sub(weight.Mul(SquareFreeCount(m, tbl, id)))
	}
	for k := intutil.Isqrt(n / q); k > 1; k-- {
		r = r.Sub(SquareFreeCount(n/intutil.Isq(k), tbl, id))
	}
	tbl.Set(n, r)
	return r
}

// DivisorSigma fills ds[0:n) with sigma_k(i) = sum_{d|i} d^k, in
// O(n log log n) via Dirichlet convolution of Id_k and the constant
// function 1 (sigma_k = Id_k * 1). k in {0, 1, 2} take a direct power
// rather than ring.Pow's repeated-squaring loop.
func DivisorSigma[T ring.Elem[T]](ds []T, k int, n int, pa []int64, id T) {
	one := func(int) T { return id }
	var idK func(int) T
	switch k {
	case 0:
		idK = one
	case 1:
		idK = func(m int) T { return id.FromInt(int64(m)) }
	case 2:
		idK = func(m int) T { x := id.FromInt(int64(m)); return x.Mul(x) }
	default:
		idK = func(m int) T { return ring.Pow(id.FromInt(int64(m)), int64(k)) }
	}
	dirichlet.ConvolutionMultiplicative(ds, idK, one, n, pa)
}
