// Package polynom implements dense univariate polynomials over an arbitrary
// field-like coefficient ring, with the one operation the rest of the
// kernel actually needs from them: Sum, the closed-form polynomial whose
// value at n is sum_{k=1}^n p(k). Rather than porting Faulhaber's formula
// (which needs a table of Bernoulli numbers), Sum is built by Lagrange
// interpolation over deg(p)+2 sample points — a polynomial of degree d is
// uniquely determined by d+1 points, and its prefix-sum polynomial has
// degree d+1, so d+2 samples pin it down exactly.
package polynom

import "github.com/ntkit/numth/ring"

// Polynom is a polynomial sum_i C[i] x^i, coefficients ascending by degree.
type Polynom[T ring.Elem[T]] struct {
	C []T
}

// New returns the polynomial with the given coefficients, ascending by
// degree (New(a, b, c) is a + b*x + c*x^2).
func New[T ring.Elem[T]](c ...T) Polynom[T] {
	return Polynom[T]{C: append([]T(nil), c...)}
}

// Deg returns the polynomial's degree, or -1 for the zero polynomial.
func (p Polynom[T]) Deg() int {
	for i := len(p.C) - 1; i >= 0; i-- {
		if !isZero(p.C[i]) {
			return i
		}
	}
	return -1
}

func isZero[T ring.Elem[T]](x T) bool { return x.Equal(x.Zero()) }

// Eval evaluates the polynomial at x via Horner's method.
func (p Polynom[T]) Eval(x T) T {
	if len(p.C) == 0 {
		panic("polynom: Eval on a polynomial with no coefficients, and so no ring context")
	}
	r := p.C[0].Zero()
	for i := len(p.C) - 1; i >= 0; i-- {
		r = r.Mul(x).Add(p.C[i])
	}
	return r
}

func (p Polynom[T]) coeff(i int) T {
	if i < len(p.C) {
		return p.C[i]
	}
	return p.zero()
}

func (p Polynom[T]) zero() T {
	if len(p.C) == 0 {
		panic("polynom: operation requires at least one coefficient for ring context")
	}
	return p.C[0].Zero()
}

// Add returns p + q.
func (p Polynom[T]) Add(q Polynom[T]) Polynom[T] {
	n := len(p.C)
	if len(q.C) > n {
		n = len(q.C)
	}
	c := make([]T, n)
	for i := 0; i < n; i++ {
		c[i] = p.coeff(i).Add(q.coeff(i))
	}
	return Polynom[T]{C: c}
}

// Sub returns p - q.
func (p Polynom[T]) Sub(q Polynom[T]) Polynom[T] {
	n := len(p.C)
	if len(q.C) > n {
		n = len(q.C)
	}
	c := make([]T, n)
	for i := 0; i < n; i++ {
		c[i] = p.coeff(i).Sub(q.coeff(i))
	}
	return Polynom[T]{C: c}
}

// Mul returns p * q.
func (p Polynom[T]) Mul(q Polynom[T]) Polynom[T] {
	if len(p.C) == 0 || len(q.C) == 0 {
		return Polynom[T]{}
	}
	z := p.zero()
	c := make([]T, len(p.C)+len(q.C)-1)
	for i := range c {
		c[i] = z
	}
	for i, a := range p.C {
		if isZero(a) {
			continue
		}
		for j, b := range q.C {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return Polynom[T]{C: c}
}

// Scale returns p with every coefficient multiplied by k.
func (p Polynom[T]) Scale(k T) Polynom[T] {
	c := make([]T, len(p.C))
	for i, a := range p.C {
		c[i] = a.Mul(k)
	}
	return Polynom[T]{C: c}
}

// Sum returns the polynomial S of degree Deg(p)+1 such that
// S(n) = sum_{k=1}^n p(k) for every non-negative integer n, computed by
// Lagrange interpolation over Deg(p)+2 sample points.
func (p Polynom[T]) Sum() Polynom[T] {
	z := p.zero()
	d := p.Deg()
	if d < 0 {
		return Polynom[T]{C: []T{z}}
	}
	m := d + 2 // number of sample points
	xs := make([]T, m)
	ys := make([]T, m)
	xs[0] = z
	ys[0] = z
	acc := z
	for i := 1; i < m; i++ {
		xs[i] = z.FromInt(int64(i))
		acc = acc.Add(p.Eval(xs[i]))
		ys[i] = acc
	}
	return lagrange(xs, ys)
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through every (xs[i], ys[i]), for pairwise distinct xs. It is the same
// primitive Sum builds its result from, exposed for callers that need to
// build a polynomial from closed-form samples rather than from its own
// coefficients (e.g. mertens.PhiDWeights, which only has g_phi_D(d) in
// closed form at integer points).
func Interpolate[T ring.Elem[T]](xs, ys []T) Polynom[T] {
	return lagrange(xs, ys)
}

// lagrange returns the unique polynomial of degree < len(xs) passing
// through every (xs[i], ys[i]), for distinct xs.
func lagrange[T ring.Elem[T]](xs, ys []T) Polynom[T] {
	one := xs[0].One()
	result := Polynom[T]{C: []T{xs[0].Zero()}}
	for i := range xs {
		basis := Polynom[T]{C: []T{one}}
		denom := one
		for j := range xs {
			if j == i {
				continue
			}
			basis = basis.Mul(Polynom[T]{C: []T{xs[j].Neg(), one}})
			denom = denom.Mul(xs[i].Sub(xs[j]))
		}
		coef := ring.MustDiv(ys[i], denom)
		result = result.Add(basis.Scale(coef))
	}
	return result
}
