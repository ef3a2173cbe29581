package ring

import "math/big"

// Rat is the field of rational numbers, backed by math/big.Rat. It is the
// coefficient type to reach for when exactness matters more than speed —
// the polynom package's Lagrange interpolation, for instance, is exact over
// Rat regardless of the degree involved.
type Rat struct {
	R *big.Rat
}

// NewRat returns the rational a/b as a Rat.
func NewRat(a, b int64) Rat {
	return Rat{R: big.NewRat(a, b)}
}

func (x Rat) r() *big.Rat {
	if x.R == nil {
		return new(big.Rat)
	}
	return x.R
}

func (x Rat) Zero() Rat { return Rat{R: new(big.Rat)} }
func (x Rat) One() Rat  { return Rat{R: big.NewRat(1, 1)} }

func (x Rat) Add(y Rat) Rat { return Rat{R: new(big.Rat).Add(x.r(), y.r())} }
func (x Rat) Sub(y Rat) Rat { return Rat{R: new(big.Rat).Sub(x.r(), y.r())} }
func (x Rat) Mul(y Rat) Rat { return Rat{R: new(big.Rat).Mul(x.r(), y.r())} }
func (x Rat) Neg() Rat      { return Rat{R: new(big.Rat).Neg(x.r())} }

func (x Rat) Equal(y Rat) bool { return x.r().Cmp(y.r()) == 0 }

func (x Rat) FromInt(z int64) Rat { return Rat{R: big.NewRat(z, 1)} }

func (x Rat) Div(y Rat) (Rat, error) {
	if y.r().Sign() == 0 {
		return Rat{}, ErrNotInvertible
	}
	return Rat{R: new(big.Rat).Quo(x.r(), y.r())}, nil
}
