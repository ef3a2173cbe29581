package ring

// Int is the ring of 64-bit integers. Div performs exact division only: it
// reports ErrNotInvertible when the divisor does not evenly divide the
// receiver, since the only units of Z are +1 and -1.
type Int int64

func (x Int) Zero() Int       { return 0 }
func (x Int) One() Int        { return 1 }
func (x Int) Add(y Int) Int   { return x + y }
func (x Int) Sub(y Int) Int   { return x - y }
func (x Int) Mul(y Int) Int   { return x * y }
func (x Int) Neg() Int        { return -x }
func (x Int) Equal(y Int) bool { return x == y }
func (x Int) FromInt(z int64) Int { return Int(z) }

func (x Int) Div(y Int) (Int, error) {
	if y == 0 || x%y != 0 {
		return 0, ErrNotInvertible
	}
	return x / y, nil
}
