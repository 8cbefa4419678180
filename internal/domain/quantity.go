package domain

import (
	"math"
	"math/big"
)

// Quantity is an exact amount: a single rational value or an inclusive
// range [low, high]. The zero value is a single zero. Quantities are
// immutable; accessors hand out copies of the underlying rationals.
type Quantity struct {
	low  *big.Rat
	high *big.Rat // nil unless the quantity is a range
}

// NewQuantity creates a single-valued quantity.
func NewQuantity(v *big.Rat) Quantity {
	return Quantity{low: copyRat(v)}
}

// NewRange creates a ranged quantity. A range whose bounds are equal
// collapses into a single value.
func NewRange(low, high *big.Rat) (Quantity, error) {
	l, h := copyRat(low), copyRat(high)
	switch l.Cmp(h) {
	case 1:
		return Quantity{}, ErrInvalidRange
	case 0:
		return Quantity{low: l}, nil
	}
	return Quantity{low: l, high: h}, nil
}

// QuantityOf is a convenience constructor from a float. Non-finite
// values yield the zero quantity.
func QuantityOf(v float64) Quantity {
	return Quantity{low: ratFromFloat(v)}
}

// RangeOf is the float counterpart of NewRange.
func RangeOf(low, high float64) (Quantity, error) {
	return NewRange(ratFromFloat(low), ratFromFloat(high))
}

// IsRange reports whether q spans two distinct bounds.
func (q Quantity) IsRange() bool { return q.high != nil }

// IsZero reports whether q is a single zero value.
func (q Quantity) IsZero() bool { return q.high == nil && q.lowRat().Sign() == 0 }

// Low returns the single value, or the low bound of a range.
func (q Quantity) Low() *big.Rat { return copyRat(q.low) }

// High returns the high bound of a range, or the single value.
func (q Quantity) High() *big.Rat {
	if q.high == nil {
		return copyRat(q.low)
	}
	return copyRat(q.high)
}

// LowFloat returns Low as a float64.
func (q Quantity) LowFloat() float64 {
	f, _ := q.lowRat().Float64()
	return f
}

// HighFloat returns High as a float64.
func (q Quantity) HighFloat() float64 {
	if q.high == nil {
		return q.LowFloat()
	}
	f, _ := q.high.Float64()
	return f
}

// Mul multiplies both bounds by f. A negative factor swaps the bounds so
// the low <= high invariant survives.
func (q Quantity) Mul(f *big.Rat) Quantity {
	if f == nil {
		return q
	}
	out := Quantity{low: new(big.Rat).Mul(q.lowRat(), f)}
	if q.high != nil {
		out.high = new(big.Rat).Mul(q.high, f)
		if f.Sign() < 0 {
			out.low, out.high = out.high, out.low
		}
		if out.low.Cmp(out.high) == 0 {
			out.high = nil
		}
	}
	return out
}

// Equal reports exact equality of both bounds.
func (q Quantity) Equal(other Quantity) bool {
	if q.IsRange() != other.IsRange() {
		return false
	}
	if q.lowRat().Cmp(other.lowRat()) != 0 {
		return false
	}
	return q.high == nil || q.high.Cmp(other.high) == 0
}

// String renders the exact rational form, e.g. "9/4" or "1-2".
func (q Quantity) String() string {
	s := q.lowRat().RatString()
	if q.high != nil {
		s += "-" + q.high.RatString()
	}
	return s
}

func (q Quantity) lowRat() *big.Rat {
	if q.low == nil {
		return new(big.Rat)
	}
	return q.low
}

func copyRat(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r)
}

func ratFromFloat(v float64) *big.Rat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return new(big.Rat)
	}
	return new(big.Rat).SetFloat64(v)
}
