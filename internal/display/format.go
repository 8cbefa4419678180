package display

import (
	"math/big"
	"strings"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/units"
)

// Precision controls how exact quantities are rounded for display.
// Rounding happens here and nowhere else.
type Precision struct {
	Decimals       int  // decimal places for values that are not shown as fractions
	Fractions      bool // allow "1/3" and "2 1/4" for non-metric units
	MaxDenominator int  // largest denominator tried: 2, 3, 4 or 8
}

// DefaultPrecision is two decimals with fractions up to eighths.
func DefaultPrecision() Precision {
	return Precision{Decimals: 2, Fractions: true, MaxDenominator: 8}
}

// denominators are the kitchen fractions, smallest first.
var denominators = []int64{2, 3, 4, 8}

// fractionTolerance is how far a value may sit from a kitchen fraction
// and still be shown as one.
var fractionTolerance = big.NewRat(1, 100)

// Formatter renders quantities and ingredients as text.
type Formatter struct {
	table     *units.Table
	precision Precision
}

// NewFormatter creates a formatter. A nil table means units.Default().
func NewFormatter(t *units.Table, p Precision) *Formatter {
	if t == nil {
		t = units.Default()
	}
	if p.Decimals < 0 {
		p.Decimals = 0
	}
	return &Formatter{table: t, precision: p}
}

// Precision returns the formatter's rounding settings.
func (f *Formatter) Precision() Precision { return f.precision }

// Value renders one exact value for the given unit. Metric units always
// get decimals.
func (f *Formatter) Value(v *big.Rat, u domain.Unit) string {
	if v.IsInt() {
		return v.RatString()
	}
	if f.precision.Fractions && !f.isMetric(u) {
		if s, ok := f.fraction(v); ok {
			return s
		}
	}
	return trimDecimals(v.FloatString(f.precision.Decimals))
}

// Quantity renders a single value or a "low-high" range.
func (f *Formatter) Quantity(q domain.Quantity, u domain.Unit) string {
	s := f.Value(q.Low(), u)
	if q.IsRange() {
		s += "-" + f.Value(q.High(), u)
	}
	return s
}

// Label returns the display label of u for the quantity q: the short
// symbol for known units, the raw name for unknown ones, and nothing for
// plain counts.
func (f *Formatter) Label(q domain.Quantity, u domain.Unit) string {
	if u == domain.UnitCount || u.Family == domain.FamilyUnitless {
		return ""
	}
	d, ok := f.table.Definition(u.Name)
	if !ok {
		return u.Name
	}
	return d.Label(!q.IsRange() && q.Low().Cmp(big.NewRat(1, 1)) <= 0)
}

// Ingredient renders a line such as "2 1/4 cups all-purpose flour" or
// "butter, softened".
func (f *Formatter) Ingredient(ing domain.Ingredient) string {
	var parts []string
	if q, ok := ing.Quantity(); ok {
		parts = append(parts, f.Quantity(q, ing.Unit()))
		if label := f.Label(q, ing.Unit()); label != "" {
			parts = append(parts, label)
		}
	} else if u := ing.Unit(); u.Name != "" && u != domain.UnitCount {
		parts = append(parts, u.Name, "of")
	}
	if ing.Name() != "" {
		parts = append(parts, ing.Name())
	}

	s := strings.Join(parts, " ")
	if ing.Note() != "" {
		if s == "" {
			return ing.Note()
		}
		s += ", " + ing.Note()
	}
	return s
}

func (f *Formatter) isMetric(u domain.Unit) bool {
	d, ok := f.table.Definition(u.Name)
	return ok && d.System == domain.SystemMetric
}

// fraction finds the smallest kitchen denominator that lands within
// tolerance of v and renders it as "n/d" or "w n/d".
func (f *Formatter) fraction(v *big.Rat) (string, bool) {
	sign := ""
	abs := new(big.Rat).Abs(v)
	if v.Sign() < 0 {
		sign = "-"
	}

	for _, den := range denominators {
		if max := f.precision.MaxDenominator; max > 0 && den > int64(max) {
			break
		}
		// num = round(abs * den)
		scaled := new(big.Rat).Mul(abs, big.NewRat(den, 1))
		num := roundHalfUp(scaled)

		approx := new(big.Rat).SetFrac(num, big.NewInt(den))
		diff := new(big.Rat).Sub(abs, approx)
		if diff.Abs(diff).Cmp(fractionTolerance) > 0 {
			continue
		}

		whole, rem := new(big.Int).QuoRem(num, big.NewInt(den), new(big.Int))
		switch {
		case rem.Sign() == 0:
			return sign + whole.String(), true
		case whole.Sign() == 0:
			r := new(big.Rat).SetFrac(rem, big.NewInt(den))
			return sign + r.RatString(), true
		default:
			r := new(big.Rat).SetFrac(rem, big.NewInt(den))
			return sign + whole.String() + " " + r.RatString(), true
		}
	}
	return "", false
}

// roundHalfUp rounds a non-negative rational to the nearest integer.
func roundHalfUp(r *big.Rat) *big.Int {
	half := new(big.Rat).Add(r, big.NewRat(1, 2))
	return new(big.Int).Quo(half.Num(), half.Denom())
}

func trimDecimals(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
