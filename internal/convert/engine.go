// Package convert implements unit-system conversion for ingredient
// quantities. All arithmetic is exact; rounding is a display concern.
package convert

import (
	"math/big"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/units"
)

// Compile-time interface check.
var _ domain.Converter = (*Engine)(nil)

// step is a target unit that is used once an amount (in the family base
// unit) reaches min. Steps are ordered largest first.
type step struct {
	unit string
	min  *big.Rat
}

// Engine converts quantities between metric and imperial using a shared
// read-only unit table.
type Engine struct {
	table   *units.Table
	targets map[domain.System]map[domain.Family][]step
}

// NewEngine creates an engine over t. A nil table means units.Default().
func NewEngine(t *units.Table) *Engine {
	if t == nil {
		t = units.Default()
	}
	e := &Engine{table: t}
	e.targets = map[domain.System]map[domain.Family][]step{
		domain.SystemMetric: {
			domain.FamilyVolume: {e.step("liter", "1"), e.step("milliliter", "0")},
			domain.FamilyWeight: {e.step("kilogram", "1"), e.step("gram", "0")},
		},
		domain.SystemImperial: {
			domain.FamilyVolume: {e.step("cup", "1/4"), e.step("tablespoon", "1"), e.step("teaspoon", "0")},
			domain.FamilyWeight: {e.step("pound", "1"), e.step("ounce", "0")},
		},
	}
	return e
}

// step builds a threshold of `amount` units of name, expressed in the
// family base unit.
func (e *Engine) step(name, amount string) step {
	d, ok := e.table.Definition(name)
	if !ok {
		panic("convert: unit missing from table: " + name)
	}
	base, _ := d.ToBase()
	min, _ := new(big.Rat).SetString(amount)
	return step{unit: name, min: min.Mul(min, base)}
}

// Convert expresses q (in u) in the target system. Units that are
// already in the target system, units outside the volume and weight
// families, and units missing from the table come back unchanged.
//
// Ranges are converted endpoint-wise into a single unit chosen from the
// low endpoint, so low <= high holds afterwards.
func (e *Engine) Convert(q domain.Quantity, u domain.Unit, target domain.System) (domain.Quantity, domain.Unit) {
	if target == domain.SystemNone || !u.Family.Convertible() {
		return q, u
	}
	def, ok := e.table.Definition(u.Name)
	if !ok || def.System == target || def.System == domain.SystemNone {
		return q, u
	}
	base, ok := def.ToBase()
	if !ok {
		return q, u
	}

	lowBase := new(big.Rat).Mul(q.Low(), base)
	to := e.pick(target, u.Family, lowBase)
	if to == "" {
		return q, u
	}
	factor, ok := e.table.Factor(u.Name, to)
	if !ok {
		return q, u
	}
	toDef, _ := e.table.Definition(to)
	return q.Mul(factor), toDef.Unit
}

// pick returns the first step whose threshold the base amount reaches.
func (e *Engine) pick(target domain.System, family domain.Family, amount *big.Rat) string {
	steps := e.targets[target][family]
	for _, s := range steps {
		if amount.Cmp(s.min) >= 0 {
			return s.unit
		}
	}
	if len(steps) > 0 {
		return steps[len(steps)-1].unit
	}
	return ""
}

// Factor exposes the raw pairwise factor from the table.
func (e *Engine) Factor(from, to string) (*big.Rat, bool) {
	return e.table.Factor(from, to)
}
