// Package units holds the unit synonym table and the normalizer that
// maps free-text unit tokens onto canonical units.
//
// The table is process-wide configuration: it is built once, never
// mutated, and shared by reference with the normalizer and the
// conversion engine.
package units

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

// Definition describes one canonical unit.
type Definition struct {
	Unit   domain.Unit
	System domain.System
	Symbol string // short display form ("tbsp", "ml")
	Plural string // display form for amounts other than one

	toBase   *big.Rat // per-family base: milliliter or gram; nil if not convertible
	synonyms []string
}

// ToBase returns the factor that converts one of this unit into the
// family base unit, and false for units without one.
func (d Definition) ToBase() (*big.Rat, bool) {
	if d.toBase == nil {
		return nil, false
	}
	return new(big.Rat).Set(d.toBase), true
}

// Label returns the display label for an amount, plural unless the
// amount is exactly one.
func (d Definition) Label(one bool) string {
	if one || d.Plural == "" {
		return d.Symbol
	}
	return d.Plural
}

// Table is an immutable synonym and conversion-factor table.
type Table struct {
	byName    map[string]Definition
	bySynonym map[string]string
}

// NewTable validates defs and builds a table. Every synonym must map to
// exactly one canonical unit.
func NewTable(defs []Definition) (*Table, error) {
	t := &Table{
		byName:    make(map[string]Definition, len(defs)),
		bySynonym: make(map[string]string),
	}
	for _, d := range defs {
		name := d.Unit.Name
		if _, dup := t.byName[name]; dup {
			return nil, fmt.Errorf("unit %q: %w", name, domain.ErrAlreadyExists)
		}
		t.byName[name] = d
		for _, s := range append([]string{name}, d.synonyms...) {
			k := Key(s)
			if owner, dup := t.bySynonym[k]; dup && owner != name {
				return nil, fmt.Errorf("synonym %q claimed by %q and %q: %w", s, owner, name, domain.ErrAlreadyExists)
			}
			t.bySynonym[k] = name
		}
	}
	return t, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(builtin())
	if err != nil {
		panic(fmt.Sprintf("units: builtin table: %v", err))
	}
	return t
})

// Default returns the shared built-in table.
func Default() *Table { return defaultTable() }

// Lookup resolves a unit token (any synonym, any case, with or without
// periods) to its definition.
func (t *Table) Lookup(token string) (Definition, bool) {
	name, ok := t.bySynonym[Key(token)]
	if !ok {
		return Definition{}, false
	}
	return t.byName[name], true
}

// Definition returns the definition of a canonical unit name.
func (t *Table) Definition(name string) (Definition, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Factor returns the multiplier converting one `from` into `to`. Both
// must be convertible units of the same family.
func (t *Table) Factor(from, to string) (*big.Rat, bool) {
	f, ok := t.byName[from]
	if !ok || f.toBase == nil {
		return nil, false
	}
	g, ok := t.byName[to]
	if !ok || g.toBase == nil || f.Unit.Family != g.Unit.Family {
		return nil, false
	}
	return new(big.Rat).Quo(f.toBase, g.toBase), true
}

// Names returns every canonical unit name, sorted.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.byName))
	for name := range t.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Synonyms returns the synonyms registered for a canonical name.
func (t *Table) Synonyms(name string) []string {
	d, ok := t.byName[name]
	if !ok {
		return nil
	}
	return append([]string(nil), d.synonyms...)
}

// Key normalizes a unit token for lookup: lower case, periods dropped,
// whitespace collapsed. "Fl. Oz." and "fl oz" share a key.
func Key(token string) string {
	s := strings.ToLower(strings.ReplaceAll(token, ".", " "))
	return strings.Join(strings.Fields(s), " ")
}

func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("units: bad factor " + s)
	}
	return r
}

func volume(name string, sys domain.System, factor, symbol, plural string, synonyms ...string) Definition {
	return Definition{
		Unit:     domain.Unit{Name: name, Family: domain.FamilyVolume},
		System:   sys,
		Symbol:   symbol,
		Plural:   plural,
		toBase:   rat(factor),
		synonyms: synonyms,
	}
}

func weight(name string, sys domain.System, factor, symbol, plural string, synonyms ...string) Definition {
	return Definition{
		Unit:     domain.Unit{Name: name, Family: domain.FamilyWeight},
		System:   sys,
		Symbol:   symbol,
		Plural:   plural,
		toBase:   rat(factor),
		synonyms: synonyms,
	}
}

func count(name, plural string, synonyms ...string) Definition {
	return Definition{
		Unit:     domain.Unit{Name: name, Family: domain.FamilyCount},
		Symbol:   name,
		Plural:   plural,
		synonyms: synonyms,
	}
}

// builtin is the fixed synonym and factor table. Volume factors are in
// milliliters, weight factors in grams, using the exact US customary and
// avoirdupois definitions.
func builtin() []Definition {
	const (
		metric   = domain.SystemMetric
		imperial = domain.SystemImperial
	)
	return []Definition{
		volume("milliliter", metric, "1", "ml", "ml", "ml", "mls", "milliliters", "millilitre", "millilitres"),
		volume("centiliter", metric, "10", "cl", "cl", "cl", "centiliters", "centilitre", "centilitres"),
		volume("deciliter", metric, "100", "dl", "dl", "dl", "deciliters", "decilitre", "decilitres"),
		volume("liter", metric, "1000", "L", "L", "l", "lt", "ltr", "liters", "litre", "litres"),
		volume("teaspoon", imperial, "4.92892159375", "tsp", "tsp", "tsp", "tsps", "tspn", "teaspoons", "tea spoon"),
		volume("tablespoon", imperial, "14.78676478125", "tbsp", "tbsp", "tbsp", "tbsps", "tbs", "tbl", "tbls", "tblsp", "tablespoons", "table spoon"),
		volume("fluid ounce", imperial, "29.5735295625", "fl oz", "fl oz", "fl oz", "floz", "fl ounce", "fl ounces", "fluid ounces", "fluid oz"),
		volume("cup", imperial, "236.5882365", "cup", "cups", "c", "cups"),
		volume("pint", imperial, "473.176473", "pint", "pints", "pt", "pts", "pints"),
		volume("quart", imperial, "946.352946", "quart", "quarts", "qt", "qts", "quarts"),
		volume("gallon", imperial, "3785.411784", "gallon", "gallons", "gal", "gals", "gallons"),

		weight("milligram", metric, "0.001", "mg", "mg", "mg", "mgs", "milligrams", "milligramme", "milligrammes"),
		weight("gram", metric, "1", "g", "g", "g", "gr", "gm", "gms", "grams", "gramme", "grammes"),
		weight("kilogram", metric, "1000", "kg", "kg", "kg", "kgs", "kilo", "kilos", "kilograms", "kilogramme", "kilogrammes"),
		weight("ounce", imperial, "28.349523125", "oz", "oz", "oz", "ozs", "ounces"),
		weight("pound", imperial, "453.59237", "lb", "lb", "lb", "lbs", "pounds"),

		count("count", "", "ct", "each", "ea"),
		count("clove", "cloves", "cloves"),
		count("can", "cans", "cans", "tin", "tins"),
		count("package", "packages", "packages", "pkg", "pkgs", "packet", "packets", "pack", "packs"),
		count("bunch", "bunches", "bunches"),
		count("head", "heads", "heads"),
		count("stalk", "stalks", "stalks"),
		count("sprig", "sprigs", "sprigs"),
		count("slice", "slices", "slices"),
		count("piece", "pieces", "pieces", "pc", "pcs"),
		count("stick", "sticks", "sticks"),
		count("pinch", "pinches", "pinches"),
		count("dash", "dashes", "dashes"),
		count("handful", "handfuls", "handfuls"),
		count("sheet", "sheets", "sheets"),
		count("fillet", "fillets", "fillets"),
		count("jar", "jars", "jars"),
		count("bottle", "bottles", "bottles"),
		count("bag", "bags", "bags"),
		count("box", "boxes", "boxes"),
		count("leaf", "leaves", "leaves"),
		count("drop", "drops", "drops"),
		count("strip", "strips", "strips"),
	}
}
