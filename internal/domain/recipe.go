// Package domain defines the core types and interfaces for recipe
// parsing, scaling and unit conversion.
// All other packages depend on domain; domain depends on nothing.
package domain

import "math/big"

// RawDocument is the normalized raw recipe handed over by a page fetcher
// or site adapter. Nothing in it has been parsed yet.
type RawDocument struct {
	Title            string   `json:"title" yaml:"title"`
	Servings         int      `json:"servings,omitempty" yaml:"servings,omitempty"`
	PrepTime         string   `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	CookTime         string   `json:"cook_time,omitempty" yaml:"cook_time,omitempty"`
	TotalTime        string   `json:"total_time,omitempty" yaml:"total_time,omitempty"`
	IngredientLines  []string `json:"raw_ingredient_lines" yaml:"raw_ingredient_lines"`
	InstructionLines []string `json:"raw_instruction_lines" yaml:"raw_instruction_lines"`
	SourceURL        string   `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Servings int    `json:"servings,omitempty" yaml:"servings,omitempty"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
}

// IngredientFields carries the parts of an ingredient to NewIngredient.
// A nil Quantity means the line had no parseable amount.
type IngredientFields struct {
	Quantity *Quantity
	Unit     Unit
	Name     string
	Note     string
	Section  string
	Raw      string
}

// Ingredient is one parsed ingredient line. It is an immutable value;
// Scale and Convert return new ingredients.
type Ingredient struct {
	quantity    Quantity
	hasQuantity bool
	unit        Unit
	name        string
	note        string
	section     string
	raw         string
}

// NewIngredient builds an ingredient from its parts.
func NewIngredient(f IngredientFields) Ingredient {
	ing := Ingredient{
		unit:    f.Unit,
		name:    f.Name,
		note:    f.Note,
		section: f.Section,
		raw:     f.Raw,
	}
	if f.Quantity != nil {
		ing.quantity = *f.Quantity
		ing.hasQuantity = true
	}
	return ing
}

// Quantity returns the amount and whether the line had one at all.
func (i Ingredient) Quantity() (Quantity, bool) { return i.quantity, i.hasQuantity }

// Unit returns the canonical unit.
func (i Ingredient) Unit() Unit { return i.unit }

// Name returns the ingredient name with notes removed.
func (i Ingredient) Name() string { return i.name }

// Note returns the stripped note cruft ("softened", "to taste"), if any.
func (i Ingredient) Note() string { return i.note }

// Section returns the sub-recipe header the line appeared under.
func (i Ingredient) Section() string { return i.section }

// RawText returns the untouched input line.
func (i Ingredient) RawText() string { return i.raw }

// WithSection returns a copy of i labelled with section.
func (i Ingredient) WithSection(section string) Ingredient {
	i.section = section
	return i
}

// Scale returns i with its quantity multiplied by factor. Ingredients
// without a quantity are returned unchanged.
func (i Ingredient) Scale(factor *big.Rat) Ingredient {
	if !i.hasQuantity {
		return i
	}
	i.quantity = i.quantity.Mul(factor)
	return i
}

// Convert returns i expressed in the target system. Ingredients without
// a quantity are returned unchanged.
func (i Ingredient) Convert(c Converter, target System) Ingredient {
	if !i.hasQuantity || c == nil {
		return i
	}
	i.quantity, i.unit = c.Convert(i.quantity, i.unit, target)
	return i
}

// Equal reports whether two ingredients carry the same values.
func (i Ingredient) Equal(other Ingredient) bool {
	if i.hasQuantity != other.hasQuantity {
		return false
	}
	if i.hasQuantity && !i.quantity.Equal(other.quantity) {
		return false
	}
	return i.unit == other.unit &&
		i.name == other.name &&
		i.note == other.note &&
		i.section == other.section &&
		i.raw == other.raw
}
