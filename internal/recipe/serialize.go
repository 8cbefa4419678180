package recipe

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipekit/internal/display"
	"github.com/hammamikhairi/recipekit/internal/domain"
)

// Document is the structured form of a recipe. Its keys are stable.
type Document struct {
	ID                   string               `json:"id" yaml:"id"`
	Title                string               `json:"title" yaml:"title"`
	Servings             *int                 `json:"servings" yaml:"servings"`
	OriginalServings     *int                 `json:"original_servings,omitempty" yaml:"original_servings,omitempty"`
	PrepTime             string               `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	CookTime             string               `json:"cook_time,omitempty" yaml:"cook_time,omitempty"`
	TotalTime            string               `json:"total_time,omitempty" yaml:"total_time,omitempty"`
	Ingredients          []IngredientDocument `json:"ingredients" yaml:"ingredients"`
	Instructions         []string             `json:"instructions" yaml:"instructions"`
	SourceURL            string               `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	Scale                float64              `json:"scale" yaml:"scale"`
	ScaleExact           string               `json:"scale_exact" yaml:"scale_exact"`
	System               string               `json:"system" yaml:"system"`
	InstructionsAdvisory bool                 `json:"instructions_advisory" yaml:"instructions_advisory"`
}

// IngredientDocument is one ingredient in a Document. Quantity is nil
// for lines without an amount.
type IngredientDocument struct {
	Quantity   *QuantityDocument `json:"quantity" yaml:"quantity"`
	Unit       string            `json:"unit" yaml:"unit"`
	UnitFamily string            `json:"unit_family" yaml:"unit_family"`
	Name       string            `json:"name" yaml:"name"`
	Note       string            `json:"note,omitempty" yaml:"note,omitempty"`
	Section    string            `json:"section,omitempty" yaml:"section,omitempty"`
	RawText    string            `json:"raw_text" yaml:"raw_text"`
	Display    string            `json:"display" yaml:"display"`
}

// QuantityDocument carries a quantity both as numbers and as the text
// shown to users. Low equals High for single values.
type QuantityDocument struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
	Text string  `json:"text" yaml:"text"`
}

// ToStructured returns the structured view of the current state.
func (r *Recipe) ToStructured() Document {
	f := r.textFormatter()
	doc := Document{
		ID:                   r.id,
		Title:                r.title,
		PrepTime:             r.prepTime,
		CookTime:             r.cookTime,
		TotalTime:            r.totalTime,
		Ingredients:          make([]IngredientDocument, 0, len(r.view)),
		Instructions:         r.Instructions(),
		SourceURL:            r.sourceURL,
		ScaleExact:           r.factor.RatString(),
		System:               r.system.String(),
		InstructionsAdvisory: r.InstructionsAdvisory(),
	}
	if doc.Instructions == nil {
		doc.Instructions = []string{}
	}
	if n := r.Servings(); n > 0 {
		doc.Servings = &n
	}
	if n := r.OriginalServings(); n > 0 {
		doc.OriginalServings = &n
	}
	doc.Scale, _ = r.factor.Float64()

	for _, ing := range r.view {
		doc.Ingredients = append(doc.Ingredients, NewIngredientDocument(ing, f))
	}
	return doc
}

// NewIngredientDocument returns the structured form of one ingredient,
// with display text rendered by f.
func NewIngredientDocument(ing domain.Ingredient, f *display.Formatter) IngredientDocument {
	d := IngredientDocument{
		Unit:       ing.Unit().Name,
		UnitFamily: string(ing.Unit().Family),
		Name:       ing.Name(),
		Note:       ing.Note(),
		Section:    ing.Section(),
		RawText:    ing.RawText(),
		Display:    f.Ingredient(ing),
	}
	if q, ok := ing.Quantity(); ok {
		d.Quantity = &QuantityDocument{
			Low:  q.LowFloat(),
			High: q.HighFloat(),
			Text: f.Quantity(q, ing.Unit()),
		}
	}
	return d
}

// Structured returns ToStructured as a value for encoders.
func (r *Recipe) Structured() any { return r.ToStructured() }

// RenderText returns the fixed human-readable block:
//
//	==================================================
//	Title
//	==================================================
//	Servings: 4
//
//	──────────────────────────────
//	INGREDIENTS
//	──────────────────────────────
//	  • 2 cups flour
//
//	──────────────────────────────
//	INSTRUCTIONS
//	──────────────────────────────
//	  1. Mix.
func (r *Recipe) RenderText() string {
	f := r.textFormatter()
	heavy := strings.Repeat("=", 50)
	light := strings.Repeat("─", 30)

	lines := []string{heavy, r.title, heavy}
	if n := r.Servings(); n > 0 {
		lines = append(lines, fmt.Sprintf("Servings: %d", n))
	}
	if r.prepTime != "" {
		lines = append(lines, "Prep Time: "+r.prepTime)
	}
	if r.cookTime != "" {
		lines = append(lines, "Cook Time: "+r.cookTime)
	}
	if r.totalTime != "" {
		lines = append(lines, "Total Time: "+r.totalTime)
	}
	if r.factor.Cmp(one) != 0 || r.system != domain.SystemNone {
		lines = append(lines, fmt.Sprintf("Scale: %sx (%s)", f.Value(r.factor, domain.UnitNone), r.system))
	}

	lines = append(lines, "", light, "INGREDIENTS", light)
	section := ""
	for _, ing := range r.view {
		if ing.Section() != section {
			section = ing.Section()
			if section != "" {
				lines = append(lines, "  ["+section+"]")
			}
		}
		lines = append(lines, "  • "+f.Ingredient(ing))
	}

	lines = append(lines, "", light, "INSTRUCTIONS", light)
	for i, step := range r.steps {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, step))
	}
	if r.InstructionsAdvisory() {
		lines = append(lines, "", "Note: amounts mentioned in the instructions were not scaled.")
	}

	if r.sourceURL != "" {
		lines = append(lines, "", "Source: "+r.sourceURL)
	}
	return strings.Join(lines, "\n")
}

func (r *Recipe) textFormatter() *display.Formatter {
	if r.formatter == nil {
		return display.NewFormatter(nil, display.DefaultPrecision())
	}
	return r.formatter
}
