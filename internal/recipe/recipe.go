// Package recipe holds the recipe aggregate: an immutable original
// snapshot of the parsed ingredients plus the cumulative scale factor and
// unit system that produce every derived view.
package recipe

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"

	"github.com/hammamikhairi/recipekit/internal/display"
	"github.com/hammamikhairi/recipekit/internal/domain"
)

// standaloneNumber finds numbers in instruction text that scaling would
// have changed: "2 eggs", "bake 10-12 minutes", "350°F", "½ cup".
var standaloneNumber = regexp.MustCompile(`\b\d+(?:[./]\d+)?\b|[¼½¾⅐-⅞]`)

var one = big.NewRat(1, 1)

// Recipe is a parsed recipe. It is immutable: scaling and conversion
// return a new Recipe and leave the receiver untouched.
type Recipe struct {
	id        string
	title     string
	servings  int // original servings; 0 when unknown
	prepTime  string
	cookTime  string
	totalTime string
	steps     []string
	sourceURL string

	original []domain.Ingredient // snapshot taken at build time, never modified
	factor   *big.Rat            // cumulative, relative to the original
	system   domain.System

	converter domain.Converter
	formatter *display.Formatter

	view []domain.Ingredient // convert(system, original × factor)
}

// derive returns a copy of r with the given cumulative state and a
// recomputed ingredient view.
func (r *Recipe) derive(factor *big.Rat, system domain.System) *Recipe {
	out := *r
	out.factor = new(big.Rat).Set(factor)
	out.system = system
	out.view = make([]domain.Ingredient, len(r.original))
	for i, ing := range r.original {
		out.view[i] = ing.Scale(out.factor).Convert(r.converter, system)
	}
	return &out
}

// Scale multiplies the recipe by factor on top of any previous scaling.
// A nil, zero or negative factor returns domain.ErrInvalidFactor before
// anything is computed.
func (r *Recipe) Scale(factor *big.Rat) (*Recipe, error) {
	if factor == nil || factor.Sign() <= 0 {
		return nil, fmt.Errorf("scale by %v: %w", factor, domain.ErrInvalidFactor)
	}
	return r.derive(new(big.Rat).Mul(r.factor, factor), r.system), nil
}

// ScaleFloat is Scale for a float factor. The float is read through its
// shortest decimal form, so 1.1 scales by exactly 11/10.
func (r *Recipe) ScaleFloat(factor float64) (*Recipe, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return nil, fmt.Errorf("scale by %v: %w", factor, domain.ErrInvalidFactor)
	}
	f, ok := new(big.Rat).SetString(strconv.FormatFloat(factor, 'g', -1, 64))
	if !ok {
		return nil, fmt.Errorf("scale by %v: %w", factor, domain.ErrInvalidFactor)
	}
	return r.Scale(f)
}

// Halve scales by 1/2.
func (r *Recipe) Halve() *Recipe { return r.derive(new(big.Rat).Mul(r.factor, big.NewRat(1, 2)), r.system) }

// Double scales by 2.
func (r *Recipe) Double() *Recipe { return r.derive(new(big.Rat).Mul(r.factor, big.NewRat(2, 1)), r.system) }

// Triple scales by 3.
func (r *Recipe) Triple() *Recipe { return r.derive(new(big.Rat).Mul(r.factor, big.NewRat(3, 1)), r.system) }

// ScaleToServings sets the cumulative factor to n / original servings.
func (r *Recipe) ScaleToServings(n int) (*Recipe, error) {
	if n <= 0 {
		return nil, fmt.Errorf("scale to %d servings: %w", n, domain.ErrInvalidFactor)
	}
	if r.servings <= 0 {
		return nil, fmt.Errorf("scale to %d servings: %w", n, domain.ErrUnknownServings)
	}
	return r.derive(big.NewRat(int64(n), int64(r.servings)), r.system), nil
}

// ConvertTo expresses every convertible ingredient in system. The
// conversion starts from the original quantities, so converting twice, or
// back and forth, never accumulates error. domain.SystemNone restores the
// original units.
func (r *Recipe) ConvertTo(system domain.System) *Recipe {
	return r.derive(r.factor, system)
}

// ConvertToMetric is ConvertTo(domain.SystemMetric).
func (r *Recipe) ConvertToMetric() *Recipe { return r.ConvertTo(domain.SystemMetric) }

// ConvertToImperial is ConvertTo(domain.SystemImperial).
func (r *Recipe) ConvertToImperial() *Recipe { return r.ConvertTo(domain.SystemImperial) }

// Reset drops all scaling and conversion.
func (r *Recipe) Reset() *Recipe { return r.derive(one, domain.SystemNone) }

// ── Accessors ───────────────────────────────────────────────────

func (r *Recipe) ID() string        { return r.id }
func (r *Recipe) Title() string     { return r.title }
func (r *Recipe) PrepTime() string  { return r.prepTime }
func (r *Recipe) CookTime() string  { return r.cookTime }
func (r *Recipe) TotalTime() string { return r.totalTime }
func (r *Recipe) SourceURL() string { return r.sourceURL }

// System returns the active unit system; domain.SystemNone means the
// units as written.
func (r *Recipe) System() domain.System { return r.system }

// Factor returns a copy of the cumulative scale factor.
func (r *Recipe) Factor() *big.Rat { return new(big.Rat).Set(r.factor) }

// OriginalServings returns the servings as parsed, 0 when unknown.
func (r *Recipe) OriginalServings() int { return r.servings }

// Servings returns the scaled servings, rounded half up with a minimum
// of one. Unknown servings stay 0.
func (r *Recipe) Servings() int {
	if r.servings <= 0 {
		return 0
	}
	v := new(big.Rat).Mul(big.NewRat(int64(r.servings), 1), r.factor)
	v.Add(v, big.NewRat(1, 2))
	n := new(big.Int).Quo(v.Num(), v.Denom()).Int64()
	if n < 1 {
		return 1
	}
	return int(n)
}

// Ingredients returns the current view of the ingredients.
func (r *Recipe) Ingredients() []domain.Ingredient {
	return append([]domain.Ingredient(nil), r.view...)
}

// OriginalIngredients returns the ingredients as parsed.
func (r *Recipe) OriginalIngredients() []domain.Ingredient {
	return append([]domain.Ingredient(nil), r.original...)
}

// Instructions returns the instruction steps. They are never rewritten
// by scaling.
func (r *Recipe) Instructions() []string {
	return append([]string(nil), r.steps...)
}

// InstructionsAdvisory reports whether the recipe is scaled and some
// instruction mentions a number that was left unscaled.
func (r *Recipe) InstructionsAdvisory() bool {
	if r.factor.Cmp(one) == 0 {
		return false
	}
	for _, s := range r.steps {
		if standaloneNumber.MatchString(s) {
			return true
		}
	}
	return false
}

// Summary returns the listing view of the recipe.
func (r *Recipe) Summary() domain.RecipeSummary {
	return domain.RecipeSummary{
		ID:       r.id,
		Title:    r.title,
		Servings: r.Servings(),
		Source:   r.sourceURL,
	}
}
