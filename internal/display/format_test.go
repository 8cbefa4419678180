package display

import (
	"math/big"
	"regexp"
	"strings"
	"testing"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/units"
)

func rat(s string) *big.Rat {
	r, _ := new(big.Rat).SetString(s)
	return r
}

func TestValue(t *testing.T) {
	f := NewFormatter(nil, DefaultPrecision())
	cup := units.Normalize("cup")
	ml := units.Normalize("ml")

	tests := []struct {
		name  string
		value string
		unit  domain.Unit
		want  string
	}{
		{"integer", "2", cup, "2"},
		{"half", "1/2", cup, "1/2"},
		{"mixed", "9/4", cup, "2 1/4"},
		{"third", "1/3", cup, "1/3"},
		{"near third", "0.333", cup, "1/3"},
		{"eighth", "3/8", cup, "3/8"},
		{"not a kitchen fraction", "0.7", cup, "0.7"},
		{"metric never fractions", "1/2", ml, "0.5"},
		{"metric rounding", "532.323532125", ml, "532.32"},
		{"rounds to whole", "2.999", ml, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Value(rat(tt.value), tt.unit); got != tt.want {
				t.Errorf("Value(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValueWithoutFractions(t *testing.T) {
	f := NewFormatter(nil, Precision{Decimals: 3})
	if got := f.Value(rat("1/3"), units.Normalize("cup")); got != "0.333" {
		t.Fatalf("Value = %q, want 0.333", got)
	}
}

func TestIngredient(t *testing.T) {
	f := NewFormatter(nil, DefaultPrecision())
	q94 := domain.NewQuantity(big.NewRat(9, 4))
	q1 := domain.NewQuantity(big.NewRat(1, 1))
	q3 := domain.NewQuantity(big.NewRat(3, 1))
	r12, _ := domain.NewRange(big.NewRat(1, 1), big.NewRat(2, 1))

	tests := []struct {
		name string
		ing  domain.Ingredient
		want string
	}{
		{"plural unit", domain.NewIngredient(domain.IngredientFields{Quantity: &q94, Unit: units.Normalize("cups"), Name: "all-purpose flour"}), "2 1/4 cups all-purpose flour"},
		{"single unit", domain.NewIngredient(domain.IngredientFields{Quantity: &q1, Unit: units.Normalize("cup"), Name: "butter", Note: "softened"}), "1 cup butter, softened"},
		{"range", domain.NewIngredient(domain.IngredientFields{Quantity: &r12, Unit: units.Normalize("tbsp"), Name: "olive oil"}), "1-2 tbsp olive oil"},
		{"count", domain.NewIngredient(domain.IngredientFields{Quantity: &q3, Unit: domain.UnitCount, Name: "large eggs"}), "3 large eggs"},
		{"cloves", domain.NewIngredient(domain.IngredientFields{Quantity: &q3, Unit: units.Normalize("clove"), Name: "garlic"}), "3 cloves garlic"},
		{"no quantity with unit", domain.NewIngredient(domain.IngredientFields{Unit: units.Normalize("pinch"), Name: "salt"}), "pinch of salt"},
		{"no quantity", domain.NewIngredient(domain.IngredientFields{Unit: domain.UnitNone, Name: "salt and pepper", Note: "to taste"}), "salt and pepper, to taste"},
		{"unknown unit", domain.NewIngredient(domain.IngredientFields{Quantity: &q3, Unit: units.Normalize("smidgen"), Name: "saffron"}), "3 smidgen saffron"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Ingredient(tt.ing); got != tt.want {
				t.Errorf("Ingredient = %q, want %q", got, tt.want)
			}
		})
	}
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestHighlightKeepsText(t *testing.T) {
	block := strings.Join([]string{
		strings.Repeat("=", 50),
		"Pancakes",
		strings.Repeat("=", 50),
		"Servings: 4",
		"",
		strings.Repeat("─", 30),
		"INGREDIENTS",
		strings.Repeat("─", 30),
		"  • 2 cups flour",
	}, "\n")

	if got := ansi.ReplaceAllString(Highlight(block), ""); got != block {
		t.Fatalf("Highlight changed the text:\n%s", got)
	}
}

func TestRenderBannerCentres(t *testing.T) {
	out := RenderBanner(200, false)
	first := strings.Split(out, "\n")[0]
	if !strings.HasPrefix(first, strings.Repeat(" ", 50)) {
		t.Fatalf("banner not centred: %q", first)
	}
}
