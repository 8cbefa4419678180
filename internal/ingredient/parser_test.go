package ingredient

import (
	"testing"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
)

func TestParseLine(t *testing.T) {
	parser := NewParser(nil, logger.New(logger.LevelOff, nil))

	tests := []struct {
		raw        string
		wantQty    string // empty: no quantity
		wantUnit   string
		wantFamily domain.Family
		wantName   string
		wantNote   string
	}{
		{"2 1/4 cups all-purpose flour", "9/4", "cup", domain.FamilyVolume, "all-purpose flour", ""},
		{"1-2 tbsp olive oil", "1-2", "tablespoon", domain.FamilyVolume, "olive oil", ""},
		{"a pinch of salt", "", "pinch", domain.FamilyCount, "salt", ""},
		{"pinch of salt", "", "pinch", domain.FamilyCount, "salt", ""},
		{"Pinch of nutmeg", "", "pinch", domain.FamilyCount, "nutmeg", ""},
		{"dash of hot sauce", "", "dash", domain.FamilyCount, "hot sauce", ""},
		{"cream of tartar", "", "", domain.FamilyUnitless, "cream of tartar", ""},
		{"juice of 1 lemon", "", "", domain.FamilyUnitless, "juice of 1 lemon", ""},
		{"salt and pepper to taste", "", "", domain.FamilyUnitless, "salt and pepper", "to taste"},
		{"Salt, to taste", "", "", domain.FamilyUnitless, "Salt", "to taste"},
		{"1 cup butter, softened", "1", "cup", domain.FamilyVolume, "butter", "softened"},
		{"2 cloves garlic, finely minced", "2", "clove", domain.FamilyCount, "garlic", "finely minced"},
		{"1 (14 oz) can diced tomatoes", "1", "can", domain.FamilyCount, "diced tomatoes", "14 oz"},
		{"3 large eggs", "3", "count", domain.FamilyCount, "large eggs", ""},
		{"1 fl oz vanilla extract", "1", "fluid ounce", domain.FamilyVolume, "vanilla extract", ""},
		{"200g butter", "200", "gram", domain.FamilyWeight, "butter", ""},
		{"2 cups of flour", "2", "cup", domain.FamilyVolume, "flour", ""},
		{"1 1/2 cups chicken broth, low sodium", "3/2", "cup", domain.FamilyVolume, "chicken broth, low sodium", ""},
		{"½ cup sugar (Note 2)", "1/2", "cup", domain.FamilyVolume, "sugar", ""},
		{"&frac12; cup milk", "1/2", "cup", domain.FamilyVolume, "milk", ""},
		{"4 ounces cream cheese, at room temperature", "4", "ounce", domain.FamilyWeight, "cream cheese", "at room temperature"},
		{"2 tbsp olive oil, plus more for drizzling", "2", "tablespoon", domain.FamilyVolume, "olive oil", "plus more for drizzling"},
		{"1 onion, peeled and diced", "1", "count", domain.FamilyCount, "onion", "peeled and diced"},
		{"1-inch piece ginger", "", "", domain.FamilyUnitless, "1-inch piece ginger", ""},
		{"2 smidgens saffron", "2", "count", domain.FamilyCount, "smidgens saffron", ""},
		{"a splash of milk", "", "splash", domain.FamilyUnknown, "milk", ""},
		{"3", "3", "", domain.FamilyUnitless, "", ""},
		{"1 lb. ground beef (85% lean)", "1", "pound", domain.FamilyWeight, "ground beef", "85% lean"},
		{"fresh parsley, chopped, for garnish", "", "", domain.FamilyUnitless, "fresh parsley", "chopped, for garnish"},
		{"1 1/0 cups water", "", "", domain.FamilyUnitless, "1 1/0 cups water", ""},
		{"Salt, ground black pepper", "", "", domain.FamilyUnitless, "Salt, ground black pepper", ""},
		{"black pepper, freshly ground", "", "", domain.FamilyUnitless, "black pepper", "freshly ground"},
		{"1 cup milk, warm", "1", "cup", domain.FamilyVolume, "milk", "warm"},
		{"2 cups stock, hot or cold", "2", "cup", domain.FamilyVolume, "stock", "hot or cold"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ing := parser.ParseLine(tt.raw)

			q, ok := ing.Quantity()
			if tt.wantQty == "" {
				if ok {
					t.Errorf("quantity = %s, want none", q)
				}
			} else if !ok || q.String() != tt.wantQty {
				t.Errorf("quantity = %s (%v), want %s", q, ok, tt.wantQty)
			}
			if ing.Unit().Name != tt.wantUnit || ing.Unit().Family != tt.wantFamily {
				t.Errorf("unit = %+v, want {%s %s}", ing.Unit(), tt.wantUnit, tt.wantFamily)
			}
			if ing.Name() != tt.wantName {
				t.Errorf("name = %q, want %q", ing.Name(), tt.wantName)
			}
			if ing.Note() != tt.wantNote {
				t.Errorf("note = %q, want %q", ing.Note(), tt.wantNote)
			}
			if ing.RawText() != tt.raw {
				t.Errorf("raw = %q, want %q", ing.RawText(), tt.raw)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  2   cups   flour  ", "2 cups flour"},
		{"1 cup sugar (see note)", "1 cup sugar"},
		{"1 cup sugar (Note 3)", "1 cup sugar"},
		{"1 tsp salt (, kosher)", "1 tsp salt (kosher)"},
		{"1 tsp salt ()", "1 tsp salt"},
		{"2 eggs (large", "2 eggs large"},
		{"2 eggs large)", "2 eggs large"},
		{"Mom&#39;s “secret” sauce", `Mom's "secret" sauce`},
		{"1–2 cups stock,", "1-2 cups stock"},
		{"- 1 cup rice", "1 cup rice"},
		{"/2 cup water", "2 cup water"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{"2 cups flour", KindIngredient},
		{"salt and pepper to taste", KindIngredient},
		{"Salt and Pepper", KindIngredient},
		{"RASPBERRY COULIS", KindHeader},
		{"For the sauce:", KindHeader},
		{"Frosting:", KindHeader},
		{"Lemon Curd", KindHeader},
		{"Kosher Salt", KindIngredient},
		{"Large Eggs", KindIngredient},
		{"Garlic Cloves", KindIngredient},
		{"Extra Virgin Oil", KindIngredient},
		{"Kosher Salt:", KindHeader},
		{"Note: use unsalted butter", KindNote},
		{"see post for substitutions", KindNote},
		{"(optional, see notes)", KindNote},
		{"", KindBlank},
		{"   ", KindBlank},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.line, got, tt.want)
			}
		})
	}
}

func TestSectionName(t *testing.T) {
	if got := SectionName("For the sauce:"); got != "For the sauce" {
		t.Fatalf("SectionName = %q", got)
	}
}
