package units

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		token      string
		wantName   string
		wantFamily domain.Family
	}{
		{"tbsp", "tablespoon", domain.FamilyVolume},
		{"tbsp.", "tablespoon", domain.FamilyVolume},
		{"Tbsp", "tablespoon", domain.FamilyVolume},
		{"tablespoons", "tablespoon", domain.FamilyVolume},
		{"TSP", "teaspoon", domain.FamilyVolume},
		{"cups", "cup", domain.FamilyVolume},
		{"Fl. Oz.", "fluid ounce", domain.FamilyVolume},
		{"fluid ounces", "fluid ounce", domain.FamilyVolume},
		{"mL", "milliliter", domain.FamilyVolume},
		{"litres", "liter", domain.FamilyVolume},
		{"oz", "ounce", domain.FamilyWeight},
		{"lbs.", "pound", domain.FamilyWeight},
		{"grams", "gram", domain.FamilyWeight},
		{"kg", "kilogram", domain.FamilyWeight},
		{"cloves", "clove", domain.FamilyCount},
		{"pinch", "pinch", domain.FamilyCount},
		{"  cup  ", "cup", domain.FamilyVolume},
		{"Smidgen", "smidgen", domain.FamilyUnknown},
		{"", "", domain.FamilyUnitless},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			u := Normalize(tt.token)
			if u.Name != tt.wantName || u.Family != tt.wantFamily {
				t.Fatalf("Normalize(%q) = %+v, want {%s %s}", tt.token, u, tt.wantName, tt.wantFamily)
			}
		})
	}
}

func TestSynonymsMapToOneUnit(t *testing.T) {
	table := Default()
	for _, name := range table.Names() {
		for _, syn := range table.Synonyms(name) {
			d, ok := table.Lookup(syn)
			if !ok {
				t.Fatalf("synonym %q of %q not found", syn, name)
			}
			if d.Unit.Name != name {
				t.Fatalf("synonym %q resolves to %q, want %q", syn, d.Unit.Name, name)
			}
		}
	}
}

func TestNewTableRejectsSharedSynonym(t *testing.T) {
	_, err := NewTable([]Definition{
		volume("cup", domain.SystemImperial, "236.5882365", "cup", "cups", "c"),
		count("clove", "cloves", "c"),
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestFactor(t *testing.T) {
	table := Default()

	f, ok := table.Factor("cup", "tablespoon")
	if !ok {
		t.Fatal("cup -> tablespoon should be convertible")
	}
	if f.RatString() != "16" {
		t.Fatalf("cup -> tablespoon = %s, want 16", f.RatString())
	}

	f, ok = table.Factor("pound", "ounce")
	if !ok || f.RatString() != "16" {
		t.Fatalf("pound -> ounce = %v (%v), want 16", f, ok)
	}

	if _, ok := table.Factor("cup", "gram"); ok {
		t.Fatal("cross-family factor must not exist")
	}
	if _, ok := table.Factor("clove", "gram"); ok {
		t.Fatal("count units have no factor")
	}
}

func TestToBaseReturnsCopy(t *testing.T) {
	d, _ := Default().Definition("cup")
	f, _ := d.ToBase()
	f.SetInt64(1)

	again, _ := d.ToBase()
	if again.Cmp(f) == 0 {
		t.Fatal("ToBase leaked the shared factor")
	}
}
