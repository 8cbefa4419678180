package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
)

func newTestLibrary() *Library {
	log := logger.New(logger.LevelOff, nil)
	return NewLibrary(NewBuilder(log), log)
}

func TestLibraryList(t *testing.T) {
	lib := newTestLibrary()

	recipes, err := lib.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) != 3 {
		t.Fatalf("expected 3 recipes, got %d", len(recipes))
	}
	if recipes[0].Title != "Chicken Alfredo" {
		t.Fatalf("list not sorted by title: %+v", recipes)
	}
}

func TestLibraryGet(t *testing.T) {
	lib := newTestLibrary()
	ctx := context.Background()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"chicken-alfredo", nil},
		{"vegetable-stir-fry", nil},
		{"chocolate-chip-cookies", nil},
		{"nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := lib.Get(ctx, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID() != tt.id {
				t.Fatalf("expected ID %s, got %s", tt.id, r.ID())
			}
			if len(r.Instructions()) == 0 {
				t.Fatal("recipe has no instructions")
			}
			if len(r.Ingredients()) == 0 {
				t.Fatal("recipe has no ingredients")
			}
		})
	}
}

func TestLibrarySeedSections(t *testing.T) {
	r, err := newTestLibrary().Get(context.Background(), "vegetable-stir-fry")
	if err != nil {
		t.Fatal(err)
	}
	var sauce int
	for _, ing := range r.Ingredients() {
		if ing.Section() == "Sauce" {
			sauce++
		}
	}
	if sauce != 5 {
		t.Fatalf("expected 5 sauce ingredients, got %d", sauce)
	}
}

func TestLibrarySearch(t *testing.T) {
	lib := newTestLibrary()
	ctx := context.Background()

	tests := []struct {
		query     string
		wantCount int
	}{
		{"chicken", 1},
		{"garlic", 2},
		{"CHOCOLATE", 1},
		{"", 3},
		{"nonexistent-query-xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := lib.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(results) != tt.wantCount {
				t.Fatalf("query=%q: expected %d results, got %d", tt.query, tt.wantCount, len(results))
			}
		})
	}
}

func TestLibraryAdd(t *testing.T) {
	lib := newTestLibrary()
	ctx := context.Background()
	r := newTestBuilder().Build(testDocument())

	if err := lib.Add(ctx, r); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := lib.Add(ctx, r); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("second add err = %v, want ErrAlreadyExists", err)
	}
	got, err := lib.Get(ctx, r.ID())
	if err != nil || got != r {
		t.Fatalf("get after add: %v", err)
	}
}
