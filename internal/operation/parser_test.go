package operation

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/recipe"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input        string
		wantType     domain.OperationType
		wantFactor   string
		wantServings int
	}{
		// Shortcuts
		{"halve", domain.OperationHalve, "", 0},
		{"half", domain.OperationHalve, "", 0},
		{"double", domain.OperationDouble, "", 0},
		{"2x", domain.OperationDouble, "", 0},
		{"Triple", domain.OperationTriple, "", 0},

		// Factors
		{"x1.5", domain.OperationScale, "3/2", 0},
		{"1.5x", domain.OperationScale, "3/2", 0},
		{"scale 1/2", domain.OperationScale, "1/2", 0},
		{"scale by 2 1/2", domain.OperationScale, "5/2", 0},
		{"times 4", domain.OperationScale, "4", 0},
		{"x ½", domain.OperationScale, "1/2", 0},
		{"scale -1", domain.OperationScale, "-1", 0},

		// Servings
		{"serves 6", domain.OperationServings, "", 6},
		{"6 servings", domain.OperationServings, "", 6},
		{"for 10 people", domain.OperationServings, "", 10},

		// Units
		{"metric", domain.OperationMetric, "", 0},
		{"convert to metric", domain.OperationMetric, "", 0},
		{"imperial", domain.OperationImperial, "", 0},
		{"US", domain.OperationImperial, "", 0},

		// Reset
		{"reset", domain.OperationReset, "", 0},
		{"as written", domain.OperationReset, "", 0},

		// Canonical names
		{"scale=3/2", domain.OperationScale, "3/2", 0},
		{"Scale = 1 1/2", domain.OperationScale, "3/2", 0},
		{"servings=8", domain.OperationServings, "", 8},
		{"metric=", domain.OperationMetric, "", 0},
		{"reset=", domain.OperationReset, "", 0},

		// Unknown
		{"juggle=3", domain.OperationUnknown, "", 0},
		{"flambé the cat", domain.OperationUnknown, "", 0},
		{"", domain.OperationUnknown, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if op.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, op.Type, tt.wantType)
			}
			if tt.wantFactor != "" && (op.Factor == nil || op.Factor.RatString() != tt.wantFactor) {
				t.Errorf("input=%q: got factor %v, want %s", tt.input, op.Factor, tt.wantFactor)
			}
			if op.Servings != tt.wantServings {
				t.Errorf("input=%q: got servings %d, want %d", tt.input, op.Servings, tt.wantServings)
			}
		})
	}
}

func TestKeywordParserBadFactor(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	_, err := parser.Parse(context.Background(), "scale 1/0")
	var pf *domain.ParseFailure
	if !errors.As(err, &pf) {
		t.Fatalf("expected ParseFailure, got %v", err)
	}
}

func TestKeywordParserBadCanonicalValue(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	for _, input := range []string{"servings=many", "double=3", "scale=", "scale=1/0"} {
		t.Run(input, func(t *testing.T) {
			_, err := parser.Parse(context.Background(), input)
			var pf *domain.ParseFailure
			if !errors.As(err, &pf) {
				t.Fatalf("expected ParseFailure, got %v", err)
			}
		})
	}
}

func testRecipe() *recipe.Recipe {
	log := logger.New(logger.LevelOff, nil)
	return recipe.NewBuilder(log).Build(domain.RawDocument{
		Title:            "Rice",
		Servings:         4,
		IngredientLines:  []string{"2 cups rice", "500 g water"},
		InstructionLines: []string{"Simmer for 18 minutes."},
	})
}

func TestApplyAll(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()
	r := testRecipe()

	tests := []struct {
		name       string
		phrases    []string
		wantFactor *big.Rat
		wantSystem domain.System
	}{
		{"chained scaling", []string{"double", "x1.5"}, big.NewRat(3, 1), domain.SystemNone},
		{"servings then metric", []string{"serves 6", "metric"}, big.NewRat(3, 2), domain.SystemMetric},
		{"reset clears everything", []string{"triple", "imperial", "reset"}, big.NewRat(1, 1), domain.SystemNone},
		{"canonical names", []string{"scale=2", "servings=2", "imperial="}, big.NewRat(1, 2), domain.SystemImperial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyAll(ctx, parser, r, tt.phrases)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Factor().Cmp(tt.wantFactor) != 0 || got.System() != tt.wantSystem {
				t.Fatalf("factor=%s system=%s", got.Factor().RatString(), got.System())
			}
		})
	}

	if r.Factor().Cmp(big.NewRat(1, 1)) != 0 {
		t.Fatal("ApplyAll modified the input recipe")
	}
}

func TestApplyErrors(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()
	r := testRecipe()

	if _, err := ApplyAll(ctx, parser, r, []string{"scale -1"}); !errors.Is(err, domain.ErrInvalidFactor) {
		t.Fatalf("scale -1: err = %v", err)
	}
	if _, err := ApplyAll(ctx, parser, r, []string{"scale 0"}); !errors.Is(err, domain.ErrInvalidFactor) {
		t.Fatalf("scale 0: err = %v", err)
	}
	if _, err := ApplyAll(ctx, parser, r, []string{"juggle"}); !errors.Is(err, domain.ErrUnknownOperation) {
		t.Fatalf("juggle: err = %v", err)
	}
}
