package domain

import (
	"errors"
	"math/big"
	"testing"
)

func TestNewRange(t *testing.T) {
	tests := []struct {
		name      string
		low, high int64
		wantRange bool
		wantErr   error
	}{
		{"ordered", 1, 2, true, nil},
		{"equal bounds collapse", 3, 3, false, nil},
		{"reversed", 2, 1, false, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewRange(big.NewRat(tt.low, 1), big.NewRat(tt.high, 1))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err != nil {
				return
			}
			if q.IsRange() != tt.wantRange {
				t.Fatalf("IsRange = %v, want %v", q.IsRange(), tt.wantRange)
			}
		})
	}
}

func TestQuantityMul(t *testing.T) {
	q, err := NewRange(big.NewRat(1, 1), big.NewRat(2, 1))
	if err != nil {
		t.Fatalf("range: %v", err)
	}

	scaled := q.Mul(big.NewRat(3, 1))
	want, _ := NewRange(big.NewRat(3, 1), big.NewRat(6, 1))
	if !scaled.Equal(want) {
		t.Fatalf("got %s, want %s", scaled, want)
	}

	neg := q.Mul(big.NewRat(-1, 1))
	if neg.LowFloat() > neg.HighFloat() {
		t.Fatalf("negative factor broke ordering: %s", neg)
	}

	// Original is untouched.
	if q.LowFloat() != 1 || q.HighFloat() != 2 {
		t.Fatalf("receiver mutated: %s", q)
	}
}

func TestQuantityAccessorsCopy(t *testing.T) {
	q := NewQuantity(big.NewRat(9, 4))
	low := q.Low()
	low.SetInt64(100)
	if q.LowFloat() != 2.25 {
		t.Fatalf("accessor leaked internal state, got %v", q.LowFloat())
	}
}

func TestQuantityEqual(t *testing.T) {
	if !QuantityOf(0.25).Equal(NewQuantity(big.NewRat(1, 4))) {
		t.Fatal("0.25 should equal 1/4")
	}
	r, _ := RangeOf(1, 2)
	if r.Equal(QuantityOf(1)) {
		t.Fatal("range should not equal scalar")
	}
	var zero Quantity
	if !zero.IsZero() || !zero.Equal(QuantityOf(0)) {
		t.Fatal("zero value should be a single zero")
	}
}

func TestIngredientScaleWithoutQuantity(t *testing.T) {
	ing := NewIngredient(IngredientFields{Name: "salt", Raw: "salt to taste", Unit: UnitNone})
	scaled := ing.Scale(big.NewRat(2, 1))
	if !scaled.Equal(ing) {
		t.Fatal("ingredient without quantity must be invariant under scaling")
	}
}
