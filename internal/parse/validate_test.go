package parse

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidateNutrition_DropsOutOfRange(t *testing.T) {
	facts := map[string]float64{
		"sodium":  50000,
		"protein": 5,
	}

	validated := ValidateNutrition(facts)

	if _, ok := validated["sodium"]; ok {
		t.Error("Sodium of 50000 mg/100g is implausible and must be dropped")
	}
	if validated["protein"] != 5 {
		t.Errorf("protein = %v, want 5", validated["protein"])
	}
}

func TestValidateNutrition_KeepsInRange(t *testing.T) {
	validated := ValidateNutrition(map[string]float64{"sodium": 500})

	if validated["sodium"] != 500 {
		t.Errorf("sodium = %v, want 500", validated["sodium"])
	}
}

func TestValidateNutrition_BoundaryValues(t *testing.T) {
	validated := ValidateNutrition(map[string]float64{
		"energy":  9000,
		"protein": 0,
	})

	if validated["energy"] != 9000 {
		t.Errorf("Upper bound is inclusive: energy = %v, want 9000", validated["energy"])
	}
	if v, ok := validated["protein"]; !ok || v != 0 {
		t.Errorf("Lower bound is inclusive: protein = %v (present=%v), want 0", v, ok)
	}
}

func TestValidateNutrition_UnknownKeyPassthrough(t *testing.T) {
	validated := ValidateNutrition(map[string]float64{
		"zinc": 3,
		"odd":  -1,
	})

	if validated["zinc"] != 3 {
		t.Errorf("Non-negative unknown keys pass through, got %v", validated)
	}
	if _, ok := validated["odd"]; ok {
		t.Error("Negative unknown values must be dropped")
	}
}

func TestValidateNutrition_InputUnchanged(t *testing.T) {
	facts := map[string]float64{"sodium": 50000}

	ValidateNutrition(facts)

	if facts["sodium"] != 50000 {
		t.Error("Validation must not modify the input map")
	}
}

func TestValidateIngredients(t *testing.T) {
	items := []string{
		"Water",
		"ab",
		strings.Repeat("x", 120),
		"co@coa",
		"cocoa solids (70%)",
		"ماء معدني",
	}

	validated := ValidateIngredients(items)

	want := []string{"Water", "cocoa solids (70%)", "ماء معدني"}
	if len(validated) != len(want) {
		t.Fatalf("Got %v, want %v", validated, want)
	}
	for i := range want {
		if validated[i] != want[i] {
			t.Errorf("Entry %d: got %q, want %q", i, validated[i], want[i])
		}
	}
}

func TestValidateIngredients_RejectsMixedScript(t *testing.T) {
	validated := ValidateIngredients([]string{"Waterماء"})

	if len(validated) != 0 {
		t.Errorf("Mixed-script entries must be dropped, got %v", validated)
	}
}

func TestValidateIngredients_Cap(t *testing.T) {
	items := make([]string, 80)
	for i := range items {
		items[i] = fmt.Sprintf("item%02d", i)
	}

	validated := ValidateIngredients(items)

	if len(validated) != 50 {
		t.Errorf("Expected exactly 50 entries, got %d", len(validated))
	}
}
