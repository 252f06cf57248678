package models

import (
	"testing"
)

func TestValidateMenuItem(t *testing.T) {
	item := &MenuItem{Title: "Chicken Karahi", Price: 650, PreparationTime: 30}
	if err := ValidateMenuItem(item); err != nil {
		t.Errorf("ValidateMenuItem() unexpected error: %v", err)
	}

	invalid := []*MenuItem{
		{Title: "", Price: 100},
		{Title: "   ", Price: 100},
		{Title: "Free Item", Price: 0},
		{Title: "Negative", Price: -5},
		{Title: "Bad Prep", Price: 100, PreparationTime: -1},
	}
	for _, item := range invalid {
		if err := ValidateMenuItem(item); err == nil {
			t.Errorf("ValidateMenuItem(%+v) = nil, want error", item)
		}
	}
}

func TestIngredientList(t *testing.T) {
	item := &MenuItem{Ingredients: "Basmati Rice, Chicken , Spices"}

	list := item.IngredientList()
	if len(list) != 3 {
		t.Fatalf("IngredientList() returned %d items, want 3", len(list))
	}
	if list[1] != "Chicken" {
		t.Errorf("IngredientList()[1] = %q, want %q", list[1], "Chicken")
	}

	if !item.HasIngredient("chicken") {
		t.Error("HasIngredient should match case-insensitively")
	}
	if item.HasIngredient("Mutton") {
		t.Error("HasIngredient matched an absent ingredient")
	}

	empty := &MenuItem{}
	if empty.IngredientList() != nil {
		t.Error("IngredientList() on empty item should be nil")
	}
}
