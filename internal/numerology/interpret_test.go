package numerology

import (
	"errors"
	"testing"
)

var allCategories = []Category{
	CategoryLifePath, CategoryDestiny, CategorySoulUrge, CategoryPersonality,
}

var allValues = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33}

func TestInterpretationTableComplete(t *testing.T) {
	for _, cat := range allCategories {
		for _, v := range allValues {
			text, err := Interpretation(cat, v, LocaleVI)
			if err != nil {
				t.Errorf("Interpretation(%s, %d) error: %v", cat, v, err)
				continue
			}
			if text == "" {
				t.Errorf("Interpretation(%s, %d) is empty", cat, v)
			}
		}
	}
}

func TestInterpretationUnknownCategory(t *testing.T) {
	_, err := Interpretation(Category("personal_year"), 1, LocaleVI)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestInterpretationUnknownValue(t *testing.T) {
	for _, v := range []int{0, 10, 12, 34, -1, 44} {
		_, err := Interpretation(CategoryLifePath, v, LocaleVI)
		if !errors.Is(err, ErrUnknownValue) {
			t.Errorf("Interpretation(life_path, %d) error = %v, want ErrUnknownValue", v, err)
		}
	}
}

func TestInterpretationUnsupportedLocale(t *testing.T) {
	for _, locale := range []string{"en", "fr", ""} {
		_, err := Interpretation(CategoryDestiny, 7, locale)
		if !errors.Is(err, ErrUnsupportedLocale) {
			t.Errorf("locale %q error = %v, want ErrUnsupportedLocale", locale, err)
		}
	}
}

func TestAllInterpretations(t *testing.T) {
	table, err := AllInterpretations(CategorySoulUrge)
	if err != nil {
		t.Fatalf("AllInterpretations error: %v", err)
	}
	if len(table) != len(allValues) {
		t.Errorf("table has %d entries, want %d", len(table), len(allValues))
	}

	// The returned map is a copy; mutating it must not touch the shared table.
	table[1] = "mutated"
	fresh, _ := Interpretation(CategorySoulUrge, 1, LocaleVI)
	if fresh == "mutated" {
		t.Error("AllInterpretations leaked a reference to the shared table")
	}

	if _, err := AllInterpretations(Category("bogus")); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("bogus category error = %v, want ErrUnknownCategory", err)
	}
}
