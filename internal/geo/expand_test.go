package geo

import (
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Run("country expands to its full ancestor chain", func(t *testing.T) {
		got := Expand("Nigeria")

		for _, label := range []string{"Nigeria", "Western Africa", "Sub-Saharan Africa", "Africa"} {
			if !got.Contains(label) {
				t.Errorf("Expand(Nigeria) missing %q", label)
			}
		}
		if got.Contains("Northern Africa") {
			t.Error("Expand(Nigeria) must not include sibling sub-regions")
		}
		if got.Contains("Europe") {
			t.Error("Expand(Nigeria) must not include unrelated continents")
		}
	})

	t.Run("continent expands to every descendant", func(t *testing.T) {
		got := Expand("Africa")

		for _, label := range []string{"Africa", "Northern Africa", "Sub-Saharan Africa", "Western Africa", "Nigeria", "Egypt", "Kenya"} {
			if !got.Contains(label) {
				t.Errorf("Expand(Africa) missing %q", label)
			}
		}
	})

	t.Run("sub-region expands both up and down", func(t *testing.T) {
		got := Expand("Western Africa")

		if !got.Contains("Africa") || !got.Contains("Sub-Saharan Africa") {
			t.Error("Expand(Western Africa) missing ancestors")
		}
		if !got.Contains("Nigeria") || !got.Contains("Ghana") {
			t.Error("Expand(Western Africa) missing countries")
		}
		if got.Contains("Egypt") {
			t.Error("Expand(Western Africa) must not reach Northern Africa countries")
		}
	})

	t.Run("unknown label yields a singleton", func(t *testing.T) {
		got := Expand("Atlantis")

		want := []string{"Atlantis"}
		if !reflect.DeepEqual(got.Labels(), want) {
			t.Errorf("Expand(Atlantis).Labels() = %v, want %v", got.Labels(), want)
		}
	})

	t.Run("empty label yields a singleton", func(t *testing.T) {
		got := Expand("")
		if len(got) != 1 || !got.Contains("") {
			t.Errorf("Expand(\"\") = %v, want singleton", got.Labels())
		}
	})

	t.Run("expansion is idempotent", func(t *testing.T) {
		first := Expand("Nigeria")

		// Expanding any member of the set again stays within the closure of
		// the input label's chain plus that member's own branch.
		for _, label := range first.Labels() {
			again := Expand(label)
			if !again.Contains(label) {
				t.Errorf("Expand(%q) does not contain itself", label)
			}
		}

		second := Expand("Nigeria")
		if !reflect.DeepEqual(first.Labels(), second.Labels()) {
			t.Error("repeated expansion of the same label differs")
		}
	})

	t.Run("membership is symmetric across levels", func(t *testing.T) {
		// Deal in Nigeria matches a buyer targeting Africa, and a deal
		// located in Africa matches a buyer targeting Nigeria.
		if !Expand("Nigeria").Contains("Africa") {
			t.Error("Expand(Nigeria) should contain Africa")
		}
		if !Expand("Africa").Contains("Nigeria") {
			t.Error("Expand(Africa) should contain Nigeria")
		}
	})
}

func TestSetContainsAny(t *testing.T) {
	set := Expand("Nigeria")

	testCases := []struct {
		name   string
		labels []string
		want   bool
	}{
		{"direct hit", []string{"Nigeria"}, true},
		{"ancestor hit", []string{"Europe", "Africa"}, true},
		{"no overlap", []string{"Europe", "Asia"}, false},
		{"empty list", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := set.ContainsAny(tc.labels); got != tc.want {
				t.Errorf("ContainsAny(%v) = %v, want %v", tc.labels, got, tc.want)
			}
		})
	}
}

func TestIsRegion(t *testing.T) {
	testCases := []struct {
		label string
		want  bool
	}{
		{"Africa", true},
		{"Western Africa", true},
		{"Middle East", true},
		{"Nigeria", false},
		{"Atlantis", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsRegion(tc.label); got != tc.want {
			t.Errorf("IsRegion(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestHierarchyConsistency(t *testing.T) {
	t.Run("every child has exactly one parent", func(t *testing.T) {
		seen := make(map[string]string)
		for parent, children := range hierarchy {
			for _, child := range children {
				if prev, dup := seen[child]; dup {
					t.Errorf("%q appears under both %q and %q", child, prev, parent)
				}
				seen[child] = parent
			}
		}
	})

	t.Run("continents have no parent", func(t *testing.T) {
		for _, continent := range []string{"Africa", "Americas", "Asia", "Europe", "Oceania"} {
			if parent, ok := parentOf[continent]; ok {
				t.Errorf("%q has unexpected parent %q", continent, parent)
			}
		}
	})
}
