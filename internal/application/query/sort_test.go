package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"datacat/internal/domain"
)

func TestSortState_Toggle(t *testing.T) {
	var s SortState

	s = s.Toggle(domain.FieldTitle)
	if s != (SortState{domain.FieldTitle, Ascending}) {
		t.Fatalf("first toggle: got %+v", s)
	}
	s = s.Toggle(domain.FieldTitle)
	if s != (SortState{domain.FieldTitle, Descending}) {
		t.Fatalf("second toggle: got %+v", s)
	}
	s = s.Toggle(domain.FieldTitle)
	if s.Active() || s.Field != domain.FieldNone {
		t.Fatalf("third toggle should clear sort, got %+v", s)
	}

	s = SortState{domain.FieldTitle, Descending}.Toggle(domain.FieldSrc)
	if s != (SortState{domain.FieldSrc, Ascending}) {
		t.Errorf("switching field should restart ascending, got %+v", s)
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		state SortState
		want  []string
	}{
		{"inactive keeps order", SortState{}, []string{"CPI.US", "GDP.US", "PPI.DE", "UNR.FR", "FOOD.CAT"}},
		{"field without direction keeps order", SortState{Field: domain.FieldTitle}, []string{"CPI.US", "GDP.US", "PPI.DE", "UNR.FR", "FOOD.CAT"}},
		{"title ascending ignores case", SortState{domain.FieldTitle, Ascending}, []string{"FOOD.CAT", "CPI.US", "GDP.US", "PPI.DE", "UNR.FR"}},
		{"title descending", SortState{domain.FieldTitle, Descending}, []string{"UNR.FR", "PPI.DE", "GDP.US", "CPI.US", "FOOD.CAT"}},
		{"missing region last ascending", SortState{domain.FieldRegion, Ascending}, []string{"UNR.FR", "PPI.DE", "CPI.US", "GDP.US", "FOOD.CAT"}},
		{"missing region first descending", SortState{domain.FieldRegion, Descending}, []string{"CPI.US", "GDP.US", "FOOD.CAT", "PPI.DE", "UNR.FR"}},
		{"stable on ties", SortState{domain.FieldCat, Ascending}, []string{"UNR.FR", "GDP.US", "CPI.US", "PPI.DE", "FOOD.CAT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Sort(catalogueRecords(), tt.state))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sort mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := catalogueRecords()
	before := ids(records)

	Sort(records, SortState{domain.FieldTitle, Descending})

	if diff := cmp.Diff(before, ids(records)); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestSort_ThreeTogglesRestoreOriginalOrder(t *testing.T) {
	records := catalogueRecords()
	var s SortState
	for range 3 {
		s = s.Toggle(domain.FieldTitle)
	}

	if diff := cmp.Diff(ids(records), ids(Sort(records, s))); diff != "" {
		t.Errorf("order not restored (-want +got):\n%s", diff)
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"": DirectionNone, "asc": Ascending, "DESC": Descending, "none": DirectionNone} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
