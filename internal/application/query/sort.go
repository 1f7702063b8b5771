package query

import (
	"fmt"
	"slices"
	"strings"

	"datacat/internal/domain"
)

// Direction is the sort order of a column.
type Direction int

const (
	DirectionNone Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// ParseDirection accepts "asc", "desc" or "" / "none".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirectionNone, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return DirectionNone, fmt.Errorf("unknown sort direction %q", s)
	}
}

// SortState is the active sort column and direction.
type SortState struct {
	Field     domain.Field
	Direction Direction
}

// Active reports whether both a field and a direction are set.
func (s SortState) Active() bool {
	return s.Field != domain.FieldNone && s.Direction != DirectionNone
}

// Toggle returns the state after selecting field: the same field cycles
// ascending → descending → unsorted, a different field starts ascending.
func (s SortState) Toggle(field domain.Field) SortState {
	if s.Field != field {
		return SortState{Field: field, Direction: Ascending}
	}
	switch s.Direction {
	case Ascending:
		return SortState{Field: field, Direction: Descending}
	case Descending:
		return SortState{}
	default:
		return SortState{Field: field, Direction: Ascending}
	}
}

// Sort returns records ordered by state. An inactive state returns the input
// as is; otherwise a sorted copy is returned and the input is left untouched.
func Sort(records []domain.Record, state SortState) []domain.Record {
	if !state.Active() {
		return records
	}

	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b domain.Record) int {
		return compareField(&a, &b, state)
	})
	return out
}

// compareField puts missing values last when ascending and first when
// descending; present values compare as lowercase strings.
func compareField(a, b *domain.Record, state SortState) int {
	av, aok := a.Field(state.Field)
	bv, bok := b.Field(state.Field)

	asc := state.Direction == Ascending
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		if asc {
			return 1
		}
		return -1
	case !bok:
		if asc {
			return -1
		}
		return 1
	}

	c := strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	if !asc {
		c = -c
	}
	return c
}
