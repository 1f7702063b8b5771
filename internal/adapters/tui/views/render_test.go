package views

import (
	"strings"
	"testing"

	"datacat/internal/application/query"
	"datacat/internal/domain"
)

func TestRenderPageStrip(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		total     int
		want      []string
		notWant   []string
		wantEmpty bool
	}{
		{name: "single page", current: 1, total: 1, wantEmpty: true},
		{name: "short", current: 2, total: 5, want: []string{"1", "2", "3", "4", "5"}, notWant: []string{"…"}},
		{name: "middle of many", current: 10, total: 20, want: []string{"1", "8", "12", "20", "…"}, notWant: []string{"7", "13"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderPageStrip(tt.current, tt.total)
			if tt.wantEmpty {
				if got != "" {
					t.Errorf("RenderPageStrip() = %q, want empty", got)
				}
				return
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("strip %q missing %q", got, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(got, nw) {
					t.Errorf("strip %q should not contain %q", got, nw)
				}
			}
		})
	}
}

func TestResultSummary(t *testing.T) {
	snap := query.Run(numbered(95), "", query.SortState{}, 10, query.PageSize)
	if got, want := ResultSummary(snap), "Showing 91 to 95 of 95 results"; got != want {
		t.Errorf("ResultSummary() = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 6, "trunc…"},
		{"ünïcödé", 4, "ünï…"},
		{"x", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestSortFieldForKey(t *testing.T) {
	want := map[string]domain.Field{
		"1": domain.FieldTitle,
		"2": domain.FieldCat,
		"3": domain.FieldSubCat,
		"4": domain.FieldFreq,
		"5": domain.FieldUnit,
		"6": domain.FieldSrc,
		"7": domain.FieldRegion,
	}
	for k, f := range want {
		got, ok := SortFieldForKey(k)
		if !ok || got != f {
			t.Errorf("SortFieldForKey(%q) = %q, %v; want %q", k, got, ok, f)
		}
	}
	if _, ok := SortFieldForKey("8"); ok {
		t.Error("SortFieldForKey(8) should not match")
	}
}

func TestColumnWidths_FillAvailable(t *testing.T) {
	cols := visibleColumns(false)
	widths := columnWidths(cols, 100)

	sum := len(columnGap) * (len(cols) - 1)
	for _, w := range widths {
		if w < minColumnWidth {
			t.Errorf("width %d below minimum", w)
		}
		sum += w
	}
	if sum != 100 {
		t.Errorf("total width = %d, want 100", sum)
	}
}

func numbered(n int) []domain.Record {
	out := make([]domain.Record, n)
	for i := range out {
		out[i] = domain.Record{ID: strings.Repeat("x", i%5+1), Title: "t"}
	}
	return out
}
