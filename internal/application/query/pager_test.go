package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPager_NinetyFiveItems(t *testing.T) {
	p := NewPager(10)
	p.SetTotal(95)

	if p.TotalPages() != 10 {
		t.Fatalf("expected 10 pages, got %d", p.TotalPages())
	}
	if !p.GoTo(10) {
		t.Fatal("expected GoTo(10) to succeed")
	}

	start, end := p.DisplayRange()
	if start != 91 || end != 95 {
		t.Errorf("expected items 91-95, got %d-%d", start, end)
	}

	items := numberedRecords(95)
	page := PageSlice(items, p)
	if len(page) != 5 || page[0].ID != "R091" || page[4].ID != "R095" {
		t.Errorf("unexpected last page: %v", ids(page))
	}

	if p.GoTo(11) || p.GoTo(0) {
		t.Error("expected out-of-range GoTo to be ignored")
	}
	if p.Page() != 10 {
		t.Errorf("expected to stay on page 10, got %d", p.Page())
	}
	if p.Next() {
		t.Error("expected Next on last page to be ignored")
	}
}

func TestPager_Empty(t *testing.T) {
	p := NewPager(10)
	p.SetTotal(0)

	if p.TotalPages() != 0 {
		t.Errorf("expected zero pages, got %d", p.TotalPages())
	}
	if start, end := p.DisplayRange(); start != 0 || end != 0 {
		t.Errorf("expected (0, 0), got (%d, %d)", start, end)
	}
	if p.GoTo(1) {
		t.Error("expected GoTo(1) to be ignored with no pages")
	}
	if got := PageSlice([]int{}, p); len(got) != 0 {
		t.Errorf("expected empty page, got %v", got)
	}
}

func TestPager_DefaultPageSize(t *testing.T) {
	if NewPager(0).PageSize() != PageSize {
		t.Errorf("expected default page size %d", PageSize)
	}
}

func TestPager_ShrinkClampsPage(t *testing.T) {
	p := NewPager(10)
	p.SetTotal(50)
	p.GoTo(5)

	p.SetTotal(12)
	if p.Page() != 2 {
		t.Errorf("expected page clamped to 2, got %d", p.Page())
	}
}

func TestPager_CursorTurnsPages(t *testing.T) {
	p := NewPager(10)
	p.SetTotal(25)

	for range 10 {
		p.CursorDown()
	}
	if p.Page() != 2 || p.CursorInPage() != 0 {
		t.Errorf("expected cursor at top of page 2, got page %d row %d", p.Page(), p.CursorInPage())
	}

	p.CursorUp()
	if p.Page() != 1 || p.CursorInPage() != 9 {
		t.Errorf("expected cursor at bottom of page 1, got page %d row %d", p.Page(), p.CursorInPage())
	}

	p.Reset()
	if p.CursorUp() {
		t.Error("expected CursorUp at the first row to fail")
	}
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"none", 1, 0, nil},
		{"few pages", 2, 5, []int{1, 2, 3, 4, 5}},
		{"seven pages", 4, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"start", 1, 10, []int{1, 2, 3, Ellipsis, 10}},
		{"window touches start", 4, 10, []int{1, 2, 3, 4, 5, 6, Ellipsis, 10}},
		{"middle", 5, 10, []int{1, Ellipsis, 3, 4, 5, 6, 7, Ellipsis, 10}},
		{"window touches end", 7, 10, []int{1, Ellipsis, 5, 6, 7, 8, 9, 10}},
		{"end", 10, 10, []int{1, Ellipsis, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageNumbers(tt.current, tt.total)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PageNumbers(%d, %d) mismatch (-want +got):\n%s", tt.current, tt.total, diff)
			}
		})
	}
}
