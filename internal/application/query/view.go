package query

import (
	"sync"
	"time"

	"datacat/internal/domain"
)

// Snapshot is one rendered state of the table: the rows of the current page
// plus everything the surrounding chrome shows.
type Snapshot struct {
	Rows        []domain.Record
	Page        int
	TotalPages  int
	Start       int
	End         int
	Total       int
	Query       string
	Debouncing  bool
	Sort        SortState
	PageNumbers []int
	ShowRegion  bool
}

// View composes filter → sort → paginate over a record list. It never
// mutates the list it is given.
type View struct {
	mu      sync.Mutex
	filter  *Filter
	sort    SortState
	pager   *Pager
	lastRaw string
}

// NewView creates a view with the given debounce delay and page size.
func NewView(records []domain.Record, delay time.Duration, pageSize int, clock Clock) *View {
	v := &View{
		filter: NewFilter(records, delay, clock),
		pager:  NewPager(pageSize),
	}
	v.pager.SetTotal(len(records))
	return v
}

// SetRecords swaps in a new dataset and returns to page 1.
func (v *View) SetRecords(records []domain.Record) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter.SetRecords(records)
	v.pager.Reset()
}

// SetQuery feeds the raw query to the filter. A changed query always returns
// the table to page 1 so it cannot be left past the end of the new results.
func (v *View) SetQuery(raw string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter.SetQuery(raw)
	if raw != v.lastRaw {
		v.lastRaw = raw
		v.pager.Reset()
	}
}

// RawQuery returns the query as last typed.
func (v *View) RawQuery() string {
	return v.filter.RawQuery()
}

// ToggleSort cycles the sort state for field.
func (v *View) ToggleSort(field domain.Field) SortState {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sort = v.sort.Toggle(field)
	return v.sort
}

// SetSort replaces the sort state.
func (v *View) SetSort(state SortState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = state
}

// GoTo moves to page n; out-of-range requests are ignored.
func (v *View) GoTo(n int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.refreshTotal()
	return v.pager.GoTo(n)
}

// Next turns to the next page.
func (v *View) Next() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.refreshTotal()
	return v.pager.Next()
}

// Prev turns to the previous page.
func (v *View) Prev() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.refreshTotal()
	return v.pager.Prev()
}

// CursorUp moves the row cursor up.
func (v *View) CursorUp() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.refreshTotal()
	return v.pager.CursorUp()
}

// CursorDown moves the row cursor down.
func (v *View) CursorDown() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.refreshTotal()
	return v.pager.CursorDown()
}

// CursorInPage returns the selected row index within the current page.
func (v *View) CursorInPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.CursorInPage()
}

// Snapshot derives the current page.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	res := v.filter.Result()
	sorted := Sort(res.Records, v.sort)
	v.pager.SetTotal(len(sorted))

	snap := snapshotOf(sorted, v.pager, v.sort)
	snap.Query = res.Query
	snap.Debouncing = res.Debouncing
	return snap
}

// Run evaluates one query without debouncing or caching: filter by q, sort
// by state, then show page. An out-of-range page leaves the result on page 1.
func Run(records []domain.Record, q string, state SortState, page, pageSize int) Snapshot {
	sorted := Sort(Match(records, q), state)

	pager := NewPager(pageSize)
	pager.SetTotal(len(sorted))
	pager.GoTo(page)

	snap := snapshotOf(sorted, pager, state)
	snap.Query = q
	return snap
}

func snapshotOf(sorted []domain.Record, pager *Pager, state SortState) Snapshot {
	start, end := pager.DisplayRange()
	snap := Snapshot{
		Rows:       PageSlice(sorted, pager),
		Page:       pager.Page(),
		TotalPages: pager.TotalPages(),
		Start:      start,
		End:        end,
		Total:      len(sorted),
		Sort:       state,
	}
	snap.PageNumbers = PageNumbers(snap.Page, snap.TotalPages)
	for i := range snap.Rows {
		if snap.Rows[i].HasRegion() {
			snap.ShowRegion = true
			break
		}
	}
	return snap
}

// Settled delivers debounced queries as they settle.
func (v *View) Settled() <-chan string {
	return v.filter.Settled()
}

// Close stops the debounce timer.
func (v *View) Close() {
	v.filter.Stop()
}

// refreshTotal keeps the pager's total in step with the filtered count so
// navigation before the first Snapshot still clamps correctly.
func (v *View) refreshTotal() {
	v.pager.SetTotal(len(v.filter.Result().Records))
}
