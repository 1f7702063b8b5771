package query

// PageSize is the number of rows per table page.
const PageSize = 10

// Ellipsis marks a gap in PageNumbers output.
const Ellipsis = 0

// Pager slices a sequence into fixed-size pages and tracks a row cursor.
type Pager struct {
	pageSize   int
	page       int
	cursor     int
	totalItems int
}

// NewPager creates a pager with the given page size
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return &Pager{
		pageSize: pageSize,
		page:     1,
	}
}

// PageSize returns the configured page size.
func (p *Pager) PageSize() int {
	return p.pageSize
}

// SetTotal sets the total number of items, pulling the page and cursor back
// into range when the sequence shrank.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.totalItems = total

	if pages := p.TotalPages(); p.page > pages {
		p.page = max(pages, 1)
	}
	p.clampCursor()
}

// Total returns the number of items.
func (p *Pager) Total() int {
	return p.totalItems
}

// TotalPages returns ceil(total / pageSize); an empty sequence has no pages.
func (p *Pager) TotalPages() int {
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// Page returns the current page number (1-based)
func (p *Pager) Page() int {
	return p.page
}

// GoTo moves to page n. Requests outside [1, TotalPages] are ignored.
func (p *Pager) GoTo(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.page = n
	p.cursor = p.pageStart()
	return true
}

// Next moves to the next page
func (p *Pager) Next() bool {
	return p.GoTo(p.page + 1)
}

// Prev moves to the previous page
func (p *Pager) Prev() bool {
	return p.GoTo(p.page - 1)
}

// Reset returns to the first page.
func (p *Pager) Reset() {
	p.page = 1
	p.cursor = 0
}

// Bounds returns the zero-based, half-open slice range of the current page.
func (p *Pager) Bounds() (start, end int) {
	start = min(p.pageStart(), p.totalItems)
	end = min(start+p.pageSize, p.totalItems)
	return start, end
}

// DisplayRange returns 1-based first and last item numbers of the current
// page, or (0, 0) when there is nothing to show.
func (p *Pager) DisplayRange() (start, end int) {
	if p.totalItems == 0 {
		return 0, 0
	}
	start = p.pageStart() + 1
	end = min(p.page*p.pageSize, p.totalItems)
	return start, end
}

// Cursor returns the cursor position (absolute index)
func (p *Pager) Cursor() int {
	return p.cursor
}

// CursorInPage returns the cursor position relative to the current page
func (p *Pager) CursorInPage() int {
	return p.cursor - p.pageStart()
}

// CursorUp moves the cursor up by one, turning back a page at the top edge.
func (p *Pager) CursorUp() bool {
	if p.cursor > 0 {
		p.cursor--
		p.followCursor()
		return true
	}
	return false
}

// CursorDown moves the cursor down by one, turning the page at the bottom edge.
func (p *Pager) CursorDown() bool {
	if p.cursor < p.totalItems-1 {
		p.cursor++
		p.followCursor()
		return true
	}
	return false
}

func (p *Pager) pageStart() int {
	return (p.page - 1) * p.pageSize
}

func (p *Pager) followCursor() {
	p.page = p.cursor/p.pageSize + 1
}

func (p *Pager) clampCursor() {
	start, end := p.Bounds()
	if p.cursor < start {
		p.cursor = start
	}
	if p.cursor >= end {
		p.cursor = max(end-1, start)
	}
}

// PageSlice returns the items on the pager's current page.
func PageSlice[T any](items []T, p *Pager) []T {
	start, end := p.Bounds()
	if start >= len(items) {
		return nil
	}
	return items[start:min(end, len(items))]
}

// PageNumbers lists the page buttons for navigation. Up to seven pages are
// listed in full; beyond that the first and last page, a window of two
// around current, and Ellipsis where the window does not reach an edge.
func PageNumbers(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if total <= 7 {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	const delta = 2
	pages := []int{1}
	if current-delta > 2 {
		pages = append(pages, Ellipsis)
	}
	for i := max(2, current-delta); i <= min(total-1, current+delta); i++ {
		pages = append(pages, i)
	}
	if current+delta < total-1 {
		pages = append(pages, Ellipsis)
	}
	return append(pages, total)
}
