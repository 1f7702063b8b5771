package query

import (
	"strings"
	"sync"
	"time"

	"datacat/internal/domain"
)

// DefaultDebounce is the search debounce delay used by the views.
const DefaultDebounce = 300 * time.Millisecond

// FilterResult is the filter output for the current debounced query.
type FilterResult struct {
	Records    []domain.Record
	Query      string
	Debouncing bool
}

// Filter narrows a record list by a debounced, case-insensitive substring
// query and memoizes results per query string.
type Filter struct {
	mu       sync.Mutex
	records  []domain.Record
	raw      string
	debounce *Debouncer[string]
	cache    *resultCache
}

// NewFilter creates a filter over records. A nil clock uses wall time.
func NewFilter(records []domain.Record, delay time.Duration, clock Clock) *Filter {
	return &Filter{
		records:  records,
		debounce: NewDebouncer("", delay, clock),
		cache:    newResultCache(CacheLimit),
	}
}

// SetQuery records the raw query as typed. The filtered result follows once
// the debounce delay elapses.
func (f *Filter) SetQuery(raw string) {
	f.mu.Lock()
	f.raw = raw
	f.mu.Unlock()

	f.debounce.Set(raw)
}

// RawQuery returns the query as last typed.
func (f *Filter) RawQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.raw
}

// SetRecords replaces the source list. Any change of list drops every cached
// result so entries from a previous dataset are never served.
func (f *Filter) SetRecords(records []domain.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !sameList(f.records, records) {
		f.cache.clear()
	}
	f.records = records
}

// Records returns the unfiltered source list.
func (f *Filter) Records() []domain.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records
}

// Result filters the source list by the debounced query.
func (f *Filter) Result() FilterResult {
	query := f.debounce.Value()

	f.mu.Lock()
	defer f.mu.Unlock()

	res := FilterResult{
		Query:      query,
		Debouncing: f.raw != query,
	}

	if strings.TrimSpace(query) == "" {
		res.Records = f.records
		return res
	}

	if cached, ok := f.cache.get(query); ok {
		res.Records = cached
		return res
	}

	res.Records = Match(f.records, query)
	f.cache.put(query, res.Records)
	return res
}

// CacheLen reports how many queries are memoized.
func (f *Filter) CacheLen() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cache.len()
}

// Cached reports whether query has a memoized result.
func (f *Filter) Cached(query string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cache.has(query)
}

// Settled delivers each debounced query once it settles.
func (f *Filter) Settled() <-chan string {
	return f.debounce.Settled()
}

// Stop cancels any pending debounce.
func (f *Filter) Stop() {
	f.debounce.Stop()
}

// Match returns the records where any searchable field contains query,
// ignoring case. A blank query matches everything.
func Match(records []domain.Record, query string) []domain.Record {
	if strings.TrimSpace(query) == "" {
		return records
	}

	needle := strings.ToLower(query)
	out := make([]domain.Record, 0)
	for i := range records {
		if matches(&records[i], needle) {
			out = append(out, records[i])
		}
	}
	return out
}

// searchFields are checked in order; region only when the record has one.
var searchFields = []domain.Field{
	domain.FieldTitle,
	domain.FieldCat,
	domain.FieldSubCat,
	domain.FieldSrc,
	domain.FieldRegion,
	domain.FieldID,
}

func matches(r *domain.Record, needle string) bool {
	for _, field := range searchFields {
		v, ok := r.Field(field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func sameList(a, b []domain.Record) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
