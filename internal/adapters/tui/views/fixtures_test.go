package views

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"datacat/internal/application"
	"datacat/internal/application/query"
	"datacat/internal/domain"
)

type memoryStore struct {
	mu   sync.Mutex
	user *domain.User
}

func (s *memoryStore) Load(context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, nil
}

func (s *memoryStore) Save(_ context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	return nil
}

func (s *memoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

func (s *memoryStore) Close() error { return nil }

type docSource map[domain.DatasetName]*domain.Document

func (d docSource) Fetch(_ context.Context, name domain.DatasetName) (*domain.Document, error) {
	doc, ok := d[name]
	if !ok {
		return nil, fmt.Errorf("failed to fetch /%s", name.DefaultFile())
	}
	return doc, nil
}

func (d docSource) Location(name domain.DatasetName) string {
	return "test://" + name.DefaultFile()
}

// flushClock collects debounce callbacks until flush runs them.
type flushClock struct {
	mu  sync.Mutex
	fns []func()
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

func (c *flushClock) AfterFunc(_ time.Duration, f func()) query.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, f)
	return noopTimer{}
}

func (c *flushClock) flush() {
	c.mu.Lock()
	fns := c.fns
	c.fns = nil
	c.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

type recordingClipboard struct {
	texts []string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.texts = append(c.texts, text)
	return nil
}

func defaultDoc() *domain.Document {
	records := make([]domain.Record, 0, 23)
	for i := 1; i <= 23; i++ {
		records = append(records, domain.Record{
			ID:    fmt.Sprintf("S%02d", i),
			Title: fmt.Sprintf("Series %02d", i),
			Cat:   []string{"Prices", "Labour", "Trade"}[i%3],
			Src:   "Stats Office",
		})
	}
	return &domain.Document{
		Categories: domain.CategoryTree{Roots: []*domain.CategoryNode{
			{Name: "Prices", Children: []*domain.CategoryNode{{Name: "Consumer"}, {Name: "Producer"}}},
			{Name: "Labour"},
		}},
		Frequent: records,
	}
}

func imfDoc() *domain.Document {
	return &domain.Document{
		Categories: domain.CategoryTree{Roots: []*domain.CategoryNode{{Name: "External"}}},
		Frequent:   []domain.Record{{ID: "BOP.W", Title: "Balance of payments", Region: "World"}},
	}
}

type harness struct {
	auth  *application.AuthProvider
	data  *application.DataProvider
	view  *query.View
	clock *flushClock
	clip  *recordingClipboard
	model *CatalogueModel
}

func newHarness(t *testing.T, source docSource) *harness {
	t.Helper()

	h := &harness{clock: &flushClock{}, clip: &recordingClipboard{}}
	h.auth = application.NewAuthProvider(&memoryStore{}, nil, nil)
	if _, err := h.auth.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	h.data = application.NewDataProvider(source, nil)
	h.view = query.NewView(nil, query.DefaultDebounce, query.PageSize, h.clock)
	t.Cleanup(h.view.Close)

	h.model = NewCatalogueModel(h.auth, h.data, h.view, h.clip, domain.DatasetDefault, nil)
	h.model.SetSize(140, 40)
	return h
}

// load runs a dataset switch synchronously and delivers its result.
func (h *harness) load(t *testing.T, name domain.DatasetName) {
	t.Helper()
	err := h.data.SwitchDataset(context.Background(), name)
	h.model.Update(datasetLoadedMsg{name: name, err: err})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.model.Update(keyRunes(string(r)))
	}
}
