package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"datacat/internal/domain"
)

// memorySessionStore keeps the marker in memory, standing in for the
// persisted store across simulated reloads.
type memorySessionStore struct {
	mu    sync.Mutex
	user  *domain.User
	saves int
}

func (s *memorySessionStore) Load(context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *memorySessionStore) Save(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.saves++
	return nil
}

func (s *memorySessionStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

func (s *memorySessionStore) Close() error { return nil }

// stubSource serves canned documents. A dataset listed in gates blocks until
// its channel is closed so tests can order completions.
type stubSource struct {
	mu    sync.Mutex
	docs  map[domain.DatasetName]*domain.Document
	fail  map[domain.DatasetName]error
	gates map[domain.DatasetName]chan struct{}
	calls map[domain.DatasetName]int
}

func newStubSource() *stubSource {
	return &stubSource{
		docs: map[domain.DatasetName]*domain.Document{
			domain.DatasetDefault: {
				Categories: domain.CategoryTree{Roots: []*domain.CategoryNode{{Name: "Prices"}}},
				Frequent:   []domain.Record{{ID: "CPI", Title: "Consumer prices"}, {ID: "PPI", Title: "Producer prices"}},
			},
			domain.DatasetIMF: {
				Categories: domain.CategoryTree{Roots: []*domain.CategoryNode{{Name: "External"}, {Name: "Fiscal"}}},
				Frequent:   []domain.Record{{ID: "BOP", Title: "Balance of payments", Region: "World"}},
			},
		},
		fail:  map[domain.DatasetName]error{},
		gates: map[domain.DatasetName]chan struct{}{},
		calls: map[domain.DatasetName]int{},
	}
}

func (s *stubSource) Fetch(ctx context.Context, name domain.DatasetName) (*domain.Document, error) {
	s.mu.Lock()
	s.calls[name]++
	gate := s.gates[name]
	err := s.fail[name]
	doc := s.docs[name]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("no such document")
	}
	return doc, nil
}

func (s *stubSource) Location(name domain.DatasetName) string {
	return fmt.Sprintf("stub://%s", name)
}

func (s *stubSource) gate(name domain.DatasetName) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.gates[name] = ch
	return ch
}

func (s *stubSource) setFailure(name domain.DatasetName, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[name] = err
}

func (s *stubSource) callCount(name domain.DatasetName) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}
