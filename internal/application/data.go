package application

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"datacat/internal/domain"
	"datacat/internal/ports"
)

// DataState is a consistent view of the provider: dataset, tree and records
// always come from the same completed load.
type DataState struct {
	Dataset      domain.DatasetName
	Categories   domain.CategoryTree
	Records      []domain.Record
	Loading      bool
	Err          error
	TotalRecords int
}

// ErrorMessage returns the load error as text, or "" when there is none.
func (s DataState) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// DataProvider loads datasets and exposes the current one.
//
// Every Load takes a generation number and only the newest generation may
// publish its result, so the last switch requested wins regardless of which
// fetch finishes last. Concurrent loads of the same dataset share one fetch.
type DataProvider struct {
	source ports.DatasetSource
	logger *zap.Logger
	group  singleflight.Group

	mu         sync.RWMutex
	generation uint64
	state      DataState
}

// NewDataProvider creates a provider with nothing loaded.
func NewDataProvider(source ports.DatasetSource, logger *zap.Logger) *DataProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataProvider{
		source: source,
		logger: logger,
	}
}

// Load fetches name and, if no newer load was started meanwhile, replaces
// the current dataset wholesale. A failed fetch records the error and keeps
// the previously loaded data.
func (p *DataProvider) Load(ctx context.Context, name domain.DatasetName) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.state.Loading = true
	p.state.Err = nil
	p.mu.Unlock()

	v, err, shared := p.group.Do(string(name), func() (any, error) {
		return p.source.Fetch(ctx, name)
	})

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		p.logger.Debug("discarding stale dataset load",
			zap.String("dataset", name.String()),
			zap.Uint64("generation", gen),
			zap.Uint64("latest", p.generation))
		return nil
	}
	p.state.Loading = false

	if err != nil {
		p.state.Err = &FetchError{Dataset: name, Err: err}
		p.logger.Error("failed to load dataset",
			zap.String("dataset", name.String()),
			zap.String("location", p.source.Location(name)),
			zap.Error(err))
		return p.state.Err
	}

	doc := v.(*domain.Document)
	p.state = DataState{
		Dataset:      name,
		Categories:   doc.Categories,
		Records:      doc.Frequent,
		TotalRecords: len(doc.Frequent),
	}
	p.logger.Info("dataset loaded",
		zap.String("dataset", name.String()),
		zap.Int("records", len(doc.Frequent)),
		zap.Int("categories", doc.Categories.Count()),
		zap.Bool("shared", shared))
	return nil
}

// SwitchDataset loads name unless it is already the active, successfully
// loaded dataset. After a failure, selecting the same dataset retries.
func (p *DataProvider) SwitchDataset(ctx context.Context, name domain.DatasetName) error {
	p.mu.RLock()
	active := p.state.Dataset == name && p.state.Err == nil && !p.state.Loading
	p.mu.RUnlock()

	if active {
		return nil
	}
	return p.Load(ctx, name)
}

// Snapshot returns the current state.
func (p *DataProvider) Snapshot() DataState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Current returns the active dataset name, empty before the first success.
func (p *DataProvider) Current() domain.DatasetName {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.Dataset
}

// Record looks up id in the active dataset.
func (p *DataProvider) Record(id string) (domain.Record, error) {
	s := p.Snapshot()
	r, ok := domain.FindRecord(s.Records, id)
	if !ok {
		return domain.Record{}, &RecordNotFoundError{Dataset: s.Dataset, ID: id}
	}
	return r, nil
}

// Location describes where name is fetched from.
func (p *DataProvider) Location(name domain.DatasetName) string {
	return p.source.Location(name)
}
