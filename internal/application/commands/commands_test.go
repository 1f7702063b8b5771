package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"datacat/internal/application"
	"datacat/internal/application/query"
	"datacat/internal/domain"
)

type mapSource map[domain.DatasetName]*domain.Document

func (m mapSource) Fetch(_ context.Context, name domain.DatasetName) (*domain.Document, error) {
	doc, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("failed to fetch /%s", name.DefaultFile())
	}
	return doc, nil
}

func (m mapSource) Location(name domain.DatasetName) string {
	return "mem://" + name.DefaultFile()
}

func testProvider() *application.DataProvider {
	prices := &domain.CategoryNode{Name: "Prices", Children: []*domain.CategoryNode{
		{Name: "Consumer", Children: []*domain.CategoryNode{{Name: "Core"}}},
		{Name: "Producer"},
	}}
	records := make([]domain.Record, 0, 23)
	for i := 1; i <= 23; i++ {
		records = append(records, domain.Record{
			ID:    fmt.Sprintf("S%02d", i),
			Title: fmt.Sprintf("Series %02d", i),
			Cat:   "Prices",
		})
	}
	records = append(records, domain.Record{ID: "GDP", Title: "Gross product", Cat: "Accounts", Region: "World"})

	return application.NewDataProvider(mapSource{
		domain.DatasetDefault: {
			Categories: domain.CategoryTree{Roots: []*domain.CategoryNode{prices, {Name: "Labour"}}},
			Frequent:   records,
		},
	}, nil)
}

func TestSearchCommand(t *testing.T) {
	ctx := context.Background()
	data := testProvider()

	cmd := NewSearchCommand(data, domain.DatasetDefault, "series")
	cmd.Sort = query.SortState{Field: domain.FieldTitle, Direction: query.Descending}
	cmd.Page = 3

	snap, err := cmd.Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if snap.Total != 23 || snap.TotalPages != 3 || snap.Page != 3 {
		t.Errorf("unexpected paging: total=%d pages=%d page=%d", snap.Total, snap.TotalPages, snap.Page)
	}
	var got []string
	for _, r := range snap.Rows {
		got = append(got, r.ID)
	}
	if diff := cmp.Diff([]string{"S03", "S02", "S01"}, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if data.Current() != domain.DatasetDefault {
		t.Errorf("Current() = %q, want default", data.Current())
	}
}

func TestSearchCommand_FetchFailure(t *testing.T) {
	_, err := NewSearchCommand(testProvider(), domain.DatasetIMF, "").Execute(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var fetchErr *application.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("expected FetchError, got %T", err)
	}
	if err.Error() != "failed to fetch /response2.json" {
		t.Errorf("error = %q", err)
	}
}

func TestShowRecordCommand(t *testing.T) {
	ctx := context.Background()
	data := testProvider()

	r, err := NewShowRecordCommand(data, domain.DatasetDefault, "GDP").Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if r.Region != "World" {
		t.Errorf("Region = %q, want World", r.Region)
	}

	_, err = NewShowRecordCommand(data, domain.DatasetDefault, "MISSING").Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBuildTreeCommand(t *testing.T) {
	tests := []struct {
		name     string
		maxDepth int
		want     []TreeLine
	}{
		{
			name: "unlimited",
			want: []TreeLine{
				{Name: "Prices", Depth: 0, Children: 2},
				{Name: "Consumer", Depth: 1, Children: 1},
				{Name: "Core", Depth: 2},
				{Name: "Producer", Depth: 1},
				{Name: "Labour", Depth: 0},
			},
		},
		{
			name:     "top level only",
			maxDepth: 1,
			want: []TreeLine{
				{Name: "Prices", Depth: 0, Children: 2},
				{Name: "Labour", Depth: 0},
			},
		},
		{
			name:     "two levels",
			maxDepth: 2,
			want: []TreeLine{
				{Name: "Prices", Depth: 0, Children: 2},
				{Name: "Consumer", Depth: 1, Children: 1},
				{Name: "Producer", Depth: 1},
				{Name: "Labour", Depth: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBuildTreeCommand(testProvider(), domain.DatasetDefault, tt.maxDepth).Execute(context.Background())
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListDatasetsCommand(t *testing.T) {
	ctx := context.Background()
	data := testProvider()
	if err := data.Load(ctx, domain.DatasetDefault); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got, err := NewListDatasetsCommand(data).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []DatasetInfo{
		{Name: domain.DatasetDefault, Label: "Default Dataset", Location: "mem://response1.json", Active: true},
		{Name: domain.DatasetIMF, Label: "IMF Dataset", Location: "mem://response2.json"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("datasets mismatch (-want +got):\n%s", diff)
	}
}
