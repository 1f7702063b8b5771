package commands

import (
	"context"

	"datacat/internal/application"
	"datacat/internal/application/query"
	"datacat/internal/domain"
)

// SearchCommand filters, sorts and pages a dataset in one shot
type SearchCommand struct {
	data     *application.DataProvider
	Dataset  domain.DatasetName
	Query    string
	Sort     query.SortState
	Page     int
	PageSize int
}

// NewSearchCommand creates a new SearchCommand on page 1
func NewSearchCommand(data *application.DataProvider, dataset domain.DatasetName, q string) *SearchCommand {
	return &SearchCommand{
		data:     data,
		Dataset:  dataset,
		Query:    q,
		Page:     1,
		PageSize: query.PageSize,
	}
}

// Execute loads the dataset if needed and returns the requested page
func (c *SearchCommand) Execute(ctx context.Context) (query.Snapshot, error) {
	if err := c.data.SwitchDataset(ctx, c.Dataset); err != nil {
		return query.Snapshot{}, err
	}
	records := c.data.Snapshot().Records
	return query.Run(records, c.Query, c.Sort, c.Page, c.PageSize), nil
}
