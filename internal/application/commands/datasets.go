package commands

import (
	"context"

	"datacat/internal/application"
	"datacat/internal/domain"
)

// DatasetInfo describes one selectable dataset
type DatasetInfo struct {
	Name     domain.DatasetName
	Label    string
	Location string
	Active   bool
}

// ListDatasetsCommand lists the datasets the provider can load
type ListDatasetsCommand struct {
	data *application.DataProvider
}

// NewListDatasetsCommand creates a new ListDatasetsCommand
func NewListDatasetsCommand(data *application.DataProvider) *ListDatasetsCommand {
	return &ListDatasetsCommand{data: data}
}

// Execute runs the list datasets command
func (c *ListDatasetsCommand) Execute(ctx context.Context) ([]DatasetInfo, error) {
	active := c.data.Current()

	var out []DatasetInfo
	for _, name := range domain.AllDatasets() {
		out = append(out, DatasetInfo{
			Name:     name,
			Label:    name.Label(),
			Location: c.data.Location(name),
			Active:   name == active,
		})
	}
	return out, nil
}
