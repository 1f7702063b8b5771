package commands

import (
	"context"
	"fmt"
	"strings"

	"datacat/internal/application"
	"datacat/internal/domain"
)

// ShowRecordCommand looks up one record by id
type ShowRecordCommand struct {
	data    *application.DataProvider
	Dataset domain.DatasetName
	ID      string
}

// NewShowRecordCommand creates a new ShowRecordCommand
func NewShowRecordCommand(data *application.DataProvider, dataset domain.DatasetName, id string) *ShowRecordCommand {
	return &ShowRecordCommand{
		data:    data,
		Dataset: dataset,
		ID:      id,
	}
}

// Execute runs the show record command
func (c *ShowRecordCommand) Execute(ctx context.Context) (domain.Record, error) {
	if err := c.data.SwitchDataset(ctx, c.Dataset); err != nil {
		return domain.Record{}, err
	}
	return c.data.Record(c.ID)
}

// FormatRecord lists the non-empty fields of r, one per line.
func FormatRecord(r domain.Record) string {
	var sb strings.Builder
	for _, f := range domain.Fields() {
		if v, ok := r.Field(f); ok {
			fmt.Fprintf(&sb, "%-14s %s\n", f.Label()+":", v)
		}
	}
	if len(r.Hierarchy) > 0 {
		fmt.Fprintf(&sb, "%-14s %s\n", "Hierarchy:", strings.Join(r.Hierarchy, " > "))
	}
	return sb.String()
}
