package commands

import (
	"context"

	"datacat/internal/application"
	"datacat/internal/domain"
)

// TreeLine is one category in pre-order with its depth
type TreeLine struct {
	Name     string
	Depth    int
	Children int
}

// BuildTreeCommand flattens a dataset's category tree
type BuildTreeCommand struct {
	data    *application.DataProvider
	Dataset domain.DatasetName
	// MaxDepth limits the depth listed; zero or less lists everything.
	MaxDepth int
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(data *application.DataProvider, dataset domain.DatasetName, maxDepth int) *BuildTreeCommand {
	return &BuildTreeCommand{
		data:     data,
		Dataset:  dataset,
		MaxDepth: maxDepth,
	}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) ([]TreeLine, error) {
	if err := c.data.SwitchDataset(ctx, c.Dataset); err != nil {
		return nil, err
	}
	return FlattenTree(c.data.Snapshot().Categories, c.MaxDepth), nil
}

// FlattenTree lists the tree in pre-order, stopping below maxDepth levels
// when maxDepth is positive.
func FlattenTree(tree domain.CategoryTree, maxDepth int) []TreeLine {
	var lines []TreeLine
	tree.Walk(func(n *domain.CategoryNode, depth int) bool {
		lines = append(lines, TreeLine{Name: n.Name, Depth: depth, Children: len(n.Children)})
		return maxDepth <= 0 || depth+1 < maxDepth
	})
	return lines
}
