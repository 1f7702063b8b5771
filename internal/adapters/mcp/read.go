package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"datacat/internal/application"
	"datacat/internal/application/commands"
	"datacat/internal/application/query"
	"datacat/internal/domain"
)

// RegisterReadTools adds all read-only catalogue tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, data *application.DataProvider) {
	s.AddTool(datasetsTool(), datasetsHandler(data))
	s.AddTool(searchTool(), searchHandler(data))
	s.AddTool(treeTool(), treeHandler(data))
	s.AddTool(showTool(), showHandler(data))
}

// --- datasets ---

func datasetsTool() mcp.Tool {
	return mcp.NewTool("datasets",
		mcp.WithDescription("List the datasets that can be browsed and where each one is fetched from."),
	)
}

func datasetsHandler(data *application.DataProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		infos, err := commands.NewListDatasetsCommand(data).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		for _, d := range infos {
			marker := " "
			if d.Active {
				marker = "*"
			}
			fmt.Fprintf(&sb, "%s %s  %s  %s\n", marker, d.Name, d.Label, d.Location)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search a dataset. Matches title, category, sub-category, source, region and id, case-insensitively. Returns one page of 10 records."),
		mcp.WithString("dataset",
			mcp.Description("Dataset name (default or IMF). Defaults to default."),
		),
		mcp.WithString("query",
			mcp.Description("Search text. Omit to list every record."),
		),
		mcp.WithString("sort",
			mcp.Description("Field to sort by (e.g. title, cat, subCat, freq, unit, src, region)."),
		),
		mcp.WithString("direction",
			mcp.Description("asc or desc. Defaults to asc when sort is set."),
			mcp.Enum("asc", "desc"),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number. Out-of-range pages return page 1."),
		),
	)
}

func searchHandler(data *application.DataProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dataset, err := datasetArg(req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewSearchCommand(data, dataset, req.GetString("query", ""))
		cmd.Page = req.GetInt("page", 1)

		if field := req.GetString("sort", ""); field != "" {
			f, err := domain.ParseField(field)
			if err != nil {
				return toolError(err)
			}
			dir, err := query.ParseDirection(req.GetString("direction", "asc"))
			if err != nil {
				return toolError(err)
			}
			cmd.Sort = query.SortState{Field: f, Direction: dir}
		}

		snap, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if snap.Total == 0 {
			if q := strings.TrimSpace(cmd.Query); q != "" {
				return mcp.NewToolResultText(fmt.Sprintf("No results match your search for %q.", q)), nil
			}
			return mcp.NewToolResultText("No data is currently available."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Showing %d to %d of %d results (page %d of %d)\n",
			snap.Start, snap.End, snap.Total, snap.Page, snap.TotalPages)
		for _, r := range snap.Rows {
			sb.WriteString(formatRecordLine(r))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display a dataset's category hierarchy as an indented tree."),
		mcp.WithString("dataset",
			mcp.Description("Dataset name (default or IMF). Defaults to default."),
		),
		mcp.WithNumber("depth",
			mcp.Description("Maximum number of levels to show. Omit for the whole tree."),
		),
	)
}

func treeHandler(data *application.DataProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dataset, err := datasetArg(req)
		if err != nil {
			return toolError(err)
		}

		lines, err := commands.NewBuildTreeCommand(data, dataset, req.GetInt("depth", 0)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(lines) == 0 {
			return mcp.NewToolResultText("No categories."), nil
		}

		var sb strings.Builder
		renderTree(&sb, lines)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, lines []commands.TreeLine) {
	for _, l := range lines {
		sb.WriteString(strings.Repeat("  ", l.Depth))
		sb.WriteString(l.Name)
		if l.Children > 0 {
			fmt.Fprintf(sb, " (%d)", l.Children)
		}
		sb.WriteByte('\n')
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show every field of one record by its id."),
		mcp.WithString("dataset",
			mcp.Description("Dataset name (default or IMF). Defaults to default."),
		),
		mcp.WithString("id",
			mcp.Description("Record id"),
			mcp.Required(),
		),
	)
}

func showHandler(data *application.DataProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}
		dataset, err := datasetArg(req)
		if err != nil {
			return toolError(err)
		}

		record, err := commands.NewShowRecordCommand(data, dataset, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(commands.FormatRecord(record)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func datasetArg(req mcp.CallToolRequest) (domain.DatasetName, error) {
	return domain.ParseDatasetName(req.GetString("dataset", domain.DatasetDefault.String()))
}

func formatRecordLine(r domain.Record) string {
	parts := []string{r.ID, r.Title, r.Cat, r.SubCat, r.Freq, r.Unit, r.Src}
	if r.HasRegion() {
		parts = append(parts, r.Region)
	}
	return strings.Join(parts, "  ")
}
