package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"datacat/internal/application/commands"
	"datacat/internal/application/query"
	"datacat/internal/domain"
)

var (
	searchDataset string
	searchSort    string
	searchDesc    bool
	searchPage    int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search a dataset",
	Long: `Search the records of a dataset. The query matches title, category,
sub-category, source, region and id as a case-insensitive substring. Without
a query every record is listed. Results are shown ten per page.

Examples:
  datacat-cli search inflation
  datacat-cli search --dataset IMF --sort title --desc
  datacat-cli search prices --page 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := domain.ParseDatasetName(searchDataset)
		if err != nil {
			return err
		}

		var q string
		if len(args) == 1 {
			q = args[0]
		}

		searchCmd := commands.NewSearchCommand(data, dataset, q)
		searchCmd.Page = searchPage
		if searchSort != "" {
			field, err := domain.ParseField(searchSort)
			if err != nil {
				return err
			}
			searchCmd.Sort = query.SortState{Field: field, Direction: query.Ascending}
			if searchDesc {
				searchCmd.Sort.Direction = query.Descending
			}
		} else if searchDesc {
			return errors.New("--desc requires --sort")
		}

		snap, err := searchCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if snap.Total == 0 {
			if strings.TrimSpace(q) != "" {
				fmt.Fprintf(out, "No results match your search for %q\n", q)
			} else {
				fmt.Fprintln(out, "No data is currently available")
			}
			return nil
		}

		for _, r := range snap.Rows {
			line := fmt.Sprintf("%-14s %s  [%s / %s]  %s, %s  (%s)", r.ID, r.Title, r.Cat, r.SubCat, r.Freq, r.Unit, r.Src)
			if r.HasRegion() {
				line += "  " + r.Region
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "\nShowing %d to %d of %d results (page %d of %d)\n",
			snap.Start, snap.End, snap.Total, snap.Page, snap.TotalPages)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchDataset, "dataset", "d", domain.DatasetDefault.String(), "dataset to search (default or IMF)")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "", "field to sort by (title, cat, subCat, freq, unit, src, region, ...)")
	searchCmd.Flags().BoolVar(&searchDesc, "desc", false, "sort descending")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "page to show")
	rootCmd.AddCommand(searchCmd)
}
