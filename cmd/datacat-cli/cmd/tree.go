package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"datacat/internal/application/commands"
	"datacat/internal/domain"
)

var (
	treeDataset string
	treeDepth   int
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the category tree",
	Long: `Display the category hierarchy of a dataset.

Examples:
  datacat-cli tree
  datacat-cli tree --dataset IMF --depth 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := domain.ParseDatasetName(treeDataset)
		if err != nil {
			return err
		}

		lines, err := commands.NewBuildTreeCommand(data, dataset, treeDepth).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No categories")
			return nil
		}

		printTree(cmd.OutOrStdout(), lines)
		return nil
	},
}

func printTree(w io.Writer, lines []commands.TreeLine) {
	for _, l := range lines {
		indent := strings.Repeat("  ", l.Depth)
		if l.Children > 0 {
			fmt.Fprintf(w, "%s%s/\n", indent, l.Name)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, l.Name)
		}
	}
}

func init() {
	treeCmd.Flags().StringVarP(&treeDataset, "dataset", "d", domain.DatasetDefault.String(), "dataset to read (default or IMF)")
	treeCmd.Flags().IntVar(&treeDepth, "depth", 0, "maximum depth to print (0 for all)")
	rootCmd.AddCommand(treeCmd)
}
