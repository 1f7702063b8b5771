package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"datacat/internal/application/commands"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the available datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := commands.NewListDatasetsCommand(data).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, d := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-16s %s\n", d.Name, d.Label, d.Location)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
