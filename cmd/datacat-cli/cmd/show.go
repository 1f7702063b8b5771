package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"datacat/internal/application/commands"
	"datacat/internal/domain"
)

var showDataset string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := domain.ParseDatasetName(showDataset)
		if err != nil {
			return err
		}

		record, err := commands.NewShowRecordCommand(data, dataset, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), commands.FormatRecord(record))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&showDataset, "dataset", "d", domain.DatasetDefault.String(), "dataset holding the record")
	rootCmd.AddCommand(showCmd)
}
