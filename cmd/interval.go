package cmd

import (
	"github.com/spf13/cobra"
)

func newIntervalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Print the days until an item's next review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadItem(cmd, false)
			if err != nil {
				return err
			}
			defer src.Close()

			asJSON, _ := cmd.Flags().GetBool("json")
			return writeResult(cmd.OutOrStdout(), newResult(src.key, src.item), asJSON)
		},
	}
	addItemFlags(cmd)
	return cmd
}
