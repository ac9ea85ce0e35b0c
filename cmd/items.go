package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/sm2/internal/sm2"
	"github.com/abhisek/sm2/internal/store"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [key]",
		Short: "Store a new item and print its key",
		Long:  "Store a new, never reviewed item. A random key is generated when none is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := uuid.NewString()
			if len(args) == 1 {
				key = args[0]
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			repo := st.ItemRepo()

			_, err = repo.Get(cmd.Context(), key)
			switch {
			case err == nil:
				return fmt.Errorf("item %q already exists", key)
			case !errors.Is(err, store.ErrNotFound):
				return err
			}

			if err := repo.Save(cmd.Context(), key, sm2.DefaultItem()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Show a stored item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			item, err := st.ItemRepo().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			return writeResult(cmd.OutOrStdout(), newResult(args[0], item), asJSON)
		},
	}
	cmd.Flags().Bool("json", false, "Print the item as JSON")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a stored item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			return st.ItemRepo().Delete(cmd.Context(), args[0])
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the keys of stored items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			keys, err := st.ItemRepo().Keys(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}
