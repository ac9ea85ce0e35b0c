package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/sm2/internal/sm2"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <quality>",
		Short: "Apply a review outcome to an item",
		Long: "Apply a review outcome to an item and print its new state and interval.\n\n" +
			"Quality is a name or digit: blackout (0), incorrect (1), incorrect-easy (2),\n" +
			"hard (3), good (4), perfect (5). With --item the stored item is updated;\n" +
			"an unknown key starts from a new item.",
		Args: cobra.ExactArgs(1),
		RunE: runReview,
	}
	addItemFlags(cmd)
	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	q, err := sm2.ParseQuality(args[0])
	if err != nil {
		return err
	}

	src, err := loadItem(cmd, true)
	if err != nil {
		return err
	}
	defer src.Close()

	next := src.item.Review(q)
	if err := src.Save(cmd.Context(), next); err != nil {
		return fmt.Errorf("save review: %w", err)
	}
	slog.Debug("item reviewed",
		"key", src.key,
		"quality", q.String(),
		"repetitions", next.Repetitions(),
		"easiness", next.Easiness())

	r := newResult(src.key, next)
	r.Quality = &q
	r.Repeat = q.Repeat()
	asJSON, _ := cmd.Flags().GetBool("json")
	return writeResult(cmd.OutOrStdout(), r, asJSON)
}
