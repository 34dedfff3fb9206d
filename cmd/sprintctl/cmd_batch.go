package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

const dateLayout = "2006-01-02"

var (
	batchName   string
	batchSlug   string
	batchStarts string
	batchEnds   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Manage sprint batches",
}

var batchCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a batch",
	Long: `Creates a batch. Dates use YYYY-MM-DD. The slug is derived from the
name when omitted.

Example:
  sprintctl batch create --name "Winter 2026" --starts 2026-01-05 --ends 2026-03-27`,
	RunE: runBatchCreate,
}

func init() {
	batchCreateCmd.Flags().StringVar(&batchName, "name", "", "batch name")
	batchCreateCmd.Flags().StringVar(&batchSlug, "slug", "", "url slug (optional)")
	batchCreateCmd.Flags().StringVar(&batchStarts, "starts", "", "start date, YYYY-MM-DD")
	batchCreateCmd.Flags().StringVar(&batchEnds, "ends", "", "end date, YYYY-MM-DD")
	for _, name := range []string{"name", "starts", "ends"} {
		_ = batchCreateCmd.MarkFlagRequired(name)
	}

	batchCmd.AddCommand(batchCreateCmd)
}

func runBatchCreate(cmd *cobra.Command, args []string) error {
	input, err := batchInput(batchName, batchSlug, batchStarts, batchEnds)
	if err != nil {
		return err
	}

	batch, err := current.services.Batches().Create(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("creating batch: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created batch %s (%d) %s to %s\n",
		batch.Slug, batch.ID, batch.StartsOn.Format(dateLayout), batch.EndsOn.Format(dateLayout))
	return nil
}

func batchInput(name, slug, starts, ends string) (model.BatchInput, error) {
	startsOn, err := time.Parse(dateLayout, starts)
	if err != nil {
		return model.BatchInput{}, fmt.Errorf("invalid --starts %q: expected YYYY-MM-DD", starts)
	}
	endsOn, err := time.Parse(dateLayout, ends)
	if err != nil {
		return model.BatchInput{}, fmt.Errorf("invalid --ends %q: expected YYYY-MM-DD", ends)
	}

	input := model.BatchInput{
		Name:     name,
		StartsOn: startsOn,
		EndsOn:   endsOn,
	}
	if slug != "" {
		input.Slug = &slug
	}
	return input, nil
}
