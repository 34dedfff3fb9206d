package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/export"
)

var (
	rosterBatchSlug string
	rosterOut       string
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Batch roster exports",
}

var rosterExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a batch roster workbook",
	Long: `Writes the members and companies of a batch to an .xlsx workbook.
The file defaults to <slug>-roster.xlsx in the current directory.`,
	RunE: runRosterExport,
}

func init() {
	rosterExportCmd.Flags().StringVar(&rosterBatchSlug, "batch-slug", "", "batch slug")
	rosterExportCmd.Flags().StringVar(&rosterOut, "out", "", "output path")
	_ = rosterExportCmd.MarkFlagRequired("batch-slug")

	rosterCmd.AddCommand(rosterExportCmd)
}

func runRosterExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	batches := current.services.Batches()

	batch, err := batches.GetBySlug(ctx, rosterBatchSlug)
	if err != nil {
		return fmt.Errorf("finding batch %s: %w", rosterBatchSlug, err)
	}

	roster, err := batches.Roster(ctx, batch.ID)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}

	path := rosterOut
	if path == "" {
		path = export.RosterFilename(*batch)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.WriteRoster(f, *roster); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d members to %s\n", len(roster.Members), path)
	return nil
}
