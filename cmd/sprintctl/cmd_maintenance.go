package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Maintenance tasks",
}

var maintenanceRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one maintenance pass now",
	Long: `Expires stale invitations, deletes expired sessions and settles office
hour slots that have ended. The worker runs the same pass on a timer.`,
	RunE: runMaintenance,
}

func init() {
	maintenanceCmd.AddCommand(maintenanceRunCmd)
}

func runMaintenance(cmd *cobra.Command, args []string) error {
	report, err := current.services.Admin().RunMaintenance(cmd.Context())
	if err != nil {
		return fmt.Errorf("running maintenance: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "expired invitations: %d\n", report.ExpiredInvitations)
	fmt.Fprintf(out, "deleted sessions:    %d\n", report.DeletedSessions)
	fmt.Fprintf(out, "slots completed:     %d\n", report.Slots.Completed)
	fmt.Fprintf(out, "slots cancelled:     %d\n", report.Slots.Cancelled)
	fmt.Fprintf(out, "requests declined:   %d\n", report.Slots.Declined)
	return nil
}
