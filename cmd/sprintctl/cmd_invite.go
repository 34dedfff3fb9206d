package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

var (
	inviteEmail     string
	inviteRole      string
	inviteBatchSlug string
)

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Invite someone to the program",
	Long: `Creates an invitation and queues the invitation email. The invite link
is printed so it can be shared by hand when email delivery is disabled.`,
	RunE: runInvite,
}

func init() {
	inviteCmd.Flags().StringVar(&inviteEmail, "email", "", "invitee email")
	inviteCmd.Flags().StringVar(&inviteRole, "role", string(model.RoleFounder), "admin, staff, mentor or founder")
	inviteCmd.Flags().StringVar(&inviteBatchSlug, "batch-slug", "", "batch to join on acceptance")
	_ = inviteCmd.MarkFlagRequired("email")
}

func runInvite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	role, err := model.ParseRole(inviteRole)
	if err != nil {
		return err
	}

	input := service.InvitationInput{Email: inviteEmail, Role: role}
	if inviteBatchSlug != "" {
		batch, err := current.services.Batches().GetBySlug(ctx, inviteBatchSlug)
		if err != nil {
			return fmt.Errorf("finding batch %s: %w", inviteBatchSlug, err)
		}
		input.BatchID = &batch.ID
	}

	inv, inviteURL, err := current.services.Invitations().Create(ctx, model.SystemActor(), input)
	if err != nil {
		return fmt.Errorf("creating invitation: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "invited %s as %s (expires %s)\n", inv.Email, inv.Role, inv.ExpiresAt.Format(dateLayout))
	fmt.Fprintln(out, inviteURL)
	return nil
}
