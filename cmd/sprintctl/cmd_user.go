package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

var (
	userEmail string
	userRole  string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage member accounts",
}

var userSetRoleCmd = &cobra.Command{
	Use:   "set-role",
	Short: "Change a member's role",
	RunE:  runUserSetRole,
}

var userDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Deactivate a member and revoke their sessions",
	RunE:  runUserDeactivate,
}

func init() {
	userSetRoleCmd.Flags().StringVar(&userEmail, "email", "", "member email")
	userSetRoleCmd.Flags().StringVar(&userRole, "role", "", "admin, staff, mentor or founder")
	_ = userSetRoleCmd.MarkFlagRequired("email")
	_ = userSetRoleCmd.MarkFlagRequired("role")

	userDeactivateCmd.Flags().StringVar(&userEmail, "email", "", "member email")
	_ = userDeactivateCmd.MarkFlagRequired("email")

	userCmd.AddCommand(userSetRoleCmd, userDeactivateCmd)
}

func runUserSetRole(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	role, err := model.ParseRole(userRole)
	if err != nil {
		return err
	}

	users := current.services.Users()
	user, err := users.GetByEmail(ctx, userEmail)
	if err != nil {
		return fmt.Errorf("finding %s: %w", userEmail, err)
	}

	updated, err := users.UpdateMembership(ctx, user.ID, model.MembershipUpdate{Role: &role})
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d) is now %s\n", updated.Email, updated.ID, updated.Role)
	return nil
}

func runUserDeactivate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	users := current.services.Users()
	user, err := users.GetByEmail(ctx, userEmail)
	if err != nil {
		return fmt.Errorf("finding %s: %w", userEmail, err)
	}

	if _, err := users.Deactivate(ctx, model.SystemActor(), user.ID); err != nil {
		return fmt.Errorf("deactivating user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deactivated %s (%d)\n", user.Email, user.ID)
	return nil
}
