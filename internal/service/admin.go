package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

type AdminService interface {
	Stats(ctx context.Context) (*model.AdminStats, error)
	// RunMaintenance expires invitations, deletes expired sessions and settles past office hours.
	RunMaintenance(ctx context.Context) (*model.MaintenanceReport, error)
}

type adminService struct {
	userStore       store.UserStore
	sessionStore    store.SessionStore
	invitationStore store.InvitationStore
	batchStore      store.BatchStore
	groupStore      store.GroupStore
	postStore       store.PostStore
	ohStore         store.OfficeHourStore
	officeHours     OfficeHourService
}

func NewAdminService(
	userStore store.UserStore,
	sessionStore store.SessionStore,
	invitationStore store.InvitationStore,
	batchStore store.BatchStore,
	groupStore store.GroupStore,
	postStore store.PostStore,
	ohStore store.OfficeHourStore,
	officeHours OfficeHourService,
) AdminService {
	return &adminService{
		userStore:       userStore,
		sessionStore:    sessionStore,
		invitationStore: invitationStore,
		batchStore:      batchStore,
		groupStore:      groupStore,
		postStore:       postStore,
		ohStore:         ohStore,
		officeHours:     officeHours,
	}
}

func (s *adminService) Stats(ctx context.Context) (*model.AdminStats, error) {
	stats := &model.AdminStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		byRole, err := s.userStore.CountActiveByRole(gctx)
		if err != nil {
			return fmt.Errorf("counting users: %w", err)
		}
		stats.UsersByRole = byRole
		for _, n := range byRole {
			stats.ActiveUsers += n
		}
		return nil
	})
	g.Go(func() (err error) {
		stats.Batches, err = s.batchStore.Count(gctx)
		return wrapCount("batches", err)
	})
	g.Go(func() (err error) {
		stats.Groups, err = s.groupStore.Count(gctx)
		return wrapCount("groups", err)
	})
	g.Go(func() (err error) {
		stats.Posts, err = s.postStore.Count(gctx)
		return wrapCount("posts", err)
	})
	g.Go(func() (err error) {
		stats.UpcomingSlots, err = s.ohStore.CountUpcomingAvailable(gctx)
		return wrapCount("upcoming slots", err)
	})
	g.Go(func() (err error) {
		stats.PendingRequests, err = s.ohStore.CountPendingRequests(gctx)
		return wrapCount("pending requests", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *adminService) RunMaintenance(ctx context.Context) (*model.MaintenanceReport, error) {
	report := &model.MaintenanceReport{}

	expired, err := s.invitationStore.ExpireOld(ctx)
	if err != nil {
		return nil, fmt.Errorf("expiring invitations: %w", err)
	}
	report.ExpiredInvitations = expired

	deleted, err := s.sessionStore.DeleteExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("deleting expired sessions: %w", err)
	}
	report.DeletedSessions = deleted

	slots, err := s.officeHours.RunMaintenance(ctx)
	if err != nil {
		return nil, fmt.Errorf("office hour maintenance: %w", err)
	}
	report.Slots = slots

	slog.InfoContext(ctx, "maintenance run complete",
		"expired_invitations", report.ExpiredInvitations,
		"deleted_sessions", report.DeletedSessions,
		"slots_completed", slots.Completed,
		"slots_cancelled", slots.Cancelled,
		"requests_declined", slots.Declined,
	)
	return report, nil
}

func wrapCount(what string, err error) error {
	if err != nil {
		return fmt.Errorf("counting %s: %w", what, err)
	}
	return nil
}
