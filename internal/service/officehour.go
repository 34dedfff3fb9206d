package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

const (
	MaxSlotDuration  = 4 * time.Hour
	MaxTopicLength   = 1000
	DefaultSlotLimit = 50
	MaxSlotLimit     = 200
	RequestListLimit = 100
	maintenanceBatch = 100
)

var (
	ErrSlotNotAvailable     = errors.New("office hour slot is not available")
	ErrSlotInPast           = errors.New("office hour slot has already started")
	ErrSlotNotStarted       = errors.New("office hour slot has not started yet")
	ErrSlotOverlap          = errors.New("office hour slot overlaps another slot")
	ErrSlotNotEditable      = errors.New("office hour slot can no longer be changed")
	ErrCannotRequestOwnSlot = errors.New("cannot request your own office hour slot")
	ErrNotHost              = errors.New("only mentors, staff and admins can host office hours")
)

type OfficeHourService interface {
	// CreateSlot publishes a slot. Admins may set input.HostID to publish for another host.
	CreateSlot(ctx context.Context, actor *model.User, input model.SlotInput) (*model.OfficeHourSlot, error)
	UpdateSlot(ctx context.Context, actor *model.User, slotID int64, input model.SlotInput) (*model.OfficeHourSlot, error)
	DeleteSlot(ctx context.Context, actor *model.User, slotID int64) error
	// ListSlots lists upcoming available slots, or every slot the actor hosts when mine is set.
	ListSlots(ctx context.Context, actor *model.User, filter model.SlotFilter, mine bool) ([]model.OfficeHourSlot, error)

	RequestSlot(ctx context.Context, actor *model.User, slotID int64, topic string) (*model.OfficeHourRequest, error)
	ConfirmRequest(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error)
	DeclineRequest(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error)
	CancelRequest(ctx context.Context, actor *model.User, requestID int64) (*model.OfficeHourRequest, error)
	CancelSlot(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error)
	CompleteSlot(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error)

	ListMyRequests(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error)
	ListHostRequests(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error)

	// RunMaintenance settles slots whose end time has passed.
	RunMaintenance(ctx context.Context) (model.SlotMaintenanceResult, error)
}

type OfficeHourOption func(*officeHourService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) OfficeHourOption {
	return func(s *officeHourService) {
		s.now = now
	}
}

type officeHourService struct {
	ohStore   store.OfficeHourStore
	userStore store.UserStore
	txRunner  TxRunner
	notifier  *notifier
	now       func() time.Time
}

func NewOfficeHourService(
	ohStore store.OfficeHourStore,
	userStore store.UserStore,
	txRunner TxRunner,
	producer queue.Producer,
	opts ...OfficeHourOption,
) OfficeHourService {
	s := &officeHourService{
		ohStore:   ohStore,
		userStore: userStore,
		txRunner:  txRunner,
		notifier:  newNotifier(producer),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *officeHourService) CreateSlot(ctx context.Context, actor *model.User, input model.SlotInput) (*model.OfficeHourSlot, error) {
	if !actor.CanHostOfficeHours() {
		return nil, ErrNotHost
	}

	hostID := actor.ID
	if input.HostID != nil && *input.HostID != actor.ID {
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
		host, err := s.userStore.GetByID(ctx, *input.HostID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("getting host: %w", err)
		}
		if !host.IsActive || !host.CanHostOfficeHours() {
			return nil, ErrNotHost
		}
		hostID = host.ID
	}
	if hostID == 0 {
		return nil, invalidInput("host_id is required")
	}

	if err := s.validateSlotInput(&input); err != nil {
		return nil, err
	}
	overlapping, err := s.ohStore.CountOverlapping(ctx, hostID, input.StartsAt, input.EndsAt, nil)
	if err != nil {
		return nil, fmt.Errorf("checking overlapping slots: %w", err)
	}
	if overlapping > 0 {
		return nil, ErrSlotOverlap
	}

	slot := &model.OfficeHourSlot{
		ID:         id.New(),
		HostID:     hostID,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		Location:   input.Location,
		MeetingURL: input.MeetingURL,
		Notes:      input.Notes,
		Status:     model.SlotStatusAvailable,
	}
	if err := s.ohStore.CreateSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("creating slot: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slot.ID})
	slog.InfoContext(ctx, "office hour slot created",
		"host_id", hostID,
		"starts_at", slot.StartsAt,
		"ends_at", slot.EndsAt,
		"actor_id", actor.ID,
	)
	return slot, nil
}

func (s *officeHourService) UpdateSlot(ctx context.Context, actor *model.User, slotID int64, input model.SlotInput) (*model.OfficeHourSlot, error) {
	if err := s.validateSlotInput(&input); err != nil {
		return nil, err
	}

	var slot *model.OfficeHourSlot
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		var err error
		slot, err = lockSlot(ctx, oh, slotID)
		if err != nil {
			return err
		}
		if !canManageSlot(actor, slot) {
			return ErrForbidden
		}
		if slot.Status != model.SlotStatusAvailable {
			return ErrSlotNotEditable
		}

		overlapping, err := oh.CountOverlapping(ctx, slot.HostID, input.StartsAt, input.EndsAt, &slot.ID)
		if err != nil {
			return fmt.Errorf("checking overlapping slots: %w", err)
		}
		if overlapping > 0 {
			return ErrSlotOverlap
		}

		slot.StartsAt = input.StartsAt
		slot.EndsAt = input.EndsAt
		slot.Location = input.Location
		slot.MeetingURL = input.MeetingURL
		slot.Notes = input.Notes
		if err := oh.UpdateSlot(ctx, slot); err != nil {
			return fmt.Errorf("updating slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slotID})
	slog.InfoContext(ctx, "office hour slot updated", "actor_id", actor.ID)
	return slot, nil
}

func (s *officeHourService) DeleteSlot(ctx context.Context, actor *model.User, slotID int64) error {
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		slot, err := lockSlot(ctx, oh, slotID)
		if err != nil {
			return err
		}
		if !canManageSlot(actor, slot) {
			return ErrForbidden
		}
		if slot.Status != model.SlotStatusAvailable && slot.Status != model.SlotStatusCancelled {
			return ErrSlotNotEditable
		}
		return oh.DeleteSlot(ctx, slotID)
	})
	if err != nil {
		return err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slotID})
	slog.InfoContext(ctx, "office hour slot deleted", "actor_id", actor.ID)
	return nil
}

func (s *officeHourService) ListSlots(ctx context.Context, actor *model.User, filter model.SlotFilter, mine bool) ([]model.OfficeHourSlot, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultSlotLimit
	}
	if filter.Limit > MaxSlotLimit {
		filter.Limit = MaxSlotLimit
	}

	if mine {
		slots, err := s.ohStore.ListByHost(ctx, actor.ID, filter.Limit)
		if err != nil {
			return nil, fmt.Errorf("listing hosted slots: %w", err)
		}
		return slots, nil
	}

	if filter.From == nil || filter.From.Before(s.now()) {
		now := s.now()
		filter.From = &now
	}
	slots, err := s.ohStore.ListAvailable(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing available slots: %w", err)
	}
	return slots, nil
}

func (s *officeHourService) RequestSlot(ctx context.Context, actor *model.User, slotID int64, topic string) (*model.OfficeHourRequest, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, invalidInput("topic is required")
	}
	if utf8.RuneCountInString(topic) > MaxTopicLength {
		return nil, invalidInput("topic must be at most %d characters", MaxTopicLength)
	}
	if !actor.IsActive {
		return nil, ErrUserDeactivated
	}

	var (
		slot *model.OfficeHourSlot
		req  *model.OfficeHourRequest
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		var err error
		slot, err = lockSlot(ctx, oh, slotID)
		if err != nil {
			return err
		}
		if slot.HostID == actor.ID {
			return ErrCannotRequestOwnSlot
		}
		if slot.Status != model.SlotStatusAvailable {
			return ErrSlotNotAvailable
		}
		if !slot.StartsAt.After(s.now()) {
			return ErrSlotInPast
		}

		if _, err := oh.GetActiveRequestForSlot(ctx, slotID); err == nil {
			return ErrSlotNotAvailable
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking active request: %w", err)
		}

		req = &model.OfficeHourRequest{
			ID:          id.New(),
			SlotID:      slotID,
			RequesterID: actor.ID,
			Topic:       topic,
			Status:      model.RequestStatusPending,
		}
		if err := oh.CreateRequest(ctx, req); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("creating request: %w", err)
		}

		slot, err = transitionSlot(ctx, oh, slot, model.SlotStatusRequested)
		return err
	})
	if err != nil {
		return nil, err
	}
	req.Slot = slot

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slotID, RequestID: &req.ID})
	slog.InfoContext(ctx, "office hour slot requested", "user_id", actor.ID)

	s.notifier.slotEmail(ctx, s.lookupUser(ctx, slot.HostID), slot,
		fmt.Sprintf("%s requested your office hours", actor.Name),
		TemplateRequestReceived,
		fmt.Sprintf("%s requested your slot on %s. Topic: %s", actor.Name, slot.StartsAt.Format(slotTimeLayout), preview(topic)),
	)
	return req, nil
}

func (s *officeHourService) ConfirmRequest(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error) {
	slot, req, err := s.respond(ctx, actor, requestID, func(oh store.OfficeHourStore, slot *model.OfficeHourSlot, req *model.OfficeHourRequest) (*model.OfficeHourSlot, *model.OfficeHourRequest, error) {
		if req.Status != model.RequestStatusPending || slot.Status != model.SlotStatusRequested {
			return nil, nil, fmt.Errorf("%w: request %s on slot %s cannot be confirmed", ErrInvalidTransition, req.Status, slot.Status)
		}
		updatedReq, err := transitionRequest(ctx, oh, req, model.RequestStatusConfirmed, note)
		if err != nil {
			return nil, nil, err
		}
		updatedSlot, err := transitionSlot(ctx, oh, slot, model.SlotStatusConfirmed)
		if err != nil {
			return nil, nil, err
		}
		return updatedSlot, updatedReq, nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slot.ID, RequestID: &req.ID})
	slog.InfoContext(ctx, "office hour request confirmed", "actor_id", actor.ID)

	host := s.lookupUser(ctx, slot.HostID)
	requester := s.lookupUser(ctx, req.RequesterID)
	if host != nil && requester != nil {
		s.notifier.calendarCreate(ctx, slot, req, host, requester)
	}
	s.notifier.slotEmail(ctx, requester, slot,
		"Your office hours request was confirmed",
		TemplateRequestConfirmed,
		fmt.Sprintf("Your office hours on %s are confirmed.", slot.StartsAt.Format(slotTimeLayout)),
	)
	s.notifier.slotEmail(ctx, host, slot,
		"Office hours confirmed",
		TemplateRequestConfirmed,
		fmt.Sprintf("You confirmed office hours on %s.", slot.StartsAt.Format(slotTimeLayout)),
	)
	return req, nil
}

func (s *officeHourService) DeclineRequest(ctx context.Context, actor *model.User, requestID int64, note *string) (*model.OfficeHourRequest, error) {
	slot, req, err := s.respond(ctx, actor, requestID, func(oh store.OfficeHourStore, slot *model.OfficeHourSlot, req *model.OfficeHourRequest) (*model.OfficeHourSlot, *model.OfficeHourRequest, error) {
		updatedReq, err := transitionRequest(ctx, oh, req, model.RequestStatusDeclined, note)
		if err != nil {
			return nil, nil, err
		}
		updatedSlot := slot
		if slot.Status == model.SlotStatusRequested {
			updatedSlot, err = transitionSlot(ctx, oh, slot, model.SlotStatusAvailable)
			if err != nil {
				return nil, nil, err
			}
		}
		return updatedSlot, updatedReq, nil
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slot.ID, RequestID: &req.ID})
	slog.InfoContext(ctx, "office hour request declined", "actor_id", actor.ID)

	s.notifier.slotEmail(ctx, s.lookupUser(ctx, req.RequesterID), slot,
		"Your office hours request was declined",
		TemplateRequestDeclined,
		fmt.Sprintf("Your request for office hours on %s was declined.", slot.StartsAt.Format(slotTimeLayout)),
	)
	return req, nil
}

// respond runs a host decision on a request with the slot and request rows locked.
func (s *officeHourService) respond(
	ctx context.Context,
	actor *model.User,
	requestID int64,
	apply func(oh store.OfficeHourStore, slot *model.OfficeHourSlot, req *model.OfficeHourRequest) (*model.OfficeHourSlot, *model.OfficeHourRequest, error),
) (*model.OfficeHourSlot, *model.OfficeHourRequest, error) {
	var (
		slot *model.OfficeHourSlot
		req  *model.OfficeHourRequest
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		var err error
		slot, req, err = lockRequest(ctx, oh, requestID)
		if err != nil {
			return err
		}
		if !canManageSlot(actor, slot) {
			return ErrForbidden
		}
		slot, req, err = apply(oh, slot, req)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	req.Slot = slot
	return slot, req, nil
}

func (s *officeHourService) CancelRequest(ctx context.Context, actor *model.User, requestID int64) (*model.OfficeHourRequest, error) {
	var (
		slot         *model.OfficeHourSlot
		req          *model.OfficeHourRequest
		wasConfirmed bool
		eventID      *string
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		var err error
		slot, req, err = lockRequest(ctx, oh, requestID)
		if err != nil {
			return err
		}
		if req.RequesterID != actor.ID {
			return ErrForbidden
		}
		wasConfirmed = req.Status == model.RequestStatusConfirmed
		eventID = slot.CalendarEventID

		req, err = transitionRequest(ctx, oh, req, model.RequestStatusCancelled, nil)
		if err != nil {
			return err
		}

		next := model.SlotStatusCancelled
		if slot.StartsAt.After(s.now()) {
			next = model.SlotStatusAvailable
		}
		if slot.Status.CanTransitionTo(next) {
			slot, err = transitionSlot(ctx, oh, slot, next)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	req.Slot = slot

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slot.ID, RequestID: &req.ID})
	slog.InfoContext(ctx, "office hour request cancelled", "user_id", actor.ID, "slot_status", slot.Status)

	if wasConfirmed {
		s.notifier.calendarCancel(ctx, slot.ID, eventID)
	}
	s.notifier.slotEmail(ctx, s.lookupUser(ctx, slot.HostID), slot,
		fmt.Sprintf("%s cancelled their office hours request", actor.Name),
		TemplateRequestCancelled,
		fmt.Sprintf("%s cancelled their request for %s.", actor.Name, slot.StartsAt.Format(slotTimeLayout)),
	)
	return req, nil
}

func (s *officeHourService) CancelSlot(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error) {
	var (
		slot    *model.OfficeHourSlot
		req     *model.OfficeHourRequest
		eventID *string
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		var err error
		slot, err = lockSlot(ctx, oh, slotID)
		if err != nil {
			return err
		}
		if !canManageSlot(actor, slot) {
			return ErrForbidden
		}
		eventID = slot.CalendarEventID

		slot, err = transitionSlot(ctx, oh, slot, model.SlotStatusCancelled)
		if err != nil {
			return err
		}

		req, err = activeRequest(ctx, oh, slotID)
		if err != nil || req == nil {
			return err
		}
		req, err = transitionRequest(ctx, oh, req, model.RequestStatusCancelled, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slotID})
	slog.InfoContext(ctx, "office hour slot cancelled", "actor_id", actor.ID, "had_request", req != nil)

	s.notifier.calendarCancel(ctx, slot.ID, eventID)
	if req != nil {
		s.notifier.slotEmail(ctx, s.lookupUser(ctx, req.RequesterID), slot,
			"Office hours cancelled",
			TemplateSlotCancelled,
			fmt.Sprintf("The office hours on %s you requested were cancelled by the host.", slot.StartsAt.Format(slotTimeLayout)),
		)
	}
	return slot, nil
}

func (s *officeHourService) CompleteSlot(ctx context.Context, actor *model.User, slotID int64) (*model.OfficeHourSlot, error) {
	var slot *model.OfficeHourSlot
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		var err error
		slot, err = lockSlot(ctx, oh, slotID)
		if err != nil {
			return err
		}
		if !canManageSlot(actor, slot) {
			return ErrForbidden
		}
		if slot.Status != model.SlotStatusConfirmed {
			return fmt.Errorf("%w: slot %s cannot be completed", ErrInvalidTransition, slot.Status)
		}
		if slot.StartsAt.After(s.now()) {
			return ErrSlotNotStarted
		}
		slot, err = completeSlot(ctx, oh, slot)
		return err
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SlotID: &slotID})
	slog.InfoContext(ctx, "office hour slot completed", "actor_id", actor.ID)
	return slot, nil
}

func (s *officeHourService) ListMyRequests(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error) {
	reqs, err := s.ohStore.ListRequestsByRequester(ctx, actor.ID, RequestListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	return reqs, nil
}

func (s *officeHourService) ListHostRequests(ctx context.Context, actor *model.User) ([]model.OfficeHourRequest, error) {
	if !actor.CanHostOfficeHours() {
		return []model.OfficeHourRequest{}, nil
	}
	reqs, err := s.ohStore.ListRequestsForHost(ctx, actor.ID, RequestListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing host requests: %w", err)
	}
	return reqs, nil
}

func (s *officeHourService) RunMaintenance(ctx context.Context) (model.SlotMaintenanceResult, error) {
	var result model.SlotMaintenanceResult
	now := s.now()

	confirmed, err := s.ohStore.ListEndedWithStatus(ctx, model.SlotStatusConfirmed, now, maintenanceBatch)
	if err != nil {
		return result, fmt.Errorf("listing ended confirmed slots: %w", err)
	}
	for _, candidate := range confirmed {
		done, err := s.settle(ctx, candidate.ID, model.SlotStatusConfirmed, func(oh store.OfficeHourStore, slot *model.OfficeHourSlot) error {
			_, err := completeSlot(ctx, oh, slot)
			return err
		})
		if err != nil {
			return result, err
		}
		if done {
			result.Completed++
		}
	}

	for _, status := range []model.SlotStatus{model.SlotStatusAvailable, model.SlotStatusRequested} {
		stale, err := s.ohStore.ListEndedWithStatus(ctx, status, now, maintenanceBatch)
		if err != nil {
			return result, fmt.Errorf("listing ended %s slots: %w", status, err)
		}
		for _, candidate := range stale {
			declined := false
			done, err := s.settle(ctx, candidate.ID, status, func(oh store.OfficeHourStore, slot *model.OfficeHourSlot) error {
				if _, err := transitionSlot(ctx, oh, slot, model.SlotStatusCancelled); err != nil {
					return err
				}
				req, err := activeRequest(ctx, oh, slot.ID)
				if err != nil || req == nil || req.Status != model.RequestStatusPending {
					return err
				}
				if _, err := transitionRequest(ctx, oh, req, model.RequestStatusDeclined, nil); err != nil {
					return err
				}
				declined = true
				return nil
			})
			if err != nil {
				return result, err
			}
			if done {
				result.Cancelled++
			}
			if done && declined {
				result.Declined++
			}
		}
	}

	if result.Completed+result.Cancelled > 0 {
		slog.InfoContext(ctx, "office hour maintenance finished",
			"completed", result.Completed,
			"cancelled", result.Cancelled,
			"declined", result.Declined,
		)
	}
	return result, nil
}

// settle applies fn to a slot if it still has the expected status once locked.
func (s *officeHourService) settle(ctx context.Context, slotID int64, expected model.SlotStatus, fn func(oh store.OfficeHourStore, slot *model.OfficeHourSlot) error) (bool, error) {
	applied := false
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		oh := sp.OfficeHours()
		slot, err := lockSlot(ctx, oh, slotID)
		if err != nil {
			if errors.Is(err, ErrSlotNotFound) {
				return nil
			}
			return err
		}
		if slot.Status != expected {
			return nil
		}
		if err := fn(oh, slot); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("settling slot %d: %w", slotID, err)
	}
	return applied, nil
}

func (s *officeHourService) validateSlotInput(input *model.SlotInput) error {
	if input.StartsAt.IsZero() || input.EndsAt.IsZero() {
		return invalidInput("starts_at and ends_at are required")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return invalidInput("ends_at must be after starts_at")
	}
	if !input.StartsAt.After(s.now()) {
		return ErrSlotInPast
	}
	if input.EndsAt.Sub(input.StartsAt) > MaxSlotDuration {
		return invalidInput("slots can be at most %s long", MaxSlotDuration)
	}
	input.Location = trimOptional(input.Location)
	input.MeetingURL = trimOptional(input.MeetingURL)
	input.Notes = trimOptional(input.Notes)
	return nil
}

func (s *officeHourService) lookupUser(ctx context.Context, userID int64) *model.User {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load user for notification", "error", err, "user_id", userID)
		return nil
	}
	return user
}

func lockSlot(ctx context.Context, oh store.OfficeHourStore, slotID int64) (*model.OfficeHourSlot, error) {
	slot, err := oh.GetSlotForUpdate(ctx, slotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("locking slot: %w", err)
	}
	return slot, nil
}

// lockRequest locks the slot before the request so every transition takes locks in the same order.
func lockRequest(ctx context.Context, oh store.OfficeHourStore, requestID int64) (*model.OfficeHourSlot, *model.OfficeHourRequest, error) {
	peek, err := oh.GetRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, fmt.Errorf("getting request: %w", err)
	}
	slot, err := lockSlot(ctx, oh, peek.SlotID)
	if err != nil {
		return nil, nil, err
	}
	req, err := oh.GetRequestForUpdate(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, fmt.Errorf("locking request: %w", err)
	}
	return slot, req, nil
}

func activeRequest(ctx context.Context, oh store.OfficeHourStore, slotID int64) (*model.OfficeHourRequest, error) {
	req, err := oh.GetActiveRequestForSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting active request: %w", err)
	}
	return req, nil
}

func completeSlot(ctx context.Context, oh store.OfficeHourStore, slot *model.OfficeHourSlot) (*model.OfficeHourSlot, error) {
	updated, err := transitionSlot(ctx, oh, slot, model.SlotStatusCompleted)
	if err != nil {
		return nil, err
	}
	req, err := activeRequest(ctx, oh, slot.ID)
	if err != nil {
		return nil, err
	}
	if req != nil && req.Status == model.RequestStatusConfirmed {
		if _, err := transitionRequest(ctx, oh, req, model.RequestStatusCompleted, nil); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func transitionSlot(ctx context.Context, oh store.OfficeHourStore, slot *model.OfficeHourSlot, next model.SlotStatus) (*model.OfficeHourSlot, error) {
	if !slot.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: slot %s -> %s", ErrInvalidTransition, slot.Status, next)
	}
	updated, err := oh.SetSlotStatus(ctx, slot.ID, next)
	if err != nil {
		return nil, fmt.Errorf("setting slot status: %w", err)
	}
	return updated, nil
}

func transitionRequest(ctx context.Context, oh store.OfficeHourStore, req *model.OfficeHourRequest, next model.RequestStatus, note *string) (*model.OfficeHourRequest, error) {
	if !req.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: request %s -> %s", ErrInvalidTransition, req.Status, next)
	}
	updated, err := oh.SetRequestStatus(ctx, req.ID, next, trimOptional(note))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrSlotNotAvailable
		}
		return nil, fmt.Errorf("setting request status: %w", err)
	}
	return updated, nil
}

func canManageSlot(actor *model.User, slot *model.OfficeHourSlot) bool {
	return actor.IsAdmin() || slot.HostID == actor.ID
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
