package store

import (
	"context"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type officeHourStore struct {
	queries *sqlc.Queries
}

func newOfficeHourStore(queries *sqlc.Queries) OfficeHourStore {
	return &officeHourStore{queries: queries}
}

func (s *officeHourStore) CreateSlot(ctx context.Context, slot *model.OfficeHourSlot) error {
	row, err := s.queries.CreateOfficeHourSlot(ctx, sqlc.CreateOfficeHourSlotParams{
		ID:         slot.ID,
		HostID:     slot.HostID,
		StartsAt:   ts(slot.StartsAt),
		EndsAt:     ts(slot.EndsAt),
		Location:   slot.Location,
		MeetingUrl: slot.MeetingURL,
		Notes:      slot.Notes,
	})
	if err != nil {
		return translate(err)
	}
	*slot = *toSlotModel(row)
	return nil
}

func (s *officeHourStore) GetSlot(ctx context.Context, id int64) (*model.OfficeHourSlot, error) {
	row, err := s.queries.GetOfficeHourSlot(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toSlotModel(row), nil
}

func (s *officeHourStore) GetSlotForUpdate(ctx context.Context, id int64) (*model.OfficeHourSlot, error) {
	row, err := s.queries.GetOfficeHourSlotForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toSlotModel(row), nil
}

func (s *officeHourStore) UpdateSlot(ctx context.Context, slot *model.OfficeHourSlot) error {
	row, err := s.queries.UpdateOfficeHourSlot(ctx, sqlc.UpdateOfficeHourSlotParams{
		StartsAt:   ts(slot.StartsAt),
		EndsAt:     ts(slot.EndsAt),
		Location:   slot.Location,
		MeetingUrl: slot.MeetingURL,
		Notes:      slot.Notes,
		ID:         slot.ID,
	})
	if err != nil {
		return translate(err)
	}
	*slot = *toSlotModel(row)
	return nil
}

func (s *officeHourStore) SetSlotStatus(ctx context.Context, id int64, status model.SlotStatus) (*model.OfficeHourSlot, error) {
	row, err := s.queries.SetOfficeHourSlotStatus(ctx, sqlc.SetOfficeHourSlotStatusParams{
		Status: string(status),
		ID:     id,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toSlotModel(row), nil
}

func (s *officeHourStore) SetSlotCalendarEvent(ctx context.Context, id int64, eventID *string) error {
	return s.queries.SetOfficeHourSlotCalendarEvent(ctx, sqlc.SetOfficeHourSlotCalendarEventParams{
		CalendarEventID: eventID,
		ID:              id,
	})
}

func (s *officeHourStore) DeleteSlot(ctx context.Context, id int64) error {
	return s.queries.DeleteOfficeHourSlot(ctx, id)
}

func (s *officeHourStore) CountOverlapping(ctx context.Context, hostID int64, startsAt, endsAt time.Time, excludeID *int64) (int64, error) {
	return s.queries.CountOverlappingSlots(ctx, sqlc.CountOverlappingSlotsParams{
		HostID:    hostID,
		EndsAt:    ts(endsAt),
		StartsAt:  ts(startsAt),
		ExcludeID: excludeID,
	})
}

// ListAvailable lists open slots starting at or after filter.From (now when unset).
func (s *officeHourStore) ListAvailable(ctx context.Context, filter model.SlotFilter) ([]model.OfficeHourSlot, error) {
	from := time.Now()
	if filter.From != nil {
		from = *filter.From
	}
	rows, err := s.queries.ListAvailableSlots(ctx, sqlc.ListAvailableSlotsParams{
		FromTime: ts(from),
		ToTime:   optTS(filter.To),
		HostID:   filter.HostID,
		Limit:    filter.Limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.OfficeHourSlot, len(rows))
	for i, row := range rows {
		result[i] = model.OfficeHourSlot{
			ID:              row.ID,
			HostID:          row.HostID,
			HostName:        row.HostName,
			HostAvatarURL:   row.HostAvatarUrl,
			HostTitle:       row.HostTitle,
			StartsAt:        row.StartsAt.Time,
			EndsAt:          row.EndsAt.Time,
			Location:        row.Location,
			MeetingURL:      row.MeetingUrl,
			Notes:           row.Notes,
			Status:          model.SlotStatus(row.Status),
			CalendarEventID: row.CalendarEventID,
			CreatedAt:       row.CreatedAt.Time,
			UpdatedAt:       row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *officeHourStore) ListByHost(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourSlot, error) {
	rows, err := s.queries.ListSlotsByHost(ctx, sqlc.ListSlotsByHostParams{
		HostID: hostID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	return toSlotModels(rows), nil
}

func (s *officeHourStore) ListEndedWithStatus(ctx context.Context, status model.SlotStatus, endedBefore time.Time, limit int32) ([]model.OfficeHourSlot, error) {
	rows, err := s.queries.ListSlotsEndedWithStatus(ctx, sqlc.ListSlotsEndedWithStatusParams{
		Status:      string(status),
		EndedBefore: ts(endedBefore),
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}
	return toSlotModels(rows), nil
}

func (s *officeHourStore) CountUpcomingAvailable(ctx context.Context) (int64, error) {
	return s.queries.CountUpcomingAvailableSlots(ctx)
}

func (s *officeHourStore) CreateRequest(ctx context.Context, req *model.OfficeHourRequest) error {
	row, err := s.queries.CreateOfficeHourRequest(ctx, sqlc.CreateOfficeHourRequestParams{
		ID:          req.ID,
		SlotID:      req.SlotID,
		RequesterID: req.RequesterID,
		Topic:       req.Topic,
	})
	if err != nil {
		return translate(err)
	}
	*req = *toRequestModel(row)
	return nil
}

func (s *officeHourStore) GetRequest(ctx context.Context, id int64) (*model.OfficeHourRequest, error) {
	row, err := s.queries.GetOfficeHourRequest(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toRequestModel(row), nil
}

func (s *officeHourStore) GetRequestForUpdate(ctx context.Context, id int64) (*model.OfficeHourRequest, error) {
	row, err := s.queries.GetOfficeHourRequestForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toRequestModel(row), nil
}

func (s *officeHourStore) GetActiveRequestForSlot(ctx context.Context, slotID int64) (*model.OfficeHourRequest, error) {
	row, err := s.queries.GetActiveRequestForSlot(ctx, slotID)
	if err != nil {
		return nil, translate(err)
	}
	return toRequestModel(row), nil
}

func (s *officeHourStore) SetRequestStatus(ctx context.Context, id int64, status model.RequestStatus, hostNote *string) (*model.OfficeHourRequest, error) {
	row, err := s.queries.SetOfficeHourRequestStatus(ctx, sqlc.SetOfficeHourRequestStatusParams{
		Status:   string(status),
		HostNote: hostNote,
		ID:       id,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toRequestModel(row), nil
}

func (s *officeHourStore) ListRequestsByRequester(ctx context.Context, requesterID int64, limit int32) ([]model.OfficeHourRequest, error) {
	rows, err := s.queries.ListRequestsByRequester(ctx, sqlc.ListRequestsByRequesterParams{
		RequesterID: requesterID,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.OfficeHourRequest, len(rows))
	for i, row := range rows {
		result[i] = toRequestWithSlot(row)
	}
	return result, nil
}

func (s *officeHourStore) ListRequestsForHost(ctx context.Context, hostID int64, limit int32) ([]model.OfficeHourRequest, error) {
	rows, err := s.queries.ListRequestsForHost(ctx, sqlc.ListRequestsForHostParams{
		HostID: hostID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.OfficeHourRequest, len(rows))
	for i, row := range rows {
		result[i] = toRequestWithSlot(sqlc.ListRequestsByRequesterRow(row))
	}
	return result, nil
}

func (s *officeHourStore) CountPendingRequests(ctx context.Context) (int64, error) {
	return s.queries.CountPendingRequests(ctx)
}

func toSlotModel(row sqlc.OfficeHourSlot) *model.OfficeHourSlot {
	return &model.OfficeHourSlot{
		ID:              row.ID,
		HostID:          row.HostID,
		StartsAt:        row.StartsAt.Time,
		EndsAt:          row.EndsAt.Time,
		Location:        row.Location,
		MeetingURL:      row.MeetingUrl,
		Notes:           row.Notes,
		Status:          model.SlotStatus(row.Status),
		CalendarEventID: row.CalendarEventID,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func toSlotModels(rows []sqlc.OfficeHourSlot) []model.OfficeHourSlot {
	result := make([]model.OfficeHourSlot, len(rows))
	for i, row := range rows {
		result[i] = *toSlotModel(row)
	}
	return result
}

func toRequestModel(row sqlc.OfficeHourRequest) *model.OfficeHourRequest {
	return &model.OfficeHourRequest{
		ID:          row.ID,
		SlotID:      row.SlotID,
		RequesterID: row.RequesterID,
		Topic:       row.Topic,
		Status:      model.RequestStatus(row.Status),
		HostNote:    row.HostNote,
		RespondedAt: fromOptTS(row.RespondedAt),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

// toRequestWithSlot maps a joined listing row; both listing queries share its shape.
func toRequestWithSlot(row sqlc.ListRequestsByRequesterRow) model.OfficeHourRequest {
	return model.OfficeHourRequest{
		ID:          row.ID,
		SlotID:      row.SlotID,
		RequesterID: row.RequesterID,
		Topic:       row.Topic,
		Status:      model.RequestStatus(row.Status),
		HostNote:    row.HostNote,
		RespondedAt: fromOptTS(row.RespondedAt),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
		Slot: &model.OfficeHourSlot{
			ID:         row.SlotID,
			HostID:     row.SlotHostID,
			StartsAt:   row.SlotStartsAt.Time,
			EndsAt:     row.SlotEndsAt.Time,
			Status:     model.SlotStatus(row.SlotStatus),
			Location:   row.SlotLocation,
			MeetingURL: row.SlotMeetingUrl,
		},
		CounterpartName:  row.CounterpartName,
		CounterpartEmail: row.CounterpartEmail,
	}
}
