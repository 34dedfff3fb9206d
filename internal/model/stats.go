package model

type AdminStats struct {
	UsersByRole     map[Role]int64 `json:"users_by_role"`
	ActiveUsers     int64          `json:"active_users"`
	Batches         int64          `json:"batches"`
	Groups          int64          `json:"groups"`
	Posts           int64          `json:"posts"`
	UpcomingSlots   int64          `json:"upcoming_slots"`
	PendingRequests int64          `json:"pending_requests"`
}

// MaintenanceReport is the outcome of one periodic maintenance run.
type MaintenanceReport struct {
	ExpiredInvitations int64                 `json:"expired_invitations"`
	DeletedSessions    int64                 `json:"deleted_sessions"`
	Slots              SlotMaintenanceResult `json:"slots"`
}
