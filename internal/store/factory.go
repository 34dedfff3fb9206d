package store

import (
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Invitations() InvitationStore {
	return newInvitationStore(s.queries)
}

func (s *Stores) Batches() BatchStore {
	return newBatchStore(s.queries)
}

func (s *Stores) Companies() CompanyStore {
	return newCompanyStore(s.queries)
}

func (s *Stores) Groups() GroupStore {
	return newGroupStore(s.queries)
}

func (s *Stores) Posts() PostStore {
	return newPostStore(s.queries)
}

func (s *Stores) Conversations() ConversationStore {
	return newConversationStore(s.queries)
}

func (s *Stores) Messages() MessageStore {
	return newMessageStore(s.queries)
}

func (s *Stores) OfficeHours() OfficeHourStore {
	return newOfficeHourStore(s.queries)
}
