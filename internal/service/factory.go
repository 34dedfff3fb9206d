package service

import (
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/cache"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

type Services struct {
	stores       *store.Stores
	txRunner     TxRunner
	identity     IdentityProvider
	producer     queue.Producer
	cache        cache.Cache
	cacheTTL     time.Duration
	dashboardURL string
}

// NewServices wires services over shared stores. identity may be nil for
// processes that never sign users in.
func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	identity IdentityProvider,
	producer queue.Producer,
	c cache.Cache,
	cacheTTL time.Duration,
	dashboardURL string,
) *Services {
	if c == nil {
		c = cache.Nop{}
	}
	return &Services{
		stores:       stores,
		txRunner:     txRunner,
		identity:     identity,
		producer:     producer,
		cache:        c,
		cacheTTL:     cacheTTL,
		dashboardURL: dashboardURL,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.identity)
}

func (s *Services) Invitations() InvitationService {
	return NewInvitationService(
		s.stores.Invitations(),
		s.stores.Users(),
		s.stores.Batches(),
		s.txRunner,
		s.producer,
		s.cache,
		s.dashboardURL,
	)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users(), s.stores.Batches(), s.stores.Companies(), s.txRunner, s.cache, s.cacheTTL)
}

func (s *Services) Batches() BatchService {
	return NewBatchService(s.stores.Batches(), s.stores.Users(), s.stores.Companies(), s.cache)
}

func (s *Services) Companies() CompanyService {
	return NewCompanyService(s.stores.Companies(), s.stores.Batches(), s.stores.Users(), s.cache)
}

func (s *Services) Groups() GroupService {
	return NewGroupService(s.stores.Groups(), s.stores.Users(), s.stores.Batches(), s.txRunner, s.cache)
}

func (s *Services) Posts() PostService {
	return NewPostService(s.stores.Posts(), s.stores.Groups(), s.txRunner, s.cache, s.cacheTTL)
}

func (s *Services) Messages() MessageService {
	return NewMessageService(s.stores.Conversations(), s.stores.Messages(), s.stores.Users(), s.txRunner, s.producer)
}

func (s *Services) OfficeHours() OfficeHourService {
	return NewOfficeHourService(s.stores.OfficeHours(), s.stores.Users(), s.txRunner, s.producer)
}

func (s *Services) Admin() AdminService {
	return NewAdminService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.stores.Invitations(),
		s.stores.Batches(),
		s.stores.Groups(),
		s.stores.Posts(),
		s.stores.OfficeHours(),
		s.OfficeHours(),
	)
}
