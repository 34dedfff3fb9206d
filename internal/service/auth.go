package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

const SessionDuration = 7 * 24 * time.Hour

var (
	ErrInvalidCode      = errors.New("invalid authorization code")
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrUserDeactivated  = errors.New("user is deactivated")
	ErrSessionNotFound  = errors.New("session not found")
	ErrLogoutURLMissing = errors.New("no identity provider session")
)

type AuthURLOption func(*authURLOptions)

type authURLOptions struct {
	loginHint string
}

func WithLoginHint(email string) AuthURLOption {
	return func(o *authURLOptions) {
		o.loginHint = email
	}
}

type CallbackResult struct {
	User    *model.User
	Session *model.Session
}

type AuthService interface {
	GetAuthorizationURL(state string, opts ...AuthURLOption) (string, error)
	// HandleCallback signs in an invited user, creating the account when needed.
	HandleCallback(ctx context.Context, code string) (*CallbackResult, error)
	// HandleSignIn signs in an existing user only.
	HandleSignIn(ctx context.Context, code string) (*CallbackResult, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, error)
	GetSessionByID(ctx context.Context, sessionID int64) (*model.Session, error)
	Logout(ctx context.Context, sessionID int64) error
	GetLogoutURL(workOSSessionID, returnTo string) (string, error)
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	identity     IdentityProvider
}

func NewAuthService(userStore store.UserStore, sessionStore store.SessionStore, identity IdentityProvider) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		identity:     identity,
	}
}

func (s *authService) GetAuthorizationURL(state string, opts ...AuthURLOption) (string, error) {
	var o authURLOptions
	for _, opt := range opts {
		opt(&o)
	}

	url, err := s.identity.AuthorizationURL(state, o.loginHint)
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url, nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*CallbackResult, error) {
	ident, err := s.authenticate(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, ident)
	switch {
	case errors.Is(err, ErrUserNotFound):
		user = &model.User{
			ID:       id.New(),
			WorkOSID: &ident.WorkOSID,
			Email:    normalizeEmail(ident.Email),
			Name:     ident.DisplayName(),
			Role:     model.RoleFounder,
			IsActive: true,
		}
		if ident.AvatarURL != "" {
			user.AvatarURL = &ident.AvatarURL
		}
		if err := s.userStore.Create(ctx, user); err != nil {
			slog.ErrorContext(ctx, "failed to create user",
				"error", err,
				"email", user.Email,
				"workos_id", ident.WorkOSID,
			)
			return nil, fmt.Errorf("creating user: %w", err)
		}
		slog.InfoContext(ctx, "user created from invitation sign-in", "user_id", user.ID, "email", user.Email)
	case err != nil:
		return nil, err
	}

	return s.startSession(ctx, user, ident)
}

func (s *authService) HandleSignIn(ctx context.Context, code string) (*CallbackResult, error) {
	ident, err := s.authenticate(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, ident)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			slog.InfoContext(ctx, "sign-in rejected for uninvited user", "email", ident.Email)
		}
		return nil, err
	}

	return s.startSession(ctx, user, ident)
}

func (s *authService) authenticate(ctx context.Context, code string) (*Identity, error) {
	ident, err := s.identity.Authenticate(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, ErrInvalidCode
	}
	return ident, nil
}

// findUser matches by WorkOS id first, then links an account created before the
// user ever signed in by email.
func (s *authService) findUser(ctx context.Context, ident *Identity) (*model.User, error) {
	user, err := s.userStore.GetByWorkOSID(ctx, ident.WorkOSID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting user by workos id: %w", err)
	}

	user, err = s.userStore.GetByEmail(ctx, normalizeEmail(ident.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	user.WorkOSID = &ident.WorkOSID
	if user.AvatarURL == nil && ident.AvatarURL != "" {
		user.AvatarURL = &ident.AvatarURL
	}
	if err := s.userStore.UpdateIdentity(ctx, user); err != nil {
		return nil, fmt.Errorf("linking user identity: %w", err)
	}
	slog.InfoContext(ctx, "linked workos identity to existing user", "user_id", user.ID)
	return user, nil
}

func (s *authService) startSession(ctx context.Context, user *model.User, ident *Identity) (*CallbackResult, error) {
	if !user.IsActive {
		slog.WarnContext(ctx, "sign-in rejected for deactivated user", "user_id", user.ID)
		return nil, ErrUserDeactivated
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionDuration),
	}
	if ident.SessionID != "" {
		session.WorkOSSessionID = &ident.SessionID
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"user_id", user.ID,
		)
		return nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"email", user.Email,
		"session_id", session.ID,
	)

	return &CallbackResult{User: user, Session: session}, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrUserDeactivated
	}

	return user, nil
}

func (s *authService) GetSessionByID(ctx context.Context, sessionID int64) (*model.Session, error) {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *authService) GetLogoutURL(workOSSessionID, returnTo string) (string, error) {
	if workOSSessionID == "" {
		return "", ErrLogoutURLMissing
	}
	url, err := s.identity.LogoutURL(workOSSessionID, returnTo)
	if err != nil {
		return "", fmt.Errorf("building logout URL: %w", err)
	}
	return url, nil
}
