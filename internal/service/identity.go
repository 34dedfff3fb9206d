package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/workos/workos-go/v6/pkg/usermanagement"
)

// Identity is the authenticated profile returned by the identity provider.
type Identity struct {
	WorkOSID  string
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
	SessionID string
}

func (i Identity) DisplayName() string {
	name := strings.TrimSpace(i.FirstName + " " + i.LastName)
	if name == "" {
		return i.Email
	}
	return name
}

type IdentityProvider interface {
	AuthorizationURL(state, loginHint string) (string, error)
	Authenticate(ctx context.Context, code string) (*Identity, error)
	LogoutURL(sessionID, returnTo string) (string, error)
}

type workOSProvider struct {
	clientID    string
	redirectURI string
}

// NewWorkOSProvider configures the AuthKit user management client.
func NewWorkOSProvider(apiKey, clientID, redirectURI string) IdentityProvider {
	usermanagement.SetAPIKey(apiKey)
	return &workOSProvider{clientID: clientID, redirectURI: redirectURI}
}

func (p *workOSProvider) AuthorizationURL(state, loginHint string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.clientID,
		RedirectURI: p.redirectURI,
		State:       state,
		Provider:    "authkit",
		LoginHint:   loginHint,
	})
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (p *workOSProvider) Authenticate(ctx context.Context, code string) (*Identity, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.clientID,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}

	return &Identity{
		WorkOSID:  resp.User.ID,
		Email:     resp.User.Email,
		FirstName: resp.User.FirstName,
		LastName:  resp.User.LastName,
		AvatarURL: resp.User.ProfilePictureURL,
		SessionID: sessionIDFromAccessToken(resp.AccessToken),
	}, nil
}

func (p *workOSProvider) LogoutURL(sessionID, returnTo string) (string, error) {
	url, err := usermanagement.GetLogoutURL(usermanagement.GetLogoutURLOpts{
		SessionID: sessionID,
		ReturnTo:  returnTo,
	})
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

// sessionIDFromAccessToken reads the "sid" claim without verifying the signature.
func sessionIDFromAccessToken(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ""
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	var claims struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return ""
	}
	return claims.SID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
