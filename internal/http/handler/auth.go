package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/middleware"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

const sessionMaxAge = int(service.SessionDuration / time.Second)

type AuthHandler struct {
	authService       service.AuthService
	invitationService service.InvitationService
	batchService      service.BatchService
	dashboardURL      string
	isProduction      bool
}

func NewAuthHandler(
	authService service.AuthService,
	invitationService service.InvitationService,
	batchService service.BatchService,
	dashboardURL string,
	isProduction bool,
) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		invitationService: invitationService,
		batchService:      batchService,
		dashboardURL:      dashboardURL,
		isProduction:      isProduction,
	}
}

func (h *AuthHandler) GetAuthURL(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := generateState()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	var opts []service.AuthURLOption
	if loginHint := c.Query("login_hint"); loginHint != "" {
		opts = append(opts, service.WithLoginHint(loginHint))
	}

	authURL, err := h.authService.GetAuthorizationURL(state, opts...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get authorization URL"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthURLResponse{
		AuthorizationURL: authURL,
		State:            state,
	})
}

func (h *AuthHandler) Exchange(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code is required")
		return
	}

	var (
		result *service.CallbackResult
		err    error
	)

	if req.InviteToken != nil && *req.InviteToken != "" {
		result, err = h.authService.HandleCallback(ctx, req.Code)
		if err != nil {
			h.respondSignInError(c, err)
			return
		}

		if _, err := h.invitationService.Accept(ctx, *req.InviteToken, result.User); err != nil {
			slog.WarnContext(ctx, "failed to accept invitation", "error", err, "user_email", result.User.Email)

			if errors.Is(err, service.ErrEmailMismatch) {
				// the session stays so the dashboard can run the full logout flow
				c.JSON(http.StatusForbidden, gin.H{
					"error":      "The email you signed in with doesn't match the invitation",
					"code":       "email_mismatch",
					"session_id": strconv.FormatInt(result.Session.ID, 10),
				})
				return
			}

			if delErr := h.authService.Logout(ctx, result.Session.ID); delErr != nil {
				slog.WarnContext(ctx, "failed to delete session after invite failure",
					"error", delErr,
					"session_id", result.Session.ID,
				)
			}
			respondError(c, err, "process invitation")
			return
		}

		slog.InfoContext(ctx, "invitation accepted during auth exchange",
			"user_id", result.User.ID,
			"email", result.User.Email,
		)
	} else {
		result, err = h.authService.HandleSignIn(ctx, req.Code)
		if err != nil {
			h.respondSignInError(c, err)
			return
		}
	}

	h.setSessionCookie(c, result.Session.ID)

	slog.InfoContext(ctx, "user authenticated via exchange", "user_id", result.User.ID, "email", result.User.Email)

	c.JSON(http.StatusOK, dto.ExchangeResponse{
		User:      result.User,
		SessionID: strconv.FormatInt(result.Session.ID, 10),
		ExpiresIn: sessionMaxAge,
	})
}

func (h *AuthHandler) respondSignInError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, service.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authorization code", "code": "invalid_code"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Founder Sprint is invite-only. Please use an invitation link to sign up.",
			"code":  "invite_only",
		})
	case errors.Is(err, service.ErrUserDeactivated):
		c.JSON(http.StatusForbidden, gin.H{"error": "account is deactivated", "code": "deactivated"})
	default:
		slog.ErrorContext(ctx, "sign-in failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
	}
}

// Session resolves the session from the X-Session-ID header or the session cookie.
func (h *AuthHandler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := middleware.SessionIDFromRequest(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session ID required"})
		return
	}

	user, err := h.authService.ValidateSession(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrUserNotFound):
			h.clearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		case errors.Is(err, service.ErrUserDeactivated):
			h.clearSessionCookie(c)
			c.JSON(http.StatusForbidden, gin.H{"error": "account is deactivated", "code": "deactivated"})
		default:
			slog.ErrorContext(ctx, "failed to validate session", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
		}
		return
	}

	resp := dto.SessionResponse{User: user, Role: user.Role}
	if user.BatchID != nil {
		batch, err := h.batchService.Get(ctx, *user.BatchID)
		if err != nil {
			slog.WarnContext(ctx, "failed to load session batch", "error", err, "batch_id", *user.BatchID)
		} else {
			resp.Batch = batch
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LogoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid logout request")
			return
		}
	}

	var sessionID int64
	if req.SessionID != "" {
		sessionID, _ = dto.ParseID(req.SessionID)
	} else {
		sessionID, _ = middleware.SessionIDFromRequest(c)
	}

	resp := dto.LogoutResponse{Message: "logged out"}

	if sessionID > 0 {
		session, err := h.authService.GetSessionByID(ctx, sessionID)
		if err == nil && session.WorkOSSessionID != nil {
			returnTo := h.dashboardURL
			if req.ReturnTo != nil {
				returnTo = *req.ReturnTo
			}
			logoutURL, err := h.authService.GetLogoutURL(*session.WorkOSSessionID, returnTo)
			if err != nil {
				slog.WarnContext(ctx, "failed to build logout URL", "error", err, "session_id", sessionID)
			} else {
				resp.LogoutURL = &logoutURL
			}
		}

		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID int64) {
	c.SetCookie(
		middleware.SessionCookieName,
		strconv.FormatInt(sessionID, 10),
		sessionMaxAge,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		middleware.SessionCookieName,
		"",
		-1,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// userOrSystem returns the authenticated user; admin API key callers act as the system actor.
func userOrSystem(c *gin.Context) *model.User {
	if u := currentUser(c); u != nil {
		return u
	}
	return model.SystemActor()
}
