package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type contextKey string

const (
	SessionCookieName = "sprint_session"
	SessionIDHeader   = "X-Session-ID"
	AdminAPIKeyHeader = "X-Admin-API-Key"

	userContextKey      contextKey = "user"
	sessionIDContextKey contextKey = "session_id"
)

func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, authService) {
			return
		}
		c.Next()
	}
}

// RequireRole must run after RequireAuth or RequireAdmin.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c.Request.Context())
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if !user.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role", "code": "forbidden"})
			return
		}
		c.Next()
	}
}

// RequireAdmin accepts the admin API key, acting as the system actor, or an admin session.
func RequireAdmin(authService service.AuthService, adminAPIKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := apiKeyFromRequest(c); key != "" {
			if adminAPIKey == "" {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin API not configured"})
				return
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(adminAPIKey)) != 1 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
				return
			}
			setUser(c, model.SystemActor(), 0)
			c.Next()
			return
		}

		if !authenticate(c, authService) {
			return
		}
		if !GetUser(c.Request.Context()).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required", "code": "forbidden"})
			return
		}
		c.Next()
	}
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

// SessionIDFromRequest reads the session cookie, falling back to the session header.
func SessionIDFromRequest(c *gin.Context) (int64, error) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		raw = c.GetHeader(SessionIDHeader)
	}
	if raw == "" {
		return 0, http.ErrNoCookie
	}
	return strconv.ParseInt(raw, 10, 64)
}

// authenticate resolves the session and stores the user on the request, aborting on failure.
func authenticate(c *gin.Context, authService service.AuthService) bool {
	sessionID, err := SessionIDFromRequest(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return false
	}

	user, err := authService.ValidateSession(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionExpired),
			errors.Is(err, service.ErrSessionNotFound),
			errors.Is(err, service.ErrUserNotFound):
			clearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		case errors.Is(err, service.ErrUserDeactivated):
			clearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is deactivated", "code": "deactivated"})
		default:
			slog.ErrorContext(c.Request.Context(), "failed to validate session", "error", err, "session_id", sessionID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
		}
		return false
	}

	setUser(c, user, sessionID)
	return true
}

func setUser(c *gin.Context, user *model.User, sessionID int64) {
	ctx := context.WithValue(c.Request.Context(), userContextKey, user)
	ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
	c.Request = c.Request.WithContext(ctx)
}

func apiKeyFromRequest(c *gin.Context) string {
	if key := c.GetHeader(AdminAPIKeyHeader); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}
