package middleware

import (
	"net/http"
	"strings"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/handler/httperr"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/pkg/cookie"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionKey      = "session"
	ctxSessionTokenKey = "session_token"

	// SessionTokenHeader carries a re-issued token back to Bearer clients.
	SessionTokenHeader = "X-Session-Token"
)

type SessionMiddleware struct {
	sessions usecase.SessionManager
	cookie   config.CookieConfig
}

func NewSessionMiddleware(sessions usecase.SessionManager, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cookie:   cfg.Cookie,
	}
}

// RequireSession reads the session token from the cookie or a Bearer header, refreshing
// the upstream credentials when they are close to expiry. A refreshed session is written
// back as a new cookie, and also in SessionTokenHeader when the client sent a Bearer
// token. Requests without a usable session stop here with 401.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)

		res, err := m.sessions.Read(c.Request.Context(), token)
		if err != nil {
			if errs.Is(err, errs.ErrAuth) {
				if token != "" {
					cookie.ClearSessionCookie(c, m.cookie)
				}
				httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.MsgUnauthorized, nil)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
			return
		}

		if res.Token != "" {
			cookie.SetSessionCookie(c, m.cookie, res.Token, m.sessions.MaxAge())
			if cookie.GetSessionToken(c) == "" {
				c.Header(SessionTokenHeader, res.Token)
			}
			token = res.Token
		}

		c.Set(ctxSessionKey, res.Session)
		c.Set(ctxSessionTokenKey, token)
		c.Next()
	}
}

// SessionToken returns the raw session token sent by the client, cookie first.
func SessionToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

// GetAccessToken returns the upstream access token of the current session.
func GetAccessToken(c *gin.Context) (string, bool) {
	s, ok := GetSession(c)
	if !ok || s.AccessToken == "" {
		return "", false
	}
	return s.AccessToken, true
}
