package cookie

import (
	"net/http"
	"time"

	"courtmate-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName    = "courtmate.session-token"
	OAuthStateCookieName = "courtmate.oauth-state"

	oauthStateMaxAge = 10 * time.Minute
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge time.Duration) {
	set(c, cfg, SessionCookieName, token, int(maxAge.Seconds()), "/")
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, SessionCookieName, "", -1, "/")
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

// SetOAuthState stores the anti-forgery state for the OAuth round trip; it is only sent to the auth routes.
func SetOAuthState(c *gin.Context, cfg config.CookieConfig, state string) {
	set(c, cfg, OAuthStateCookieName, state, int(oauthStateMaxAge.Seconds()), "/api/auth")
}

// PopOAuthState returns the stored state and clears the cookie.
func PopOAuthState(c *gin.Context, cfg config.CookieConfig) string {
	state, _ := c.Cookie(OAuthStateCookieName)
	set(c, cfg, OAuthStateCookieName, "", -1, "/api/auth")
	return state
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int, path string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		path,
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
