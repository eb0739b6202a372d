package api

import (
	"log/slog"
	"net/http"

	reqdto "courtmate-gateway/internal/handler/dto/request"
	resdto "courtmate-gateway/internal/handler/dto/response"
	"courtmate-gateway/internal/handler/httperr"
	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/infra/oauth"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/pkg/cookie"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/usecase"
	"courtmate-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	loginRedirect      = "/dashboard"
	loginErrorRedirect = "/login?error=google"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	sessions     usecase.SessionManager
	proxy        commands.ProxyCommands
	google       *oauth.GoogleProvider
	cookie       config.CookieConfig
	logger       *slog.Logger
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	sessions usecase.SessionManager,
	proxy commands.ProxyCommands,
	google *oauth.GoogleProvider,
	cfg config.Config,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		sessions:     sessions,
		proxy:        proxy,
		google:       google,
		cookie:       cfg.Cookie,
		logger:       logger,
	}
}

// @Summary Login
// @Description Login with email and password; sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required", nil)
		return
	}

	res, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortLogin(c, err, "Invalid email or password")
		return
	}

	h.startSession(c, res)
	c.JSON(http.StatusOK, resdto.FromSession(res.Session))
}

// @Summary Register
// @Description Create an account in the user service
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields", nil)
		return
	}

	user, err := h.authCommands.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if ue, ok := infra.AsUpstream(err); ok && ue.Kind == infra.KindStatus {
			msg := ue.Detail()
			if msg == "" {
				msg = "Registration failed"
			}
			httperr.AbortWithError(c, ue.Status, err, msg, nil)
			return
		}
		httperr.AbortClassified(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		Message: "Registration successful",
		User:    user,
	})
}

// @Summary Google sign-in
// @Description Exchange a Google id_token for a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.GoogleRequest true "Google request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/google [post]
func (h *AuthHandler) Google(c *gin.Context) {
	var req reqdto.GoogleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "id_token is required", nil)
		return
	}

	res, err := h.authCommands.GoogleLogin(c.Request.Context(), req.IDToken, req.Email, req.Name)
	if err != nil {
		h.abortLogin(c, err, "Google sign-in failed")
		return
	}

	h.startSession(c, res)
	c.JSON(http.StatusOK, resdto.FromSession(res.Session))
}

// @Summary Start Google consent
// @Tags auth
// @Success 302
// @Failure 404 {object} httperr.Response
// @Router /api/auth/google/login [get]
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	if h.google == nil {
		httperr.AbortWithError(c, http.StatusNotFound, oauth.ErrNotConfigured, "Google sign-in is not configured", nil)
		return
	}

	state, err := oauth.NewState()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	url, err := h.google.AuthCodeURL(state)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}

	cookie.SetOAuthState(c, h.cookie, state)
	c.Redirect(http.StatusFound, url)
}

// @Summary Google consent callback
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "Anti-forgery state"
// @Success 302
// @Router /api/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	var q reqdto.GoogleCallbackQuery
	_ = c.ShouldBindQuery(&q)
	stored := cookie.PopOAuthState(c, h.cookie)

	if h.google == nil || q.Error != "" || q.Code == "" || stored == "" || stored != q.State {
		h.logger.Warn("google callback rejected", "oauth_error", q.Error, "state_match", stored != "" && stored == q.State)
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	identity, err := h.google.Exchange(c.Request.Context(), q.Code)
	if err != nil {
		h.logger.Warn("google code exchange failed", "error", err.Error())
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	res, err := h.authCommands.GoogleLogin(c.Request.Context(), identity.IDToken, identity.Email, identity.Name)
	if err != nil {
		h.logger.Warn("google login failed", "error", err.Error())
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	h.startSession(c, res)
	c.Redirect(http.StatusFound, loginRedirect)
}

// @Summary Current session
// @Description Read the session, refreshing upstream credentials when needed
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNoSession, httperr.MsgUnauthorized, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(sess))
}

// @Summary Logout
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authCommands.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		h.logger.Warn("session revocation failed", "error", err.Error())
	}
	cookie.ClearSessionCookie(c, h.cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Relays the user service's /auth/me for the session user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	token, ok := middleware.GetAccessToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNoSession, httperr.MsgUnauthorized, nil)
		return
	}

	res, err := h.proxy.Forward(c.Request.Context(), commands.ProxyTarget{Service: upstream.ServiceUser, Path: "/auth/me"}, http.MethodGet, nil, token)
	if err != nil {
		httperr.AbortClassified(c, err, "Failed to fetch user data")
		return
	}
	relay(c, res)
}

// @Summary Email verification callback
// @Tags auth
// @Produce json
// @Param access_token query string true "Token from the verification link"
// @Param type query string false "signup, recovery or other link type"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	var q reqdto.VerifyQuery
	if err := c.ShouldBindQuery(&q); err != nil || q.AccessToken == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Validation("missing access_token"), "Invalid verification link", nil)
		return
	}

	if q.NeedsUpstreamCheck() {
		_, err := h.proxy.Forward(c.Request.Context(), commands.ProxyTarget{Service: upstream.ServiceUser, Path: "/auth/me"}, http.MethodGet, nil, q.AccessToken)
		if err != nil {
			if upstream.IsRejected(err) {
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired verification link", nil)
				return
			}
			httperr.AbortClassified(c, err, "Verification failed")
			return
		}
	}

	c.JSON(http.StatusOK, resdto.VerifyResponse{Status: "verified"})
}

func (h *AuthHandler) startSession(c *gin.Context, res *commands.LoginResult) {
	cookie.SetSessionCookie(c, h.cookie, res.Token, h.sessions.MaxAge())
}

// abortLogin answers 401 for rejected credentials and classifies transport failures.
func (h *AuthHandler) abortLogin(c *gin.Context, err error, msg string) {
	if errs.Is(err, errs.ErrAuth) {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
		return
	}
	httperr.AbortClassified(c, err, msg)
}
