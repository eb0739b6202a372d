package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/mock_auth.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/usecase"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrGoogleRejected       = errs.New("google sign-in rejected")
	ErrAuthenticationFailed = errs.New("authentication failed")
)

type LoginResult struct {
	Session session.Session
	Token   string
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, email, password string) (json.RawMessage, error)
	GoogleLogin(ctx context.Context, idToken, email, name string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type authCommandsImpl struct {
	gateway  AuthGateway
	sessions usecase.SessionManager
	clock    clock.Clock
	lifetime time.Duration
	logger   *slog.Logger
}

func NewAuthCommands(gateway AuthGateway, sessions usecase.SessionManager, clk clock.Clock, policy session.RefreshPolicy, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		gateway:  gateway,
		sessions: sessions,
		clock:    clk,
		lifetime: policy.Lifetime,
		logger:   logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	m, _ := session.Transition(session.Start(), session.Event{Kind: session.EventLoginStarted})

	res, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		a.loginFailed(m, session.ProviderCredentials, err)
		if upstream.IsRejected(err) {
			return nil, errs.Classify(err, ErrInvalidCredentials, errs.ErrAuth)
		}
		return nil, err
	}

	return a.complete(ctx, m, res, session.ProviderCredentials)
}

func (a *authCommandsImpl) GoogleLogin(ctx context.Context, idToken, email, name string) (*LoginResult, error) {
	m, _ := session.Transition(session.Start(), session.Event{Kind: session.EventLoginStarted})

	res, err := a.gateway.Google(ctx, idToken, email, name)
	if err != nil {
		a.loginFailed(m, session.ProviderGoogle, err)
		if upstream.IsRejected(err) {
			return nil, errs.Classify(err, ErrGoogleRejected, errs.ErrAuth)
		}
		return nil, err
	}

	return a.complete(ctx, m, res, session.ProviderGoogle)
}

func (a *authCommandsImpl) complete(ctx context.Context, m session.Machine, res upstream.AuthResult, provider session.Provider) (*LoginResult, error) {
	sess, err := session.New(res.Identity(), provider, res.Tokens, a.clock.Now(), a.lifetime)
	if err != nil {
		a.logger.Warn("user service returned an unusable login payload", "provider", provider, "error", err.Error())
		a.loginFailed(m, provider, err)
		return nil, errs.Classify(err, ErrAuthenticationFailed, errs.ErrAuth)
	}

	m, err = session.Transition(m, session.Event{Kind: session.EventLoginSucceeded, Session: sess})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInternal)
	}

	token, err := a.sessions.Issue(ctx, m.Session)
	if err != nil {
		return nil, err
	}

	a.logger.Info("user logged in", "user_id", m.Session.UserID, "provider", provider, "session_id", m.Session.ID)
	return &LoginResult{Session: m.Session, Token: token}, nil
}

// loginFailed moves an attempt back to unauthenticated and records the outcome.
func (a *authCommandsImpl) loginFailed(m session.Machine, provider session.Provider, cause error) {
	next, err := session.Transition(m, session.Event{Kind: session.EventLoginFailed})
	if err != nil {
		a.logger.Error("login failure could not be recorded", "provider", provider, "error", err.Error())
		return
	}
	a.logger.Info("login failed", "provider", provider, "state", next.State.String(), "error", cause.Error())
}

func (a *authCommandsImpl) Register(ctx context.Context, email, password string) (json.RawMessage, error) {
	user, err := a.gateway.Signup(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, token string) error {
	return a.sessions.Revoke(ctx, token)
}
