package usecase

//go:generate mockgen -source=sessions.go -destination=../../tests/mock/usecase/mock_sessions.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/infra/sessionstore"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/pkg/jwt"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNoSession      = errs.New("no session")
	ErrInvalidSession = errs.New("invalid session token")
	ErrSessionRevoked = errs.New("session was logged out")
	ErrSessionExpired = errs.New("session expired")
)

// ReadResult is a session read. Token is set only when the session changed
// during the read and the client must receive a new session token.
type ReadResult struct {
	Session session.Session
	Token   string
}

// SessionManager owns the signed session token: issuing, reading with lazy refresh, and revoking.
type SessionManager interface {
	Issue(ctx context.Context, s session.Session) (string, error)
	Read(ctx context.Context, token string) (ReadResult, error)
	Revoke(ctx context.Context, token string) error
	MaxAge() time.Duration
}

type sessionManagerImpl struct {
	codec     *jwt.Service
	refresher session.Refresher
	store     sessionstore.RevocationStore
	clock     clock.Clock
	policy    session.RefreshPolicy
	logger    *slog.Logger
	group     singleflight.Group
}

func NewSessionManager(
	codec *jwt.Service,
	refresher session.Refresher,
	store sessionstore.RevocationStore,
	clk clock.Clock,
	policy session.RefreshPolicy,
	logger *slog.Logger,
) SessionManager {
	return &sessionManagerImpl{
		codec:     codec,
		refresher: refresher,
		store:     store,
		clock:     clk,
		policy:    policy,
		logger:    logger,
	}
}

func (m *sessionManagerImpl) MaxAge() time.Duration {
	return m.codec.TokenDuration()
}

func (m *sessionManagerImpl) Issue(_ context.Context, s session.Session) (string, error) {
	token, err := m.codec.Encode(s, m.clock.Now())
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to sign session"), errs.ErrInternal)
	}
	return token, nil
}

type refreshed struct {
	session session.Session
	outcome session.RefreshOutcome
	err     error
}

func (m *sessionManagerImpl) Read(ctx context.Context, token string) (ReadResult, error) {
	if token == "" {
		return ReadResult{}, errs.Mark(ErrNoSession, errs.ErrAuth)
	}

	now := m.clock.Now()
	sess, issuedAt, err := m.codec.Decode(token, now)
	if err != nil {
		return ReadResult{}, errs.Classify(errs.Wrap(err, "decode session"), ErrInvalidSession, errs.ErrAuth)
	}

	revoked, err := m.store.IsRevoked(ctx, sess.ID)
	if err != nil {
		// the store is an optimization over token expiry; an outage must not log everyone out
		m.logger.Warn("session revocation check failed", "session_id", sess.ID, "error", err.Error())
	}
	if revoked {
		return ReadResult{}, errs.Mark(ErrSessionRevoked, errs.ErrAuth)
	}

	if !sess.Usable() {
		return ReadResult{Session: sess}, errs.Mark(ErrSessionExpired, errs.ErrAuth)
	}

	if !sess.NeedsRefresh(now, m.policy.Lookahead) {
		return ReadResult{Session: sess}, nil
	}

	// concurrent reads of one session share a single refresh call
	v, _, _ := m.group.Do(sess.ID.String(), func() (any, error) {
		next, outcome, err := session.RefreshIfNeeded(context.WithoutCancel(ctx), sess, now, m.policy, m.refresher)
		return refreshed{session: next, outcome: outcome, err: err}, nil
	})
	r := v.(refreshed)

	switch r.outcome {
	case session.RefreshFailed:
		m.logger.Warn("session refresh failed", "session_id", sess.ID, "user_id", sess.UserID, "error", r.err.Error())
		return ReadResult{Session: r.session}, errs.Classify(errs.Wrap(r.err, "refresh session"), ErrSessionExpired, errs.ErrAuth)
	case session.Refreshed:
		m.logger.Debug("session refreshed", "session_id", sess.ID, "user_id", sess.UserID)
		newToken, err := m.codec.Encode(r.session, issuedAt)
		if err != nil {
			return ReadResult{}, errs.Mark(errs.Wrap(err, "failed to sign session"), errs.ErrInternal)
		}
		return ReadResult{Session: r.session, Token: newToken}, nil
	default:
		return ReadResult{Session: r.session}, nil
	}
}

// Revoke remembers the session id until the token's own expiry. Unreadable tokens are ignored.
func (m *sessionManagerImpl) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	now := m.clock.Now()
	sess, issuedAt, err := m.codec.Decode(token, now)
	if err != nil {
		return nil
	}
	ttl := issuedAt.Add(m.codec.TokenDuration()).Sub(now)
	if err := m.store.Revoke(ctx, sess.ID, ttl); err != nil {
		return errs.Mark(errs.Wrap(err, "revoke session"), errs.ErrInternal)
	}
	return nil
}
