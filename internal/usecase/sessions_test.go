//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/infra/sessionstore"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/pkg/jwt"
	"courtmate-gateway/internal/usecase"
	"courtmate-gateway/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type fakeRefresher struct {
	calls   atomic.Int32
	tokens  session.Tokens
	err     error
	release chan struct{}
}

func (f *fakeRefresher) Refresh(_ context.Context, _, _ string) (session.Tokens, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.tokens, f.err
}

type SessionManagerTestSuite struct {
	suite.Suite
	clock     *clock.MockClock
	codec     *jwt.Service
	store     sessionstore.RevocationStore
	refresher *fakeRefresher
	manager   usecase.SessionManager
}

func (s *SessionManagerTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.codec = jwt.NewService("test-session-secret", 24*time.Hour)
	s.store = sessionstore.NewMemoryStore(s.clock)
	s.refresher = &fakeRefresher{tokens: session.Tokens{AccessToken: "new-access", RefreshToken: "new-refresh"}}
	s.manager = usecase.NewSessionManager(
		s.codec, s.refresher, s.store, s.clock,
		session.DefaultRefreshPolicy(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestSessionManagerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionManagerTestSuite))
}

func (s *SessionManagerTestSuite) issue(expiresAt time.Time) (session.Session, string) {
	sess := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
		b.ExpiresAt = expiresAt
	}).Build()
	token, err := s.manager.Issue(context.Background(), sess)
	s.Require().NoError(err)
	return sess, token
}

func (s *SessionManagerTestSuite) TestRead_FreshSessionIsReturnedWithoutRefresh() {
	sess, token := s.issue(s.clock.Now().Add(time.Hour))

	res, err := s.manager.Read(context.Background(), token)
	s.Require().NoError(err)

	s.Equal(sess, res.Session)
	s.Empty(res.Token)
	s.Equal(int32(0), s.refresher.calls.Load())
}

func (s *SessionManagerTestSuite) TestRead_ExpiringSessionRefreshesOnceAndReissues() {
	_, token := s.issue(s.clock.Now().Add(2 * time.Minute))

	res, err := s.manager.Read(context.Background(), token)
	s.Require().NoError(err)

	s.Equal(int32(1), s.refresher.calls.Load())
	s.Equal("new-access", res.Session.AccessToken)
	s.Equal("new-refresh", res.Session.RefreshToken)
	s.Equal(s.clock.Now().Add(time.Hour), res.Session.ExpiresAt)
	s.Require().NotEmpty(res.Token)

	// the re-issued token carries the refreshed session; reading it does not refresh again
	again, err := s.manager.Read(context.Background(), res.Token)
	s.Require().NoError(err)
	s.Equal("new-access", again.Session.AccessToken)
	s.Equal(int32(1), s.refresher.calls.Load())
}

func (s *SessionManagerTestSuite) TestRead_FailedRefreshExpiresTheSession() {
	s.refresher.err = errors.New("401 from user service")
	_, token := s.issue(s.clock.Now().Add(-time.Minute))

	res, err := s.manager.Read(context.Background(), token)
	s.Require().Error(err)

	s.True(errs.Is(err, usecase.ErrSessionExpired))
	s.True(errs.Is(err, errs.ErrAuth))
	s.Equal(session.StateRefreshFailed, res.Session.State)
	s.Equal(int32(1), s.refresher.calls.Load())
}

func (s *SessionManagerTestSuite) TestRead_ConcurrentReadsShareOneRefresh() {
	s.refresher.release = make(chan struct{})
	_, token := s.issue(s.clock.Now().Add(-time.Minute))

	const readers = 8
	var wg sync.WaitGroup
	results := make([]usecase.ReadResult, readers)
	errsOut := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errsOut[i] = s.manager.Read(context.Background(), token)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(s.refresher.release)
	wg.Wait()

	s.Equal(int32(1), s.refresher.calls.Load())
	for i := 0; i < readers; i++ {
		s.NoError(errsOut[i])
		s.Equal("new-access", results[i].Session.AccessToken)
	}
}

func (s *SessionManagerTestSuite) TestRead_Errors() {
	s.Run("no token", func() {
		_, err := s.manager.Read(context.Background(), "")
		s.True(errs.Is(err, usecase.ErrNoSession))
		s.True(errs.Is(err, errs.ErrAuth))
		s.False(errs.Is(err, usecase.ErrSessionExpired))
	})

	s.Run("tampered token", func() {
		_, token := s.issue(s.clock.Now().Add(time.Hour))
		_, err := s.manager.Read(context.Background(), token+"x")
		s.True(errs.Is(err, usecase.ErrInvalidSession))
		s.True(errs.Is(err, errs.ErrAuth))
	})

	s.Run("session past max age", func() {
		_, token := s.issue(s.clock.Now().Add(time.Hour))
		s.clock.Add(25 * time.Hour)
		defer s.clock.Add(-25 * time.Hour)

		_, err := s.manager.Read(context.Background(), token)
		s.True(errs.Is(err, usecase.ErrInvalidSession))
	})

	s.Run("already expired session is not refreshed again", func() {
		sess := builder.NewSessionBuilder().Build().Expired()
		token, err := s.manager.Issue(context.Background(), sess)
		s.Require().NoError(err)

		before := s.refresher.calls.Load()
		_, err = s.manager.Read(context.Background(), token)
		s.True(errs.Is(err, usecase.ErrSessionExpired))
		s.Equal(before, s.refresher.calls.Load())
	})
}

func (s *SessionManagerTestSuite) TestRevoke() {
	_, token := s.issue(s.clock.Now().Add(time.Hour))

	s.Require().NoError(s.manager.Revoke(context.Background(), token))

	_, err := s.manager.Read(context.Background(), token)
	s.True(errs.Is(err, usecase.ErrSessionRevoked))
	s.True(errs.Is(err, errs.ErrAuth))

	s.NoError(s.manager.Revoke(context.Background(), "garbage"), "unreadable tokens are ignored")
	s.NoError(s.manager.Revoke(context.Background(), ""))
}
