//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/clock"
	"courtmate-gateway/internal/pkg/errs"
	"courtmate-gateway/internal/usecase/commands"
	commandsmock "courtmate-gateway/tests/mock/commands"
	usecasemock "courtmate-gateway/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGateway  *commandsmock.MockAuthGateway
	mockSessions *usecasemock.MockSessionManager
	clock        *clock.MockClock
	logs         *bytes.Buffer
	commands     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockAuthGateway(s.mockCtrl)
	s.mockSessions = usecasemock.NewMockSessionManager(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.logs = &bytes.Buffer{}
	s.commands = commands.NewAuthCommands(s.mockGateway, s.mockSessions, s.clock, session.DefaultRefreshPolicy(), slog.New(slog.NewTextHandler(s.logs, nil)))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: builds an authenticated session and issues a token", func() {
		s.mockGateway.EXPECT().Login(gomock.Any(), "player@example.com", "secret123").Return(upstream.AuthResult{
			User:   upstream.User{ID: "u-1", Email: "player@example.com"},
			Tokens: session.Tokens{AccessToken: "at", RefreshToken: "rt"},
		}, nil)
		s.mockSessions.EXPECT().Issue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sess session.Session) (string, error) {
			s.Equal("u-1", sess.UserID)
			s.Equal(session.StateAuthenticated, sess.State)
			s.Equal(session.ProviderCredentials, sess.Provider)
			s.Equal(s.clock.Now().Add(time.Hour), sess.ExpiresAt)
			return "session-token", nil
		})

		res, err := s.commands.Login(context.Background(), "player@example.com", "secret123")
		s.Require().NoError(err)
		s.Equal("session-token", res.Token)
		s.Equal("at", res.Session.AccessToken)
	})

	s.Run("error: rejected credentials are an auth error", func() {
		s.mockGateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(upstream.AuthResult{}, infra.NewStatusError("user", http.StatusUnauthorized, nil))

		s.logs.Reset()
		_, err := s.commands.Login(context.Background(), "player@example.com", "wrong")
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
		s.True(errs.Is(err, errs.ErrAuth))
		s.Contains(s.logs.String(), `msg="login failed" provider=credentials state=unauthenticated`)
	})

	s.Run("error: unreachable user service is not reported as bad credentials", func() {
		s.mockGateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(upstream.AuthResult{}, infra.UpstreamError{Kind: infra.KindNetwork, Service: "user"})

		_, err := s.commands.Login(context.Background(), "player@example.com", "pw")
		s.False(errs.Is(err, errs.ErrAuth))
		s.True(errs.Is(err, errs.ErrNetwork))
	})

	s.Run("error: payload without access token", func() {
		s.mockGateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(upstream.AuthResult{
			User: upstream.User{ID: "u-1"},
		}, nil)

		s.logs.Reset()
		_, err := s.commands.Login(context.Background(), "player@example.com", "pw")
		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
		s.True(errs.Is(err, errs.ErrAuth))
		s.Contains(s.logs.String(), `state=unauthenticated`)
		s.NotContains(s.logs.String(), "could not be recorded")
	})
}

func (s *AuthCommandsTestSuite) TestGoogleLogin() {
	s.mockGateway.EXPECT().Google(gomock.Any(), "id-token", "g@example.com", "G User").Return(upstream.AuthResult{
		User:   upstream.User{ID: "u-7", Email: "g@example.com", Name: "G User"},
		Tokens: session.Tokens{AccessToken: "at"},
	}, nil)
	s.mockSessions.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("tok", nil)

	res, err := s.commands.GoogleLogin(context.Background(), "id-token", "g@example.com", "G User")
	s.Require().NoError(err)
	s.Equal(session.ProviderGoogle, res.Session.Provider)
	s.Equal("G User", res.Session.Name)
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.mockGateway.EXPECT().Signup(gomock.Any(), "new@example.com", "pw").Return(json.RawMessage(`{"id":"u-9"}`), nil)
	user, err := s.commands.Register(context.Background(), "new@example.com", "pw")
	s.Require().NoError(err)
	s.JSONEq(`{"id":"u-9"}`, string(user))

	conflict := infra.NewStatusError("user", http.StatusConflict, []byte(`{"detail":"Email already registered"}`))
	s.mockGateway.EXPECT().Signup(gomock.Any(), "dup@example.com", "pw").Return(nil, conflict)
	_, err = s.commands.Register(context.Background(), "dup@example.com", "pw")
	s.Equal(http.StatusConflict, infra.StatusOf(err))
}

func (s *AuthCommandsTestSuite) TestLogout() {
	s.mockSessions.EXPECT().Revoke(gomock.Any(), "tok").Return(nil)
	s.NoError(s.commands.Logout(context.Background(), "tok"))

	boom := errors.New("redis down")
	s.mockSessions.EXPECT().Revoke(gomock.Any(), "tok2").Return(boom)
	s.ErrorIs(s.commands.Logout(context.Background(), "tok2"), boom)
}
