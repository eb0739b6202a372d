//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/pkg/jwt"
	"courtmate-gateway/tests/common/builder"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_EncodeDecode(t *testing.T) {
	svc := jwt.NewService("test-secret", 24*time.Hour)
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: session survives the round trip", func(t *testing.T) {
		in := builder.NewSessionBuilder().Build()

		token, err := svc.Encode(in, issuedAt)
		require.NoError(t, err)

		out, iat, err := svc.Decode(token, issuedAt.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, in, out)
		assert.True(t, iat.Equal(issuedAt))
	})

	t.Run("success: expired session keeps its zero expiry and failed state", func(t *testing.T) {
		in := builder.NewSessionBuilder().Build().Expired()

		token, err := svc.Encode(in, issuedAt)
		require.NoError(t, err)

		out, _, err := svc.Decode(token, issuedAt)
		require.NoError(t, err)
		assert.True(t, out.ExpiresAt.IsZero())
		assert.Equal(t, session.StateRefreshFailed, out.State)
	})

	t.Run("error: token past its max age", func(t *testing.T) {
		token, err := svc.Encode(builder.NewSessionBuilder().Build(), issuedAt)
		require.NoError(t, err)

		_, _, err = svc.Decode(token, issuedAt.Add(25*time.Hour))
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", 24*time.Hour)
		token, err := other.Encode(builder.NewSessionBuilder().Build(), issuedAt)
		require.NoError(t, err)

		_, _, err = svc.Decode(token, issuedAt)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, _, err := svc.Decode("not-a-token", issuedAt)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestUnverifiedClaims(t *testing.T) {
	idToken, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"email": "player@example.com",
		"name":  "Player One",
	}).SignedString([]byte("google-side-key"))
	require.NoError(t, err)

	claims, err := jwt.UnverifiedClaims(idToken)
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", claims["email"])
	assert.Equal(t, "Player One", claims["name"])

	_, err = jwt.UnverifiedClaims("bad")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
