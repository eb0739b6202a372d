package jwt

import (
	"errors"
	"time"

	"courtmate-gateway/internal/domain/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const issuer = "courtmate-gateway"

// Claims is the session as it travels inside the signed session token.
// The token's own exp bounds the session lifetime; ExpiresAt tracks the upstream access token.
type Claims struct {
	SessionID    uuid.UUID `json:"sid"`
	UserID       string    `json:"uid"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Provider     string    `json:"provider"`
	AccessToken  string    `json:"at"`
	RefreshToken string    `json:"rt,omitempty"`
	ExpiresAt    int64     `json:"at_exp"`
	State        string    `json:"state"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

// Encode signs s. issuedAt anchors the token lifetime so that a re-issued cookie
// after refresh does not extend the session past its original max age.
func (s *Service) Encode(sess session.Session, issuedAt time.Time) (string, error) {
	var accessExp int64
	if !sess.ExpiresAt.IsZero() {
		accessExp = sess.ExpiresAt.UnixMilli()
	}

	claims := Claims{
		SessionID:    sess.ID,
		UserID:       sess.UserID,
		Email:        sess.Email,
		Name:         sess.Name,
		Provider:     string(sess.Provider),
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresAt:    accessExp,
		State:        string(sess.State),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sess.UserID,
			ID:        sess.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Decode verifies tokenString and rebuilds the session it carries, along with the
// original issue time.
func (s *Service) Decode(tokenString string, now time.Time) (session.Session, time.Time, error) {
	claims, err := s.validate(tokenString, now)
	if err != nil {
		return session.Session{}, time.Time{}, err
	}

	sess := session.Session{
		ID:           claims.SessionID,
		UserID:       claims.UserID,
		Email:        claims.Email,
		Name:         claims.Name,
		Provider:     session.Provider(claims.Provider),
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
		State:        session.State(claims.State),
	}
	if claims.ExpiresAt > 0 {
		sess.ExpiresAt = time.UnixMilli(claims.ExpiresAt).UTC()
	}
	if sess.State == "" {
		sess.State = session.StateAuthenticated
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	return sess, issuedAt, nil
}

func (s *Service) validate(tokenString string, now time.Time) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(func() time.Time { return now }))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == uuid.Nil || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// UnverifiedClaims reads the payload of a token this service did not sign,
// such as a Google id_token received directly from the token endpoint over TLS.
func UnverifiedClaims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
