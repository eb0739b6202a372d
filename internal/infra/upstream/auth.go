package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"courtmate-gateway/internal/domain/session"
	"courtmate-gateway/internal/infra"
)

// UserID accepts both string and numeric ids from the user service.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	n, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*id = UserID(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

type User struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthResult is what a successful login or Google exchange yields.
type AuthResult struct {
	User   User
	Tokens session.Tokens
}

func (r AuthResult) Identity() session.Identity {
	return session.Identity{
		UserID: string(r.User.ID),
		Email:  r.User.Email,
		Name:   r.User.Name,
	}
}

// tokenPayload accepts both the snake_case and camelCase spellings the user service has used.
type tokenPayload struct {
	User              User   `json:"user"`
	AccessToken       string `json:"access_token"`
	AccessTokenCamel  string `json:"accessToken"`
	RefreshToken      string `json:"refresh_token"`
	RefreshTokenCamel string `json:"refreshToken"`
}

func (p tokenPayload) tokens() session.Tokens {
	t := session.Tokens{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
	if t.AccessToken == "" {
		t.AccessToken = p.AccessTokenCamel
	}
	if t.RefreshToken == "" {
		t.RefreshToken = p.RefreshTokenCamel
	}
	return t
}

type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out tokenPayload
	err := a.client.DoJSON(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"email": email, "password": password},
	}, &out)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: out.User, Tokens: out.tokens()}, nil
}

// Signup registers a new account and returns the user object the service echoed back.
func (a *AuthAPI) Signup(ctx context.Context, email, password string) (json.RawMessage, error) {
	var out struct {
		User json.RawMessage `json:"user"`
	}
	err := a.client.DoJSON(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Body:   map[string]string{"email": email, "password": password},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (a *AuthAPI) Google(ctx context.Context, idToken, email, name string) (AuthResult, error) {
	body := map[string]string{"id_token": idToken}
	if email != "" {
		body["email"] = email
	}
	if name != "" {
		body["name"] = name
	}

	var out tokenPayload
	err := a.client.DoJSON(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/google",
		Body:   body,
	}, &out)
	if err != nil {
		return AuthResult{}, err
	}
	if out.User.Name == "" {
		out.User.Name = name
	}
	if out.User.Email == "" {
		out.User.Email = email
	}
	return AuthResult{User: out.User, Tokens: out.tokens()}, nil
}

// Refresh implements session.Refresher.
func (a *AuthAPI) Refresh(ctx context.Context, accessToken, refreshToken string) (session.Tokens, error) {
	var out tokenPayload
	err := a.client.DoJSON(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/refresh_token",
		Token:  accessToken,
		Body:   map[string]string{"refresh_token": refreshToken},
	}, &out)
	if err != nil {
		return session.Tokens{}, err
	}
	return out.tokens(), nil
}

var _ session.Refresher = (*AuthAPI)(nil)

// IsRejected reports whether err is a non-2xx answer from the service,
// as opposed to a transport failure.
func IsRejected(err error) bool {
	return infra.IsKind(err, infra.KindStatus)
}
