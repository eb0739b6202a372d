package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleRequest carries a Google id_token obtained by the browser. Email and name
// are optional hints forwarded to the user service.
type GoogleRequest struct {
	IDToken string `json:"id_token" binding:"required"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type GoogleCallbackQuery struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

type VerifyQuery struct {
	AccessToken string `form:"access_token"`
	Type        string `form:"type"`
}

// NeedsUpstreamCheck reports whether the link type must be confirmed against the user service.
func (q VerifyQuery) NeedsUpstreamCheck() bool {
	return q.Type == "signup" || q.Type == "recovery"
}
