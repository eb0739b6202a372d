package httperr

import (
	"net/http"
	"strings"

	"courtmate-gateway/internal/infra"
	"courtmate-gateway/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgUnauthorized = "Unauthorized"
	MsgInternal     = "Internal server error"
)

// Response is the error envelope every endpoint answers with.
type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details any) {
	Abort(c, err, Response{Status: status, Error: msg, Details: details})
}

func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// AbortClassified answers with the response FromError builds for err.
func AbortClassified(c *gin.Context, err error, routeMsg string) {
	Abort(c, err, FromError(err, routeMsg))
}

// FromError maps an error onto the envelope. routeMsg is used for upstream status
// errors, where the upstream status and body are forwarded.
func FromError(err error, routeMsg string) Response {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return Response{Status: http.StatusBadRequest, Error: err.Error()}
	case errs.Is(err, errs.ErrAuth):
		return Response{Status: http.StatusUnauthorized, Error: MsgUnauthorized}
	case errs.Is(err, errs.ErrTimeout):
		service := serviceOf(err)
		return Response{
			Status: http.StatusGatewayTimeout,
			Error:  capitalize(service) + " service request timed out",
			Hint:   hint(service),
		}
	case errs.Is(err, errs.ErrNetwork):
		service := serviceOf(err)
		return Response{
			Status: http.StatusInternalServerError,
			Error:  "Cannot connect to " + service + " service. Please ensure it is running.",
			Hint:   hint(service),
		}
	}

	if ue, ok := infra.AsUpstream(err); ok && ue.Kind == infra.KindStatus {
		return Response{Status: ue.Status, Error: routeMsg, Details: ue.Details()}
	}

	return Response{Status: http.StatusInternalServerError, Error: MsgInternal}
}

func serviceOf(err error) string {
	if ue, ok := infra.AsUpstream(err); ok && ue.Service != "" {
		return ue.Service
	}
	return "upstream"
}

func hint(service string) string {
	return "Make sure the " + service + " microservice is running and accessible"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
