package api

import (
	"io"
	"net/http"
	"net/url"

	"courtmate-gateway/internal/handler/httperr"
	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/infra/upstream"
	"courtmate-gateway/internal/pkg/config"
	"courtmate-gateway/internal/usecase"
	"courtmate-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxProxyBody = 1 << 20

// ProxyRoute maps one inbound route onto a backing service path. Target builds
// the upstream path from the matched route params.
type ProxyRoute struct {
	Method       string
	Path         string
	Service      string
	Target       func(c *gin.Context) string
	ErrorMessage string
}

type ProxyHandler struct {
	proxy      commands.ProxyCommands
	apiVersion string
}

func NewProxyHandler(proxy commands.ProxyCommands, cfg config.Config) *ProxyHandler {
	return &ProxyHandler{
		proxy:      proxy,
		apiVersion: cfg.Upstream.APIVersion,
	}
}

// Routes is the table of authenticated pass-through routes, relative to /api/proxy.
func (h *ProxyHandler) Routes() []ProxyRoute {
	facilities := func(p string) string {
		return "/api/" + h.apiVersion + "/facilities" + p
	}

	return []ProxyRoute{
		{
			Method:       http.MethodGet,
			Path:         "/user/user/:userId",
			Service:      upstream.ServiceUser,
			Target:       func(c *gin.Context) string { return "/user/" + param(c, "userId") },
			ErrorMessage: "Failed to fetch user data",
		},
		{
			Method:       http.MethodPut,
			Path:         "/user/user/:userId",
			Service:      upstream.ServiceUser,
			Target:       func(c *gin.Context) string { return "/user/" + param(c, "userId") },
			ErrorMessage: "Failed to update user",
		},
		{
			Method:       http.MethodGet,
			Path:         "/booking/reservation",
			Service:      upstream.ServiceBooking,
			Target:       func(*gin.Context) string { return "/reservation/" },
			ErrorMessage: "Failed to fetch bookings",
		},
		{
			Method:       http.MethodPost,
			Path:         "/booking/reservation",
			Service:      upstream.ServiceBooking,
			Target:       func(*gin.Context) string { return "/reservation/" },
			ErrorMessage: "Failed to create booking",
		},
		{
			Method:       http.MethodGet,
			Path:         "/court/api/v1/facilities",
			Service:      upstream.ServiceFacilities,
			Target:       func(*gin.Context) string { return facilities("") },
			ErrorMessage: "Failed to fetch facilities",
		},
		{
			Method:       http.MethodPost,
			Path:         "/court/api/v1/facilities",
			Service:      upstream.ServiceFacilities,
			Target:       func(*gin.Context) string { return facilities("") },
			ErrorMessage: "Failed to create facility",
		},
		{
			Method:       http.MethodGet,
			Path:         "/court/api/v1/facilities/:facilityId/courts",
			Service:      upstream.ServiceFacilities,
			Target:       func(c *gin.Context) string { return facilities("/" + param(c, "facilityId") + "/courts") },
			ErrorMessage: "Failed to fetch courts",
		},
		{
			Method:       http.MethodPost,
			Path:         "/court/api/v1/facilities/:facilityId/courts",
			Service:      upstream.ServiceFacilities,
			Target:       func(c *gin.Context) string { return facilities("/" + param(c, "facilityId") + "/courts") },
			ErrorMessage: "Failed to create court",
		},
		{
			Method:       http.MethodGet,
			Path:         "/court/api/v1/facilities/user/:userId",
			Service:      upstream.ServiceFacilities,
			Target:       func(c *gin.Context) string { return facilities("/user/" + param(c, "userId")) },
			ErrorMessage: "Failed to fetch facilities",
		},
	}
}

// Forward returns the handler for one route. The session middleware must run first.
func (h *ProxyHandler) Forward(route ProxyRoute) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := middleware.GetAccessToken(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNoSession, httperr.MsgUnauthorized, nil)
			return
		}

		var body []byte
		if c.Request.Body != nil && c.Request.Method != http.MethodGet {
			b, err := io.ReadAll(io.LimitReader(c.Request.Body, maxProxyBody))
			if err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
				return
			}
			body = b
		}

		target := commands.ProxyTarget{Service: route.Service, Path: route.Target(c)}
		res, err := h.proxy.Forward(c.Request.Context(), target, route.Method, body, token)
		if err != nil {
			httperr.AbortClassified(c, err, route.ErrorMessage)
			return
		}
		relay(c, res)
	}
}

func relay(c *gin.Context, res *commands.ProxyResult) {
	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	if res.Status == http.StatusNoContent || len(res.Body) == 0 {
		// commit the header so ErrorHandler does not treat the response as unwritten
		c.Status(res.Status)
		c.Writer.WriteHeaderNow()
		return
	}
	c.Data(res.Status, contentType, res.Body)
}

func param(c *gin.Context, name string) string {
	return url.PathEscape(c.Param(name))
}
