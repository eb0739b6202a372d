package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"courtmate-gateway/internal/handler/api"
	"courtmate-gateway/internal/handler/middleware"
	"courtmate-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Facility *api.FacilityHandler
	Proxy    *api.ProxyHandler
	Config   *api.ConfigHandler
}

// Middlewares groups the request-scoped middleware the routes need.
type Middlewares struct {
	Logger      *middleware.Logger
	Session     *middleware.SessionMiddleware
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireSession := mw.Session.RequireSession()
	limited := []gin.HandlerFunc{mw.RateLimiter.Limit()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/config", Handler: h.Config.GetConfig},
			{Method: http.MethodPost, Path: "/facilities/nearby", Handler: h.Facility.Nearby},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: limited},
				{Method: http.MethodPost, Path: "/google", Handler: h.Auth.Google, Mw: limited},
				{Method: http.MethodGet, Path: "/google/login", Handler: h.Auth.GoogleStart},
				{Method: http.MethodGet, Path: "/google/callback", Handler: h.Auth.GoogleCallback, Mw: limited},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/verify", Handler: h.Auth.Verify},
			})

			sessionRequired := auth.Group("")
			sessionRequired.Use(requireSession)
			addRoutes(sessionRequired, []route{
				{Method: http.MethodGet, Path: "/session", Handler: h.Auth.Session},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("")
		bookings.Use(requireSession)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListBookings},
				{Method: http.MethodPost, Path: "/booking", Handler: h.Booking.CreateBooking},
			})
		}

		proxy := apiGroup.Group("/proxy")
		proxy.Use(requireSession)
		{
			routes := make([]route, 0, len(h.Proxy.Routes()))
			for _, pr := range h.Proxy.Routes() {
				routes = append(routes, route{Method: pr.Method, Path: pr.Path, Handler: h.Proxy.Forward(pr)})
			}
			addRoutes(proxy, routes)
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
