package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"userservice/internal/handler"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Users  *handler.UserHandler
	Roles  *handler.RoleHandler
	Health *handler.HealthHandler
}

// Options carries the ambient dependencies of the router.
type Options struct {
	Logger     zerolog.Logger
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Register wires routes and middleware.
func Register(e *echo.Echo, h Handlers, opts Options) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(contextLogger(opts.Logger))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "userservice",
		Subsystem:  "http",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	e.GET("/healthz", h.Health.Liveness)
	e.GET("/healthz/ready", h.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/user-service")

	roles := api.Group("/roles")
	roles.POST("/add", h.Roles.AddRole)
	roles.GET("/get-by-id/:roleId", h.Roles.GetRoleByID)
	roles.GET("/get-all", h.Roles.GetAllRoles)
	roles.DELETE("/delete/:roleId", h.Roles.DeleteRole)
	roles.PUT("/update/:roleId", h.Roles.UpdateRole)

	users := api.Group("/users")
	users.POST("/signup", h.Users.Signup)
	users.POST("/login", h.Users.Login)
	users.GET("/exists", h.Users.Exists)
	users.GET("/get-by-id/:id", h.Users.GetUserByID)
	users.GET("/get-by-username/:username", h.Users.GetUserByUsername)
	users.GET("/get-by-email/:email", h.Users.GetUserByEmail)
	users.GET("/get-all", h.Users.GetAllUsers)
	users.DELETE("/delete/:userId", h.Users.DeleteUser)
	users.PUT("/update/:userId", h.Users.UpdateUser)
}

// contextLogger puts a request-scoped logger carrying the request id into the request context.
func contextLogger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := base.With().Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := zerolog.Ctx(c.Request().Context()).Info()
			if v.Status >= 500 {
				evt = zerolog.Ctx(c.Request().Context()).Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
