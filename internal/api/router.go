package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/littlelemon/restaurant-system/internal/api/handler"
	"github.com/littlelemon/restaurant-system/internal/api/middleware"
	"github.com/littlelemon/restaurant-system/internal/core/ports"

	_ "github.com/littlelemon/restaurant-system/docs"
)

// Dependencies are the services and probes the router wires into handlers.
type Dependencies struct {
	Menu     ports.MenuService
	Bookings ports.BookingService
	Users    ports.UserService
	Auth     ports.AuthService
	Checks   []handler.DependencyCheck
	Logger   zerolog.Logger

	// CORSOrigins lists the browser origins allowed to call the API.
	// Empty means any origin.
	CORSOrigins []string

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Paths are matched with or without their trailing slash.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Pre(echo.WrapMiddleware(corsHandler(d.CORSOrigins)))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(prometheusConfig(d.Registry)))

	// --- Dependencies ---
	requireToken := middleware.Auth(d.Auth)
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	menuHandler := handler.NewMenuHandler(d.Menu)
	bookingHandler := handler.NewBookingHandler(d.Bookings)

	// --- Auth routes ---
	e.POST("/auth/token/login", authHandler.Login)
	e.POST("/auth/token/logout", authHandler.Logout, requireToken)

	// --- User routes ---
	e.POST("/auth/users", userHandler.Signup)
	users := e.Group("/auth/users", requireToken)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateMe)
	users.PATCH("/me", userHandler.PartialUpdateMe)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.PATCH("/:id", userHandler.PartialUpdate)
	users.DELETE("/:id", userHandler.Delete)

	// --- Menu routes (reads are public) ---
	e.GET("/restaurant/menu", menuHandler.List)
	e.GET("/restaurant/menu/:id", menuHandler.Get)
	e.POST("/restaurant/menu", menuHandler.Create, requireToken)
	e.PUT("/restaurant/menu/:id", menuHandler.Update, requireToken)
	e.PATCH("/restaurant/menu/:id", menuHandler.PartialUpdate, requireToken)
	e.DELETE("/restaurant/menu/:id", menuHandler.Delete, requireToken)

	// --- Booking routes ---
	bookings := e.Group("/restaurant/booking/tables", requireToken)
	bookings.GET("", bookingHandler.List)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.PUT("/:id", bookingHandler.Update)
	bookings.PATCH("/:id", bookingHandler.PartialUpdate)
	bookings.DELETE("/:id", bookingHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(metricsHandlerConfig(d.Registry)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// corsHandler answers preflight requests before routing so OPTIONS never
// reaches the resource handlers.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}).Handler
}

func prometheusConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{
		Namespace: "restaurant",
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandlerConfig(reg *prometheus.Registry) echoprometheus.HandlerConfig {
	if reg == nil {
		return echoprometheus.HandlerConfig{}
	}
	return echoprometheus.HandlerConfig{Gatherer: reg}
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
