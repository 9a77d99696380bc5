package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/luminastudio/portfolio-system/internal/api/handler"
	"github.com/luminastudio/portfolio-system/internal/core/ports"
)

// Deps carries the repositories the router serves.
type Deps struct {
	Services ports.ServiceRepository
	Posts    ports.PostRepository
	Requests ports.RequestRepository
	Users    ports.UserRepository
	Log      zerolog.Logger
}

// requestsPerSecond caps a single client; generous for a demo site.
const requestsPerSecond = 20

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(requestsPerSecond)),
	))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)

	// --- Resources ---
	services := handler.NewServiceHandler(deps.Services)
	e.GET("/services", services.List)
	e.GET("/services/:id", services.Get)
	e.POST("/services", services.Create)
	e.PUT("/services/:id", services.Update)
	e.DELETE("/services/:id", services.Delete)

	posts := handler.NewPostHandler(deps.Posts)
	e.GET("/posts", posts.List)
	e.GET("/posts/:id", posts.Get)
	e.POST("/posts", posts.Create)
	e.PUT("/posts/:id", posts.Update)
	e.DELETE("/posts/:id", posts.Delete)

	requests := handler.NewRequestHandler(deps.Requests)
	e.GET("/requests", requests.List)
	e.POST("/requests", requests.Create)
	e.PATCH("/requests/:id", requests.Patch)

	users := handler.NewUserHandler(deps.Users)
	e.GET("/users", users.List)
	e.POST("/users", users.Create)
	e.PATCH("/users/:id", users.Patch)

	return e
}
