package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/landing/internal/config"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/handlers"
	"github.com/nfrund/landing/internal/hub"
	"github.com/nfrund/landing/internal/middleware"
	"github.com/nfrund/landing/internal/pubsub"
	"github.com/nfrund/landing/internal/rendering"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	injector do.Injector
	store    *content.Store
	bus      *pubsub.WatermillBridge
	hub      *hub.Hub
}

// New creates a new Server instance. Content is loaded eagerly so a broken
// content directory fails startup instead of the first request.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	injector := NewInjector(cfg)
	store, err := do.Invoke[*content.Store](injector)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	renderer, err := do.Invoke[rendering.Renderer](injector)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(middleware.RequestLog())
	e.Use(echomw.Recover())

	cookieStore := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(cookieStore))

	return &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
		store:    store,
		bus:      do.MustInvoke[*pubsub.WatermillBridge](injector),
		hub:      do.MustInvoke[*hub.Hub](injector),
	}, nil
}

// Store returns the live content store.
func (s *Server) Store() *content.Store {
	return s.store
}

// setupErrorHandling logs unhandled errors with a stack trace and then defers
// to echo's default response.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"stack_trace", string(debug.Stack()),
			)
		} else if he.Code >= http.StatusInternalServerError {
			slog.Error("Server error", "code", he.Code, "error", he.Internal)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
