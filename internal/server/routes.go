package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/components/mobilenav"
	"github.com/nfrund/landing/internal/handlers"
	"github.com/nfrund/landing/internal/livereload"
	"github.com/nfrund/landing/internal/middleware"
	"github.com/nfrund/landing/internal/pages"
	"github.com/nfrund/landing/web"
	"github.com/samber/do/v2"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	pageHandler := do.MustInvoke[*handlers.PageHandler](s.injector)
	navHandler := do.MustInvoke[*handlers.NavHandler](s.injector)
	consultationHandler := do.MustInvoke[*handlers.ConsultationHandler](s.injector)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", pageHandler.LandingGet)
	s.E.GET("/resume", pageHandler.ResumeGet)

	s.E.POST(mobilenav.ToggleRoute, navHandler.TogglePost)

	s.E.GET(pages.ConsultationRoute, consultationHandler.FormGet)
	s.E.POST(pages.ConsultationRoute, consultationHandler.FormPost, rateLimiter)

	if s.Cfg.GetLiveReload() {
		s.E.GET(livereload.Route, livereload.NewHandler(s.hub).ServeWS)
	}

	s.E.StaticFS("/static", web.StaticFS())
	if dir := s.Cfg.GetPublicDir(); dir != "" {
		s.E.Static("/images", dir+"/images")
	}

	s.E.GET("/health", handlers.HealthGet)
	s.E.HEAD("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}
