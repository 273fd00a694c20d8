package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/components/mobilenav"
	"github.com/nfrund/landing/internal/config"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/middleware"
	"github.com/nfrund/landing/internal/pages"
	"github.com/nfrund/landing/internal/rendering"
)

// PageHandler serves the two full pages.
type PageHandler struct {
	store    *content.Store
	renderer rendering.Renderer
	cfg      config.Provider
	now      func() time.Time
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(store *content.Store, renderer rendering.Renderer, cfg config.Provider) *PageHandler {
	return &PageHandler{store: store, renderer: renderer, cfg: cfg, now: time.Now}
}

// LandingGet handles GET /.
func (h *PageHandler) LandingGet(c echo.Context) error {
	landing := h.store.Site().Landing
	meta := pageMeta(c, h.cfg, landing.Brand.Name, landing.Hero.Headline)

	page, err := pages.Landing(meta, pages.LandingProps{
		Content: landing,
		Nav:     mobilenav.New(),
		Year:    h.now().Year(),
	})
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to compose landing page", "error", err)
		return fmt.Errorf("compose landing page: %w", err)
	}
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// ResumeGet handles GET /resume.
func (h *PageHandler) ResumeGet(c echo.Context) error {
	resume := h.store.Site().Resume
	meta := pageMeta(c, h.cfg, resume.Name+" | Résumé", resume.Title)

	page, err := pages.Resume(meta, pages.ResumeProps{Content: resume, Year: h.now().Year()})
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to compose resume page", "error", err)
		return fmt.Errorf("compose resume page: %w", err)
	}
	return h.renderer.RenderPage(c, http.StatusOK, page)
}
