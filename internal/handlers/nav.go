package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/components/mobilenav"
	"github.com/nfrund/landing/internal/domain"
	"github.com/nfrund/landing/internal/rendering"
)

// NavHandler flips mobile menus. It keeps no state: each request carries the
// widget id and its current state, and gets back the widget's new markup.
type NavHandler struct {
	renderer rendering.Renderer
}

// NewNavHandler creates a new NavHandler.
func NewNavHandler(renderer rendering.Renderer) *NavHandler {
	return &NavHandler{renderer: renderer}
}

// TogglePost handles POST /nav/mobile/:id/toggle.
func (h *NavHandler) TogglePost(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	state, err := mobilenav.ParseState(req.State)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	nav, err := mobilenav.Restore(req.ID, state)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWidgetID) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
		}
		return err
	}

	nav.Toggle()
	return h.renderer.RenderPage(c, http.StatusOK, nav)
}
