package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/config"
	"github.com/nfrund/landing/internal/pages"
	"github.com/nfrund/landing/internal/view"
)

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func pageMeta(c echo.Context, cfg config.Provider, title, description string) pages.Meta {
	return pages.Meta{
		Title:       title,
		Description: description,
		Flash:       view.GetFlashData(c),
		LiveReload:  cfg.GetLiveReload(),
	}
}
