package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthGet handles GET /health.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
