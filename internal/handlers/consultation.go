package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/inquiry"
	"github.com/nfrund/landing/internal/middleware"
	"github.com/nfrund/landing/internal/pages"
	"github.com/nfrund/landing/internal/rendering"
	"github.com/nfrund/landing/internal/view"
)

const contactAnchor = "/#contact"

// ConsultationHandler accepts consultation requests from the contact section.
type ConsultationHandler struct {
	inquiries *inquiry.Store
	renderer  rendering.Renderer
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(inquiries *inquiry.Store, renderer rendering.Renderer) *ConsultationHandler {
	return &ConsultationHandler{inquiries: inquiries, renderer: renderer}
}

// FormGet handles GET /consultation with an empty form fragment.
func (h *ConsultationHandler) FormGet(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, pages.Consultation(pages.ConsultationForm{}))
}

// FormPost handles POST /consultation.
// htmx callers get the form fragment back; plain form posts are redirected
// to the contact section with a flash message.
func (h *ConsultationHandler) FormPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var req inquiry.Request
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.Normalize()

	if err := c.Validate(&req); err != nil {
		errs := fieldErrors(err)
		if errs == nil {
			return err
		}
		if isHTMX(c) {
			// htmx only swaps 2xx responses by default.
			return h.renderer.RenderPage(c, http.StatusOK, pages.Consultation(pages.ConsultationForm{Values: req, Errors: errs}))
		}
		if err := view.SetFlashError(c, "Please check the consultation form and try again."); err != nil {
			logger.Warn("Failed to set flash message", "error", err)
		}
		return c.Redirect(http.StatusSeeOther, contactAnchor)
	}

	rec, err := h.inquiries.Save(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to store consultation request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not send your request. Please try again.").SetInternal(err)
	}
	logger.Info("Consultation request received", "inquiry_id", rec.ID)

	if isHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, pages.Consultation(pages.ConsultationForm{Values: req, Sent: true}))
	}
	if err := view.SetFlashSuccess(c, "Thanks! Your consultation request was received."); err != nil {
		logger.Warn("Failed to set flash message", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, contactAnchor)
}
