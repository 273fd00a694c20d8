package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/landing/internal/components/mobilenav"
	"github.com/nfrund/landing/internal/config"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/handlers"
	"github.com/nfrund/landing/internal/inquiry"
	"github.com/nfrund/landing/internal/rendering"
	"github.com/nfrund/landing/internal/storage"
	"github.com/nfrund/landing/internal/testutils"
	"github.com/nfrund/landing/web"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

type testApp struct {
	e         *echo.Echo
	inquiries *inquiry.Store
}

func setupTest(t *testing.T) *testApp {
	t.Helper()

	store, err := content.NewStore(content.NewLoader(content.NewFS(web.ContentFS(), "")))
	require.NoError(t, err)
	renderer := rendering.NewUniversalRenderer()
	cfg := &config.Config{AppEnv: "test"}
	inquiries := inquiry.NewStore(storage.NewAferoStore(afero.NewMemMapFs()))

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	pageHandler := handlers.NewPageHandler(store, renderer, cfg)
	navHandler := handlers.NewNavHandler(renderer)
	consultationHandler := handlers.NewConsultationHandler(inquiries, renderer)

	e.GET("/", pageHandler.LandingGet)
	e.GET("/resume", pageHandler.ResumeGet)
	e.POST(mobilenav.ToggleRoute, navHandler.TogglePost)
	e.GET("/consultation", consultationHandler.FormGet)
	e.POST("/consultation", consultationHandler.FormPost)
	e.GET("/health", handlers.HealthGet)

	return &testApp{e: e, inquiries: inquiries}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func formRequest(method, target string, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func TestPageHandler(t *testing.T) {
	app := setupTest(t)

	t.Run("landing", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

		doc := testutils.ParseHTML(t, rec.Body.String())
		testutils.GetByRole(t, doc, "main", "")
		testutils.GetByRole(t, doc, "navigation", "Main navigation")
		testutils.GetByRole(t, doc, "button", "Open menu")
		testutils.GetByRole(t, doc, "contentinfo", "")
	})

	t.Run("resume", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/resume", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		doc := testutils.ParseHTML(t, rec.Body.String())
		testutils.GetHeading(t, doc, 1, "John Smith")
	})
}

func TestNavHandler_Toggle(t *testing.T) {
	app := setupTest(t)
	id := uuid.NewString()
	target := "/nav/mobile/" + id + "/toggle"

	t.Run("closed becomes open", func(t *testing.T) {
		rec := app.do(formRequest(http.MethodPost, target, url.Values{"state": {"closed"}}, true))
		require.Equal(t, http.StatusOK, rec.Code)

		doc := testutils.ParseHTML(t, rec.Body.String())
		button := testutils.GetByRole(t, doc, "button", "Close menu")
		expanded, _ := testutils.Attr(button, "aria-expanded")
		assert.Equal(t, "true", expanded)

		nav := testutils.GetByRole(t, doc, "navigation", "Mobile navigation")
		assert.Equal(t, []string{"Services", "About", "Work", "Contact"},
			testutils.Names(testutils.QueryAllByRole(nav, "link", "")))
		assert.NotNil(t, testutils.ByID(doc, "mobile-nav-"+id), "fragment keeps the widget id")
	})

	t.Run("open becomes closed", func(t *testing.T) {
		rec := app.do(formRequest(http.MethodPost, target, url.Values{"state": {"open"}}, true))
		require.Equal(t, http.StatusOK, rec.Code)

		doc := testutils.ParseHTML(t, rec.Body.String())
		button := testutils.GetByRole(t, doc, "button", "Open menu")
		expanded, _ := testutils.Attr(button, "aria-expanded")
		assert.Equal(t, "false", expanded)
		assert.Empty(t, testutils.QueryAllByRole(doc, "link", "Services"))
	})

	t.Run("unknown state is rejected", func(t *testing.T) {
		rec := app.do(formRequest(http.MethodPost, target, url.Values{"state": {"ajar"}}, true))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown disclosure state")
	})

	t.Run("missing state is rejected", func(t *testing.T) {
		rec := app.do(formRequest(http.MethodPost, target, url.Values{}, true))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		rec := app.do(formRequest(http.MethodPost, "/nav/mobile/not-a-uuid/toggle", url.Values{"state": {"closed"}}, true))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConsultationHandler(t *testing.T) {
	valid := url.Values{"name": {"Ada Lovelace"}, "email": {"ada@example.com"}, "message": {"Looking for a loft."}}
	invalid := url.Values{"name": {""}, "email": {"not-an-email"}}

	t.Run("form fragment", func(t *testing.T) {
		app := setupTest(t)
		rec := app.do(httptest.NewRequest(http.MethodGet, "/consultation", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		doc := testutils.ParseHTML(t, rec.Body.String())
		testutils.GetByRole(t, doc, "form", "Schedule a consultation")
	})

	t.Run("htmx submit stores the request", func(t *testing.T) {
		app := setupTest(t)
		rec := app.do(formRequest(http.MethodPost, "/consultation", valid, true))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Thanks, Ada Lovelace!")

		records, err := app.inquiries.List(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "ada@example.com", records[0].Email)
		assert.Equal(t, "Looking for a loft.", records[0].Message)
	})

	t.Run("htmx submit with errors re-renders the form", func(t *testing.T) {
		app := setupTest(t)
		rec := app.do(formRequest(http.MethodPost, "/consultation", invalid, true))
		require.Equal(t, http.StatusOK, rec.Code)

		doc := testutils.ParseHTML(t, rec.Body.String())
		assert.NotNil(t, testutils.ByID(doc, "consultation-name-error"))
		assert.NotNil(t, testutils.ByID(doc, "consultation-email-error"))
		assert.Contains(t, rec.Body.String(), "Enter a valid email address.")

		records, err := app.inquiries.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("plain submit redirects to the contact section", func(t *testing.T) {
		app := setupTest(t)
		rec := app.do(formRequest(http.MethodPost, "/consultation", valid, false))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#contact", rec.Header().Get(echo.HeaderLocation))
		assert.NotEmpty(t, rec.Result().Cookies(), "flash message is stored in the session cookie")

		records, err := app.inquiries.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("plain submit with errors stores nothing", func(t *testing.T) {
		app := setupTest(t)
		rec := app.do(formRequest(http.MethodPost, "/consultation", invalid, false))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		records, err := app.inquiries.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("flash is shown on the next page view", func(t *testing.T) {
		app := setupTest(t)
		rec := app.do(formRequest(http.MethodPost, "/consultation", valid, false))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
		page := app.do(req)
		require.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Your consultation request was received.")
	})
}

func TestHealth(t *testing.T) {
	app := setupTest(t)
	rec := app.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
