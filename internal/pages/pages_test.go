package pages_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nfrund/landing/internal/components/mobilenav"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/domain"
	"github.com/nfrund/landing/internal/pages"
	"github.com/nfrund/landing/internal/testutils"
	"github.com/nfrund/landing/internal/view"
	"github.com/nfrund/landing/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

func loadSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.NewLoader(content.NewFS(web.ContentFS(), "")).Load()
	require.NoError(t, err)
	return site
}

func render(t *testing.T, node g.Node) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	return buf.String(), testutils.ParseHTML(t, buf.String())
}

func renderLanding(t *testing.T, meta pages.Meta, p pages.LandingProps) (string, *html.Node) {
	t.Helper()
	node, err := pages.Landing(meta, p)
	require.NoError(t, err)
	return render(t, node)
}

func TestLanding(t *testing.T) {
	site := loadSite(t)
	_, doc := renderLanding(t, pages.Meta{Title: "Rod Alvero"}, pages.LandingProps{Content: site.Landing, Year: 2026})

	t.Run("renders a main landmark", func(t *testing.T) {
		main := testutils.GetByRole(t, doc, "main", "")
		id, _ := testutils.Attr(main, "id")
		assert.Equal(t, pages.MainContentID, id)
	})

	t.Run("skip link targets main content", func(t *testing.T) {
		link := testutils.GetByRole(t, doc, "link", "Skip to main content")
		href, _ := testutils.Attr(link, "href")
		assert.Equal(t, "#"+pages.MainContentID, href)
	})

	t.Run("contains the main navigation", func(t *testing.T) {
		nav := testutils.GetByRole(t, doc, "navigation", "Main navigation")
		links := testutils.QueryAllByRole(nav, "link", "")
		assert.Subset(t, testutils.Names(links), []string{"Services", "About", "Resume", "Contact"})
	})

	t.Run("contains key section headings", func(t *testing.T) {
		h1s := testutils.QueryAllByRole(doc, "heading", "")
		var level1 int
		for _, n := range h1s {
			if testutils.HeadingLevel(n) == 1 {
				level1++
			}
		}
		assert.Equal(t, 1, level1, "the page has exactly one h1")
		testutils.GetHeading(t, doc, 1, "Find Your Dream House with Me")
		testutils.GetHeading(t, doc, 0, "Services")
		testutils.GetHeading(t, doc, 0, "Featured Work")
	})

	t.Run("contains the footer", func(t *testing.T) {
		footer := testutils.GetByRole(t, doc, "contentinfo", "")
		assert.Contains(t, testutils.AccessibleName(footer), "© 2026 Rod Alvero. All rights reserved.")
	})

	t.Run("mobile menu starts closed", func(t *testing.T) {
		button := testutils.GetByRole(t, doc, "button", "Open menu")
		expanded, _ := testutils.Attr(button, "aria-expanded")
		assert.Equal(t, "false", expanded)
		assert.Empty(t, testutils.QueryAllByRole(doc, "navigation", "Mobile navigation"))
	})

	t.Run("mobile link targets exist on the page", func(t *testing.T) {
		for _, l := range mobilenav.Links() {
			assert.NotNil(t, testutils.ByID(doc, l.Href[1:]), "missing section %s", l.Href)
		}
	})

	t.Run("listings show formatted prices", func(t *testing.T) {
		work := testutils.ByID(doc, "work")
		require.NotNil(t, work)
		text := testutils.TextContent(work)
		assert.Contains(t, text, "$750,000")
		assert.Contains(t, text, "$1,200,000")
		testutils.GetByRole(t, work, "img", "Property Image 1")
	})

	t.Run("call to action dials the configured number", func(t *testing.T) {
		links := testutils.QueryAllByRole(doc, "link", "+1 (800) 555-0199")
		require.NotEmpty(t, links)
		href, _ := testutils.Attr(links[0], "href")
		assert.Equal(t, "tel:+18005550199", href)
	})

	t.Run("contact section holds the consultation form", func(t *testing.T) {
		contact := testutils.ByID(doc, "contact")
		require.NotNil(t, contact)
		testutils.GetByRole(t, contact, "form", "Schedule a consultation")
	})
}

func TestLanding_UsesGivenMobileNav(t *testing.T) {
	site := loadSite(t)
	nav := mobilenav.New()
	nav.Toggle()

	_, doc := renderLanding(t, pages.Meta{}, pages.LandingProps{Content: site.Landing, Nav: nav, Year: 2026})

	testutils.GetByRole(t, doc, "button", "Close menu")
	mobile := testutils.GetByRole(t, doc, "navigation", "Mobile navigation")
	assert.Equal(t, []string{"Services", "About", "Work", "Contact"},
		testutils.Names(testutils.QueryAllByRole(mobile, "link", "")))
}

func TestLanding_EachRenderHasItsOwnWidget(t *testing.T) {
	site := loadSite(t)
	_, first := renderLanding(t, pages.Meta{}, pages.LandingProps{Content: site.Landing})
	_, second := renderLanding(t, pages.Meta{}, pages.LandingProps{Content: site.Landing})

	a, _ := testutils.Attr(testutils.GetByRole(t, first, "button", "Open menu"), "hx-post")
	b, _ := testutils.Attr(testutils.GetByRole(t, second, "button", "Open menu"), "hx-post")
	assert.NotEqual(t, a, b)
}

func TestLanding_UnknownServiceIcon(t *testing.T) {
	site := loadSite(t)
	landing := site.Landing
	landing.Services.Items = append([]content.Service(nil), landing.Services.Items...)
	landing.Services.Items[0].Icon = "no-such-icon"

	_, err := pages.Landing(pages.Meta{}, pages.LandingProps{Content: landing})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownIcon))
}

func TestLayout(t *testing.T) {
	t.Run("flash messages", func(t *testing.T) {
		out, doc := render(t, pages.Layout(pages.Meta{
			Title: "T",
			Flash: view.FlashData{Success: []string{"Saved"}, Error: []string{"Oops"}},
		}))
		status := testutils.GetByRole(t, doc, "status", "")
		assert.Contains(t, testutils.TextContent(status), "Saved")
		assert.Contains(t, testutils.TextContent(status), "Oops")
		assert.Contains(t, out, "<title>T</title>")
	})

	t.Run("no flash banner when empty", func(t *testing.T) {
		_, doc := render(t, pages.Layout(pages.Meta{}))
		assert.Nil(t, testutils.ByID(doc, "flash"))
	})

	t.Run("live reload snippet only when enabled", func(t *testing.T) {
		off, _ := render(t, pages.Layout(pages.Meta{}))
		on, _ := render(t, pages.Layout(pages.Meta{LiveReload: true}))
		assert.NotContains(t, off, "/dev/livereload")
		assert.Contains(t, on, "/dev/livereload")
	})

	t.Run("loads site assets", func(t *testing.T) {
		out, _ := render(t, pages.Layout(pages.Meta{}))
		assert.Contains(t, out, `href="/static/css/site.css"`)
		assert.Contains(t, out, `src="/static/js/site.js"`)
		assert.Contains(t, out, "htmx.org")
	})
}
