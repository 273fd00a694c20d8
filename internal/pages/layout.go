// Package pages composes full documents and fragments from site content.
package pages

import (
	"github.com/nfrund/landing/internal/livereload"
	"github.com/nfrund/landing/internal/view"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"

	// MainContentID is the skip link target.
	MainContentID = "main-content"
)

// Meta is the per-request document chrome shared by every page.
type Meta struct {
	Title       string
	Description string
	Flash       view.FlashData
	LiveReload  bool
}

// Layout wraps body in the HTML5 document shell.
func Layout(meta Meta, body ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       meta.Title,
		Description: meta.Description,
		Language:    "en",
		Head: []g.Node{
			h.Script(h.Src(tailwindCDN)),
			h.Script(h.Src(htmxCDN), h.Defer()),
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
			h.Script(h.Src("/static/js/site.js"), h.Defer()),
		},
		Body: []g.Node{
			h.Class("min-h-screen bg-slate-50 dark:bg-slate-950 font-sans antialiased"),
			skipLink(),
			flashBanner(meta.Flash),
			g.Group(body),
			view.AdaptTemplToGomponent(livereload.Script(meta.LiveReload)),
		},
	})
}

func skipLink() g.Node {
	return h.A(
		h.Href("#"+MainContentID),
		h.Class("sr-only focus:not-sr-only focus:absolute focus:top-4 focus:left-4 focus:z-[100] focus:px-4 focus:py-2 focus:bg-blue-600 focus:text-white focus:rounded-lg focus:outline-none"),
		g.Text("Skip to main content"),
	)
}

func flashBanner(flash view.FlashData) g.Node {
	if flash.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flash"),
		g.Attr("role", "status"),
		h.Class("fixed top-20 inset-x-0 z-40 mx-auto max-w-xl px-4 space-y-2"),
		g.Map(flash.Success, func(msg string) g.Node {
			return h.P(h.Class("rounded-lg bg-green-50 text-green-800 px-4 py-3 shadow"), g.Text(msg))
		}),
		g.Map(flash.Error, func(msg string) g.Node {
			return h.P(h.Class("rounded-lg bg-red-50 text-red-800 px-4 py-3 shadow"), g.Text(msg))
		}),
	)
}

// brand is the initials badge plus name used in both page headers.
func brand(initials, name string) g.Node {
	return g.Group{
		h.Div(
			h.Class("w-8 h-8 rounded-lg bg-gradient-to-br from-blue-600 to-indigo-700 flex items-center justify-center text-white font-bold text-sm"),
			g.Text(initials),
		),
		h.Span(
			h.Class("text-xl font-bold tracking-tight font-display text-slate-900 dark:text-white"),
			g.Text(name),
		),
	}
}

const navLinkClass = "text-sm font-medium text-slate-600 dark:text-slate-300 hover:text-blue-600 dark:hover:text-blue-400 transition-colors"

const navButtonClass = "bg-blue-600 hover:bg-blue-700 text-white px-4 py-2 rounded-lg text-sm font-medium transition-colors"

const navBarClass = "fixed top-0 left-0 right-0 z-50 bg-white/80 dark:bg-slate-900/80 backdrop-blur-md border-b border-slate-200 dark:border-slate-800"
