package pages

import (
	"fmt"

	"github.com/nfrund/landing/internal/components/icons"
	"github.com/nfrund/landing/internal/components/mobilenav"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LandingProps is everything the landing page needs for one render.
type LandingProps struct {
	Content content.Landing
	// Nav is this render's mobile menu. Each page view gets its own instance.
	Nav  *mobilenav.MobileNav
	Form ConsultationForm
	Year int
}

// Landing renders the marketing page. It fails when content names an unknown icon.
func Landing(meta Meta, p LandingProps) (g.Node, error) {
	services, err := servicesSection(p.Content.Services)
	if err != nil {
		return nil, err
	}
	nav := p.Nav
	if nav == nil {
		nav = mobilenav.New()
	}

	return Layout(meta,
		h.Main(
			h.ID(MainContentID),
			h.Class("min-h-screen"),
			landingNav(p.Content.Brand, nav),
			hero(p.Content.Hero),
			services,
			workSection(p.Content.Work),
			aboutSection(p.Content.About),
			ctaBanner(p.Content.CTA),
			contactSection(p.Content.Contact, p.Form),
			footer(p.Content.Footer.Owner, p.Year, "py-8 bg-black border-t border-slate-800 text-white"),
		),
	), nil
}

func landingNav(b content.Brand, mobile *mobilenav.MobileNav) g.Node {
	return h.Nav(
		h.Aria("label", "Main navigation"),
		h.Class(navBarClass),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 flex items-center justify-between h-16"),
			h.A(h.Href("/"), h.Class("flex items-center gap-2"), brand(b.Initials, b.Name)),
			h.Div(
				h.Class("hidden md:flex items-center gap-8"),
				h.A(h.Href("#services"), h.Class(navLinkClass), g.Text("Services")),
				h.A(h.Href("#about"), h.Class(navLinkClass), g.Text("About")),
				h.A(h.Href("/resume"), h.Class(navLinkClass), g.Text("Resume")),
				h.A(h.Href("#contact"), h.Class(navButtonClass), g.Text("Contact")),
			),
			mobile,
		),
	)
}

func hero(hr content.Hero) g.Node {
	return h.Section(
		h.Class("relative pt-32 pb-20 md:pt-40 md:pb-32 overflow-hidden bg-cover bg-center bg-slate-900"),
		g.If(hr.BackgroundImage != "", g.Attr("style", fmt.Sprintf("background-image: url(%q)", hr.BackgroundImage))),
		h.Div(h.Class("absolute inset-0 bg-black/50 backdrop-blur-sm")),
		h.Div(h.Class("absolute -top-1/4 left-1/4 w-96 h-96 bg-indigo-500 rounded-full mix-blend-multiply filter blur-xl opacity-30 animate-blob")),
		h.Div(h.Class("absolute -bottom-1/4 right-1/4 w-96 h-96 bg-teal-400 rounded-full mix-blend-multiply filter blur-xl opacity-30 animate-blob animation-delay-2000")),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 relative z-10"),
			h.Div(
				h.Class("max-w-4xl mx-auto text-center"),
				h.H1(
					h.Class("text-4xl md:text-6xl lg:text-7xl font-bold font-display tracking-tight text-white mb-6 drop-shadow-lg"),
					g.Text(hr.Headline),
				),
				g.If(hr.Subheadline != "", h.P(h.Class("text-lg md:text-xl text-slate-200 mb-8"), g.Text(hr.Subheadline))),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-4 justify-center"),
					h.A(
						view.SafeHref(hr.PrimaryCTA.Href),
						h.Class("inline-flex items-center justify-center px-8 py-4 text-base font-semibold text-white bg-indigo-500 hover:bg-indigo-600 rounded-xl transition-all shadow-lg shadow-indigo-500/25 transform hover:scale-105 duration-300 ease-in-out"),
						g.Text(hr.PrimaryCTA.Label),
						icons.ArrowRight("w-5 h-5 ml-2"),
					),
					h.A(
						view.SafeHref(hr.SecondaryCTA.Href),
						h.Class("inline-flex items-center justify-center px-8 py-4 text-base font-semibold text-white bg-teal-400 hover:bg-teal-500 rounded-xl transition-all shadow-lg shadow-teal-400/25 transform hover:scale-105 duration-300 ease-in-out"),
						g.Text(hr.SecondaryCTA.Label),
					),
				),
			),
		),
	)
}

func servicesSection(s content.ServicesSection) (g.Node, error) {
	cards := make([]g.Node, 0, len(s.Items))
	for _, item := range s.Items {
		icon, err := icons.ByName(item.Icon)
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", item.Title, err)
		}
		cards = append(cards, h.Div(
			h.Class("rounded-2xl bg-slate-50 dark:bg-slate-800 p-8 shadow-sm hover:shadow-lg transition-shadow"),
			h.Div(
				h.Class("w-12 h-12 rounded-xl bg-indigo-100 dark:bg-indigo-900/40 text-indigo-600 dark:text-indigo-300 flex items-center justify-center mb-6"),
				icon("w-6 h-6"),
			),
			h.H3(h.Class("text-xl font-semibold text-slate-900 dark:text-white mb-3"), g.Text(item.Title)),
			h.P(h.Class("text-slate-600 dark:text-slate-400 leading-relaxed"), g.Text(item.Description)),
		))
	}

	return h.Section(
		h.ID("services"),
		h.Class("py-20 bg-white dark:bg-slate-900"),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 max-w-6xl"),
			sectionHeading(s.Heading, s.Intro),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	), nil
}

func sectionHeading(heading, intro string) g.Node {
	return h.Div(
		h.Class("text-center mb-12"),
		h.H2(h.Class("text-3xl md:text-4xl font-bold font-display text-slate-900 dark:text-white mb-4"), g.Text(heading)),
		g.If(intro != "", h.P(h.Class("text-lg text-slate-600 dark:text-slate-400"), g.Text(intro))),
	)
}

func workSection(w content.WorkSection) g.Node {
	return h.Section(
		h.ID("work"),
		h.Class("py-20 bg-slate-50 dark:bg-slate-950"),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 max-w-6xl"),
			sectionHeading(w.Heading, w.Intro),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(w.Items, listingCard),
			),
		),
	)
}

func listingCard(l content.Listing) g.Node {
	return h.Article(
		h.Class("bg-white dark:bg-slate-800 rounded-2xl shadow-lg hover:shadow-xl transition-shadow duration-300 group relative overflow-hidden"),
		h.Img(view.SafeSrc(l.Image), h.Alt(l.ImageAlt), g.Attr("loading", "lazy"), h.Class("w-full h-48 object-cover rounded-t-2xl")),
		h.Div(
			h.Class("p-6"),
			h.H3(h.Class("text-xl font-semibold text-slate-900 dark:text-white mb-2"), g.Text(l.Title)),
			h.P(
				h.Class("text-slate-600 dark:text-slate-400 text-sm mb-4"),
				h.Span(h.Class("font-bold text-lg text-indigo-500"), g.Text(content.FormatPrice(l.Price))),
				g.Text(" • "+l.Location),
			),
			h.A(
				view.SafeHref(l.Href),
				h.Class("inline-flex items-center text-indigo-500 hover:text-indigo-600 font-medium"),
				g.Text("View Details"),
				icons.ArrowRight("w-4 h-4 ml-1 transform group-hover:translate-x-1 transition-transform"),
			),
		),
	)
}

func aboutSection(a content.About) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("py-20 bg-white dark:bg-slate-900"),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6"),
			h.Div(
				h.Class("max-w-4xl mx-auto flex flex-col md:flex-row items-center gap-8"),
				g.If(a.Image != "", h.Div(
					h.Class("flex-shrink-0"),
					h.Img(view.SafeSrc(a.Image), h.Alt(a.ImageAlt), h.Class("w-48 h-48 rounded-full object-cover shadow-lg border-4 border-indigo-500")),
				)),
				h.Div(
					h.Class("flex-grow text-center md:text-left"),
					h.H2(h.Class("text-3xl md:text-4xl font-bold font-display text-slate-900 dark:text-white mb-4"), g.Text(a.Heading)),
					g.Map(a.Paragraphs, func(p string) g.Node {
						return h.P(h.Class("text-lg text-slate-600 dark:text-slate-400 leading-relaxed mb-4"), g.Text(p))
					}),
				),
			),
		),
	)
}

func ctaBanner(c content.CTA) g.Node {
	return h.Section(
		h.Class("py-20 bg-gradient-to-r from-indigo-500 to-teal-400 text-white text-center"),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6"),
			h.H2(h.Class("text-3xl md:text-4xl font-bold font-display mb-4"), g.Text(c.Heading)),
			g.If(c.Body != "", h.P(h.Class("text-lg mb-8 max-w-2xl mx-auto"), g.Text(c.Body))),
			h.A(
				h.Href(content.TelURI(c.Phone)),
				h.Class("inline-flex items-center justify-center px-8 py-4 text-base font-semibold text-indigo-800 bg-white hover:bg-gray-100 rounded-xl transition-all shadow-lg transform hover:scale-105 duration-300 ease-in-out"),
				icons.Phone("w-5 h-5 mr-3"),
				g.Text(c.Phone),
			),
		),
	)
}

func contactSection(c content.Contact, form ConsultationForm) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("py-20 bg-slate-50 dark:bg-slate-950"),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6"),
			h.Div(
				h.Class("max-w-xl mx-auto text-center"),
				h.H2(h.Class("text-3xl md:text-4xl font-bold font-display text-slate-900 dark:text-white mb-6"), g.Text(c.Heading)),
				g.If(c.Body != "", h.P(h.Class("text-lg text-slate-600 dark:text-slate-400 mb-8"), g.Text(c.Body))),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-6 justify-center mb-12"),
					h.A(
						h.Href(content.TelURI(c.Phone)),
						h.Class("flex items-center gap-3 text-lg text-slate-700 dark:text-slate-300"),
						icons.Phone("w-6 h-6 text-indigo-500"),
						g.Text(c.Phone),
					),
					h.A(
						h.Href("mailto:"+c.Email),
						h.Class("flex items-center gap-3 text-lg text-slate-700 dark:text-slate-300"),
						icons.Envelope("w-6 h-6 text-teal-400"),
						g.Text(c.Email),
					),
				),
			),
			h.Div(h.Class("max-w-xl mx-auto"), Consultation(form)),
		),
	)
}

func footer(owner string, year int, class string) g.Node {
	return h.Footer(
		h.Class(class),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 text-center"),
			h.P(h.Class("text-sm"), g.Textf("© %d %s. All rights reserved.", year, owner)),
		),
	)
}
