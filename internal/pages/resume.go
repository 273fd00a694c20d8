package pages

import (
	"fmt"

	"github.com/nfrund/landing/internal/components/icons"
	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ResumeProps is everything the résumé page needs for one render.
type ResumeProps struct {
	Content content.Resume
	Year    int
}

var accentClasses = map[string]string{
	"blue":   "bg-blue-50 dark:bg-blue-900/30 text-blue-700 dark:text-blue-300",
	"indigo": "bg-indigo-50 dark:bg-indigo-900/30 text-indigo-700 dark:text-indigo-300",
	"teal":   "bg-teal-50 dark:bg-teal-900/30 text-teal-700 dark:text-teal-300",
}

// Resume renders the résumé page. It fails when a social link names an unknown icon.
func Resume(meta Meta, p ResumeProps) (g.Node, error) {
	r := p.Content
	socials, err := socialLinks(r.Socials)
	if err != nil {
		return nil, err
	}

	return Layout(meta,
		h.Main(
			h.ID(MainContentID),
			h.Class("min-h-screen"),
			resumeNav(r),
			resumeHero(r, socials),
			experienceSection(r.Experience),
			skillsSection(r.SkillGroups),
			educationSection(r.Education),
			footer(r.Name, p.Year, "py-8 bg-slate-100 dark:bg-slate-900 border-t border-slate-200 dark:border-slate-800 text-slate-600 dark:text-slate-400"),
		),
	), nil
}

func resumeNav(r content.Resume) g.Node {
	return h.Nav(
		h.Aria("label", "Résumé navigation"),
		h.Class(navBarClass),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 flex items-center justify-between h-16"),
			h.A(h.Href("/"), h.Class("flex items-center gap-2"), brand(r.Initials, r.Name)),
			h.Div(
				h.Class("hidden md:flex items-center gap-8"),
				h.A(h.Href("/"), h.Class(navLinkClass), g.Text("Home")),
				h.A(h.Href("#experience"), h.Class(navLinkClass), g.Text("Experience")),
				h.A(h.Href("#skills"), h.Class(navLinkClass), g.Text("Skills")),
				h.A(h.Href("#education"), h.Class(navLinkClass), g.Text("Education")),
				h.A(h.Href("mailto:"+r.Email), h.Class(navButtonClass), g.Text("Contact Me")),
			),
		),
	)
}

func socialLinks(socials []content.Social) (g.Node, error) {
	links := make(g.Group, 0, len(socials))
	for _, s := range socials {
		icon, err := icons.ByName(s.Icon)
		if err != nil {
			return nil, fmt.Errorf("social link %q: %w", s.Label, err)
		}
		links = append(links, h.A(
			view.SafeHref(s.Href),
			h.Class("flex items-center gap-2 text-sm text-slate-600 dark:text-slate-400 hover:text-blue-600 transition-colors"),
			icon(),
			g.Text(s.Label),
		))
	}
	return links, nil
}

func resumeHero(r content.Resume, socials g.Node) g.Node {
	return h.Section(
		h.Class("relative pt-32 pb-16 md:pt-40 md:pb-24 overflow-hidden"),
		h.Div(h.Class("absolute top-0 right-0 -z-10 w-[600px] h-[600px] bg-blue-100/50 dark:bg-blue-900/10 rounded-full blur-3xl opacity-70 translate-x-1/3 -translate-y-1/4")),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 max-w-4xl"),
			h.H1(h.Class("text-4xl md:text-5xl font-bold font-display tracking-tight text-slate-900 dark:text-white mb-2"), g.Text(r.Name)),
			h.P(h.Class("text-xl md:text-2xl text-blue-600 dark:text-blue-400 font-medium mb-4"), g.Text(r.Title)),
			h.Div(
				h.Class("flex flex-wrap gap-4 text-sm text-slate-600 dark:text-slate-400 mb-6"),
				g.If(r.Location != "", h.Div(h.Class("flex items-center gap-2"), icons.MapPin("w-4 h-4"), g.Text(r.Location))),
				h.Div(h.Class("flex items-center gap-2"), icons.Mail("w-4 h-4"), g.Text(r.Email)),
			),
			h.P(h.Class("text-slate-600 dark:text-slate-400 leading-relaxed mb-6"), g.Text(r.Summary)),
			h.Div(h.Class("flex gap-3"), socials),
		),
	)
}

func resumeSection(id string, icon icons.Icon, heading string, bg string, body ...g.Node) g.Node {
	return h.Section(
		h.ID(id),
		h.Class("py-16 "+bg),
		h.Div(
			h.Class("container mx-auto px-4 md:px-6 max-w-4xl"),
			h.H2(
				h.Class("text-2xl md:text-3xl font-bold font-display text-slate-900 dark:text-white mb-8 flex items-center gap-3"),
				icon("w-7 h-7 text-blue-600"),
				g.Text(heading),
			),
			g.Group(body),
		),
	)
}

func experienceSection(roles []content.Role) g.Node {
	return resumeSection("experience", icons.Briefcase, "Impact & Experience", "bg-white dark:bg-slate-900",
		h.Div(
			h.Class("space-y-8"),
			g.Map(roles, func(role content.Role) g.Node {
				return h.Div(
					h.Class("relative pl-8 pb-8 border-l-2 border-blue-200 dark:border-blue-800"),
					h.Div(h.Class("absolute -left-2 top-0 w-4 h-4 rounded-full bg-blue-600")),
					h.H3(h.Class("text-xl font-bold text-slate-900 dark:text-white"), g.Text(role.Title)),
					h.P(h.Class("text-blue-600 dark:text-blue-400 font-medium mb-3"), g.Text(role.Role)),
					h.Ul(
						h.Class("space-y-2 text-slate-600 dark:text-slate-400"),
						g.Map(role.Highlights, func(hl string) g.Node {
							return h.Li(
								h.Class("flex items-start gap-2"),
								icons.Check("w-5 h-5 text-green-500 flex-shrink-0 mt-0.5"),
								h.Span(g.Text(hl)),
							)
						}),
					),
				)
			}),
		),
	)
}

func skillsSection(groups []content.SkillGroup) g.Node {
	return resumeSection("skills", icons.LightBulb, "Core Expertise", "bg-slate-50 dark:bg-slate-950",
		h.Div(
			h.Class("grid md:grid-cols-2 gap-6"),
			g.Map(groups, func(sg content.SkillGroup) g.Node {
				chip, ok := accentClasses[sg.Accent]
				if !ok {
					chip = accentClasses["blue"]
				}
				return h.Div(
					h.Class("bg-white dark:bg-slate-800 rounded-2xl p-6"),
					h.H3(h.Class("font-semibold text-slate-900 dark:text-white mb-4"), g.Text(sg.Name)),
					h.Div(
						h.Class("flex flex-wrap gap-2"),
						g.Map(sg.Skills, func(skill string) g.Node {
							return h.Span(h.Class(chip+" px-3 py-1.5 rounded-lg text-sm"), g.Text(skill))
						}),
					),
				)
			}),
		),
	)
}

func educationSection(degrees []content.Degree) g.Node {
	return resumeSection("education", icons.AcademicCap, "Education", "bg-white dark:bg-slate-900",
		h.Div(
			h.Class("space-y-6"),
			g.Map(degrees, func(d content.Degree) g.Node {
				return h.Div(
					h.Class("bg-slate-50 dark:bg-slate-800 rounded-2xl p-6"),
					h.H3(h.Class("text-lg font-bold text-slate-900 dark:text-white"), g.Text(d.Degree)),
					h.P(h.Class("text-blue-600 dark:text-blue-400"), g.Text(d.Institution)),
				)
			}),
		),
	)
}
