// Package icons is a small inline-SVG icon set for the landing and résumé pages.
//
// Every icon takes optional CSS classes. With none given it renders at the
// default size "w-5 h-5"; any given classes replace the default entirely.
// Icons are decorative and always carry aria-hidden="true".
package icons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nfrund/landing/internal/domain"
	g "maragu.dev/gomponents"
)

// DefaultClass is applied when an icon is rendered without classes.
const DefaultClass = "w-5 h-5"

// Icon renders an SVG with the given classes.
type Icon func(class ...string) g.Node

func classes(class []string) string {
	joined := strings.TrimSpace(strings.Join(class, " "))
	if joined == "" {
		return DefaultClass
	}
	return joined
}

// outline renders a 24x24 stroked icon.
func outline(class []string, paths ...string) g.Node {
	children := []g.Node{
		g.Attr("class", classes(class)),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
	}
	for _, d := range paths {
		children = append(children, g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", "2"),
			g.Attr("d", d),
		))
	}
	return g.El("svg", children...)
}

// solid renders a 24x24 filled icon, used for brand marks.
func solid(class []string, paths ...string) g.Node {
	children := []g.Node{
		g.Attr("class", classes(class)),
		g.Attr("fill", "currentColor"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
	}
	for _, d := range paths {
		children = append(children, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg", children...)
}

// Check is a check mark, used in feature lists.
func Check(class ...string) g.Node { return outline(class, "M5 13l4 4L19 7") }

// ArrowRight points right; it trails call-to-action links.
func ArrowRight(class ...string) g.Node { return outline(class, "M14 5l7 7m0 0l-7 7m7-7H3") }

// Menu is the three-bar icon on the closed mobile menu button.
func Menu(class ...string) g.Node { return outline(class, "M4 6h16M4 12h16M4 18h16") }

// Close is the cross on the open mobile menu button.
func Close(class ...string) g.Node { return outline(class, "M6 18L18 6M6 6l12 12") }

// TrendingUp is a rising line chart.
func TrendingUp(class ...string) g.Node { return outline(class, "M13 7h8m0 0v8m0-8l-8 8-4-4-6 6") }

// Calendar marks scheduling and dates.
func Calendar(class ...string) g.Node {
	return outline(class, "M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z")
}

// Mail is an outlined envelope.
func Mail(class ...string) g.Node {
	return outline(class, "M3 8l7.89 5.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z")
}

// Beaker is a lab flask.
func Beaker(class ...string) g.Node {
	return outline(class, "M19.428 15.428a2 2 0 00-1.022-.547l-2.387-.477a6 6 0 00-3.86.517l-.318.158a6 6 0 01-3.86.517L6.05 15.21a2 2 0 00-1.806.547M8 4h8l-1 1v5.172a2 2 0 00.586 1.414l5 5c1.26 1.26.367 3.414-1.415 3.414H4.828c-1.782 0-2.674-2.154-1.414-3.414l5-5A2 2 0 009 10.172V5L8 4z")
}

// Briefcase marks work experience.
func Briefcase(class ...string) g.Node {
	return outline(class, "M21 13.255A23.931 23.931 0 0112 15c-3.183 0-6.22-.62-9-1.745M16 6V4a2 2 0 00-2-2h-4a2 2 0 00-2 2v2m4 6h.01M5 20h14a2 2 0 002-2V8a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z")
}

// Sparkles highlights something new or featured.
func Sparkles(class ...string) g.Node {
	return outline(class, "M5 3v4M3 5h4M6 17v4m-2-2h4m5-16l2.286 6.857L21 12l-5.714 2.143L13 21l-2.286-6.857L5 12l5.714-2.143L13 3z")
}

// BookOpen is an open book.
func BookOpen(class ...string) g.Node {
	return outline(class, "M12 6.253v13m0-13C10.832 5.477 9.246 5 7.5 5S4.168 5.477 3 6.253v13C4.168 18.477 5.754 18 7.5 18s3.332.477 4.5 1.253m0-13C13.168 5.477 14.754 5 16.5 5c1.747 0 3.332.477 4.5 1.253v13C19.832 18.477 18.247 18 16.5 18c-1.746 0-3.332.477-4.5 1.253")
}

// Users is a group of people.
func Users(class ...string) g.Node {
	return outline(class, "M12 4.354a4 4 0 110 5.292M15 21H3v-1a6 6 0 0112 0v1zm0 0h6v-1a6 6 0 00-9-5.197M13 7a4 4 0 11-8 0 4 4 0 018 0z")
}

// Bolt is a lightning bolt.
func Bolt(class ...string) g.Node { return outline(class, "M13 10V3L4 14h7v7l9-11h-7z") }

// MapPin marks a location.
func MapPin(class ...string) g.Node {
	return outline(class,
		"M17.657 16.657L13.414 20.9a1.998 1.998 0 01-2.827 0l-4.244-4.243a8 8 0 1111.314 0z",
		"M15 11a3 3 0 11-6 0 3 3 0 016 0z",
	)
}

// LightBulb is an idea bulb.
func LightBulb(class ...string) g.Node {
	return outline(class, "M9.663 17h4.673M12 3v1m6.364 1.636l-.707.707M21 12h-1M4 12H3m3.343-5.657l-.707-.707m2.828 9.9a5 5 0 117.072 0l-.548.547A3.374 3.374 0 0014 18.469V19a2 2 0 11-4 0v-.531c0-.895-.356-1.754-.988-2.386l-.548-.547z")
}

// AcademicCap marks education.
func AcademicCap(class ...string) g.Node {
	return outline(class,
		"M12 14l9-5-9-5-9 5 9 5z",
		"M12 14l6.16-3.422a12.083 12.083 0 01.665 6.479A11.952 11.952 0 0012 20.055a11.952 11.952 0 00-6.824-2.998 12.078 12.078 0 01.665-6.479L12 14z",
	)
}

// Phone is a filled handset.
func Phone(class ...string) g.Node {
	return solid(class, "M6.62 10.79c1.44 2.83 3.76 5.15 6.59 6.59l2.2-2.2c.28-.28.67-.36 1.02-.25 1.12.37 2.33.57 3.57.57.55 0 1 .45 1 1V20c0 .55-.45 1-1 1-9.39 0-17-7.61-17-17 0-.55.45-1 1-1h3.5c.55 0 1 .45 1 1 0 1.25.2 2.45.57 3.57.11.35.03.74-.25 1.02l-2.2 2.2z")
}

// Envelope is a filled envelope, the solid counterpart of Mail.
func Envelope(class ...string) g.Node {
	return solid(class, "M20 4H4c-1.1 0-1.99.9-1.99 2L2 18c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V6c0-1.1-.9-2-2-2zm0 4l-8 5-8-5V6l8 5 8-5v2z")
}

// LinkedIn is the LinkedIn brand mark.
func LinkedIn(class ...string) g.Node {
	return solid(class, "M20.447 20.452h-3.554v-5.569c0-1.328-.027-3.037-1.852-3.037-1.853 0-2.136 1.445-2.136 2.939v5.667H9.351V9h3.414v1.561h.046c.477-.9 1.637-1.85 3.37-1.85 3.601 0 4.267 2.37 4.267 5.455v6.286zM5.337 7.433a2.062 2.062 0 01-2.063-2.065 2.064 2.064 0 112.063 2.065zm1.782 13.019H3.555V9h3.564v11.452zM22.225 0H1.771C.792 0 0 .774 0 1.729v20.542C0 23.227.792 24 1.771 24h20.451C23.2 24 24 23.227 24 22.271V1.729C24 .774 23.2 0 22.222 0h.003z")
}

// GitHub is the GitHub brand mark.
func GitHub(class ...string) g.Node {
	return solid(class, "M12 .297c-6.63 0-12 5.373-12 12 0 5.303 3.438 9.8 8.205 11.385.6.113.82-.258.82-.577 0-.285-.01-1.04-.015-2.04-3.338.724-4.042-1.61-4.042-1.61C4.422 18.07 3.633 17.7 3.633 17.7c-1.087-.744.084-.729.084-.729 1.205.084 1.838 1.236 1.838 1.236 1.07 1.835 2.809 1.305 3.495.998.108-.776.417-1.305.76-1.605-2.665-.3-5.466-1.332-5.466-5.93 0-1.31.465-2.38 1.235-3.22-.135-.303-.54-1.523.105-3.176 0 0 1.005-.322 3.3 1.23.96-.267 1.98-.399 3-.405 1.02.006 2.04.138 3 .405 2.28-1.552 3.285-1.23 3.285-1.23.645 1.653.24 2.873.12 3.176.765.84 1.23 1.91 1.23 3.22 0 4.61-2.805 5.625-5.475 5.92.42.36.81 1.096.81 2.22 0 1.606-.015 2.896-.015 3.286 0 .315.21.69.825.57C20.565 22.092 24 17.592 24 12.297c0-6.627-5.373-12-12-12")
}

// XTwitter is the X (formerly Twitter) brand mark.
func XTwitter(class ...string) g.Node {
	return solid(class, "M18.244 2.25h3.308l-7.227 8.26 8.502 11.24H16.17l-5.214-6.817L4.99 21.75H1.68l7.73-8.835L1.254 2.25H8.08l4.713 6.231zm-1.161 17.52h1.833L7.084 4.126H5.117z")
}

var byName = map[string]Icon{
	"check":        Check,
	"arrow-right":  ArrowRight,
	"menu":         Menu,
	"close":        Close,
	"trending-up":  TrendingUp,
	"calendar":     Calendar,
	"mail":         Mail,
	"beaker":       Beaker,
	"briefcase":    Briefcase,
	"sparkles":     Sparkles,
	"book-open":    BookOpen,
	"users":        Users,
	"bolt":         Bolt,
	"map-pin":      MapPin,
	"light-bulb":   LightBulb,
	"academic-cap": AcademicCap,
	"phone":        Phone,
	"envelope":     Envelope,
	"linkedin":     LinkedIn,
	"github":       GitHub,
	"x-twitter":    XTwitter,
}

// ByName looks up an icon by its kebab-case name, as used in content files.
func ByName(name string) (Icon, error) {
	icon, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownIcon, name)
	}
	return icon, nil
}

// Names lists every registered icon name in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
