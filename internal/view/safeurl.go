package view

import (
	"github.com/a-h/templ"
	"maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SafeHref renders an href attribute for a URL that came from editable content.
// templ.URL replaces javascript: and other unsafe schemes with "about:invalid#TemplFailedSanitizationURL".
func SafeHref(raw string) gomponents.Node {
	return h.Href(string(templ.URL(raw)))
}

// IsSafeURL reports whether raw survives sanitisation unchanged.
func IsSafeURL(raw string) bool {
	return string(templ.URL(raw)) == raw
}

// SafeSrc is SafeHref for image sources.
func SafeSrc(raw string) gomponents.Node {
	return h.Src(string(templ.URL(raw)))
}
