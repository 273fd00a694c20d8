package pages

import (
	"github.com/nfrund/landing/internal/inquiry"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	// ConsultationRoute serves and accepts the consultation form.
	ConsultationRoute = "/consultation"
	// ConsultationFormID is the element htmx swaps after a submit.
	ConsultationFormID = "consultation-form"
)

// ConsultationForm is the state of the contact form for one render.
// Errors is keyed by field name: "name", "email", "message".
type ConsultationForm struct {
	Values inquiry.Request
	Errors map[string]string
	Sent   bool
}

// Consultation renders the form, or the acknowledgement once a request was stored.
func Consultation(f ConsultationForm) g.Node {
	if f.Sent {
		return h.Div(
			h.ID(ConsultationFormID),
			g.Attr("role", "status"),
			h.Class("rounded-2xl bg-green-50 dark:bg-green-900/30 p-8 text-center text-green-800 dark:text-green-200"),
			h.P(h.Class("text-lg font-semibold"), g.Textf("Thanks, %s!", f.Values.Name)),
			h.P(g.Text("Your consultation request was received. Expect a reply within one business day.")),
		)
	}

	return h.Form(
		h.ID(ConsultationFormID),
		h.Method("post"),
		h.Action(ConsultationRoute),
		hx.Post(ConsultationRoute),
		hx.Target("#"+ConsultationFormID),
		hx.Swap("outerHTML"),
		h.Aria("label", "Schedule a consultation"),
		g.Attr("novalidate"),
		h.Class("space-y-6 text-left bg-white dark:bg-slate-900 rounded-2xl shadow-lg p-8"),
		field(f, "name", "Name", func(attrs g.Group) g.Node {
			return h.Input(h.Type("text"), h.AutoComplete("name"), h.Required(), g.Attr("maxlength", "100"), h.Value(f.Values.Name), attrs)
		}),
		field(f, "email", "Email", func(attrs g.Group) g.Node {
			return h.Input(h.Type("email"), h.AutoComplete("email"), h.Required(), h.Value(f.Values.Email), attrs)
		}),
		field(f, "message", "What are you looking for?", func(attrs g.Group) g.Node {
			return h.Textarea(h.Rows("4"), g.Attr("maxlength", "2000"), attrs, g.Text(f.Values.Message))
		}),
		h.Button(
			h.Type("submit"),
			h.Class("w-full inline-flex items-center justify-center px-6 py-3 font-semibold text-white bg-indigo-500 hover:bg-indigo-600 rounded-xl transition-colors"),
			g.Text("Request Consultation"),
		),
	)
}

const controlClass = "w-full rounded-lg border border-slate-300 dark:border-slate-700 px-3 py-2 dark:bg-slate-800"

// field renders a labelled control and, when present, its error message.
func field(f ConsultationForm, name, label string, control func(attrs g.Group) g.Node) g.Node {
	id := "consultation-" + name
	errID := id + "-error"
	msg := f.Errors[name]

	return h.Div(
		h.Label(h.For(id), h.Class("block text-sm font-medium text-slate-700 dark:text-slate-300 mb-1"), g.Text(label)),
		control(g.Group{
			h.ID(id),
			h.Name(name),
			h.Aria("label", label),
			h.Class(controlClass),
			g.If(msg != "", h.Aria("invalid", "true")),
			g.If(msg != "", h.Aria("describedby", errID)),
		}),
		g.If(msg != "", h.P(h.ID(errID), h.Class("mt-1 text-sm text-red-600"), g.Text(msg))),
	)
}
